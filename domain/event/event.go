// Package event defines the typed variants routed between the delivery
// router and connection sinks. Each logical event is a discriminated
// struct, never a dynamically dispatched callback.
package event

import (
	"time"

	"chat-relay/domain"
)

type DomainEvent interface {
	OccurredAt() time.Time
}

// MessageDelivered carries one persisted message toward an active session,
// either from live fan-out or from replay.
type MessageDelivered struct {
	Message  domain.Message
	Replayed bool
}

func (e MessageDelivered) OccurredAt() time.Time { return e.Message.CreatedAt }

// PresenceChanged is emitted on a genuine online/offline boundary,
// never per-session.
type PresenceChanged struct {
	UserID domain.UserID
	Online bool
	At     time.Time
}

func (e PresenceChanged) OccurredAt() time.Time { return e.At }

// SessionEstablished is pushed first on a fresh connection stream so the
// client learns its connection id.
type SessionEstablished struct {
	Session domain.Session
}

func (e SessionEstablished) OccurredAt() time.Time { return e.Session.EstablishedAt }

// SessionRevoked instructs a gateway to close its connection, emitted
// when a global ban invalidates every active session of a user.
type SessionRevoked struct {
	UserID domain.UserID
	Reason string
	At     time.Time
}

func (e SessionRevoked) OccurredAt() time.Time { return e.At }

// ProcessStats is a technical event for the telemetry pipeline.
type ProcessStats struct {
	PID        int
	Status     string
	CpuPercent float64
	RamBytes   uint64
	At         time.Time
}

func (e ProcessStats) OccurredAt() time.Time { return e.At }
