// Package domain contains core concepts of the chat system.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

type UserID string
type ConnectionID string

// Session binds one physical connection to a verified identity.
// It is owned exclusively by the connection gateway; the presence
// registry only keeps a back-reference to it.
type Session struct {
	ConnectionID  ConnectionID
	UserID        UserID
	EstablishedAt time.Time
}

// Identity is the result of a successful credential validation.
type Identity struct {
	UserID      UserID
	DisplayName string
}
