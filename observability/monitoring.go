// Package observability aggregates delivery counters for telemetry.
package observability

import (
	"sync/atomic"
	"time"
)

// RoutingStats is the snapshot shape handed to the telemetry pipeline.
type RoutingStats struct {
	MessagesRouted    uint64 `json:"messages_routed"`
	MessagesReplayed  uint64 `json:"messages_replayed"`
	PushesDropped     uint64 `json:"pushes_dropped"`
	SendsRejected     uint64 `json:"sends_rejected"`
	ActiveConnections int64  `json:"active_connections"`
	CollectedAt       time.Time
}

// Monitoring holds lock-free counters touched on the hot delivery path.
type Monitoring struct {
	messagesRouted    atomic.Uint64
	messagesReplayed  atomic.Uint64
	pushesDropped     atomic.Uint64
	sendsRejected     atomic.Uint64
	activeConnections atomic.Int64
}

func NewMonitoring() *Monitoring {
	return &Monitoring{}
}

func (m *Monitoring) IncrRouted()       { m.messagesRouted.Add(1) }
func (m *Monitoring) IncrReplayed()     { m.messagesReplayed.Add(1) }
func (m *Monitoring) IncrDroppedPush()  { m.pushesDropped.Add(1) }
func (m *Monitoring) IncrRejectedSend() { m.sendsRejected.Add(1) }
func (m *Monitoring) ConnectionOpened() { m.activeConnections.Add(1) }
func (m *Monitoring) ConnectionClosed() { m.activeConnections.Add(-1) }

func (m *Monitoring) Snapshot() RoutingStats {
	return RoutingStats{
		MessagesRouted:    m.messagesRouted.Load(),
		MessagesReplayed:  m.messagesReplayed.Load(),
		PushesDropped:     m.pushesDropped.Load(),
		SendsRejected:     m.sendsRejected.Load(),
		ActiveConnections: m.activeConnections.Load(),
		CollectedAt:       time.Now().UTC(),
	}
}
