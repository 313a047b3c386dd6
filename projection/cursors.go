// Package projection builds read-side state from observed deliveries.
// It does not emit events or talk to the network.
package projection

import (
	"sync"

	"chat-relay/domain"
)

// Cursors tracks, per session and partition, the last sequence delivered
// to that session. Reconnect replay ranges are computed from it, and the
// monotonic advance check doubles as the duplicate filter when replay
// hands over to live fan-out. Each session owns its cursor: a push that
// failed toward one device never hides the message from that device,
// the other devices advancing is irrelevant to it.
//
// Alongside the per-session cursors, a per-user high-water mark records
// the highest sequence any of the user's sessions ever accepted. It
// outlives the sessions and bounds what a removed group member may still
// read from history.
type Cursors struct {
	mu        sync.RWMutex
	bySession map[domain.ConnectionID]map[string]uint64
	delivered map[domain.UserID]map[string]uint64
}

func NewCursors() *Cursors {
	return &Cursors{
		bySession: make(map[domain.ConnectionID]map[string]uint64),
		delivered: make(map[domain.UserID]map[string]uint64),
	}
}

// Advance moves the session's cursor to sequence and reports whether it
// actually moved. A false return means this session already saw the
// message, the caller must drop the push instead of emitting a
// duplicate. The user's delivered high-water mark is raised regardless
// of which session accepted.
func (c *Cursors) Advance(connID domain.ConnectionID, userID domain.UserID, p domain.Partition, sequence uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := p.Key()
	if sequence > c.delivered[userID][key] {
		if c.delivered[userID] == nil {
			c.delivered[userID] = make(map[string]uint64)
		}
		c.delivered[userID][key] = sequence
	}

	partitions, ok := c.bySession[connID]
	if !ok {
		partitions = make(map[string]uint64)
		c.bySession[connID] = partitions
	}
	if sequence <= partitions[key] {
		return false
	}
	partitions[key] = sequence
	return true
}

// Get returns the session's replay cursor, 0 when it never saw the
// partition.
func (c *Cursors) Get(connID domain.ConnectionID, p domain.Partition) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bySession[connID][p.Key()]
}

// DeliveredHighWater returns the highest sequence ever delivered to any
// of the user's sessions for the partition.
func (c *Cursors) DeliveredHighWater(userID domain.UserID, p domain.Partition) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.delivered[userID][p.Key()]
}

// DropSession forgets a closed session's cursors. The user's delivered
// high-water mark survives the session.
func (c *Cursors) DropSession(connID domain.ConnectionID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.bySession, connID)
}

// DropPartition invalidates every cursor for one partition, used when a
// group is deleted and pending replays must not resurrect it.
func (c *Cursors) DropPartition(p domain.Partition) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, partitions := range c.bySession {
		delete(partitions, p.Key())
	}
	for _, partitions := range c.delivered {
		delete(partitions, p.Key())
	}
}
