package runtime

import (
	"sync"

	"chat-relay/contract"
	"chat-relay/domain"
)

// SinkRegistry resolves connection ids to their delivery sinks. A sink
// becomes eligible for live fan-out of a partition only once it was
// marked live for it, which the router does after the replay of that
// partition finished. That gate is what keeps replay and live pushes
// from interleaving on a fresh connection.
type SinkRegistry struct {
	mu    sync.RWMutex
	sinks map[domain.ConnectionID]*sinkEntry
}

type sinkEntry struct {
	sink contract.EventSink
	live map[string]struct{}
}

func NewSinkRegistry() *SinkRegistry {
	return &SinkRegistry{sinks: make(map[domain.ConnectionID]*sinkEntry)}
}

func (r *SinkRegistry) Subscribe(connID domain.ConnectionID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks[connID] = &sinkEntry{sink: sink, live: make(map[string]struct{})}
}

func (r *SinkRegistry) Unsubscribe(connID domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sinks, connID)
}

// SinkOf returns the sink regardless of partition liveness, used for
// connection-scoped pushes such as presence updates and revocations.
func (r *SinkRegistry) SinkOf(connID domain.ConnectionID) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.sinks[connID]
	if !ok {
		return nil, false
	}
	return entry.sink, true
}

// LiveSink returns the sink only when the connection went live for the
// partition.
func (r *SinkRegistry) LiveSink(connID domain.ConnectionID, p domain.Partition) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.sinks[connID]
	if !ok {
		return nil, false
	}
	if _, live := entry.live[p.Key()]; !live {
		return nil, false
	}
	return entry.sink, true
}

func (r *SinkRegistry) MarkLive(connID domain.ConnectionID, p domain.Partition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.sinks[connID]; ok {
		entry.live[p.Key()] = struct{}{}
	}
}

func (r *SinkRegistry) UnmarkLive(connID domain.ConnectionID, p domain.Partition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.sinks[connID]; ok {
		delete(entry.live, p.Key())
	}
}

// DropPartition removes liveness for every connection, used when a group
// partition disappears.
func (r *SinkRegistry) DropPartition(p domain.Partition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range r.sinks {
		delete(entry.live, p.Key())
	}
}
