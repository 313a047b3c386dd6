package runtime

import (
	"context"
	"testing"

	"chat-relay/domain"
	"chat-relay/domain/event"

	"github.com/stretchr/testify/require"
)

type nopSink struct{}

func (nopSink) Consume(context.Context, event.DomainEvent) error { return nil }

func TestSinkRegistry_LivenessGate(t *testing.T) {
	req := require.New(t)
	r := NewSinkRegistry()
	conn := domain.ConnectionID("c1")
	partition := domain.GroupPartition("g1")

	r.Subscribe(conn, nopSink{})

	// Subscribed but not live: reachable for connection-scoped pushes,
	// invisible to partition fan-out
	_, ok := r.SinkOf(conn)
	req.True(ok)
	_, ok = r.LiveSink(conn, partition)
	req.False(ok)

	r.MarkLive(conn, partition)
	_, ok = r.LiveSink(conn, partition)
	req.True(ok)

	// Liveness is per partition
	_, ok = r.LiveSink(conn, domain.GroupPartition("other"))
	req.False(ok)

	r.UnmarkLive(conn, partition)
	_, ok = r.LiveSink(conn, partition)
	req.False(ok)
}

func TestSinkRegistry_DropPartition(t *testing.T) {
	req := require.New(t)
	r := NewSinkRegistry()
	partition := domain.GroupPartition("doomed")

	for _, conn := range []domain.ConnectionID{"c1", "c2"} {
		r.Subscribe(conn, nopSink{})
		r.MarkLive(conn, partition)
	}

	r.DropPartition(partition)

	for _, conn := range []domain.ConnectionID{"c1", "c2"} {
		_, ok := r.LiveSink(conn, partition)
		req.False(ok)
		// The connections themselves survive
		_, ok = r.SinkOf(conn)
		req.True(ok)
	}
}

func TestSinkRegistry_UnsubscribeRemovesEverything(t *testing.T) {
	req := require.New(t)
	r := NewSinkRegistry()
	conn := domain.ConnectionID("c1")
	partition := domain.PrivatePartition("alice")

	r.Subscribe(conn, nopSink{})
	r.MarkLive(conn, partition)
	r.Unsubscribe(conn)

	_, ok := r.SinkOf(conn)
	req.False(ok)
	_, ok = r.LiveSink(conn, partition)
	req.False(ok)
}
