package sink_test

import (
	"context"
	"testing"
	"time"

	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/sink"

	"github.com/stretchr/testify/require"
)

func TestGrpcSink_BuffersUntilDrained(t *testing.T) {
	req := require.New(t)
	s := sink.NewGrpcSink(2)
	ctx := context.Background()

	evt := event.PresenceChanged{UserID: "alice", Online: true, At: time.Now().UTC()}
	req.NoError(s.Consume(ctx, evt))
	req.NoError(s.Consume(ctx, evt))

	// Buffer full: a bounded push must give up with the caller's deadline
	timeoutCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	err := s.Consume(timeoutCtx, evt)
	req.ErrorIs(err, context.DeadlineExceeded)

	// Draining one slot unblocks the next push
	<-s.Events
	req.NoError(s.Consume(ctx, evt))
}

func TestGrpcSink_ReplayWaitsForConsumer(t *testing.T) {
	req := require.New(t)
	s := sink.NewGrpcSink(1)

	revoked := event.SessionRevoked{UserID: domain.UserID("bob"), Reason: "test", At: time.Now().UTC()}
	req.NoError(s.Consume(context.Background(), revoked))

	// A second push with an open-ended context blocks until the reader
	// catches up, which is the backpressure replay relies on.
	done := make(chan error, 1)
	go func() {
		done <- s.Consume(context.Background(), revoked)
	}()

	select {
	case err := <-done:
		req.Fail("push should have blocked", "got %v", err)
	case <-time.After(30 * time.Millisecond):
	}

	<-s.Events
	req.NoError(<-done)
}
