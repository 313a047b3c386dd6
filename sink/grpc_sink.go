// Package sink bridges the router's fan-out to the per-connection
// delivery channels drained by the gateway stream handlers.
package sink

import (
	"context"

	"chat-relay/contract"
	"chat-relay/domain/event"
)

type GrpcSink struct {
	Events chan event.DomainEvent
}

var _ contract.EventSink = (*GrpcSink)(nil)

func NewGrpcSink(bufferSize int) *GrpcSink {
	return &GrpcSink{Events: make(chan event.DomainEvent, bufferSize)}
}

// Consume is called by the router's fan-out and by replay.
// It redirects the event through the channel owned by the connection;
// the gRPC handler will take it from now. Backpressure is bounded by the
// caller's context: live fan-out uses a short timeout and treats the
// expiry as a dropped push, replay waits for the client to drain.
func (s *GrpcSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
