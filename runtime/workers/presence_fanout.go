package workers

import (
	"context"
	"log/slog"
	"time"

	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/runtime"
)

// Ensure *PresenceFanoutWorker implements the contract.Worker interface
// at compile time.
var _ contract.Worker = (*PresenceFanoutWorker)(nil)

// PresenceFanoutWorker turns presence transitions into userStatusUpdate
// pushes toward the users who can see them: co-members of shared groups,
// resolved through the membership index at the moment of the transition.
//
// Delivery is best-effort. A missed status update corrects itself on the
// next transition, so failed pushes are only counted, never retried.
type PresenceFanoutWorker struct {
	log         *slog.Logger
	events      <-chan event.DomainEvent
	membership  contract.IMembership
	presence    contract.IPresence
	sinks       *runtime.SinkRegistry
	pushTimeout time.Duration
}

func NewPresenceFanoutWorker(
	log *slog.Logger,
	events <-chan event.DomainEvent,
	membership contract.IMembership,
	presence contract.IPresence,
	sinks *runtime.SinkRegistry,
	pushTimeout time.Duration,
) *PresenceFanoutWorker {
	return &PresenceFanoutWorker{
		log:         log,
		events:      events,
		membership:  membership,
		presence:    presence,
		sinks:       sinks,
		pushTimeout: pushTimeout,
	}
}

func (w *PresenceFanoutWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case e, ok := <-w.events:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			if transition, ok := e.(event.PresenceChanged); ok {
				w.fanout(ctx, transition)
			}
		}
	}
}

func (w *PresenceFanoutWorker) fanout(ctx context.Context, transition event.PresenceChanged) {
	for _, watcher := range w.watchersOf(transition.UserID) {
		for _, connID := range w.presence.ActiveSessionsOf(watcher) {
			sink, ok := w.sinks.SinkOf(connID)
			if !ok {
				continue
			}
			pushCtx, cancel := context.WithTimeout(ctx, w.pushTimeout)
			if err := sink.Consume(pushCtx, transition); err != nil {
				w.log.Debug("status push dropped", "watcher", watcher, "error", err)
			}
			cancel()
		}
	}
}

// watchersOf collects the distinct co-members across all groups the user
// belongs to, excluding the user itself.
func (w *PresenceFanoutWorker) watchersOf(userID domain.UserID) []domain.UserID {
	seen := map[domain.UserID]struct{}{userID: {}}
	var out []domain.UserID
	for _, groupID := range w.membership.GroupsOf(userID) {
		members, err := w.membership.MembersOf(groupID)
		if err != nil {
			continue
		}
		for _, member := range members {
			if _, dup := seen[member]; dup {
				continue
			}
			seen[member] = struct{}{}
			out = append(out, member)
		}
	}
	return out
}
