// Package runtime hosts the delivery machinery: the router that drives a
// send request end to end, the sink registry, and the supervised workers
// around them. Domain rules live elsewhere.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/moderation"
	"chat-relay/observability"
	"chat-relay/projection"

	"github.com/samber/lo"
)

// UserDirectory answers target-existence checks for private sends.
type UserDirectory interface {
	Exists(userID string) (bool, error)
}

// Router orchestrates one send request: permission check, sequence
// assignment, persistence, fan-out, and the replay-then-live attachment
// of fresh sessions.
//
// Per-partition ordering is enforced twice: the message log serializes
// sequence assignment, and the router serializes the push phase behind a
// partition mutex so fan-out of sequence N completes before N+1 starts.
// Together with the cursor gate in projection.Cursors, no consumer ever
// observes N before N-1, whether via live fan-out or replay.
type Router struct {
	log        *slog.Logger
	presence   contract.IPresence
	membership contract.IMembership
	messages   contract.IMessageLog
	users      UserDirectory
	sinks      *SinkRegistry
	cursors    *projection.Cursors
	moderator  moderation.Moderator
	monitoring *observability.Monitoring

	events      chan event.DomainEvent
	pushTimeout time.Duration

	mu         sync.Mutex
	partitions map[string]*sync.Mutex
}

var _ contract.IRouter = (*Router)(nil)

func NewRouter(
	log *slog.Logger,
	presence contract.IPresence,
	membership contract.IMembership,
	messages contract.IMessageLog,
	users UserDirectory,
	sinks *SinkRegistry,
	cursors *projection.Cursors,
	moderator moderation.Moderator,
	monitoring *observability.Monitoring,
	eventBufferSize int,
	pushTimeout time.Duration,
) *Router {
	return &Router{
		log:         log,
		presence:    presence,
		membership:  membership,
		messages:    messages,
		users:       users,
		sinks:       sinks,
		cursors:     cursors,
		moderator:   moderator,
		monitoring:  monitoring,
		events:      make(chan event.DomainEvent, eventBufferSize),
		pushTimeout: pushTimeout,
		partitions:  make(map[string]*sync.Mutex),
	}
}

// Events exposes the presence/telemetry stream consumed by the fan-out
// workers.
func (r *Router) Events() chan event.DomainEvent {
	return r.events
}

// Send runs the full state machine for one message. The returned message
// is the sender's echo; failures before persistence leave no state behind.
func (r *Router) Send(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error) {
	if err := r.validate(cmd); err != nil {
		r.monitoring.IncrRejectedSend()
		return domain.Message{}, err
	}

	censored, found := r.moderator.Censor(cmd.Content)
	if len(found) > 0 {
		r.log.Warn("message censored",
			"sender", cmd.SenderID,
			"lang", moderation.DetectLanguage(cmd.Content),
			"words", len(found))
	}

	partition := cmd.Partition()
	lock := r.partitionLock(partition)
	lock.Lock()
	defer lock.Unlock()

	message, err := r.messages.Append(partition, cmd.SenderID, censored)
	if err != nil {
		// Hard failure for this attempt, nothing was persisted
		return domain.Message{}, err
	}
	r.monitoring.IncrRouted()

	recipients, err := r.resolveRecipients(cmd)
	if err != nil {
		// The message is already durable, recipients will catch up on replay
		r.log.Error("recipient resolution failed after append", "partition", partition.Key(), "error", err)
		return message, nil
	}

	for _, recipient := range recipients {
		r.pushToUser(ctx, recipient, message)
	}

	// The sender sees its own message through the synchronous return,
	// never as a second fan-out push.
	for _, connID := range r.presence.ActiveSessionsOf(cmd.SenderID) {
		r.cursors.Advance(connID, cmd.SenderID, partition, message.Sequence)
	}
	return message, nil
}

// validate applies the permission rules before any sequence is assigned.
func (r *Router) validate(cmd domain.SendMessageCommand) error {
	if r.membership.IsBanned(domain.BanGlobal, cmd.SenderID, "") {
		return fmt.Errorf("sender %s is banned: %w", cmd.SenderID, errors.ErrPermission)
	}

	switch cmd.ChatType {
	case domain.ChatPrivate:
		target := domain.UserID(cmd.TargetID)
		exists, err := r.users.Exists(cmd.TargetID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("user %s: %w", cmd.TargetID, errors.ErrNotFound)
		}
		if r.membership.IsBanned(domain.BanGlobal, target, "") {
			return fmt.Errorf("target %s is banned: %w", target, errors.ErrPermission)
		}
		return nil

	case domain.ChatGroup:
		groupID := domain.GroupID(cmd.TargetID)
		if _, err := r.membership.MembersOf(groupID); err != nil {
			return err
		}
		if !r.membership.IsMember(groupID, cmd.SenderID) {
			return fmt.Errorf("sender %s not in group %s: %w", cmd.SenderID, groupID, errors.ErrPermission)
		}
		if r.membership.IsBanned(domain.BanGroup, cmd.SenderID, groupID) {
			return fmt.Errorf("sender %s banned from group %s: %w", cmd.SenderID, groupID, errors.ErrPermission)
		}
		return nil

	default:
		return fmt.Errorf("chat type %q: %w", cmd.ChatType, errors.ErrNotFound)
	}
}

func (r *Router) resolveRecipients(cmd domain.SendMessageCommand) ([]domain.UserID, error) {
	switch cmd.ChatType {
	case domain.ChatPrivate:
		return []domain.UserID{domain.UserID(cmd.TargetID)}, nil
	default:
		members, err := r.membership.MembersOf(domain.GroupID(cmd.TargetID))
		if err != nil {
			return nil, err
		}
		return lo.Without(members, cmd.SenderID), nil
	}
}

// pushToUser delivers one message to every live session of a recipient.
// Recipients with zero active sessions are skipped, delivery is implicit
// on their next replay. Push failures toward other sessions are never
// surfaced to the sender. Each session's cursor advances only when that
// session accepted the push: one device failing must not let another
// device's acceptance hide the message from it.
func (r *Router) pushToUser(ctx context.Context, recipient domain.UserID, message domain.Message) {
	partition := message.Partition()
	for _, connID := range r.presence.ActiveSessionsOf(recipient) {
		sink, ok := r.sinks.LiveSink(connID, partition)
		if !ok {
			continue
		}
		pushCtx, cancel := context.WithTimeout(ctx, r.pushTimeout)
		err := sink.Consume(pushCtx, event.MessageDelivered{Message: message})
		cancel()
		if err != nil {
			// Dead or saturated connection, replay covers it later
			r.monitoring.IncrDroppedPush()
			continue
		}
		r.cursors.Advance(connID, recipient, partition, message.Sequence)
	}
}

// Attach wires a fresh session into delivery: presence registration, one
// presence transition at most, then per-partition replay before the
// session goes live for new fan-out. The replay of each partition runs
// under that partition's router lock, so no live push can interleave.
func (r *Router) Attach(ctx context.Context, session domain.Session, sink contract.EventSink) error {
	r.sinks.Subscribe(session.ConnectionID, sink)

	transition, err := r.presence.AddSession(session)
	if err != nil {
		r.sinks.Unsubscribe(session.ConnectionID)
		return err
	}
	r.monitoring.ConnectionOpened()
	r.emitTransition(session.UserID, transition)

	for _, partition := range r.visiblePartitions(session.UserID) {
		if err := r.replayAndGoLive(ctx, session, partition, sink); err != nil {
			r.Detach(session)
			return err
		}
	}
	return nil
}

// Detach tears the session down synchronously. Any in-flight send from it
// still completes, only the push toward the dead sink is discarded.
func (r *Router) Detach(session domain.Session) {
	r.sinks.Unsubscribe(session.ConnectionID)

	_, transition, err := r.presence.RemoveSession(session.ConnectionID)
	if err != nil {
		// Already removed, nothing to report
		return
	}
	r.cursors.DropSession(session.ConnectionID)
	r.monitoring.ConnectionClosed()
	r.emitTransition(session.UserID, transition)
}

// JoinPartition adds live fan-out of a group partition to the session,
// replaying the backlog first.
func (r *Router) JoinPartition(ctx context.Context, session domain.Session, groupID domain.GroupID) error {
	if _, err := r.membership.MembersOf(groupID); err != nil {
		return err
	}
	if !r.membership.IsMember(groupID, session.UserID) {
		return fmt.Errorf("user %s not in group %s: %w", session.UserID, groupID, errors.ErrPermission)
	}

	sink, ok := r.sinks.SinkOf(session.ConnectionID)
	if !ok {
		return fmt.Errorf("connection %s: %w", session.ConnectionID, errors.ErrTransport)
	}
	return r.replayAndGoLive(ctx, session, domain.GroupPartition(groupID), sink)
}

// LeavePartition stops live fan-out of a group partition for the session.
// The delivery cursor is kept, replay stays available up to it.
func (r *Router) LeavePartition(session domain.Session, groupID domain.GroupID) {
	r.sinks.UnmarkLive(session.ConnectionID, domain.GroupPartition(groupID))
}

// History replays persisted messages toward the caller. Current members
// read the whole range; a user who left or was removed from a group can
// still read up to the highest sequence ever delivered to them, never
// past it.
func (r *Router) History(ctx context.Context, cmd domain.ReplayCommand, fn func(domain.Message) error) error {
	partition := cmd.Partition()

	limit := uint64(0)
	restricted := false
	switch {
	case cmd.ChatType == domain.ChatPrivate && cmd.TargetID == string(cmd.UserID):
		// Own private partition, unrestricted
	case cmd.ChatType == domain.ChatGroup && r.membership.IsMember(domain.GroupID(cmd.TargetID), cmd.UserID):
		// Current member, unrestricted
	default:
		restricted = true
		limit = r.cursors.DeliveredHighWater(cmd.UserID, partition)
		if cmd.AfterSequence >= limit {
			return nil
		}
	}

	return r.messages.Replay(partition, cmd.AfterSequence, func(m domain.Message) error {
		if restricted && m.Sequence > limit {
			return errors.ErrStopReplay
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		return fn(m)
	})
}

// KickUser revokes every active session of a user, used when a global ban
// lands. The gateways close their streams upon receiving the event.
func (r *Router) KickUser(ctx context.Context, userID domain.UserID, reason string) {
	revoked := event.SessionRevoked{UserID: userID, Reason: reason, At: time.Now().UTC()}
	for _, connID := range r.presence.ActiveSessionsOf(userID) {
		sink, ok := r.sinks.SinkOf(connID)
		if !ok {
			continue
		}
		pushCtx, cancel := context.WithTimeout(ctx, r.pushTimeout)
		if err := sink.Consume(pushCtx, revoked); err != nil {
			r.log.Warn("revocation push failed", "connection", connID, "error", err)
		}
		cancel()
	}
}

// InvalidatePartition drops cursors and liveness for a deleted group, so
// pending replays for it can never resurface.
func (r *Router) InvalidatePartition(groupID domain.GroupID) {
	partition := domain.GroupPartition(groupID)
	r.cursors.DropPartition(partition)
	r.sinks.DropPartition(partition)
}

func (r *Router) visiblePartitions(userID domain.UserID) []domain.Partition {
	partitions := []domain.Partition{domain.PrivatePartition(userID)}
	for _, groupID := range r.membership.GroupsOf(userID) {
		partitions = append(partitions, domain.GroupPartition(groupID))
	}
	return partitions
}

// replayAndGoLive is the handover point between replay and live fan-out.
// Holding the partition lock blocks concurrent sends to that partition,
// so the cursor observed here stays exact until the session is live.
func (r *Router) replayAndGoLive(ctx context.Context, session domain.Session, partition domain.Partition, sink contract.EventSink) error {
	lock := r.partitionLock(partition)
	lock.Lock()
	defer lock.Unlock()

	after := r.cursors.Get(session.ConnectionID, partition)
	err := r.messages.Replay(partition, after, func(m domain.Message) error {
		if err := sink.Consume(ctx, event.MessageDelivered{Message: m, Replayed: true}); err != nil {
			return err
		}
		r.cursors.Advance(session.ConnectionID, session.UserID, partition, m.Sequence)
		r.monitoring.IncrReplayed()
		return nil
	})
	if err != nil {
		return err
	}

	r.sinks.MarkLive(session.ConnectionID, partition)
	return nil
}

func (r *Router) emitTransition(userID domain.UserID, transition contract.Transition) {
	if transition == contract.TransitionNone {
		return
	}
	evt := event.PresenceChanged{
		UserID: userID,
		Online: transition == contract.TransitionOnline,
		At:     time.Now().UTC(),
	}
	select {
	case r.events <- evt:
	default:
		r.log.Warn("presence event channel full, dropping transition", "user", userID)
	}
}

func (r *Router) partitionLock(p domain.Partition) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := p.Key()
	lock, ok := r.partitions[key]
	if !ok {
		lock = &sync.Mutex{}
		r.partitions[key] = lock
	}
	return lock
}
