package runtime

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/membership"
	"chat-relay/moderation"
	"chat-relay/observability"
	"chat-relay/presence"
	"chat-relay/projection"
	"chat-relay/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// captureSink records everything pushed to it, never blocking.
type captureSink struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (s *captureSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *captureSink) deliveredSequences() []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []uint64
	for _, e := range s.events {
		if delivered, ok := e.(event.MessageDelivered); ok {
			out = append(out, delivered.Message.Sequence)
		}
	}
	return out
}

// brokenSink refuses every push, standing in for a saturated or dying
// connection whose stream no longer drains.
type brokenSink struct{}

func (brokenSink) Consume(context.Context, event.DomainEvent) error {
	return errors.ErrTransport
}

type fakeDirectory map[string]bool

func (d fakeDirectory) Exists(userID string) (bool, error) { return d[userID], nil }

type routerFixture struct {
	router     *Router
	presence   *presence.Registry
	membership *membership.Index
	messages   *repositories.MessageLog
	cursors    *projection.Cursors
	users      fakeDirectory
}

func newFixture(t *testing.T) *routerFixture {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	moderator, err := moderation.NewModerator([]string{"spam"}, '*')
	require.NoError(t, err)

	f := &routerFixture{
		presence:   presence.NewRegistry(),
		membership: membership.NewIndex(),
		messages:   repositories.NewMessageLog(db, slog.Default()),
		cursors:    projection.NewCursors(),
		users:      fakeDirectory{"alice": true, "bob": true, "carol": true, "mallory": true},
	}
	f.router = NewRouter(
		slog.Default(),
		f.presence,
		f.membership,
		f.messages,
		f.users,
		NewSinkRegistry(),
		f.cursors,
		moderator,
		observability.NewMonitoring(),
		16,
		100*time.Millisecond,
	)
	return f
}

func (f *routerFixture) attach(t *testing.T, userID string) (domain.Session, *captureSink) {
	t.Helper()
	sink := &captureSink{}
	return f.attachWith(t, userID, sink), sink
}

func (f *routerFixture) attachWith(t *testing.T, userID string, sink contract.EventSink) domain.Session {
	t.Helper()
	session := domain.Session{
		ConnectionID:  domain.ConnectionID(uuid.NewString()),
		UserID:        domain.UserID(userID),
		EstablishedAt: time.Now().UTC(),
	}
	require.NoError(t, f.router.Attach(context.Background(), session, sink))
	return session
}

func privateSend(sender, target, content string) domain.SendMessageCommand {
	return domain.SendMessageCommand{
		SenderID: domain.UserID(sender),
		ChatType: domain.ChatPrivate,
		TargetID: target,
		Content:  content,
	}
}

func TestRouter_Private_Send_Reaches_Active_Session(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	_, bobSink := f.attach(t, "bob")

	// When alice sends to bob
	message, err := f.router.Send(context.Background(), privateSend("alice", "bob", "hello"))

	// Then the sender gets the persisted echo synchronously
	req.NoError(err)
	req.Equal(uint64(1), message.Sequence)
	req.Equal("hello", message.Content)

	// And bob's session received exactly one live push
	req.Equal([]uint64{1}, bobSink.deliveredSequences())
}

func TestRouter_Unknown_Target_Is_NotFound(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	_, err := f.router.Send(context.Background(), privateSend("alice", "ghost", "hi"))
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestRouter_Global_Ban_Blocks_Private_Both_Directions(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	req.NoError(f.membership.OnBan(domain.Ban{Scope: domain.BanGlobal, UserID: "mallory", BannedBy: "ops"}))

	// Banned user can neither send nor be sent to
	_, err := f.router.Send(context.Background(), privateSend("mallory", "bob", "hi"))
	req.ErrorIs(err, errors.ErrPermission)

	_, err = f.router.Send(context.Background(), privateSend("alice", "mallory", "hi"))
	req.ErrorIs(err, errors.ErrPermission)

	// Rejection happened before any sequence was assigned
	last, err := f.messages.LastSequence(domain.PrivatePartition("bob"))
	req.NoError(err)
	req.Zero(last)
	last, err = f.messages.LastSequence(domain.PrivatePartition("mallory"))
	req.NoError(err)
	req.Zero(last)
}

func TestRouter_Offline_Recipient_Replays_On_Reconnect(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// Given bob is offline while alice sends three messages
	for _, content := range []string{"one", "two", "three"} {
		_, err := f.router.Send(context.Background(), privateSend("alice", "bob", content))
		req.NoError(err)
	}

	// When bob reconnects
	_, bobSink := f.attach(t, "bob")

	// Then he replays exactly sequences 1,2,3 in order
	req.Equal([]uint64{1, 2, 3}, bobSink.deliveredSequences())

	// And a subsequent live message arrives once, with no duplicate
	_, err := f.router.Send(context.Background(), privateSend("alice", "bob", "four"))
	req.NoError(err)
	req.Equal([]uint64{1, 2, 3, 4}, bobSink.deliveredSequences())
}

func TestRouter_Group_Send_Fans_Out_To_Members_Only(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	req.NoError(f.membership.OnCreate("g1", "alice", domain.LastAdminTransfer))
	req.NoError(f.membership.OnJoin("g1", "bob"))
	req.NoError(f.membership.OnApprove("g1", "bob"))

	_, aliceSink := f.attach(t, "alice")
	_, bobSink := f.attach(t, "bob")
	_, carolSink := f.attach(t, "carol")

	message, err := f.router.Send(context.Background(), domain.SendMessageCommand{
		SenderID: "alice", ChatType: domain.ChatGroup, TargetID: "g1", Content: "hi group",
	})
	req.NoError(err)
	req.Equal(uint64(1), message.Sequence)

	// Member receives the push, the sender only gets the sync echo,
	// outsiders see nothing
	req.Equal([]uint64{1}, bobSink.deliveredSequences())
	req.Empty(aliceSink.deliveredSequences())
	req.Empty(carolSink.deliveredSequences())
}

func TestRouter_NonMember_Cannot_Send_To_Group(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	req.NoError(f.membership.OnCreate("g1", "alice", domain.LastAdminTransfer))

	_, err := f.router.Send(context.Background(), domain.SendMessageCommand{
		SenderID: "carol", ChatType: domain.ChatGroup, TargetID: "g1", Content: "let me in",
	})
	req.ErrorIs(err, errors.ErrPermission)

	_, err = f.router.Send(context.Background(), domain.SendMessageCommand{
		SenderID: "carol", ChatType: domain.ChatGroup, TargetID: "nope", Content: "hi",
	})
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestRouter_Removed_Member_Keeps_History_Up_To_Cursor(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	req.NoError(f.membership.OnCreate("g1", "alice", domain.LastAdminTransfer))
	req.NoError(f.membership.OnJoin("g1", "bob"))
	req.NoError(f.membership.OnApprove("g1", "bob"))

	_, bobSink := f.attach(t, "bob")

	send := func(content string) {
		_, err := f.router.Send(context.Background(), domain.SendMessageCommand{
			SenderID: "alice", ChatType: domain.ChatGroup, TargetID: "g1", Content: content,
		})
		req.NoError(err)
	}

	send("before-1")
	send("before-2")
	req.Equal([]uint64{1, 2}, bobSink.deliveredSequences())

	// When bob is banned out of the group
	req.NoError(f.membership.OnBan(domain.Ban{Scope: domain.BanGroup, UserID: "bob", GroupID: "g1", BannedBy: "alice"}))

	// Then new traffic no longer reaches him
	send("after")
	req.Equal([]uint64{1, 2}, bobSink.deliveredSequences())

	// And he cannot send anymore
	_, err := f.router.Send(context.Background(), domain.SendMessageCommand{
		SenderID: "bob", ChatType: domain.ChatGroup, TargetID: "g1", Content: "hello?",
	})
	req.ErrorIs(err, errors.ErrPermission)

	// But history up to his old cursor stays readable, nothing past it
	var replayed []uint64
	req.NoError(f.router.History(context.Background(), domain.ReplayCommand{
		UserID: "bob", ChatType: domain.ChatGroup, TargetID: "g1",
	}, func(m domain.Message) error {
		replayed = append(replayed, m.Sequence)
		return nil
	}))
	req.Equal([]uint64{1, 2}, replayed)
}

func TestRouter_Moderation_Censors_Before_Persistence(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	message, err := f.router.Send(context.Background(), privateSend("alice", "bob", "pure spam here"))
	req.NoError(err)
	req.Equal("pure **** here", message.Content)

	// The stored copy is the sanitized one
	var fromLog []domain.Message
	req.NoError(f.messages.Replay(domain.PrivatePartition("bob"), 0, func(m domain.Message) error {
		fromLog = append(fromLog, m)
		return nil
	}))
	req.Len(fromLog, 1)
	req.Equal("pure **** here", fromLog[0].Content)
}

func TestRouter_Detach_Stops_Delivery(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	session, bobSink := f.attach(t, "bob")

	_, err := f.router.Send(context.Background(), privateSend("alice", "bob", "one"))
	req.NoError(err)

	f.router.Detach(session)
	req.False(f.presence.IsOnline("bob"))

	// Fan-out toward the gone session is discarded, not retried
	_, err = f.router.Send(context.Background(), privateSend("alice", "bob", "two"))
	req.NoError(err)
	req.Equal([]uint64{1}, bobSink.deliveredSequences())

	// A fresh session starts from its own empty cursor and replays the
	// whole backlog in order, covering the discarded push
	_, bobSink = f.attach(t, "bob")
	req.Equal([]uint64{1, 2}, bobSink.deliveredSequences())
}

// A push failing toward one device must never be masked by another
// device of the same user accepting it: cursors are per session, so the
// failed device recovers the message on its next replay.
func TestRouter_Second_Device_Recovers_Failed_Push(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// Given bob on two devices, one of them no longer draining
	_, healthySink := f.attach(t, "bob")
	brokenSession := f.attachWith(t, "bob", brokenSink{})

	// When alice sends while the second device rejects the push
	_, err := f.router.Send(context.Background(), privateSend("alice", "bob", "one"))
	req.NoError(err)
	req.Equal([]uint64{1}, healthySink.deliveredSequences())

	// And the broken device drops and more traffic flows
	f.router.Detach(brokenSession)
	_, err = f.router.Send(context.Background(), privateSend("alice", "bob", "two"))
	req.NoError(err)

	// Then the recovered device replays the missed sequence, in order,
	// instead of observing 2 without ever observing 1
	_, recoveredSink := f.attach(t, "bob")
	req.Equal([]uint64{1, 2}, recoveredSink.deliveredSequences())

	// And the healthy device saw everything exactly once
	req.Equal([]uint64{1, 2}, healthySink.deliveredSequences())
}

func TestRouter_Presence_Transitions_Are_Emitted_Once(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	first, _ := f.attach(t, "bob")
	second, _ := f.attach(t, "bob")

	// Only the first attach crossed the offline->online boundary
	evt := <-f.router.Events()
	transition, ok := evt.(event.PresenceChanged)
	req.True(ok)
	req.True(transition.Online)
	req.Empty(f.router.Events())

	f.router.Detach(first)
	req.Empty(f.router.Events())

	f.router.Detach(second)
	evt = <-f.router.Events()
	transition, ok = evt.(event.PresenceChanged)
	req.True(ok)
	req.False(transition.Online)
}

func TestRouter_Invalidated_Partition_Has_No_History(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	req.NoError(f.membership.OnCreate("g1", "alice", domain.LastAdminDelete))
	req.NoError(f.membership.OnJoin("g1", "bob"))
	req.NoError(f.membership.OnApprove("g1", "bob"))

	_, bobSink := f.attach(t, "bob")
	_, err := f.router.Send(context.Background(), domain.SendMessageCommand{
		SenderID: "alice", ChatType: domain.ChatGroup, TargetID: "g1", Content: "doomed",
	})
	req.NoError(err)
	req.Equal([]uint64{1}, bobSink.deliveredSequences())

	// When the sole admin leaves and the group resolves to delete
	outcome, err := f.membership.OnLeave("g1", "alice")
	req.NoError(err)
	req.True(outcome.Deleted)
	f.router.InvalidatePartition("g1")

	// Then pending replays for the partition are gone
	var replayed []uint64
	req.NoError(f.router.History(context.Background(), domain.ReplayCommand{
		UserID: "bob", ChatType: domain.ChatGroup, TargetID: "g1",
	}, func(m domain.Message) error {
		replayed = append(replayed, m.Sequence)
		return nil
	}))
	req.Empty(replayed)
}

func TestRouter_KickUser_Revokes_All_Sessions(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	_, firstSink := f.attach(t, "mallory")
	_, secondSink := f.attach(t, "mallory")

	f.router.KickUser(context.Background(), "mallory", "global ban")

	for _, sink := range []*captureSink{firstSink, secondSink} {
		sink.mu.Lock()
		var revoked bool
		for _, e := range sink.events {
			if _, ok := e.(event.SessionRevoked); ok {
				revoked = true
			}
		}
		sink.mu.Unlock()
		req.True(revoked)
	}
}

// Concurrent sends to one partition while a session attaches must never
// show the newcomer a sequence before its predecessor.
func TestRouter_Attach_During_Traffic_Keeps_Order(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				_, err := f.router.Send(context.Background(), privateSend("alice", "bob", "burst"))
				require.NoError(t, err)
			}
		}
	}()

	time.Sleep(10 * time.Millisecond)
	_, bobSink := f.attach(t, "bob")
	time.Sleep(10 * time.Millisecond)
	close(stop)
	wg.Wait()

	sequences := bobSink.deliveredSequences()
	req.NotEmpty(sequences)
	for i := 1; i < len(sequences); i++ {
		req.Equal(sequences[i-1]+1, sequences[i])
	}
}
