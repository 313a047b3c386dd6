package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	pbaccount "chat-relay/proto/account"
	pbchat "chat-relay/proto/chat"
)

type testPrivateDeliverySuite struct {
	BaseGrpcSuite
}

func TestPrivateDeliverySuite(t *testing.T) {
	suite.Run(t, &testPrivateDeliverySuite{})
}

// Registers two users, has the recipient go offline during part of the
// traffic, and verifies that reconnecting replays the backlog in
// sequence order before live delivery resumes.
func (s *testPrivateDeliverySuite) TestOfflineReplayFlow() {
	tag := uuid.New().String()[:8]
	var aliceToken, bobToken, bobID string

	s.Run("Step 1: Register both participants", func() {
		s.WithAuth("Register sender and recipient", func(ctx context.Context, client pbaccount.AuthServiceClient) {
			resp, err := client.Register(ctx, &pbaccount.RegisterRequest{
				Email:       fmt.Sprintf("alice-%s@example.com", tag),
				DisplayName: "Alice",
				Password:    "ComplexPass123!",
			})
			s.Require().NoError(err)
			aliceToken = resp.Token

			resp, err = client.Register(ctx, &pbaccount.RegisterRequest{
				Email:       fmt.Sprintf("bob-%s@example.com", tag),
				DisplayName: "Bob",
				Password:    "ComplexPass123!",
			})
			s.Require().NoError(err)
			bobToken = resp.Token
			bobID = resp.UserId
		})
	})

	s.Run("Step 2: Send while recipient is offline", func() {
		s.WithChat("Alice sends three messages", aliceToken, func(ctx context.Context, client pbchat.ChatServiceClient) {
			for i := 1; i <= 3; i++ {
				resp, err := client.SendMessage(ctx, &pbchat.SendMessageRequest{
					ChatType: "private",
					TargetId: bobID,
					Content:  fmt.Sprintf("offline-%d", i),
				})
				s.Require().NoError(err)
				s.Require().Equal(uint64(i), resp.Message.Sequence, "Echo must carry the assigned sequence")
			}
		})
	})

	s.Run("Step 3: Reconnect and verify replay order", func() {
		s.WithChat("Bob connects and drains his stream", bobToken, func(ctx context.Context, client pbchat.ChatServiceClient) {
			stream, err := client.Connect(ctx, &pbchat.ConnectRequest{})
			s.Require().NoError(err)

			// Protocol check: the session event must come first
			first, err := stream.Recv()
			s.Require().NoError(err)
			session := first.GetSession()
			s.Require().NotNil(session, "First event must be the session handshake")
			s.Require().NotEmpty(session.ConnectionId)

			var sequences []uint64
			for len(sequences) < 3 {
				evt, err := stream.Recv()
				s.Require().NoError(err)
				if m := evt.GetMessage(); m != nil {
					s.Require().True(m.Replayed, "Backlog must arrive flagged as replayed")
					sequences = append(sequences, m.Sequence)
				}
			}
			s.Require().Equal([]uint64{1, 2, 3}, sequences, "Replay must be gapless and ordered")

			// A live message after the handover must arrive exactly once
			s.WithChat("Alice sends a live message", aliceToken, func(ctx context.Context, sender pbchat.ChatServiceClient) {
				_, err := sender.SendMessage(ctx, &pbchat.SendMessageRequest{
					ChatType: "private",
					TargetId: bobID,
					Content:  "live-4",
				})
				s.Require().NoError(err)
			})

			deadline := time.After(10 * time.Second)
			for {
				select {
				case <-deadline:
					s.FailNow("Live message never arrived on the stream")
				default:
				}
				evt, err := stream.Recv()
				s.Require().NoError(err)
				if m := evt.GetMessage(); m != nil {
					s.Require().Equal(uint64(4), m.Sequence, "No duplicate of the replayed backlog allowed")
					s.Require().False(m.Replayed)
					return
				}
			}
		})
	})
}
