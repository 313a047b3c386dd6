package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chat-relay/auth"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	pb "chat-relay/proto/chat"
	"chat-relay/services"
	"chat-relay/sink"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// SessionLookup resolves a connection id back to its session, so unary
// feed operations can be tied to an open Connect stream.
type SessionLookup interface {
	SessionOf(connID domain.ConnectionID) (domain.Session, bool)
}

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	chatService          services.IChatService
	validator            auth.Validator
	sessions             SessionLookup
	connectionBufferSize int
	log                  *slog.Logger
}

func NewChatServer(log *slog.Logger, chatService services.IChatService, validator auth.Validator,
	sessions SessionLookup, connectionBufferSize int) *ChatServer {
	return &ChatServer{
		chatService:          chatService,
		validator:            validator,
		sessions:             sessions,
		connectionBufferSize: connectionBufferSize,
		log:                  log,
	}
}

// SendMessage routes one message and returns the persisted echo in the
// same call. Recipients get theirs through the Connect stream; the
// sender never receives a second copy there.
func (s *ChatServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.ErrAuth)
	}

	command := domain.SendMessageCommand{
		SenderID: domain.UserID(userID),
		ChatType: domain.ChatType(req.ChatType),
		TargetID: req.TargetId,
		Content:  req.Content,
	}
	message, err := s.chatService.Send(ctx, command)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SendMessageResponse{Message: lo.ToPtr(toMessageEvent(message, false))}, nil
}

// Connect establishes the long-lived delivery stream for one connection.
// The credential is validated during this handshake, not by the unary
// interceptor. The first event pushed is always the SessionEvent, so the
// client learns its connection id before anything replays.
// This method blocks until the client disconnects, the session is
// revoked, or a network error occurs.
func (s *ChatServer) Connect(_ *pb.ConnectRequest, stream pb.ChatService_ConnectServer) error {
	ctx := stream.Context()

	credential, ok := auth.BearerFromContext(ctx)
	if !ok {
		return errors.MapToGRPCError(errors.ErrAuth)
	}
	identity, err := s.validator.Validate(credential)
	if err != nil {
		return errors.MapToGRPCError(err)
	}

	session := domain.Session{
		ConnectionID:  domain.ConnectionID(uuid.NewString()),
		UserID:        identity.UserID,
		EstablishedAt: time.Now().UTC(),
	}
	connSink := sink.NewGrpcSink(s.connectionBufferSize)
	if err = connSink.Consume(ctx, event.SessionEstablished{Session: session}); err != nil {
		return errors.MapToGRPCError(errors.ErrTransport)
	}

	// Attach runs concurrently with the drain loop below: replay applies
	// backpressure through the sink channel, so draining must already be
	// underway while Attach is still replaying.
	attachDone := make(chan error, 1)
	go func() {
		attachDone <- s.chatService.Attach(ctx, session, connSink)
	}()
	defer s.chatService.Detach(session)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Client disconnected", "user_id", session.UserID, "connection_id", session.ConnectionID)
			return nil
		case err = <-attachDone:
			if err != nil {
				s.log.Warn("Attach failed", "user_id", session.UserID, "error", err)
				return errors.MapToGRPCError(err)
			}
			attachDone = nil // fully attached, keep draining
		case evt := <-connSink.Events:
			closing, err := s.push(stream, evt)
			if err != nil {
				s.log.Error("failed to push event to stream",
					"user_id", session.UserID,
					"connection_id", session.ConnectionID,
					"error", err)
				return err
			}
			if closing {
				s.log.Info("Session revoked, closing stream", "user_id", session.UserID)
				return nil
			}
		}
	}
}

// push converts one domain event to its wire shape and sends it. The
// returned flag tells the caller to close the stream after a revocation.
func (s *ChatServer) push(stream pb.ChatService_ConnectServer, evt event.DomainEvent) (bool, error) {
	switch e := evt.(type) {
	case event.SessionEstablished:
		return false, stream.Send(&pb.ChatEvent{Event: &pb.ChatEvent_Session{Session: &pb.SessionEvent{
			ConnectionId:  string(e.Session.ConnectionID),
			EstablishedAt: timestamppb.New(e.Session.EstablishedAt),
		}}})
	case event.MessageDelivered:
		return false, stream.Send(&pb.ChatEvent{Event: &pb.ChatEvent_Message{
			Message: lo.ToPtr(toMessageEvent(e.Message, e.Replayed)),
		}})
	case event.PresenceChanged:
		return false, stream.Send(&pb.ChatEvent{Event: &pb.ChatEvent_Presence{Presence: &pb.PresenceEvent{
			UserId: string(e.UserID),
			Online: e.Online,
			At:     timestamppb.New(e.At),
		}}})
	case event.SessionRevoked:
		err := stream.Send(&pb.ChatEvent{Event: &pb.ChatEvent_Revoked{Revoked: &pb.SessionRevokedEvent{
			Reason: e.Reason,
			At:     timestamppb.New(e.At),
		}}})
		return true, err
	default:
		// Unknown event types are dropped silently
		return false, nil
	}
}

// JoinGroupFeed subscribes an open connection to a group partition,
// replaying the backlog through its Connect stream first.
func (s *ChatServer) JoinGroupFeed(ctx context.Context, req *pb.GroupFeedRequest) (*pb.GroupFeedResponse, error) {
	session, err := s.ownedSession(ctx, req.ConnectionId)
	if err != nil {
		return nil, err
	}
	if err = s.chatService.JoinGroupFeed(ctx, session, domain.GroupID(req.GroupId)); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GroupFeedResponse{}, nil
}

// LeaveGroupFeed stops live fan-out of a group for the connection. The
// delivery cursor survives, history stays readable up to it.
func (s *ChatServer) LeaveGroupFeed(ctx context.Context, req *pb.GroupFeedRequest) (*pb.GroupFeedResponse, error) {
	session, err := s.ownedSession(ctx, req.ConnectionId)
	if err != nil {
		return nil, err
	}
	s.chatService.LeaveGroupFeed(session, domain.GroupID(req.GroupId))
	return &pb.GroupFeedResponse{}, nil
}

// GetHistory reads persisted messages after a sequence cursor.
func (s *ChatServer) GetHistory(ctx context.Context, req *pb.HistoryRequest) (*pb.HistoryResponse, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.ErrAuth)
	}

	command := domain.ReplayCommand{
		UserID:        domain.UserID(userID),
		ChatType:      domain.ChatType(req.ChatType),
		TargetID:      req.TargetId,
		AfterSequence: req.AfterSequence,
	}
	messages, err := s.chatService.History(ctx, command, req.Limit)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	response := &pb.HistoryResponse{Messages: make([]*pb.MessageEvent, 0, len(messages))}
	for _, message := range messages {
		response.Messages = append(response.Messages, lo.ToPtr(toMessageEvent(message, true)))
	}
	return response, nil
}

// ownedSession checks that the connection id belongs to the caller, so a
// user cannot drive feeds of somebody else's stream.
func (s *ChatServer) ownedSession(ctx context.Context, connectionID string) (domain.Session, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return domain.Session{}, errors.MapToGRPCError(errors.ErrAuth)
	}
	session, ok := s.sessions.SessionOf(domain.ConnectionID(connectionID))
	if !ok || session.UserID != domain.UserID(userID) {
		return domain.Session{}, errors.MapToGRPCError(
			fmt.Errorf("connection %s: %w", connectionID, errors.ErrNotFound))
	}
	return session, nil
}

func toMessageEvent(message domain.Message, replayed bool) pb.MessageEvent {
	return pb.MessageEvent{
		MessageId: message.ID.String(),
		ChatType:  string(message.ChatType),
		TargetId:  message.TargetID,
		SenderId:  string(message.SenderID),
		Content:   message.Content,
		Sequence:  message.Sequence,
		CreatedAt: timestamppb.New(message.CreatedAt),
		Replayed:  replayed,
	}
}
