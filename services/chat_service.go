package services

import (
	"context"

	"chat-relay/auth"
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
)

type IChatService interface {
	Send(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error)
	Attach(ctx context.Context, session domain.Session, sink contract.EventSink) error
	Detach(session domain.Session)
	JoinGroupFeed(ctx context.Context, session domain.Session, groupID domain.GroupID) error
	LeaveGroupFeed(session domain.Session, groupID domain.GroupID)
	History(ctx context.Context, cmd domain.ReplayCommand, limit uint32) ([]domain.Message, error)
}

// ChatService is the thin application layer between the gRPC surface and
// the router. Input validation happens here, routing rules stay in the
// router.
type ChatService struct {
	router contract.IRouter
}

func NewChatService(router contract.IRouter) *ChatService {
	return &ChatService{router: router}
}

func (s *ChatService) Send(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error) {
	sendReq := auth.SendRequest{
		ChatType: string(cmd.ChatType),
		TargetID: cmd.TargetID,
		Content:  cmd.Content,
	}
	if err := auth.ValidateSend(sendReq); err != nil {
		return domain.Message{}, errors.ErrInvalidArgument
	}
	return s.router.Send(ctx, cmd)
}

func (s *ChatService) Attach(ctx context.Context, session domain.Session, sink contract.EventSink) error {
	return s.router.Attach(ctx, session, sink)
}

func (s *ChatService) Detach(session domain.Session) {
	s.router.Detach(session)
}

func (s *ChatService) JoinGroupFeed(ctx context.Context, session domain.Session, groupID domain.GroupID) error {
	return s.router.JoinPartition(ctx, session, groupID)
}

func (s *ChatService) LeaveGroupFeed(session domain.Session, groupID domain.GroupID) {
	s.router.LeavePartition(session, groupID)
}

// History collects up to limit messages after the cursor, 0 meaning all.
func (s *ChatService) History(ctx context.Context, cmd domain.ReplayCommand, limit uint32) ([]domain.Message, error) {
	var out []domain.Message
	err := s.router.History(ctx, cmd, func(m domain.Message) error {
		out = append(out, m)
		if limit > 0 && uint32(len(out)) >= limit {
			return errors.ErrStopReplay
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
