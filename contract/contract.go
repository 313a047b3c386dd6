//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"chat-relay/domain"
	"chat-relay/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is one consumer of routed events, usually the buffered
// channel behind a live connection stream.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IPresence is the registry of active sessions per user.
type IPresence interface {
	AddSession(s domain.Session) (Transition, error)
	RemoveSession(connID domain.ConnectionID) (domain.Session, Transition, error)
	IsOnline(userID domain.UserID) bool
	ActiveSessionsOf(userID domain.UserID) []domain.ConnectionID
}

// Transition reports an online/offline boundary crossing derived from
// session-count changes.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionOnline
	TransitionOffline
)

// IMembership answers "is user X allowed to address target Y" from the
// projected group/ban state.
type IMembership interface {
	IsMember(groupID domain.GroupID, userID domain.UserID) bool
	IsBanned(scope domain.BanScope, userID domain.UserID, groupID domain.GroupID) bool
	MembersOf(groupID domain.GroupID) ([]domain.UserID, error)
	GroupsOf(userID domain.UserID) []domain.GroupID
}

// IMessageLog is the append-only per-partition message store.
type IMessageLog interface {
	Append(partition domain.Partition, senderID domain.UserID, content string) (domain.Message, error)
	Replay(partition domain.Partition, afterSequence uint64, fn func(domain.Message) error) error
	LastSequence(partition domain.Partition) (uint64, error)
}

// IRouter orchestrates a send request end to end and owns the
// replay-then-live attachment of sessions.
type IRouter interface {
	Send(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error)
	Attach(ctx context.Context, session domain.Session, sink EventSink) error
	Detach(session domain.Session)
	JoinPartition(ctx context.Context, session domain.Session, groupID domain.GroupID) error
	LeavePartition(session domain.Session, groupID domain.GroupID)
	History(ctx context.Context, cmd domain.ReplayCommand, fn func(domain.Message) error) error
}
