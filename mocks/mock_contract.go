// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	contract "chat-relay/contract"
	domain "chat-relay/domain"
	event "chat-relay/domain/event"
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockISupervisor is a mock of ISupervisor interface.
type MockISupervisor struct {
	ctrl     *gomock.Controller
	recorder *MockISupervisorMockRecorder
	isgomock struct{}
}

// MockISupervisorMockRecorder is the mock recorder for MockISupervisor.
type MockISupervisorMockRecorder struct {
	mock *MockISupervisor
}

// NewMockISupervisor creates a new mock instance.
func NewMockISupervisor(ctrl *gomock.Controller) *MockISupervisor {
	mock := &MockISupervisor{ctrl: ctrl}
	mock.recorder = &MockISupervisorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockISupervisor) EXPECT() *MockISupervisorMockRecorder {
	return m.recorder
}

// Add mocks base method.
func (m *MockISupervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range worker {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Add", varargs...)
	ret0, _ := ret[0].(contract.ISupervisor)
	return ret0
}

// Add indicates an expected call of Add.
func (mr *MockISupervisorMockRecorder) Add(worker ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockISupervisor)(nil).Add), worker...)
}

// Run mocks base method.
func (m *MockISupervisor) Run(ctx context.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Run", ctx)
}

// Run indicates an expected call of Run.
func (mr *MockISupervisorMockRecorder) Run(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockISupervisor)(nil).Run), ctx)
}

// Start mocks base method.
func (m *MockISupervisor) Start(ctx context.Context, worker contract.Worker) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Start", ctx, worker)
}

// Start indicates an expected call of Start.
func (mr *MockISupervisorMockRecorder) Start(ctx, worker any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockISupervisor)(nil).Start), ctx, worker)
}

// Stop mocks base method.
func (m *MockISupervisor) Stop() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Stop")
}

// Stop indicates an expected call of Stop.
func (mr *MockISupervisorMockRecorder) Stop() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stop", reflect.TypeOf((*MockISupervisor)(nil).Stop))
}

// MockWorker is a mock of Worker interface.
type MockWorker struct {
	ctrl     *gomock.Controller
	recorder *MockWorkerMockRecorder
	isgomock struct{}
}

// MockWorkerMockRecorder is the mock recorder for MockWorker.
type MockWorkerMockRecorder struct {
	mock *MockWorker
}

// NewMockWorker creates a new mock instance.
func NewMockWorker(ctrl *gomock.Controller) *MockWorker {
	mock := &MockWorker{ctrl: ctrl}
	mock.recorder = &MockWorkerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWorker) EXPECT() *MockWorkerMockRecorder {
	return m.recorder
}

// Run mocks base method.
func (m *MockWorker) Run(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Run indicates an expected call of Run.
func (mr *MockWorkerMockRecorder) Run(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockWorker)(nil).Run), ctx)
}

// MockEventSink is a mock of EventSink interface.
type MockEventSink struct {
	ctrl     *gomock.Controller
	recorder *MockEventSinkMockRecorder
	isgomock struct{}
}

// MockEventSinkMockRecorder is the mock recorder for MockEventSink.
type MockEventSinkMockRecorder struct {
	mock *MockEventSink
}

// NewMockEventSink creates a new mock instance.
func NewMockEventSink(ctrl *gomock.Controller) *MockEventSink {
	mock := &MockEventSink{ctrl: ctrl}
	mock.recorder = &MockEventSinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventSink) EXPECT() *MockEventSinkMockRecorder {
	return m.recorder
}

// Consume mocks base method.
func (m *MockEventSink) Consume(ctx context.Context, e event.DomainEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Consume", ctx, e)
	ret0, _ := ret[0].(error)
	return ret0
}

// Consume indicates an expected call of Consume.
func (mr *MockEventSinkMockRecorder) Consume(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Consume", reflect.TypeOf((*MockEventSink)(nil).Consume), ctx, e)
}

// MockIPresence is a mock of IPresence interface.
type MockIPresence struct {
	ctrl     *gomock.Controller
	recorder *MockIPresenceMockRecorder
	isgomock struct{}
}

// MockIPresenceMockRecorder is the mock recorder for MockIPresence.
type MockIPresenceMockRecorder struct {
	mock *MockIPresence
}

// NewMockIPresence creates a new mock instance.
func NewMockIPresence(ctrl *gomock.Controller) *MockIPresence {
	mock := &MockIPresence{ctrl: ctrl}
	mock.recorder = &MockIPresenceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIPresence) EXPECT() *MockIPresenceMockRecorder {
	return m.recorder
}

// ActiveSessionsOf mocks base method.
func (m *MockIPresence) ActiveSessionsOf(userID domain.UserID) []domain.ConnectionID {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ActiveSessionsOf", userID)
	ret0, _ := ret[0].([]domain.ConnectionID)
	return ret0
}

// ActiveSessionsOf indicates an expected call of ActiveSessionsOf.
func (mr *MockIPresenceMockRecorder) ActiveSessionsOf(userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ActiveSessionsOf", reflect.TypeOf((*MockIPresence)(nil).ActiveSessionsOf), userID)
}

// AddSession mocks base method.
func (m *MockIPresence) AddSession(s domain.Session) (contract.Transition, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddSession", s)
	ret0, _ := ret[0].(contract.Transition)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddSession indicates an expected call of AddSession.
func (mr *MockIPresenceMockRecorder) AddSession(s any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddSession", reflect.TypeOf((*MockIPresence)(nil).AddSession), s)
}

// IsOnline mocks base method.
func (m *MockIPresence) IsOnline(userID domain.UserID) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsOnline", userID)
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsOnline indicates an expected call of IsOnline.
func (mr *MockIPresenceMockRecorder) IsOnline(userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsOnline", reflect.TypeOf((*MockIPresence)(nil).IsOnline), userID)
}

// RemoveSession mocks base method.
func (m *MockIPresence) RemoveSession(connID domain.ConnectionID) (domain.Session, contract.Transition, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveSession", connID)
	ret0, _ := ret[0].(domain.Session)
	ret1, _ := ret[1].(contract.Transition)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// RemoveSession indicates an expected call of RemoveSession.
func (mr *MockIPresenceMockRecorder) RemoveSession(connID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveSession", reflect.TypeOf((*MockIPresence)(nil).RemoveSession), connID)
}

// MockIMembership is a mock of IMembership interface.
type MockIMembership struct {
	ctrl     *gomock.Controller
	recorder *MockIMembershipMockRecorder
	isgomock struct{}
}

// MockIMembershipMockRecorder is the mock recorder for MockIMembership.
type MockIMembershipMockRecorder struct {
	mock *MockIMembership
}

// NewMockIMembership creates a new mock instance.
func NewMockIMembership(ctrl *gomock.Controller) *MockIMembership {
	mock := &MockIMembership{ctrl: ctrl}
	mock.recorder = &MockIMembershipMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIMembership) EXPECT() *MockIMembershipMockRecorder {
	return m.recorder
}

// GroupsOf mocks base method.
func (m *MockIMembership) GroupsOf(userID domain.UserID) []domain.GroupID {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GroupsOf", userID)
	ret0, _ := ret[0].([]domain.GroupID)
	return ret0
}

// GroupsOf indicates an expected call of GroupsOf.
func (mr *MockIMembershipMockRecorder) GroupsOf(userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GroupsOf", reflect.TypeOf((*MockIMembership)(nil).GroupsOf), userID)
}

// IsBanned mocks base method.
func (m *MockIMembership) IsBanned(scope domain.BanScope, userID domain.UserID, groupID domain.GroupID) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsBanned", scope, userID, groupID)
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsBanned indicates an expected call of IsBanned.
func (mr *MockIMembershipMockRecorder) IsBanned(scope, userID, groupID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsBanned", reflect.TypeOf((*MockIMembership)(nil).IsBanned), scope, userID, groupID)
}

// IsMember mocks base method.
func (m *MockIMembership) IsMember(groupID domain.GroupID, userID domain.UserID) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsMember", groupID, userID)
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsMember indicates an expected call of IsMember.
func (mr *MockIMembershipMockRecorder) IsMember(groupID, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsMember", reflect.TypeOf((*MockIMembership)(nil).IsMember), groupID, userID)
}

// MembersOf mocks base method.
func (m *MockIMembership) MembersOf(groupID domain.GroupID) ([]domain.UserID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MembersOf", groupID)
	ret0, _ := ret[0].([]domain.UserID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MembersOf indicates an expected call of MembersOf.
func (mr *MockIMembershipMockRecorder) MembersOf(groupID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MembersOf", reflect.TypeOf((*MockIMembership)(nil).MembersOf), groupID)
}

// MockIMessageLog is a mock of IMessageLog interface.
type MockIMessageLog struct {
	ctrl     *gomock.Controller
	recorder *MockIMessageLogMockRecorder
	isgomock struct{}
}

// MockIMessageLogMockRecorder is the mock recorder for MockIMessageLog.
type MockIMessageLogMockRecorder struct {
	mock *MockIMessageLog
}

// NewMockIMessageLog creates a new mock instance.
func NewMockIMessageLog(ctrl *gomock.Controller) *MockIMessageLog {
	mock := &MockIMessageLog{ctrl: ctrl}
	mock.recorder = &MockIMessageLogMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIMessageLog) EXPECT() *MockIMessageLogMockRecorder {
	return m.recorder
}

// Append mocks base method.
func (m *MockIMessageLog) Append(partition domain.Partition, senderID domain.UserID, content string) (domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Append", partition, senderID, content)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Append indicates an expected call of Append.
func (mr *MockIMessageLogMockRecorder) Append(partition, senderID, content any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Append", reflect.TypeOf((*MockIMessageLog)(nil).Append), partition, senderID, content)
}

// LastSequence mocks base method.
func (m *MockIMessageLog) LastSequence(partition domain.Partition) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LastSequence", partition)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LastSequence indicates an expected call of LastSequence.
func (mr *MockIMessageLogMockRecorder) LastSequence(partition any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LastSequence", reflect.TypeOf((*MockIMessageLog)(nil).LastSequence), partition)
}

// Replay mocks base method.
func (m *MockIMessageLog) Replay(partition domain.Partition, afterSequence uint64, fn func(domain.Message) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Replay", partition, afterSequence, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Replay indicates an expected call of Replay.
func (mr *MockIMessageLogMockRecorder) Replay(partition, afterSequence, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Replay", reflect.TypeOf((*MockIMessageLog)(nil).Replay), partition, afterSequence, fn)
}

// MockIRouter is a mock of IRouter interface.
type MockIRouter struct {
	ctrl     *gomock.Controller
	recorder *MockIRouterMockRecorder
	isgomock struct{}
}

// MockIRouterMockRecorder is the mock recorder for MockIRouter.
type MockIRouterMockRecorder struct {
	mock *MockIRouter
}

// NewMockIRouter creates a new mock instance.
func NewMockIRouter(ctrl *gomock.Controller) *MockIRouter {
	mock := &MockIRouter{ctrl: ctrl}
	mock.recorder = &MockIRouterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIRouter) EXPECT() *MockIRouterMockRecorder {
	return m.recorder
}

// Attach mocks base method.
func (m *MockIRouter) Attach(ctx context.Context, session domain.Session, sink contract.EventSink) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Attach", ctx, session, sink)
	ret0, _ := ret[0].(error)
	return ret0
}

// Attach indicates an expected call of Attach.
func (mr *MockIRouterMockRecorder) Attach(ctx, session, sink any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Attach", reflect.TypeOf((*MockIRouter)(nil).Attach), ctx, session, sink)
}

// Detach mocks base method.
func (m *MockIRouter) Detach(session domain.Session) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Detach", session)
}

// Detach indicates an expected call of Detach.
func (mr *MockIRouterMockRecorder) Detach(session any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Detach", reflect.TypeOf((*MockIRouter)(nil).Detach), session)
}

// History mocks base method.
func (m *MockIRouter) History(ctx context.Context, cmd domain.ReplayCommand, fn func(domain.Message) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "History", ctx, cmd, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// History indicates an expected call of History.
func (mr *MockIRouterMockRecorder) History(ctx, cmd, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "History", reflect.TypeOf((*MockIRouter)(nil).History), ctx, cmd, fn)
}

// JoinPartition mocks base method.
func (m *MockIRouter) JoinPartition(ctx context.Context, session domain.Session, groupID domain.GroupID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "JoinPartition", ctx, session, groupID)
	ret0, _ := ret[0].(error)
	return ret0
}

// JoinPartition indicates an expected call of JoinPartition.
func (mr *MockIRouterMockRecorder) JoinPartition(ctx, session, groupID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "JoinPartition", reflect.TypeOf((*MockIRouter)(nil).JoinPartition), ctx, session, groupID)
}

// LeavePartition mocks base method.
func (m *MockIRouter) LeavePartition(session domain.Session, groupID domain.GroupID) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LeavePartition", session, groupID)
}

// LeavePartition indicates an expected call of LeavePartition.
func (mr *MockIRouterMockRecorder) LeavePartition(session, groupID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LeavePartition", reflect.TypeOf((*MockIRouter)(nil).LeavePartition), session, groupID)
}

// Send mocks base method.
func (m *MockIRouter) Send(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", ctx, cmd)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Send indicates an expected call of Send.
func (mr *MockIRouterMockRecorder) Send(ctx, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockIRouter)(nil).Send), ctx, cmd)
}
