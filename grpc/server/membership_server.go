package server

import (
	"context"

	"chat-relay/auth"
	"chat-relay/domain"
	"chat-relay/errors"
	pb "chat-relay/proto/membership"
	"chat-relay/services"
)

type MembershipServer struct {
	pb.UnimplementedMembershipServiceServer
	membershipService services.IMembershipService
}

func NewMembershipServer(membershipService services.IMembershipService) *MembershipServer {
	return &MembershipServer{membershipService: membershipService}
}

// CreateGroup registers a new group with the caller as admin.
func (s *MembershipServer) CreateGroup(ctx context.Context, in *pb.CreateGroupRequest) (*pb.GroupResponse, error) {
	actor, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	err = s.membershipService.CreateGroup(actor, domain.GroupID(in.GroupId), domain.LastAdminRule(in.LastAdminRule))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GroupResponse{}, nil
}

// RequestJoin places the caller on the group's pending list.
func (s *MembershipServer) RequestJoin(ctx context.Context, in *pb.GroupRequest) (*pb.GroupResponse, error) {
	actor, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err = s.membershipService.RequestJoin(actor, domain.GroupID(in.GroupId)); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GroupResponse{}, nil
}

// ApproveJoin promotes a pending request to membership. Admin only.
func (s *MembershipServer) ApproveJoin(ctx context.Context, in *pb.MemberRequest) (*pb.GroupResponse, error) {
	actor, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	err = s.membershipService.ApproveJoin(actor, domain.GroupID(in.GroupId), domain.UserID(in.UserId))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GroupResponse{}, nil
}

// RejectJoin discards a pending request. Admin only.
func (s *MembershipServer) RejectJoin(ctx context.Context, in *pb.MemberRequest) (*pb.GroupResponse, error) {
	actor, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	err = s.membershipService.RejectJoin(actor, domain.GroupID(in.GroupId), domain.UserID(in.UserId))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GroupResponse{}, nil
}

// LeaveGroup removes the caller, resolving the last-admin rule when the
// departing member held the admin role.
func (s *MembershipServer) LeaveGroup(ctx context.Context, in *pb.GroupRequest) (*pb.LeaveResponse, error) {
	actor, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	outcome, err := s.membershipService.LeaveGroup(actor, domain.GroupID(in.GroupId))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.LeaveResponse{
		Deleted:  outcome.Deleted,
		NewAdmin: string(outcome.NewAdmin),
	}, nil
}

// TransferAdmin hands the admin role to another member. Admin only.
func (s *MembershipServer) TransferAdmin(ctx context.Context, in *pb.MemberRequest) (*pb.GroupResponse, error) {
	actor, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	err = s.membershipService.TransferAdmin(actor, domain.GroupID(in.GroupId), domain.UserID(in.UserId))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GroupResponse{}, nil
}

// DeleteGroup removes the group and its delivery state. Admin only.
func (s *MembershipServer) DeleteGroup(ctx context.Context, in *pb.GroupRequest) (*pb.GroupResponse, error) {
	actor, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err = s.membershipService.DeleteGroup(actor, domain.GroupID(in.GroupId)); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GroupResponse{}, nil
}

// BanUser records a group or global ban. A global ban revokes the
// target's active sessions immediately.
func (s *MembershipServer) BanUser(ctx context.Context, in *pb.BanRequest) (*pb.GroupResponse, error) {
	actor, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	roles, _ := ctx.Value(auth.RolesKey).([]string)

	ban := domain.Ban{
		Scope:   domain.BanScope(in.Scope),
		UserID:  domain.UserID(in.UserId),
		GroupID: domain.GroupID(in.GroupId),
		Reason:  in.Reason,
	}
	if err = s.membershipService.BanUser(ctx, actor, roles, ban); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GroupResponse{}, nil
}

// ListMembers returns the group roster. Pending requests are only
// visible to the admin.
func (s *MembershipServer) ListMembers(ctx context.Context, in *pb.GroupRequest) (*pb.MembersResponse, error) {
	actor, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	view, err := s.membershipService.ListMembers(actor, domain.GroupID(in.GroupId))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	response := &pb.MembersResponse{AdminId: string(view.AdminID)}
	for _, member := range view.Members {
		response.Members = append(response.Members, string(member))
	}
	for _, pending := range view.Pending {
		response.Pending = append(response.Pending, string(pending))
	}
	return response, nil
}

func callerID(ctx context.Context) (domain.UserID, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return "", errors.MapToGRPCError(errors.ErrAuth)
	}
	return domain.UserID(userID), nil
}
