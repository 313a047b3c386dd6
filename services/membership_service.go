package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/membership"
	"chat-relay/runtime"
)

type IMembershipService interface {
	CreateGroup(actor domain.UserID, groupID domain.GroupID, rule domain.LastAdminRule) error
	RequestJoin(actor domain.UserID, groupID domain.GroupID) error
	ApproveJoin(actor domain.UserID, groupID domain.GroupID, userID domain.UserID) error
	RejectJoin(actor domain.UserID, groupID domain.GroupID, userID domain.UserID) error
	LeaveGroup(actor domain.UserID, groupID domain.GroupID) (membership.LeaveOutcome, error)
	TransferAdmin(actor domain.UserID, groupID domain.GroupID, newAdmin domain.UserID) error
	DeleteGroup(actor domain.UserID, groupID domain.GroupID) error
	BanUser(ctx context.Context, actor domain.UserID, actorRoles []string, ban domain.Ban) error
	ListMembers(actor domain.UserID, groupID domain.GroupID) (GroupView, error)
}

// GroupView is what a member sees of a group. Pending requests are only
// populated for the admin.
type GroupView struct {
	AdminID domain.UserID
	Members []domain.UserID
	Pending []domain.UserID
}

// MembershipService applies the admin gating, then mutates the index and
// lets the router react (kicks, partition invalidation).
type MembershipService struct {
	index  *membership.Index
	router *runtime.Router
}

func NewMembershipService(index *membership.Index, router *runtime.Router) *MembershipService {
	return &MembershipService{index: index, router: router}
}

func (s *MembershipService) CreateGroup(actor domain.UserID, groupID domain.GroupID, rule domain.LastAdminRule) error {
	if rule != domain.LastAdminTransfer && rule != domain.LastAdminDelete {
		return fmt.Errorf("last admin rule %q: %w", rule, errors.ErrInvalidArgument)
	}
	return s.index.OnCreate(groupID, actor, rule)
}

func (s *MembershipService) RequestJoin(actor domain.UserID, groupID domain.GroupID) error {
	return s.index.OnJoin(groupID, actor)
}

func (s *MembershipService) ApproveJoin(actor domain.UserID, groupID domain.GroupID, userID domain.UserID) error {
	if err := s.requireAdmin(groupID, actor); err != nil {
		return err
	}
	return s.index.OnApprove(groupID, userID)
}

func (s *MembershipService) RejectJoin(actor domain.UserID, groupID domain.GroupID, userID domain.UserID) error {
	if err := s.requireAdmin(groupID, actor); err != nil {
		return err
	}
	return s.index.OnReject(groupID, userID)
}

// LeaveGroup resolves the departure, including the last-admin rule. A
// deletion invalidates the partition so no stale replay survives it.
func (s *MembershipService) LeaveGroup(actor domain.UserID, groupID domain.GroupID) (membership.LeaveOutcome, error) {
	outcome, err := s.index.OnLeave(groupID, actor)
	if err != nil {
		return membership.LeaveOutcome{}, err
	}
	if outcome.Deleted {
		s.router.InvalidatePartition(groupID)
	}
	return outcome, nil
}

func (s *MembershipService) TransferAdmin(actor domain.UserID, groupID domain.GroupID, newAdmin domain.UserID) error {
	if err := s.requireAdmin(groupID, actor); err != nil {
		return err
	}
	return s.index.OnAdminTransfer(groupID, newAdmin)
}

func (s *MembershipService) DeleteGroup(actor domain.UserID, groupID domain.GroupID) error {
	if err := s.requireAdmin(groupID, actor); err != nil {
		return err
	}
	if err := s.index.OnDelete(groupID); err != nil {
		return err
	}
	s.router.InvalidatePartition(groupID)
	return nil
}

// BanUser records a ban. Group bans are gated on the group admin, global
// bans on the operator role. A global ban revokes every active session
// of the target immediately.
func (s *MembershipService) BanUser(ctx context.Context, actor domain.UserID, actorRoles []string, ban domain.Ban) error {
	switch ban.Scope {
	case domain.BanGroup:
		if err := s.requireAdmin(ban.GroupID, actor); err != nil {
			return err
		}
	case domain.BanGlobal:
		if !slices.Contains(actorRoles, "admin") {
			return fmt.Errorf("user %s cannot issue global bans: %w", actor, errors.ErrPermission)
		}
	default:
		return fmt.Errorf("ban scope %q: %w", ban.Scope, errors.ErrInvalidArgument)
	}

	ban.BannedBy = actor
	ban.At = time.Now().UTC()
	if err := s.index.OnBan(ban); err != nil {
		return err
	}

	if ban.Scope == domain.BanGlobal {
		s.router.KickUser(ctx, ban.UserID, "account banned")
	}
	return nil
}

func (s *MembershipService) ListMembers(actor domain.UserID, groupID domain.GroupID) (GroupView, error) {
	if !s.index.IsMember(groupID, actor) {
		return GroupView{}, fmt.Errorf("user %s not in group %s: %w", actor, groupID, errors.ErrPermission)
	}

	admin, err := s.index.AdminOf(groupID)
	if err != nil {
		return GroupView{}, err
	}
	members, err := s.index.MembersOf(groupID)
	if err != nil {
		return GroupView{}, err
	}

	view := GroupView{AdminID: admin, Members: members}
	if admin == actor {
		if view.Pending, err = s.index.PendingOf(groupID); err != nil {
			return GroupView{}, err
		}
	}
	return view, nil
}

func (s *MembershipService) requireAdmin(groupID domain.GroupID, actor domain.UserID) error {
	admin, err := s.index.AdminOf(groupID)
	if err != nil {
		return err
	}
	if admin != actor {
		return fmt.Errorf("user %s is not admin of %s: %w", actor, groupID, errors.ErrPermission)
	}
	return nil
}
