// Package membership is a read-mostly projection of the group and ban
// records owned by the membership-management collaborator. Admin gating
// happens upstream, the index only stores resulting state.
package membership

import (
	"fmt"
	"sort"
	"sync"

	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"

	"github.com/samber/lo"
)

// Index answers permission questions for the delivery router. Every
// mutation hook runs under the same mutex as reads, so a concurrent
// IsMember check never observes a partially-applied change.
type Index struct {
	mu         sync.RWMutex
	groups     map[domain.GroupID]*domain.Group
	globalBans map[domain.UserID]domain.Ban
	groupBans  map[domain.GroupID]map[domain.UserID]domain.Ban
}

var _ contract.IMembership = (*Index)(nil)

func NewIndex() *Index {
	return &Index{
		groups:     make(map[domain.GroupID]*domain.Group),
		globalBans: make(map[domain.UserID]domain.Ban),
		groupBans:  make(map[domain.GroupID]map[domain.UserID]domain.Ban),
	}
}

func (i *Index) IsMember(groupID domain.GroupID, userID domain.UserID) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	g, ok := i.groups[groupID]
	if !ok {
		return false
	}
	_, member := g.Members[userID]
	return member
}

func (i *Index) IsBanned(scope domain.BanScope, userID domain.UserID, groupID domain.GroupID) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	switch scope {
	case domain.BanGlobal:
		_, ok := i.globalBans[userID]
		return ok
	case domain.BanGroup:
		_, ok := i.groupBans[groupID][userID]
		return ok
	default:
		return false
	}
}

// MembersOf returns a snapshot copy of the member set.
func (i *Index) MembersOf(groupID domain.GroupID) ([]domain.UserID, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	g, ok := i.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("group %s: %w", groupID, errors.ErrNotFound)
	}
	return lo.Keys(g.Members), nil
}

func (i *Index) GroupsOf(userID domain.UserID) []domain.GroupID {
	i.mu.RLock()
	defer i.mu.RUnlock()

	var out []domain.GroupID
	for id, g := range i.groups {
		if _, ok := g.Members[userID]; ok {
			out = append(out, id)
		}
	}
	return out
}

func (i *Index) AdminOf(groupID domain.GroupID) (domain.UserID, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	g, ok := i.groups[groupID]
	if !ok {
		return "", fmt.Errorf("group %s: %w", groupID, errors.ErrNotFound)
	}
	return g.AdminID, nil
}

// OnCreate registers a fresh group with its creator as sole admin member.
func (i *Index) OnCreate(groupID domain.GroupID, adminID domain.UserID, rule domain.LastAdminRule) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, ok := i.groups[groupID]; ok {
		return fmt.Errorf("group %s: %w", groupID, errors.ErrAlreadyExists)
	}
	i.groups[groupID] = &domain.Group{
		ID:              groupID,
		AdminID:         adminID,
		Members:         map[domain.UserID]struct{}{adminID: {}},
		PendingRequests: make(map[domain.UserID]struct{}),
		LastAdminRule:   rule,
	}
	return nil
}

// OnJoin queues a join request. Banned users are blocked from joining again.
func (i *Index) OnJoin(groupID domain.GroupID, userID domain.UserID) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	g, ok := i.groups[groupID]
	if !ok {
		return fmt.Errorf("group %s: %w", groupID, errors.ErrNotFound)
	}
	if _, banned := i.groupBans[groupID][userID]; banned {
		return fmt.Errorf("user %s is banned from group %s: %w", userID, groupID, errors.ErrPermission)
	}
	if _, member := g.Members[userID]; member {
		return nil
	}
	g.PendingRequests[userID] = struct{}{}
	return nil
}

func (i *Index) OnApprove(groupID domain.GroupID, userID domain.UserID) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	g, ok := i.groups[groupID]
	if !ok {
		return fmt.Errorf("group %s: %w", groupID, errors.ErrNotFound)
	}
	if _, pending := g.PendingRequests[userID]; !pending {
		return fmt.Errorf("no pending request for %s: %w", userID, errors.ErrNotFound)
	}
	delete(g.PendingRequests, userID)
	g.Members[userID] = struct{}{}
	return nil
}

func (i *Index) OnReject(groupID domain.GroupID, userID domain.UserID) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	g, ok := i.groups[groupID]
	if !ok {
		return fmt.Errorf("group %s: %w", groupID, errors.ErrNotFound)
	}
	delete(g.PendingRequests, userID)
	return nil
}

// OnBan records a ban. A group ban also evicts the user from the member
// set so invariant checks and fan-out exclusion take effect immediately.
// Session invalidation for global bans is the router's concern.
func (i *Index) OnBan(ban domain.Ban) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	switch ban.Scope {
	case domain.BanGlobal:
		i.globalBans[ban.UserID] = ban
		return nil
	case domain.BanGroup:
		g, ok := i.groups[ban.GroupID]
		if !ok {
			return fmt.Errorf("group %s: %w", ban.GroupID, errors.ErrNotFound)
		}
		delete(g.Members, ban.UserID)
		delete(g.PendingRequests, ban.UserID)
		if i.groupBans[ban.GroupID] == nil {
			i.groupBans[ban.GroupID] = make(map[domain.UserID]domain.Ban)
		}
		i.groupBans[ban.GroupID][ban.UserID] = ban
		return nil
	default:
		return fmt.Errorf("unknown ban scope %q: %w", ban.Scope, errors.ErrNotFound)
	}
}

// LeaveOutcome reports how a departure resolved, so the caller can
// invalidate partitions when the group disappeared.
type LeaveOutcome struct {
	Deleted     bool
	Transferred bool
	NewAdmin    domain.UserID
}

// OnLeave removes a member. When the departing user is the sole admin the
// group's last-admin rule resolves atomically under the index mutex:
// transfer picks the smallest remaining member id, delete removes the
// group. The member set is never observed empty while the group exists.
func (i *Index) OnLeave(groupID domain.GroupID, userID domain.UserID) (LeaveOutcome, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	g, ok := i.groups[groupID]
	if !ok {
		return LeaveOutcome{}, fmt.Errorf("group %s: %w", groupID, errors.ErrNotFound)
	}
	if _, member := g.Members[userID]; !member {
		return LeaveOutcome{}, fmt.Errorf("user %s not in group %s: %w", userID, groupID, errors.ErrNotFound)
	}

	delete(g.Members, userID)

	if g.AdminID != userID {
		if len(g.Members) == 0 {
			// Last plain member left after the admin already did,
			// nothing remains to administrate.
			delete(i.groups, groupID)
			return LeaveOutcome{Deleted: true}, nil
		}
		return LeaveOutcome{}, nil
	}

	// The sole admin departs
	if len(g.Members) == 0 || g.LastAdminRule == domain.LastAdminDelete {
		delete(i.groups, groupID)
		return LeaveOutcome{Deleted: true}, nil
	}

	successor := smallestMember(g.Members)
	g.AdminID = successor
	return LeaveOutcome{Transferred: true, NewAdmin: successor}, nil
}

// OnAdminTransfer hands the admin role to an existing member.
func (i *Index) OnAdminTransfer(groupID domain.GroupID, newAdmin domain.UserID) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	g, ok := i.groups[groupID]
	if !ok {
		return fmt.Errorf("group %s: %w", groupID, errors.ErrNotFound)
	}
	if _, member := g.Members[newAdmin]; !member {
		return fmt.Errorf("user %s not in group %s: %w", newAdmin, groupID, errors.ErrNotFound)
	}
	g.AdminID = newAdmin
	return nil
}

// OnDelete removes a group outright (admin-gated upstream).
func (i *Index) OnDelete(groupID domain.GroupID) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, ok := i.groups[groupID]; !ok {
		return fmt.Errorf("group %s: %w", groupID, errors.ErrNotFound)
	}
	delete(i.groups, groupID)
	delete(i.groupBans, groupID)
	return nil
}

func (i *Index) PendingOf(groupID domain.GroupID) ([]domain.UserID, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	g, ok := i.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("group %s: %w", groupID, errors.ErrNotFound)
	}
	return lo.Keys(g.PendingRequests), nil
}

func smallestMember(members map[domain.UserID]struct{}) domain.UserID {
	ids := lo.Keys(members)
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids[0]
}
