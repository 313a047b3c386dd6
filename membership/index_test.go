package membership

import (
	"sync"
	"testing"
	"time"

	"chat-relay/domain"
	"chat-relay/errors"

	"github.com/stretchr/testify/require"
)

func TestIndex_Join_Approve_Flow(t *testing.T) {
	req := require.New(t)
	index := NewIndex()

	// Given a group with one admin
	req.NoError(index.OnCreate("g1", "alice", domain.LastAdminTransfer))
	req.True(index.IsMember("g1", "alice"))

	// When bob requests to join
	req.NoError(index.OnJoin("g1", "bob"))
	req.False(index.IsMember("g1", "bob"))

	pending, err := index.PendingOf("g1")
	req.NoError(err)
	req.Contains(pending, domain.UserID("bob"))

	// Then approval makes him a member
	req.NoError(index.OnApprove("g1", "bob"))
	req.True(index.IsMember("g1", "bob"))

	members, err := index.MembersOf("g1")
	req.NoError(err)
	req.Len(members, 2)
}

func TestIndex_Reject_Clears_Pending(t *testing.T) {
	req := require.New(t)
	index := NewIndex()
	req.NoError(index.OnCreate("g1", "alice", domain.LastAdminTransfer))
	req.NoError(index.OnJoin("g1", "bob"))

	req.NoError(index.OnReject("g1", "bob"))
	req.False(index.IsMember("g1", "bob"))

	// Approving after a reject fails, there is nothing pending
	req.ErrorIs(index.OnApprove("g1", "bob"), errors.ErrNotFound)
}

func TestIndex_Unknown_Group_Is_NotFound(t *testing.T) {
	req := require.New(t)
	index := NewIndex()

	_, err := index.MembersOf("ghost")
	req.ErrorIs(err, errors.ErrNotFound)
	req.ErrorIs(index.OnJoin("ghost", "bob"), errors.ErrNotFound)
	_, err = index.OnLeave("ghost", "bob")
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestIndex_Group_Ban_Evicts_And_Blocks_Rejoin(t *testing.T) {
	req := require.New(t)
	index := NewIndex()
	req.NoError(index.OnCreate("g1", "alice", domain.LastAdminTransfer))
	req.NoError(index.OnJoin("g1", "bob"))
	req.NoError(index.OnApprove("g1", "bob"))

	// When bob is banned from the group
	req.NoError(index.OnBan(domain.Ban{
		Scope: domain.BanGroup, UserID: "bob", GroupID: "g1",
		Reason: "spam", BannedBy: "alice", At: time.Now().UTC(),
	}))

	// Then he is out and cannot queue a new request
	req.False(index.IsMember("g1", "bob"))
	req.True(index.IsBanned(domain.BanGroup, "bob", "g1"))
	req.ErrorIs(index.OnJoin("g1", "bob"), errors.ErrPermission)
}

func TestIndex_Global_Ban(t *testing.T) {
	req := require.New(t)
	index := NewIndex()

	req.False(index.IsBanned(domain.BanGlobal, "mallory", ""))
	req.NoError(index.OnBan(domain.Ban{Scope: domain.BanGlobal, UserID: "mallory", BannedBy: "ops"}))
	req.True(index.IsBanned(domain.BanGlobal, "mallory", ""))
}

func TestIndex_Last_Admin_Transfer(t *testing.T) {
	req := require.New(t)
	index := NewIndex()
	req.NoError(index.OnCreate("g1", "alice", domain.LastAdminTransfer))
	req.NoError(index.OnJoin("g1", "carol"))
	req.NoError(index.OnApprove("g1", "carol"))
	req.NoError(index.OnJoin("g1", "bob"))
	req.NoError(index.OnApprove("g1", "bob"))

	// When the sole admin leaves
	outcome, err := index.OnLeave("g1", "alice")
	req.NoError(err)

	// Then the group survives with a deterministic successor
	req.True(outcome.Transferred)
	req.Equal(domain.UserID("bob"), outcome.NewAdmin)

	admin, err := index.AdminOf("g1")
	req.NoError(err)
	req.Equal(domain.UserID("bob"), admin)

	members, err := index.MembersOf("g1")
	req.NoError(err)
	req.NotEmpty(members)
}

func TestIndex_Last_Admin_Delete(t *testing.T) {
	req := require.New(t)
	index := NewIndex()
	req.NoError(index.OnCreate("g1", "alice", domain.LastAdminDelete))
	req.NoError(index.OnJoin("g1", "bob"))
	req.NoError(index.OnApprove("g1", "bob"))

	outcome, err := index.OnLeave("g1", "alice")
	req.NoError(err)
	req.True(outcome.Deleted)

	_, err = index.MembersOf("g1")
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestIndex_Admin_Alone_Leaving_Deletes(t *testing.T) {
	req := require.New(t)
	index := NewIndex()
	req.NoError(index.OnCreate("g1", "alice", domain.LastAdminTransfer))

	// Transfer is impossible with nobody left, the group goes away
	outcome, err := index.OnLeave("g1", "alice")
	req.NoError(err)
	req.True(outcome.Deleted)
}

// Reads must never observe a half-applied mutation while departures and
// approvals race.
func TestIndex_Concurrent_Mutations_Consistent_Reads(t *testing.T) {
	req := require.New(t)
	index := NewIndex()
	req.NoError(index.OnCreate("g1", "admin", domain.LastAdminTransfer))

	users := []domain.UserID{"u1", "u2", "u3", "u4", "u5", "u6", "u7", "u8"}
	for _, u := range users {
		req.NoError(index.OnJoin("g1", u))
		req.NoError(index.OnApprove("g1", u))
	}

	var wg, readers sync.WaitGroup
	done := make(chan struct{})

	readers.Add(1)
	go func() {
		defer readers.Done()
		for {
			select {
			case <-done:
				return
			default:
				members, err := index.MembersOf("g1")
				if err != nil {
					return
				}
				// A member list snapshot always contains the admin
				require.Contains(t, members, domain.UserID("admin"))
			}
		}
	}()

	for _, u := range users {
		wg.Add(1)
		go func(u domain.UserID) {
			defer wg.Done()
			_, err := index.OnLeave("g1", u)
			require.NoError(t, err)
		}(u)
	}

	wg.Wait()
	close(done)
	readers.Wait()

	members, err := index.MembersOf("g1")
	req.NoError(err)
	req.Equal([]domain.UserID{"admin"}, members)
}
