package projection

import (
	"testing"

	"chat-relay/domain"

	"github.com/stretchr/testify/require"
)

func TestCursors_Advance_Is_Monotonic_Per_Session(t *testing.T) {
	req := require.New(t)
	cursors := NewCursors()
	partition := domain.PrivatePartition("bob")

	req.Equal(uint64(0), cursors.Get("conn-1", partition))

	req.True(cursors.Advance("conn-1", "bob", partition, 1))
	req.True(cursors.Advance("conn-1", "bob", partition, 2))

	// Replaying an already-delivered sequence is refused
	req.False(cursors.Advance("conn-1", "bob", partition, 2))
	req.False(cursors.Advance("conn-1", "bob", partition, 1))

	req.Equal(uint64(2), cursors.Get("conn-1", partition))
}

func TestCursors_Sessions_Do_Not_Share_A_Cursor(t *testing.T) {
	req := require.New(t)
	cursors := NewCursors()
	partition := domain.PrivatePartition("bob")

	// One device accepting a delivery must not move the other device's
	// replay cursor past it
	req.True(cursors.Advance("conn-1", "bob", partition, 3))
	req.Equal(uint64(0), cursors.Get("conn-2", partition))
	req.True(cursors.Advance("conn-2", "bob", partition, 1))
	req.Equal(uint64(3), cursors.Get("conn-1", partition))
}

func TestCursors_Partitions_Are_Isolated(t *testing.T) {
	req := require.New(t)
	cursors := NewCursors()
	private := domain.PrivatePartition("bob")
	group := domain.GroupPartition("g1")

	req.True(cursors.Advance("conn-1", "bob", private, 7))
	req.Equal(uint64(0), cursors.Get("conn-1", group))
	req.True(cursors.Advance("conn-1", "bob", group, 1))
	req.Equal(uint64(7), cursors.Get("conn-1", private))
}

func TestCursors_HighWater_Tracks_The_Freshest_Session(t *testing.T) {
	req := require.New(t)
	cursors := NewCursors()
	partition := domain.GroupPartition("g1")

	req.True(cursors.Advance("conn-1", "bob", partition, 2))
	req.True(cursors.Advance("conn-2", "bob", partition, 5))
	req.Equal(uint64(5), cursors.DeliveredHighWater("bob", partition))

	// A lagging session catching up never lowers the mark
	req.True(cursors.Advance("conn-1", "bob", partition, 3))
	req.Equal(uint64(5), cursors.DeliveredHighWater("bob", partition))
}

func TestCursors_DropSession_Keeps_The_HighWater(t *testing.T) {
	req := require.New(t)
	cursors := NewCursors()
	partition := domain.GroupPartition("g1")

	req.True(cursors.Advance("conn-1", "bob", partition, 4))
	cursors.DropSession("conn-1")

	req.Equal(uint64(0), cursors.Get("conn-1", partition))
	req.Equal(uint64(4), cursors.DeliveredHighWater("bob", partition))
}

func TestCursors_DropPartition(t *testing.T) {
	req := require.New(t)
	cursors := NewCursors()
	group := domain.GroupPartition("g1")

	req.True(cursors.Advance("conn-1", "bob", group, 3))
	req.True(cursors.Advance("conn-2", "carol", group, 3))

	cursors.DropPartition(group)

	req.Equal(uint64(0), cursors.Get("conn-1", group))
	req.Equal(uint64(0), cursors.Get("conn-2", group))
	req.Equal(uint64(0), cursors.DeliveredHighWater("bob", group))
	req.Equal(uint64(0), cursors.DeliveredHighWater("carol", group))
}
