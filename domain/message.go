// Messages are immutable once persisted. The sequence number is the
// sole ordering authority inside a partition, the wall-clock timestamp
// is informational only.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ChatType string

const (
	ChatPrivate ChatType = "private"
	ChatGroup   ChatType = "group"
)

// Partition is the ordering domain for sequence numbers.
// Private conversations are keyed by the recipient user, group
// conversations by the group.
type Partition struct {
	ChatType ChatType
	TargetID string
}

func PrivatePartition(userID UserID) Partition {
	return Partition{ChatType: ChatPrivate, TargetID: string(userID)}
}

func GroupPartition(groupID GroupID) Partition {
	return Partition{ChatType: ChatGroup, TargetID: string(groupID)}
}

// Key returns the stable identifier used for storage prefixes and
// per-partition locking.
func (p Partition) Key() string {
	return fmt.Sprintf("%s:%s", p.ChatType, p.TargetID)
}

// Message represents an immutable chat event.
type Message struct {
	ID        uuid.UUID
	SenderID  UserID
	ChatType  ChatType
	TargetID  string
	Content   string
	Sequence  uint64
	CreatedAt time.Time
}

func (m Message) Partition() Partition {
	return Partition{ChatType: m.ChatType, TargetID: m.TargetID}
}
