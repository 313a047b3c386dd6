package domain

import "time"

type Command interface {
	Partition() Partition
}

type SendMessageCommand struct {
	SenderID  UserID
	ChatType  ChatType
	TargetID  string
	Content   string
	CreatedAt time.Time
}

func (c SendMessageCommand) Partition() Partition {
	return Partition{ChatType: c.ChatType, TargetID: c.TargetID}
}

type ReplayCommand struct {
	UserID   UserID
	ChatType ChatType
	TargetID string
	// AfterSequence is the delivery cursor, replay starts just above it.
	AfterSequence uint64
}

func (c ReplayCommand) Partition() Partition {
	return Partition{ChatType: c.ChatType, TargetID: c.TargetID}
}
