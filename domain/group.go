package domain

import "time"

type GroupID string

// LastAdminRule decides what happens to a group when its sole admin leaves.
type LastAdminRule string

const (
	LastAdminTransfer LastAdminRule = "transfer"
	LastAdminDelete   LastAdminRule = "delete"
)

// Group membership state as projected by the membership index.
// Mutated only through admin-gated operations.
type Group struct {
	ID              GroupID
	AdminID         UserID
	Members         map[UserID]struct{}
	PendingRequests map[UserID]struct{}
	LastAdminRule   LastAdminRule
}

type BanScope string

const (
	BanGlobal BanScope = "global"
	BanGroup  BanScope = "group"
)

type Ban struct {
	Scope    BanScope
	UserID   UserID
	GroupID  GroupID // empty for global bans
	Reason   string
	BannedBy UserID
	At       time.Time
}
