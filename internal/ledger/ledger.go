package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// EntryType classifies what a ledger entry represents.
type EntryType string

const (
	TypePayout     EntryType = "payout"
	TypeAdjustment EntryType = "adjustment"
	TypeSpend      EntryType = "spend"
	TypeReserve    EntryType = "reserve"
	TypeRelease    EntryType = "release"
)

// Role identifies who caused an entry.
type Role string

const (
	RoleParent Role = "parent"
	RoleChild  Role = "child"
	RoleSystem Role = "system"
)

// Actor records who caused a ledger entry, for audit.
type Actor struct {
	Role  Role
	ID    *uuid.UUID
	Name  string
	Email string
}

// Entry is one immutable signed-amount fact about a child's coin balance.
// Positive amounts credit the child, negative amounts debit. Entries are
// never updated or deleted once written.
type Entry struct {
	ID      uuid.UUID
	ChildID uuid.UUID
	Amount  int64 // coins, signed
	Type    EntryType
	Note    string

	// Payout idempotency key components; set only on payout entries.
	FamilyID  *uuid.UUID
	WeekStart string // YYYY-MM-DD

	// Goal a reserve entry targets; set only on reserve/release entries.
	SaverID *uuid.UUID

	Actor     Actor
	CreatedAt time.Time
}

// Balance is derived from the entry history, never stored.
type Balance struct {
	Available int64 // sum of all entry amounts
	Reserved  int64 // net un-released reservations, always >= 0 in practice
}

var (
	ErrNotFound          = errors.New("ledger entry not found")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDuplicatePayout surfaces the storage-level uniqueness of payout
	// entries per (child, family, week).
	ErrDuplicatePayout = errors.New("payout already recorded for this week")
)
