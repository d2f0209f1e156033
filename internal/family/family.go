package family

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Family groups a set of parents, children and chores.
type Family struct {
	ID        uuid.UUID
	Name      string
	ChildIDs  []uuid.UUID
	CreatedAt time.Time
}

type Child struct {
	ID        uuid.UUID
	FamilyID  uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Chore is a recurring task worth a fixed number of coins.
type Chore struct {
	ID        uuid.UUID
	FamilyID  uuid.UUID
	Name      string
	Value     int64 // coins per approved completion
	CreatedAt time.Time
}

// CompletionStatus is the review state of a marked-done chore.
type CompletionStatus string

const (
	StatusPending  CompletionStatus = "pending"
	StatusApproved CompletionStatus = "approved"
	StatusRejected CompletionStatus = "rejected"
)

// Completion records that a child marked a chore done on a given day.
// Only approved completions count toward the weekly payout.
type Completion struct {
	ID        uuid.UUID
	ChoreID   uuid.UUID
	ChildID   uuid.UUID
	Date      string // YYYY-MM-DD
	Status    CompletionStatus
	CreatedAt time.Time
}

var ErrNotFound = errors.New("not found")
