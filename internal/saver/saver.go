package saver

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Saver is a named savings target. A wishlist item becomes a goal once
// IsGoal is set; only goals participate in auto-allocation.
type Saver struct {
	ID          uuid.UUID
	ChildID     uuid.UUID
	Name        string
	Description string
	ImageURL    string
	Target      int64 // coins
	IsGoal      bool
	Allocation  int // 0-100, percent of each credit reserved toward this goal
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

var (
	ErrNotFound          = errors.New("saver not found")
	ErrInvalidAllocation = errors.New("allocation must be between 0 and 100")
)
