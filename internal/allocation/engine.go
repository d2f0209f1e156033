package allocation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"piggybank/internal/ledger"
	"piggybank/internal/saver"
)

//go:generate mockgen -source=engine.go -destination=engine_mock.go -package=allocation
type GoalLister interface {
	ListActiveGoals(ctx context.Context, childID uuid.UUID) ([]*saver.Saver, error)
}

type EntryWriter interface {
	AddEntry(ctx context.Context, params ledger.CreateParams) (*ledger.Entry, error)
}

// Engine reserves portions of freshly credited coins toward a child's
// active savings goals.
type Engine struct {
	goals   GoalLister
	entries EntryWriter
}

func NewEngine(goals GoalLister, entries EntryWriter) *Engine {
	return &Engine{goals: goals, entries: entries}
}

// Apply reserves floor(credit * allocation / 100) coins per active goal.
// Each goal's percentage is applied to the original credit, not a
// shrinking pool; with active allocations summing to at most 100 the
// reserved total can never exceed the credit. Fractional coins stay
// available. Goals are independent: a failure on one does not undo the
// reservations already made for the others.
func (e *Engine) Apply(ctx context.Context, childID uuid.UUID, credit int64) error {
	if credit <= 0 {
		return nil
	}

	goals, err := e.goals.ListActiveGoals(ctx, childID)
	if err != nil {
		return fmt.Errorf("listing goals: %w", err)
	}

	var errs []error

	for _, goal := range goals {
		portion := credit * int64(goal.Allocation) / 100
		if portion <= 0 {
			continue
		}

		saverID := goal.ID

		_, err := e.entries.AddEntry(ctx, ledger.CreateParams{
			ChildID: childID,
			Amount:  -portion,
			Type:    ledger.TypeReserve,
			Note:    fmt.Sprintf("Saved toward %s", goal.Name),
			SaverID: &saverID,
			Actor:   ledger.Actor{Role: ledger.RoleSystem, Name: "Auto-allocation"},
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("reserving for goal %s: %w", goal.ID, err))
		}
	}

	return errors.Join(errs...)
}
