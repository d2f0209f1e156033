package payout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"piggybank/internal/family"
	"piggybank/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=payout
type FamilyDirectory interface {
	GetFamily(ctx context.Context, id uuid.UUID) (*family.Family, error)
	ListChores(ctx context.Context, familyID uuid.UUID) ([]*family.Chore, error)
	ListCompletionsForChildInRange(ctx context.Context, childID uuid.UUID, start, end string) ([]*family.Completion, error)
}

type Ledger interface {
	FindPayoutForWeek(ctx context.Context, childID, familyID uuid.UUID, weekStart string) (*ledger.Entry, error)
	AddEntry(ctx context.Context, params ledger.CreateParams) (*ledger.Entry, error)
}

type Allocator interface {
	Apply(ctx context.Context, childID uuid.UUID, credit int64) error
}

var ErrInvalidWeekStart = errors.New("week start must be a YYYY-MM-DD date")

// Service pays each child of a family their approved chore earnings for
// one week, exactly once per (child, family, week).
type Service struct {
	families FamilyDirectory
	entries  Ledger
	alloc    Allocator
}

func NewService(families FamilyDirectory, entries Ledger, alloc Allocator) *Service {
	return &Service{families: families, entries: entries, alloc: alloc}
}

type ChildPayout struct {
	ChildID uuid.UUID
	Amount  int64
}

type Result struct {
	FamilyID  uuid.UUID
	WeekStart string
	WeekEnd   string

	Paid        []ChildPayout
	AlreadyPaid []uuid.UUID
	NothingDue  []uuid.UUID
}

// Run executes the weekly payout for (familyID, weekStart). weekStart is
// a YYYY-MM-DD date opening a 7-day window, weekStart..weekStart+6 days
// inclusive. The run is idempotent per child: children already holding
// a payout entry for this week are skipped, and reruns pick up children
// added since. Per-child failures are logged and collected, never
// silently dropped, so an operator knows a rerun is needed; they do not
// stop the remaining children from being processed.
func (s *Service) Run(ctx context.Context, familyID uuid.UUID, weekStart string) (*Result, error) {
	start, err := time.Parse(time.DateOnly, weekStart)
	if err != nil {
		return nil, fmt.Errorf("parsing week start %q: %w", weekStart, ErrInvalidWeekStart)
	}

	weekEnd := start.AddDate(0, 0, 6).Format(time.DateOnly)

	fam, err := s.families.GetFamily(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("resolving family %s: %w", familyID, err)
	}

	chores, err := s.families.ListChores(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("listing chores: %w", err)
	}

	values := make(map[uuid.UUID]int64, len(chores))
	for _, c := range chores {
		values[c.ID] = c.Value
	}

	result := &Result{FamilyID: familyID, WeekStart: weekStart, WeekEnd: weekEnd}

	var errs []error

	for _, childID := range fam.ChildIDs {
		paid, err := s.payChild(ctx, childID, familyID, weekStart, weekEnd, values)
		if err != nil {
			slog.Error("payout failed for child",
				"child_id", childID, "family_id", familyID, "week_start", weekStart, "error", err)
			errs = append(errs, fmt.Errorf("child %s: %w", childID, err))

			continue
		}

		switch {
		case paid == alreadyPaid:
			result.AlreadyPaid = append(result.AlreadyPaid, childID)
		case paid == 0:
			result.NothingDue = append(result.NothingDue, childID)
		default:
			result.Paid = append(result.Paid, ChildPayout{ChildID: childID, Amount: paid})
		}
	}

	return result, errors.Join(errs...)
}

// alreadyPaid marks a child skipped by the idempotency check. Payout
// amounts are always positive, so a negative sentinel cannot collide.
const alreadyPaid int64 = -1

func (s *Service) payChild(ctx context.Context, childID, familyID uuid.UUID, weekStart, weekEnd string, values map[uuid.UUID]int64) (int64, error) {
	_, err := s.entries.FindPayoutForWeek(ctx, childID, familyID, weekStart)
	if err == nil {
		return alreadyPaid, nil
	}

	if !errors.Is(err, ledger.ErrNotFound) {
		return 0, fmt.Errorf("checking existing payout: %w", err)
	}

	completions, err := s.families.ListCompletionsForChildInRange(ctx, childID, weekStart, weekEnd)
	if err != nil {
		return 0, fmt.Errorf("listing completions: %w", err)
	}

	var total int64

	for _, c := range completions {
		if c.Status != family.StatusApproved {
			continue
		}

		// A chore deleted since the completion contributes 0.
		total += values[c.ChoreID]
	}

	if total == 0 {
		return 0, nil
	}

	famID := familyID

	_, err = s.entries.AddEntry(ctx, ledger.CreateParams{
		ChildID:   childID,
		Amount:    total,
		Type:      ledger.TypePayout,
		Note:      fmt.Sprintf("Chore payout for week of %s", weekStart),
		FamilyID:  &famID,
		WeekStart: weekStart,
		Actor:     ledger.Actor{Role: ledger.RoleSystem, Name: "Weekly Payout"},
	})
	if err != nil {
		// A concurrent run can slip past the lookup above; the unique
		// index catches it, and the other run's entry wins.
		if errors.Is(err, ledger.ErrDuplicatePayout) {
			return alreadyPaid, nil
		}

		return 0, fmt.Errorf("posting payout: %w", err)
	}

	if err := s.alloc.Apply(ctx, childID, total); err != nil {
		// The payout entry stands; only the reservations are incomplete.
		return 0, fmt.Errorf("allocating payout: %w", err)
	}

	return total, nil
}
