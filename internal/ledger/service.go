package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateEntry(ctx context.Context, e *Entry) error
	ListEntriesByChild(ctx context.Context, childID uuid.UUID) ([]*Entry, error)
	FindPayoutForWeek(ctx context.Context, childID, familyID uuid.UUID, weekStart string) (*Entry, error)

	BeginSpend(ctx context.Context, childID uuid.UUID) (SpendTx, error)
}

// SpendTx is a storage transaction holding a per-child lock, so the
// balance check and the insert observe the same entry history.
type SpendTx interface {
	Available(ctx context.Context, childID uuid.UUID) (int64, error)
	CreateEntry(ctx context.Context, e *Entry) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ChildID   uuid.UUID
	Amount    int64
	Type      EntryType
	Note      string
	FamilyID  *uuid.UUID
	WeekStart string
	SaverID   *uuid.UUID
	Actor     Actor
}

// AddEntry appends an entry to a child's ledger. It performs no balance
// check and no deduplication; callers own those (the payout job checks
// FindPayoutForWeek first, spends go through Spend).
func (s *Service) AddEntry(ctx context.Context, params CreateParams) (*Entry, error) {
	if params.Amount == 0 {
		return nil, fmt.Errorf("amount must be non-zero: %w", ErrInvalidAmount)
	}

	e := &Entry{
		ChildID:   params.ChildID,
		Amount:    params.Amount,
		Type:      params.Type,
		Note:      params.Note,
		FamilyID:  params.FamilyID,
		WeekStart: params.WeekStart,
		SaverID:   params.SaverID,
		Actor:     params.Actor,
	}
	if err := s.repo.CreateEntry(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// Adjust posts a parent correction of either sign. Adjustments bypass the
// spend guard: a parent may take a child's balance negative.
func (s *Service) Adjust(ctx context.Context, childID uuid.UUID, amount int64, note string, actor Actor) (*Entry, error) {
	return s.AddEntry(ctx, CreateParams{
		ChildID: childID,
		Amount:  amount,
		Type:    TypeAdjustment,
		Note:    note,
		Actor:   actor,
	})
}

// Spend debits amount coins if the child's available balance covers it.
// The check and the insert run inside a single store transaction that
// serializes concurrent spends for the same child.
func (s *Service) Spend(ctx context.Context, childID uuid.UUID, amount int64, note string, actor Actor) (*Entry, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("spend amount must be positive: %w", ErrInvalidAmount)
	}

	tx, err := s.repo.BeginSpend(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("begin spend: %w", err)
	}
	defer tx.Rollback()

	available, err := tx.Available(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("checking balance: %w", err)
	}

	if available < amount {
		return nil, fmt.Errorf("available %d, requested %d: %w", available, amount, ErrInsufficientFunds)
	}

	e := &Entry{
		ChildID: childID,
		Amount:  -amount,
		Type:    TypeSpend,
		Note:    note,
		Actor:   actor,
	}
	if err := tx.CreateEntry(ctx, e); err != nil {
		return nil, fmt.Errorf("creating spend entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit spend: %w", err)
	}

	return e, nil
}

// Ledger returns a child's entries, newest first.
func (s *Service) Ledger(ctx context.Context, childID uuid.UUID) ([]*Entry, error) {
	return s.repo.ListEntriesByChild(ctx, childID)
}

// Balance recomputes a child's balance from the full entry history on
// every call. No running total is persisted anywhere; the entry log is
// the only source of truth.
func (s *Service) Balance(ctx context.Context, childID uuid.UUID) (Balance, error) {
	entries, err := s.repo.ListEntriesByChild(ctx, childID)
	if err != nil {
		return Balance{}, err
	}

	return balanceOf(entries), nil
}

// FindPayoutForWeek looks up the payout entry for the idempotency key
// (childID, familyID, weekStart), returning ErrNotFound when absent.
func (s *Service) FindPayoutForWeek(ctx context.Context, childID, familyID uuid.UUID, weekStart string) (*Entry, error) {
	return s.repo.FindPayoutForWeek(ctx, childID, familyID, weekStart)
}

func balanceOf(entries []*Entry) Balance {
	var b Balance

	for _, e := range entries {
		b.Available += e.Amount

		if e.Type == TypeReserve || e.Type == TypeRelease {
			// Reserves are negative amounts, so negating the running
			// sum yields the outstanding reservation.
			b.Reserved -= e.Amount
		}
	}

	return b
}
