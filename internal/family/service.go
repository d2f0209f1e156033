package family

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=family
type Repository interface {
	CreateFamily(ctx context.Context, f *Family) error
	GetFamily(ctx context.Context, id uuid.UUID) (*Family, error)
	ListFamilies(ctx context.Context) ([]*Family, error)

	CreateChild(ctx context.Context, c *Child) error
	ListChildren(ctx context.Context, familyID uuid.UUID) ([]*Child, error)

	CreateChore(ctx context.Context, c *Chore) error
	ListChores(ctx context.Context, familyID uuid.UUID) ([]*Chore, error)

	CreateCompletion(ctx context.Context, c *Completion) error
	GetCompletion(ctx context.Context, id uuid.UUID) (*Completion, error)
	UpdateCompletionStatus(ctx context.Context, id uuid.UUID, status CompletionStatus) error
	ListCompletionsForChildInRange(ctx context.Context, childID uuid.UUID, start, end string) ([]*Completion, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateFamily(ctx context.Context, name string) (*Family, error) {
	f := &Family{Name: name}
	if err := s.repo.CreateFamily(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *Service) GetFamily(ctx context.Context, id uuid.UUID) (*Family, error) {
	return s.repo.GetFamily(ctx, id)
}

func (s *Service) ListFamilies(ctx context.Context) ([]*Family, error) {
	return s.repo.ListFamilies(ctx)
}

func (s *Service) AddChild(ctx context.Context, familyID uuid.UUID, name string) (*Child, error) {
	c := &Child{FamilyID: familyID, Name: name}
	if err := s.repo.CreateChild(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) ListChildren(ctx context.Context, familyID uuid.UUID) ([]*Child, error) {
	return s.repo.ListChildren(ctx, familyID)
}

func (s *Service) CreateChore(ctx context.Context, familyID uuid.UUID, name string, value int64) (*Chore, error) {
	c := &Chore{FamilyID: familyID, Name: name, Value: value}
	if err := s.repo.CreateChore(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) ListChores(ctx context.Context, familyID uuid.UUID) ([]*Chore, error) {
	return s.repo.ListChores(ctx, familyID)
}

// MarkDone records a pending completion awaiting parent review.
func (s *Service) MarkDone(ctx context.Context, choreID, childID uuid.UUID, date string) (*Completion, error) {
	c := &Completion{
		ChoreID: choreID,
		ChildID: childID,
		Date:    date,
		Status:  StatusPending,
	}
	if err := s.repo.CreateCompletion(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Approve(ctx context.Context, completionID uuid.UUID) error {
	if _, err := s.repo.GetCompletion(ctx, completionID); err != nil {
		return err
	}

	return s.repo.UpdateCompletionStatus(ctx, completionID, StatusApproved)
}

func (s *Service) Reject(ctx context.Context, completionID uuid.UUID) error {
	if _, err := s.repo.GetCompletion(ctx, completionID); err != nil {
		return err
	}

	return s.repo.UpdateCompletionStatus(ctx, completionID, StatusRejected)
}

// ListCompletionsForChildInRange returns all completions, any status, for
// the child with date in [start, end] inclusive.
func (s *Service) ListCompletionsForChildInRange(ctx context.Context, childID uuid.UUID, start, end string) ([]*Completion, error) {
	return s.repo.ListCompletionsForChildInRange(ctx, childID, start, end)
}
