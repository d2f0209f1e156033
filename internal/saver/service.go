package saver

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=saver
type Repository interface {
	CreateSaver(ctx context.Context, s *Saver) error
	GetSaver(ctx context.Context, id uuid.UUID) (*Saver, error)
	ListSaversByChild(ctx context.Context, childID uuid.UUID) ([]*Saver, error)
	UpdateSaver(ctx context.Context, s *Saver) error
	DeleteSaver(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ChildID     uuid.UUID
	Name        string
	Description string
	ImageURL    string
	Target      int64
	IsGoal      bool
	Allocation  int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Saver, error) {
	if params.Allocation < 0 || params.Allocation > 100 {
		return nil, ErrInvalidAllocation
	}

	allocation := params.Allocation
	if params.IsGoal {
		capped, err := s.capAllocation(ctx, params.ChildID, uuid.Nil, allocation)
		if err != nil {
			return nil, err
		}

		allocation = capped
	}

	item := &Saver{
		ChildID:     params.ChildID,
		Name:        params.Name,
		Description: params.Description,
		ImageURL:    params.ImageURL,
		Target:      params.Target,
		IsGoal:      params.IsGoal,
		Allocation:  allocation,
	}
	if err := s.repo.CreateSaver(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

type UpdateParams struct {
	Name        *string
	Description *string
	ImageURL    *string
	Target      *int64
	IsGoal      *bool
	Allocation  *int
}

// Update applies the given fields. Whenever the resulting item is an
// active goal, its allocation is capped so the child's goals never sum
// past 100 percent.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Saver, error) {
	item, err := s.repo.GetSaver(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		item.Name = *params.Name
	}

	if params.Description != nil {
		item.Description = *params.Description
	}

	if params.ImageURL != nil {
		item.ImageURL = *params.ImageURL
	}

	if params.Target != nil {
		item.Target = *params.Target
	}

	if params.IsGoal != nil {
		item.IsGoal = *params.IsGoal
	}

	if params.Allocation != nil {
		if *params.Allocation < 0 || *params.Allocation > 100 {
			return nil, ErrInvalidAllocation
		}

		item.Allocation = *params.Allocation
	}

	if item.IsGoal {
		capped, err := s.capAllocation(ctx, item.ChildID, item.ID, item.Allocation)
		if err != nil {
			return nil, err
		}

		item.Allocation = capped
	}

	if err := s.repo.UpdateSaver(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Saver, error) {
	return s.repo.GetSaver(ctx, id)
}

func (s *Service) ListByChild(ctx context.Context, childID uuid.UUID) ([]*Saver, error) {
	return s.repo.ListSaversByChild(ctx, childID)
}

// ListActiveGoals returns the child's savers that currently take a cut of
// incoming credits.
func (s *Service) ListActiveGoals(ctx context.Context, childID uuid.UUID) ([]*Saver, error) {
	savers, err := s.repo.ListSaversByChild(ctx, childID)
	if err != nil {
		return nil, err
	}

	var goals []*Saver

	for _, item := range savers {
		if item.IsGoal && item.Allocation > 0 && !item.Completed {
			goals = append(goals, item)
		}
	}

	return goals, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteSaver(ctx, id)
}

// capAllocation bounds requested so that, together with the child's other
// active goals, the total never exceeds 100.
func (s *Service) capAllocation(ctx context.Context, childID, selfID uuid.UUID, requested int) (int, error) {
	savers, err := s.repo.ListSaversByChild(ctx, childID)
	if err != nil {
		return 0, fmt.Errorf("listing savers: %w", err)
	}

	others := 0

	for _, item := range savers {
		if item.ID == selfID || !item.IsGoal {
			continue
		}

		others += item.Allocation
	}

	remaining := 100 - others
	if remaining < 0 {
		remaining = 0
	}

	if requested > remaining {
		return remaining, nil
	}

	return requested, nil
}
