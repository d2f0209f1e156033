package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"piggybank/internal/saver"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSaver(s scanner) (*saver.Saver, error) {
	var item saver.Saver

	var description, imageURL sql.NullString

	if err := s.Scan(
		&item.ID, &item.ChildID, &item.Name, &description, &imageURL,
		&item.Target, &item.IsGoal, &item.Allocation,
		&item.Completed, &item.CompletedAt, &item.CreatedAt,
	); err != nil {
		return nil, err
	}

	item.Description = description.String
	item.ImageURL = imageURL.String

	return &item, nil
}

const selectSaverColumns = `
	id, child_id, name, description, image_url, target, is_goal, allocation,
	completed, completed_at, created_at
`

func (s *Store) CreateSaver(ctx context.Context, item *saver.Saver) error {
	query := `
		INSERT INTO savers (child_id, name, description, image_url, target, is_goal, allocation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		item.ChildID,
		item.Name,
		item.Description,
		item.ImageURL,
		item.Target,
		item.IsGoal,
		item.Allocation,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating saver: %w", err)
	}

	return nil
}

func (s *Store) GetSaver(ctx context.Context, id uuid.UUID) (*saver.Saver, error) {
	query := `SELECT ` + selectSaverColumns + ` FROM savers WHERE id = $1`

	item, err := scanSaver(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, saver.ErrNotFound
		}

		return nil, fmt.Errorf("getting saver: %w", err)
	}

	return item, nil
}

func (s *Store) ListSaversByChild(ctx context.Context, childID uuid.UUID) ([]*saver.Saver, error) {
	query := `SELECT ` + selectSaverColumns + `
		FROM savers
		WHERE child_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, childID)
	if err != nil {
		return nil, fmt.Errorf("listing savers: %w", err)
	}
	defer rows.Close()

	var savers []*saver.Saver

	for rows.Next() {
		item, err := scanSaver(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning saver: %w", err)
		}

		savers = append(savers, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating savers: %w", err)
	}

	return savers, nil
}

func (s *Store) UpdateSaver(ctx context.Context, item *saver.Saver) error {
	query := `
		UPDATE savers
		SET name = $1, description = $2, image_url = $3, target = $4,
		    is_goal = $5, allocation = $6, completed = $7, completed_at = $8
		WHERE id = $9
	`

	_, err := s.db.ExecContext(ctx, query,
		item.Name,
		item.Description,
		item.ImageURL,
		item.Target,
		item.IsGoal,
		item.Allocation,
		item.Completed,
		item.CompletedAt,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating saver: %w", err)
	}

	return nil
}

func (s *Store) DeleteSaver(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM savers WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting saver: %w", err)
	}

	return nil
}
