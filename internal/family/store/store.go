package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"piggybank/internal/family"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateFamily(ctx context.Context, f *family.Family) error {
	query := `
		INSERT INTO families (name, created_at)
		VALUES ($1, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, f.Name).Scan(&f.ID, &f.CreatedAt); err != nil {
		return fmt.Errorf("creating family: %w", err)
	}

	return nil
}

func (s *Store) GetFamily(ctx context.Context, id uuid.UUID) (*family.Family, error) {
	var f family.Family

	query := `SELECT id, name, created_at FROM families WHERE id = $1`
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.Name, &f.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, family.ErrNotFound
		}

		return nil, fmt.Errorf("getting family: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id FROM children WHERE family_id = $1 ORDER BY created_at ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("listing family children: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var childID uuid.UUID
		if err := rows.Scan(&childID); err != nil {
			return nil, fmt.Errorf("scanning child id: %w", err)
		}

		f.ChildIDs = append(f.ChildIDs, childID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating child ids: %w", err)
	}

	return &f, nil
}

func (s *Store) ListFamilies(ctx context.Context) ([]*family.Family, error) {
	query := `SELECT id, name, created_at FROM families ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing families: %w", err)
	}
	defer rows.Close()

	var families []*family.Family

	for rows.Next() {
		var f family.Family
		if err := rows.Scan(&f.ID, &f.Name, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning family: %w", err)
		}

		families = append(families, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating families: %w", err)
	}

	return families, nil
}

func (s *Store) CreateChild(ctx context.Context, c *family.Child) error {
	query := `
		INSERT INTO children (family_id, name, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, c.FamilyID, c.Name).Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("creating child: %w", err)
	}

	return nil
}

func (s *Store) ListChildren(ctx context.Context, familyID uuid.UUID) ([]*family.Child, error) {
	query := `
		SELECT id, family_id, name, created_at
		FROM children
		WHERE family_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, familyID)
	if err != nil {
		return nil, fmt.Errorf("listing children: %w", err)
	}
	defer rows.Close()

	var children []*family.Child

	for rows.Next() {
		var c family.Child
		if err := rows.Scan(&c.ID, &c.FamilyID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning child: %w", err)
		}

		children = append(children, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating children: %w", err)
	}

	return children, nil
}

func (s *Store) CreateChore(ctx context.Context, c *family.Chore) error {
	query := `
		INSERT INTO chores (family_id, name, value, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, c.FamilyID, c.Name, c.Value).Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("creating chore: %w", err)
	}

	return nil
}

func (s *Store) ListChores(ctx context.Context, familyID uuid.UUID) ([]*family.Chore, error) {
	query := `
		SELECT id, family_id, name, value, created_at
		FROM chores
		WHERE family_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, familyID)
	if err != nil {
		return nil, fmt.Errorf("listing chores: %w", err)
	}
	defer rows.Close()

	var chores []*family.Chore

	for rows.Next() {
		var c family.Chore
		if err := rows.Scan(&c.ID, &c.FamilyID, &c.Name, &c.Value, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning chore: %w", err)
		}

		chores = append(chores, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chores: %w", err)
	}

	return chores, nil
}

func (s *Store) CreateCompletion(ctx context.Context, c *family.Completion) error {
	query := `
		INSERT INTO completions (chore_id, child_id, date, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, c.ChoreID, c.ChildID, c.Date, c.Status).Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("creating completion: %w", err)
	}

	return nil
}

func scanCompletion(row interface{ Scan(dest ...any) error }) (*family.Completion, error) {
	var c family.Completion

	var date time.Time

	var statusStr string

	if err := row.Scan(&c.ID, &c.ChoreID, &c.ChildID, &date, &statusStr, &c.CreatedAt); err != nil {
		return nil, err
	}

	c.Date = date.Format(time.DateOnly)
	c.Status = family.CompletionStatus(statusStr)

	return &c, nil
}

func (s *Store) GetCompletion(ctx context.Context, id uuid.UUID) (*family.Completion, error) {
	query := `
		SELECT id, chore_id, child_id, date, status, created_at
		FROM completions
		WHERE id = $1
	`

	c, err := scanCompletion(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, family.ErrNotFound
		}

		return nil, fmt.Errorf("getting completion: %w", err)
	}

	return c, nil
}

func (s *Store) UpdateCompletionStatus(ctx context.Context, id uuid.UUID, status family.CompletionStatus) error {
	query := `UPDATE completions SET status = $1 WHERE id = $2`

	if _, err := s.db.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("updating completion status: %w", err)
	}

	return nil
}

func (s *Store) ListCompletionsForChildInRange(ctx context.Context, childID uuid.UUID, start, end string) ([]*family.Completion, error) {
	query := `
		SELECT id, chore_id, child_id, date, status, created_at
		FROM completions
		WHERE child_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, childID, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	defer rows.Close()

	var completions []*family.Completion

	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning completion: %w", err)
		}

		completions = append(completions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completions: %w", err)
	}

	return completions, nil
}
