package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"piggybank/internal/ledger"
)

// Postgres error code for a unique constraint violation.
const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanEntry reads a ledger entry row from the scanner.
// Expected column order: id, child_id, amount, type, note, family_id, week_start, saver_id, actor_role, actor_id, actor_name, actor_email, created_at
func scanEntry(s scanner) (*ledger.Entry, error) {
	var e ledger.Entry

	var typeStr, roleStr string

	var weekStart sql.NullTime

	var actorName, actorEmail sql.NullString

	if err := s.Scan(
		&e.ID, &e.ChildID, &e.Amount, &typeStr, &e.Note,
		&e.FamilyID, &weekStart, &e.SaverID,
		&roleStr, &e.Actor.ID, &actorName, &actorEmail,
		&e.CreatedAt,
	); err != nil {
		return nil, err
	}

	e.Type = ledger.EntryType(typeStr)
	e.Actor.Role = ledger.Role(roleStr)
	e.Actor.Name = actorName.String
	e.Actor.Email = actorEmail.String

	if weekStart.Valid {
		e.WeekStart = weekStart.Time.Format(time.DateOnly)
	}

	return &e, nil
}

const selectEntryColumns = `
	id, child_id, amount, type, note, family_id, week_start, saver_id,
	actor_role, actor_id, actor_name, actor_email, created_at
`

const insertEntryQuery = `
	INSERT INTO ledger_entries (child_id, amount, type, note, family_id, week_start, saver_id, actor_role, actor_id, actor_name, actor_email, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
	RETURNING id, created_at
`

func insertEntry(ctx context.Context, q interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}, e *ledger.Entry,
) error {
	err := q.QueryRowContext(ctx, insertEntryQuery,
		e.ChildID,
		e.Amount,
		e.Type,
		e.Note,
		e.FamilyID,
		nullDate(e.WeekStart),
		e.SaverID,
		e.Actor.Role,
		e.Actor.ID,
		nullString(e.Actor.Name),
		nullString(e.Actor.Email),
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("creating ledger entry: %w", ledger.ErrDuplicatePayout)
		}

		return fmt.Errorf("creating ledger entry: %w", err)
	}

	return nil
}

func (s *Store) CreateEntry(ctx context.Context, e *ledger.Entry) error {
	return insertEntry(ctx, s.db, e)
}

func (s *Store) ListEntriesByChild(ctx context.Context, childID uuid.UUID) ([]*ledger.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM ledger_entries
		WHERE child_id = $1
		ORDER BY created_at DESC, seq DESC`

	rows, err := s.db.QueryContext(ctx, query, childID)
	if err != nil {
		return nil, fmt.Errorf("listing ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*ledger.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ledger entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger entries: %w", err)
	}

	return entries, nil
}

func (s *Store) FindPayoutForWeek(ctx context.Context, childID, familyID uuid.UUID, weekStart string) (*ledger.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM ledger_entries
		WHERE child_id = $1 AND family_id = $2 AND week_start = $3 AND type = 'payout'`

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, childID, familyID, weekStart))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("finding payout: %w", err)
	}

	return e, nil
}

// spendLockKey derives the advisory lock key for a child's spend path.
func spendLockKey(childID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte(childID.String()))

	return int64(h.Sum64())
}

type spendTx struct {
	tx *sql.Tx
}

// BeginSpend opens a transaction and takes a per-child advisory lock, so
// the balance check and the entry insert cannot interleave with another
// spend for the same child.
func (s *Store) BeginSpend(ctx context.Context, childID uuid.UUID) (ledger.SpendTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning spend tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", spendLockKey(childID)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring spend lock: %w", err)
	}

	return &spendTx{tx: dbTx}, nil
}

func (stx *spendTx) Commit() error   { return stx.tx.Commit() }
func (stx *spendTx) Rollback() error { return stx.tx.Rollback() }

func (stx *spendTx) Available(ctx context.Context, childID uuid.UUID) (int64, error) {
	var available int64

	query := `SELECT COALESCE(SUM(amount), 0) FROM ledger_entries WHERE child_id = $1`
	if err := stx.tx.QueryRowContext(ctx, query, childID).Scan(&available); err != nil {
		return 0, fmt.Errorf("summing balance: %w", err)
	}

	return available, nil
}

func (stx *spendTx) CreateEntry(ctx context.Context, e *ledger.Entry) error {
	return insertEntry(ctx, stx.tx, e)
}

func nullDate(s string) any {
	if s == "" {
		return nil
	}

	return s
}

func nullString(s string) any {
	if s == "" {
		return nil
	}

	return s
}
