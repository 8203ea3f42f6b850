// Package dailylog implements the DailyLog repository using PostgreSQL.
// Ownership checks that involve the parent habit use a JOIN, so a log whose
// habit belongs to another user is reported as domain.ErrNotFound.
package dailylog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tallyapp/tally-backend/internal/adapter/postgres"
	"github.com/tallyapp/tally-backend/internal/domain"
)

// Repo provides daily log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new daily log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const logColumns = `id, habit_id, log_date, completed, notes, created_at, updated_at`

const getByIDAndOwnerSQL = `
SELECT l.id, l.habit_id, l.log_date, l.completed, l.notes, l.created_at, l.updated_at
FROM daily_logs l
JOIN habits h ON l.habit_id = h.id
WHERE l.id = $1 AND h.user_id = $2`

const getByHabitAndDateSQL = `
SELECT ` + logColumns + ` FROM daily_logs
WHERE habit_id = $1 AND log_date = $2`

const listByHabitSQL = `
SELECT ` + logColumns + ` FROM daily_logs
WHERE habit_id = $1
ORDER BY log_date ASC`

const listByHabitInRangeSQL = `
SELECT ` + logColumns + ` FROM daily_logs
WHERE habit_id = $1 AND log_date BETWEEN $2 AND $3
ORDER BY log_date ASC`

const createSQL = `
INSERT INTO daily_logs (id, habit_id, log_date, completed, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (habit_id, log_date) DO NOTHING
RETURNING ` + logColumns

const updateSQL = `
UPDATE daily_logs
SET completed = $2, notes = $3, updated_at = $4
WHERE id = $1
RETURNING ` + logColumns

const deleteByIDAndOwnerSQL = `
DELETE FROM daily_logs l
USING habits h
WHERE l.habit_id = h.id AND l.id = $1 AND h.user_id = $2`

// GetByIDAndOwner returns a log by primary key, scoped to the habit's owner.
func (r *Repo) GetByIDAndOwner(ctx context.Context, logID, userID uuid.UUID) (*domain.DailyLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLog(q.QueryRow(ctx, getByIDAndOwnerSQL, logID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "daily_log", logID)
	}
	return l, nil
}

// GetByHabitAndDate returns the unique log for (habit, date), if any.
// Ownership of the habit must already be verified by the caller.
func (r *Repo) GetByHabitAndDate(ctx context.Context, habitID uuid.UUID, date time.Time) (*domain.DailyLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLog(q.QueryRow(ctx, getByHabitAndDateSQL, habitID, domain.Date(date)))
	if err != nil {
		return nil, postgres.MapError(err, "daily_log", habitID)
	}
	return l, nil
}

// ListByHabit returns the habit's full log history in ascending date order.
func (r *Repo) ListByHabit(ctx context.Context, habitID uuid.UUID) ([]*domain.DailyLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByHabitSQL, habitID)
	if err != nil {
		return nil, fmt.Errorf("list daily_logs: %w", err)
	}
	defer rows.Close()

	return collectLogs(rows)
}

// ListByHabitInRange returns logs within [start, end] inclusive, ascending.
func (r *Repo) ListByHabitInRange(ctx context.Context, habitID uuid.UUID, start, end time.Time) ([]*domain.DailyLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByHabitInRangeSQL, habitID, domain.Date(start), domain.Date(end))
	if err != nil {
		return nil, fmt.Errorf("list daily_logs in range: %w", err)
	}
	defer rows.Close()

	return collectLogs(rows)
}

// Create inserts a new log row. A concurrent insert for the same
// (habit, date) surfaces as domain.ErrAlreadyExists. The insert uses
// ON CONFLICT DO NOTHING instead of letting the unique index raise: a raised
// 23505 would abort the enclosing transaction, and the upsert path needs to
// re-read the winning row inside that same transaction.
func (r *Repo) Create(ctx context.Context, l *domain.DailyLog) (*domain.DailyLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanLog(q.QueryRow(ctx, createSQL,
		l.ID, l.HabitID, domain.Date(l.LogDate), l.Completed, l.Notes, l.CreatedAt, l.UpdatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("daily_log %s: %w", l.ID, domain.ErrAlreadyExists)
		}
		return nil, postgres.MapError(err, "daily_log", l.ID)
	}
	return created, nil
}

// Update mutates completed and notes in place, bumping updated_at.
// The row identity (id, habit_id, log_date, created_at) never changes.
func (r *Repo) Update(ctx context.Context, logID uuid.UUID, completed bool, notes *string, updatedAt time.Time) (*domain.DailyLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLog(q.QueryRow(ctx, updateSQL, logID, completed, notes, updatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "daily_log", logID)
	}
	return l, nil
}

// DeleteByIDAndOwner removes a single log, scoped to the habit's owner.
// Returns domain.ErrNotFound when no row matched.
func (r *Repo) DeleteByIDAndOwner(ctx context.Context, logID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteByIDAndOwnerSQL, logID, userID)
	if err != nil {
		return postgres.MapError(err, "daily_log", logID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("daily_log %s: %w", logID, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

type rowIterator interface {
	rowScanner
	Next() bool
	Err() error
}

func scanLog(row rowScanner) (*domain.DailyLog, error) {
	var l domain.DailyLog
	err := row.Scan(&l.ID, &l.HabitID, &l.LogDate, &l.Completed, &l.Notes, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan daily_log: %w", err)
	}
	// Postgres date columns come back as midnight in the session zone;
	// normalize so date comparisons in the service layer are exact.
	l.LogDate = domain.Date(l.LogDate)
	return &l, nil
}

func collectLogs(rows rowIterator) ([]*domain.DailyLog, error) {
	logs := []*domain.DailyLog{}
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily_logs: %w", err)
	}
	return logs, nil
}
