// Package habit implements the Habit repository using PostgreSQL.
// All read and write operations are scoped by owner: a habit that exists but
// belongs to another user is reported as domain.ErrNotFound.
package habit

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tallyapp/tally-backend/internal/adapter/postgres"
	"github.com/tallyapp/tally-backend/internal/domain"
)

// Repo provides habit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new habit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var habitColumns = []string{
	"id", "user_id", "name", "description", "color",
	"created_at", "archived", "archived_at", "display_order",
}

const createSQL = `
INSERT INTO habits (id, user_id, name, description, color, created_at, display_order)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, name, description, color, created_at, archived, archived_at, display_order`

// archiveSQL sets archived_at only on the false→true transition, so the
// timestamp survives repeated archive calls.
const archiveSQL = `
UPDATE habits
SET archived = true, archived_at = COALESCE(archived_at, $3)
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, name, description, color, created_at, archived, archived_at, display_order`

const setDisplayOrderSQL = `
UPDATE habits SET display_order = $3
WHERE id = $1 AND user_id = $2`

const deleteSQL = `DELETE FROM habits WHERE id = $1 AND user_id = $2`

// GetByIDAndOwner returns a habit by primary key, scoped to its owner.
func (r *Repo) GetByIDAndOwner(ctx context.Context, habitID, userID uuid.UUID) (*domain.Habit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(habitColumns...).
		From("habits").
		Where(sq.Eq{"id": habitID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build habit select: %w", err)
	}

	h, err := scanHabit(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "habit", habitID)
	}
	return h, nil
}

// List returns all habits of a user ordered by display_order, then creation
// time. Archived habits are excluded unless includeArchived is set.
// Returns an empty slice (not nil) when the user has no habits.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Habit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Select(habitColumns...).
		From("habits").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("display_order ASC", "created_at ASC")
	if !includeArchived {
		builder = builder.Where(sq.Eq{"archived": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build habit list: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer rows.Close()

	habits := []*domain.Habit{}
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("list habits: %w", err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	return habits, nil
}

// Create inserts a new habit and returns the persisted domain.Habit.
func (r *Repo) Create(ctx context.Context, h *domain.Habit) (*domain.Habit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanHabit(q.QueryRow(ctx, createSQL,
		h.ID, h.UserID, h.Name, h.Description, h.Color, h.CreatedAt, h.DisplayOrder))
	if err != nil {
		return nil, postgres.MapError(err, "habit", h.ID)
	}
	return created, nil
}

// Update modifies name, description, and color, scoped to the owner.
// Returns domain.ErrNotFound if the habit is absent or owned by someone else.
func (r *Repo) Update(ctx context.Context, habitID, userID uuid.UUID, name string, description, color *string) (*domain.Habit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Update("habits").
		Set("name", name).
		Set("description", description).
		Set("color", color).
		Where(sq.Eq{"id": habitID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(habitColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build habit update: %w", err)
	}

	h, err := scanHabit(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "habit", habitID)
	}
	return h, nil
}

// Archive marks a habit archived, setting archived_at exactly once.
// Returns domain.ErrNotFound if the habit is absent or owned by someone else.
func (r *Repo) Archive(ctx context.Context, habitID, userID uuid.UUID, archivedAt time.Time) (*domain.Habit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	h, err := scanHabit(q.QueryRow(ctx, archiveSQL, habitID, userID, archivedAt))
	if err != nil {
		return nil, postgres.MapError(err, "habit", habitID)
	}
	return h, nil
}

// SetDisplayOrder updates a single habit's sort key, scoped to the owner.
// Returns domain.ErrNotFound when no row matched.
func (r *Repo) SetDisplayOrder(ctx context.Context, habitID, userID uuid.UUID, order int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setDisplayOrderSQL, habitID, userID, order)
	if err != nil {
		return postgres.MapError(err, "habit", habitID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("habit %s: %w", habitID, domain.ErrNotFound)
	}
	return nil
}

// Delete hard-deletes a habit; logs cascade at the database level.
// Returns domain.ErrNotFound when no row matched.
func (r *Repo) Delete(ctx context.Context, habitID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, habitID, userID)
	if err != nil {
		return postgres.MapError(err, "habit", habitID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("habit %s: %w", habitID, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (*domain.Habit, error) {
	var h domain.Habit
	err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.Description, &h.Color,
		&h.CreatedAt, &h.Archived, &h.ArchivedAt, &h.DisplayOrder)
	if err != nil {
		return nil, fmt.Errorf("scan habit: %w", err)
	}
	return &h, nil
}
