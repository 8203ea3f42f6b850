package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tallyapp/tally-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row and returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "testuser-" + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedHabit creates a habit owned by userID and returns the filled domain.Habit.
func SeedHabit(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Habit {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	habit := domain.Habit{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Habit " + uniqueSuffix(),
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO habits (id, user_id, name, created_at, display_order)
		 VALUES ($1, $2, $3, $4, $5)`,
		habit.ID, habit.UserID, habit.Name, habit.CreatedAt, habit.DisplayOrder,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHabit insert habit: %v", err)
	}

	return habit
}

// SeedDailyLog creates a completed log for (habitID, date) and returns it.
func SeedDailyLog(t *testing.T, pool *pgxpool.Pool, habitID uuid.UUID, date time.Time, completed bool) domain.DailyLog {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	log := domain.DailyLog{
		ID:        uuid.New(),
		HabitID:   habitID,
		LogDate:   domain.Date(date),
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO daily_logs (id, habit_id, log_date, completed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		log.ID, log.HabitID, log.LogDate, log.Completed, log.CreatedAt, log.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDailyLog insert log: %v", err)
	}

	return log
}
