package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/msagdeev/go-fit-tracker/internal/config"
	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/models"
)

// openMigratedSQLite opens a throwaway SQLite database and applies the real
// migrations, so the repositories run against the exact schema the server
// deploys. Keeps column renames in the SQL from drifting apart from the
// queries unnoticed.
func openMigratedSQLite(t *testing.T) *DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "fitness.db")
	db, err := Open(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	if err != nil {
		t.Fatalf("opening sqlite database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err = db.Migrate(); err != nil {
		t.Fatalf("applying migrations: %v", err)
	}

	return db
}

func TestFoodLogRepository_AgainstMigratedSchema(t *testing.T) {
	db := openMigratedSQLite(t)
	ctx := context.Background()

	users := NewUserRepository(db, logger.Nop())
	foods := NewFoodRepository(db, logger.Nop())
	foodLogs := NewFoodLogRepository(db, logger.Nop())

	user, err := users.CreateUser(ctx, models.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		Height:       170,
		Weight:       65,
		Goal:         "Maintain Weight",
	})
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}

	egg, err := foods.CreateFood(ctx, models.Food{
		Name: "Egg", Calories: 78, Protein: 6.3, Fat: 5.3, Carbohydrates: 0.6,
	})
	if err != nil {
		t.Fatalf("creating food: %v", err)
	}

	created, err := foodLogs.CreateFoodLog(ctx, models.FoodLog{
		UserID:        user.UserID,
		FoodID:        &egg.FoodID,
		Date:          models.NewDate(2026, time.March, 14),
		Quantity:      2,
		Calories:      156,
		Protein:       12.6,
		Fat:           10.6,
		Carbohydrates: 1.2,
	})
	if err != nil {
		t.Fatalf("creating food log: %v", err)
	}
	if created.FoodLogID == 0 {
		t.Error("expected a generated foodlog id")
	}

	entries, err := foodLogs.ListFoodLogsForUser(ctx, user.UserID)
	if err != nil {
		t.Fatalf("listing food logs: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].FoodLogID != created.FoodLogID {
		t.Errorf("expected foodlog id %d, got %d", created.FoodLogID, entries[0].FoodLogID)
	}
	if entries[0].FoodName != "Egg" {
		t.Errorf("expected joined food name Egg, got %q", entries[0].FoodName)
	}
	if entries[0].Calories != 156 {
		t.Errorf("expected frozen calories 156, got %d", entries[0].Calories)
	}
	if entries[0].Date.String() != "2026-03-14" {
		t.Errorf("expected date 2026-03-14, got %s", entries[0].Date)
	}
}

func TestFoodLogRepository_ForeignKeyEnforcedByMigratedSchema(t *testing.T) {
	db := openMigratedSQLite(t)
	ctx := context.Background()

	foodLogs := NewFoodLogRepository(db, logger.Nop())

	_, err := foodLogs.CreateFoodLog(ctx, models.FoodLog{
		UserID:   404,
		Date:     models.Today(),
		Quantity: 1,
	})
	if !errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("expected ErrForeignKeyViolation, got %v", err)
	}
}

func TestProgressRepository_AgainstMigratedSchema(t *testing.T) {
	db := openMigratedSQLite(t)
	ctx := context.Background()

	users := NewUserRepository(db, logger.Nop())
	progress := NewProgressRepository(db, logger.Nop())

	user, err := users.CreateUser(ctx, models.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		Height:       170,
		Weight:       65,
		Goal:         "Maintain Weight",
	})
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}

	created, err := progress.CreateProgress(ctx, models.Progress{
		UserID:        user.UserID,
		Date:          models.NewDate(2026, time.March, 14),
		Weight:        72.5,
		BMI:           25.1,
		CalorieIntake: 1850,
	})
	if err != nil {
		t.Fatalf("creating progress: %v", err)
	}
	if created.ProgressID == 0 {
		t.Error("expected a generated progress id")
	}

	records, err := progress.ListProgressForUser(ctx, user.UserID)
	if err != nil {
		t.Fatalf("listing progress: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].BMI != 25.1 {
		t.Errorf("expected stored BMI 25.1, got %v", records[0].BMI)
	}
}
