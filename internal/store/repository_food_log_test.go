package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/models"
)

func newTestFoodLogRepo(t *testing.T) (*foodLogRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, raw := newTestDB(t)
	return &foodLogRepository{db: db, logger: logger.Nop()}, mock, raw
}

func TestCreateFoodLog_Success(t *testing.T) {
	repo, mock, raw := newTestFoodLogRepo(t)
	defer raw.Close()

	ctx := context.Background()
	foodID := int64(3)
	foodLog := models.FoodLog{
		UserID:        1,
		FoodID:        &foodID,
		Date:          models.NewDate(2026, time.March, 14),
		Quantity:      2,
		Calories:      156,
		Protein:       12.6,
		Fat:           10.6,
		Carbohydrates: 1.2,
	}

	rows := sqlmock.NewRows([]string{"foodlog_id"}).AddRow(10)

	mock.ExpectQuery("INSERT INTO food_logs").
		WillReturnRows(rows)

	created, err := repo.CreateFoodLog(ctx, foodLog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.FoodLogID != 10 {
		t.Errorf("expected FoodLogID=10, got %d", created.FoodLogID)
	}
	if created.Calories != 156 {
		t.Errorf("expected frozen calories 156, got %d", created.Calories)
	}
}

func TestCreateFoodLog_ForeignKeyViolation(t *testing.T) {
	repo, mock, raw := newTestFoodLogRepo(t)
	defer raw.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO food_logs").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateFoodLog(ctx, models.FoodLog{UserID: 404})
	if !errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("expected ErrForeignKeyViolation, got %v", err)
	}
}

func TestListFoodLogsForUser_Success(t *testing.T) {
	repo, mock, raw := newTestFoodLogRepo(t)
	defer raw.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{
			"foodlog_id", "user_id", "food_id", "date", "quantity",
			"calories", "protein", "fat", "carbohydrates", "food_name",
		}).
		AddRow(1, 1, 3, "2026-03-14", 2.0, 156, 12.6, 10.6, 1.2, "Egg").
		AddRow(2, 1, nil, "2026-03-15", 1.0, 105, 1.3, 0.4, 27.0, "")

	mock.ExpectQuery("SELECT fl.foodlog_id").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	entries, err := repo.ListFoodLogsForUser(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].FoodName != "Egg" {
		t.Errorf("expected joined food name Egg, got %q", entries[0].FoodName)
	}
	if entries[1].FoodID != nil {
		t.Error("expected nil FoodID for orphaned log entry")
	}
	if entries[1].FoodName != "" {
		t.Errorf("expected empty food name for orphaned entry, got %q", entries[1].FoodName)
	}
}

func TestListFoodLogsForUser_QueryError(t *testing.T) {
	repo, mock, raw := newTestFoodLogRepo(t)
	defer raw.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT fl.foodlog_id").
		WithArgs(int64(1)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.ListFoodLogsForUser(ctx, 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected wrapped ErrExecutingQuery, got %v", err)
	}
}
