package store

import (
	"context"

	"github.com/msagdeev/go-fit-tracker/models"
)

// UserRepository is the data-access contract for the users table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// FoodRepository is the data-access contract for the read-only food catalog.
type FoodRepository interface {
	ListFoods(ctx context.Context, skip, limit uint64) ([]models.Food, error)
	FindFoodByID(ctx context.Context, foodID int64) (models.Food, error)
	FoodExistsByName(ctx context.Context, name string) (bool, error)
	CreateFood(ctx context.Context, food models.Food) (models.Food, error)
}

// FoodLogRepository is the data-access contract for food-intake records.
type FoodLogRepository interface {
	CreateFoodLog(ctx context.Context, foodLog models.FoodLog) (models.FoodLog, error)
	ListFoodLogsForUser(ctx context.Context, userID int64) ([]models.FoodLogEntry, error)
}

// ProgressRepository is the data-access contract for progress check-ins.
type ProgressRepository interface {
	CreateProgress(ctx context.Context, progress models.Progress) (models.Progress, error)
	ListProgressForUser(ctx context.Context, userID int64) ([]models.Progress, error)
}
