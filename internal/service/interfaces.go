package service

import (
	"context"

	"github.com/msagdeev/go-fit-tracker/models"
)

// AuthService issues and verifies the bearer tokens used by the HTTP API.
type AuthService interface {
	CreateToken(ctx context.Context, userID int64) (models.Token, error)
	ParseToken(ctx context.Context, signedToken string) (int64, error)
}

// UserService covers account lifecycle: registration, authentication and
// profile management.
type UserService interface {
	Register(ctx context.Context, register models.RegisterRequest) (models.User, error)
	Authenticate(ctx context.Context, email string, password string) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdateRequest) (models.User, error)
}

// FoodService serves the shared food catalog.
type FoodService interface {
	ListFoods(ctx context.Context, skip, limit uint64) ([]models.Food, error)
	SeedFoods(ctx context.Context) (int, error)
}

// FoodLogService records and lists food intake with derived nutrition.
type FoodLogService interface {
	CreateFoodLog(ctx context.Context, create models.FoodLogCreateRequest) (models.FoodLog, error)
	ListFoodLogs(ctx context.Context, userID int64) ([]models.FoodLogEntry, error)
}

// ProgressService records and lists weight/BMI/calorie check-ins.
type ProgressService interface {
	CreateProgress(ctx context.Context, create models.ProgressCreateRequest) (models.Progress, error)
	ListProgress(ctx context.Context, userID int64) ([]models.Progress, error)
}
