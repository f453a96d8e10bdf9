package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/store"
	"github.com/msagdeev/go-fit-tracker/models"
)

// foodLogService implements [FoodLogService]. Creating a log derives the
// nutrition totals from the referenced catalog entry and freezes them on the
// record.
type foodLogService struct {
	foodLogs store.FoodLogRepository
	users    store.UserRepository
	foods    store.FoodRepository
	logger   *logger.Logger
}

// NewFoodLogService constructs a [FoodLogService] backed by the given
// repositories.
func NewFoodLogService(
	foodLogs store.FoodLogRepository,
	users store.UserRepository,
	foods store.FoodRepository,
	logger *logger.Logger,
) FoodLogService {
	return &foodLogService{foodLogs: foodLogs, users: users, foods: foods, logger: logger}
}

// CreateFoodLog records a food intake. The referenced user and food must
// exist; calories are the food's per-unit calories scaled by quantity and
// rounded to the nearest integer, while the macro totals keep full
// precision. Returns [ErrUserNotFound], [ErrFoodNotFound] or
// [ErrValidation].
func (s *foodLogService) CreateFoodLog(ctx context.Context, create models.FoodLogCreateRequest) (models.FoodLog, error) {
	log := logger.FromContext(ctx).With().Str("func", "CreateFoodLog").Logger()

	if create.Quantity <= 0 {
		return models.FoodLog{}, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if create.Date.IsZero() {
		return models.FoodLog{}, fmt.Errorf("%w: date is required", ErrValidation)
	}

	if _, err := s.users.FindUserByID(ctx, create.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.FoodLog{}, ErrUserNotFound
		}
		return models.FoodLog{}, err
	}

	food, err := s.foods.FindFoodByID(ctx, create.FoodID)
	if err != nil {
		if errors.Is(err, store.ErrFoodNotFound) {
			return models.FoodLog{}, ErrFoodNotFound
		}
		return models.FoodLog{}, err
	}

	foodID := food.FoodID
	foodLog := models.FoodLog{
		UserID:        create.UserID,
		FoodID:        &foodID,
		Date:          create.Date,
		Quantity:      create.Quantity,
		Calories:      int(math.Round(float64(food.Calories) * create.Quantity)),
		Protein:       food.Protein * create.Quantity,
		Fat:           food.Fat * create.Quantity,
		Carbohydrates: food.Carbohydrates * create.Quantity,
	}

	created, err := s.foodLogs.CreateFoodLog(ctx, foodLog)
	if err != nil {
		return models.FoodLog{}, err
	}
	log.Info().Int64("user_id", created.UserID).Int64("foodlog_id", created.FoodLogID).Msg("food log created")

	return created, nil
}

// ListFoodLogs returns every food-intake record of one user with catalog
// names joined in. Returns [ErrUserNotFound] when the user does not exist.
func (s *foodLogService) ListFoodLogs(ctx context.Context, userID int64) ([]models.FoodLogEntry, error) {
	if _, err := s.users.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.foodLogs.ListFoodLogsForUser(ctx, userID)
}
