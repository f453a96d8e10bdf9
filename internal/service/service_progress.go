package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/store"
	"github.com/msagdeev/go-fit-tracker/models"
)

// progressService implements [ProgressService] on top of the progress
// repository.
type progressService struct {
	progress store.ProgressRepository
	users    store.UserRepository
	logger   *logger.Logger
}

// NewProgressService constructs a [ProgressService] backed by the given
// repositories.
func NewProgressService(progress store.ProgressRepository, users store.UserRepository, logger *logger.Logger) ProgressService {
	return &progressService{progress: progress, users: users, logger: logger}
}

// CreateProgress records a weight/BMI/calorie check-in. The BMI value is
// stored as supplied; the server does not recompute it. Returns
// [ErrUserNotFound] or [ErrValidation].
func (s *progressService) CreateProgress(ctx context.Context, create models.ProgressCreateRequest) (models.Progress, error) {
	log := logger.FromContext(ctx).With().Str("func", "CreateProgress").Logger()

	switch {
	case create.Weight <= 0:
		return models.Progress{}, fmt.Errorf("%w: weight must be positive", ErrValidation)
	case create.BMI <= 0:
		return models.Progress{}, fmt.Errorf("%w: bmi must be positive", ErrValidation)
	case create.CalorieIntake < 0:
		return models.Progress{}, fmt.Errorf("%w: calorie intake must not be negative", ErrValidation)
	case create.Date.IsZero():
		return models.Progress{}, fmt.Errorf("%w: date is required", ErrValidation)
	}

	if _, err := s.users.FindUserByID(ctx, create.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Progress{}, ErrUserNotFound
		}
		return models.Progress{}, err
	}

	progress := models.Progress{
		UserID:        create.UserID,
		Date:          create.Date,
		Weight:        create.Weight,
		BMI:           create.BMI,
		CalorieIntake: create.CalorieIntake,
	}

	created, err := s.progress.CreateProgress(ctx, progress)
	if err != nil {
		return models.Progress{}, err
	}
	log.Info().Int64("user_id", created.UserID).Int64("progress_id", created.ProgressID).Msg("progress recorded")

	return created, nil
}

// ListProgress returns every check-in of one user ordered by date. Returns
// [ErrUserNotFound] when the user does not exist.
func (s *progressService) ListProgress(ctx context.Context, userID int64) ([]models.Progress, error) {
	if _, err := s.users.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.progress.ListProgressForUser(ctx, userID)
}
