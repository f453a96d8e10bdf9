package service

import (
	"context"
	"testing"
	"time"

	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/store"
	"github.com/msagdeev/go-fit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProgress_Success(t *testing.T) {
	var stored models.Progress
	progress := &mockProgressRepo{
		createProgressFn: func(_ context.Context, p models.Progress) (models.Progress, error) {
			stored = p
			p.ProgressID = 1
			return p, nil
		},
	}
	users := &mockUserRepo{findUserByIDFn: foundUser(1)}
	svc := NewProgressService(progress, users, logger.Nop())

	create := models.ProgressCreateRequest{
		UserID:        1,
		Date:          models.NewDate(2026, time.March, 14),
		Weight:        72.5,
		BMI:           23.7,
		CalorieIntake: 1850,
	}

	created, err := svc.CreateProgress(context.Background(), create)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ProgressID)
	assert.Equal(t, 23.7, stored.BMI, "BMI must be stored exactly as supplied")
	assert.Equal(t, 1850, stored.CalorieIntake)
}

func TestCreateProgress_Validation(t *testing.T) {
	svc := NewProgressService(&mockProgressRepo{}, &mockUserRepo{}, logger.Nop())

	valid := models.ProgressCreateRequest{
		UserID:        1,
		Date:          models.Today(),
		Weight:        70,
		BMI:           22.9,
		CalorieIntake: 2000,
	}

	tests := []struct {
		name   string
		mutate func(p *models.ProgressCreateRequest)
	}{
		{"zero weight", func(p *models.ProgressCreateRequest) { p.Weight = 0 }},
		{"zero bmi", func(p *models.ProgressCreateRequest) { p.BMI = 0 }},
		{"negative calorie intake", func(p *models.ProgressCreateRequest) { p.CalorieIntake = -100 }},
		{"missing date", func(p *models.ProgressCreateRequest) { p.Date = models.Date{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			create := valid
			tt.mutate(&create)

			_, err := svc.CreateProgress(context.Background(), create)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCreateProgress_ZeroCalorieIntakeAllowed(t *testing.T) {
	progress := &mockProgressRepo{
		createProgressFn: func(_ context.Context, p models.Progress) (models.Progress, error) {
			return p, nil
		},
	}
	users := &mockUserRepo{findUserByIDFn: foundUser(1)}
	svc := NewProgressService(progress, users, logger.Nop())

	create := models.ProgressCreateRequest{
		UserID: 1,
		Date:   models.Today(),
		Weight: 70,
		BMI:    22.9,
	}

	_, err := svc.CreateProgress(context.Background(), create)
	assert.NoError(t, err, "a fasting day with zero intake is a valid check-in")
}

func TestCreateProgress_UserNotFound(t *testing.T) {
	users := &mockUserRepo{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := NewProgressService(&mockProgressRepo{}, users, logger.Nop())

	create := models.ProgressCreateRequest{
		UserID: 404,
		Date:   models.Today(),
		Weight: 70,
		BMI:    22.9,
	}

	_, err := svc.CreateProgress(context.Background(), create)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListProgress_Success(t *testing.T) {
	records := []models.Progress{{ProgressID: 1, UserID: 1, Weight: 72.5}}

	users := &mockUserRepo{findUserByIDFn: foundUser(1)}
	progress := &mockProgressRepo{
		listProgressForUserFn: func(_ context.Context, userID int64) ([]models.Progress, error) {
			assert.Equal(t, int64(1), userID)
			return records, nil
		},
	}
	svc := NewProgressService(progress, users, logger.Nop())

	got, err := svc.ListProgress(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestListProgress_UserNotFound(t *testing.T) {
	users := &mockUserRepo{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := NewProgressService(&mockProgressRepo{}, users, logger.Nop())

	_, err := svc.ListProgress(context.Background(), 404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
