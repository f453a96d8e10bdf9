package service

import (
	"context"
	"testing"
	"time"

	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedInSession(userID int64) *Session {
	s := NewSession()
	s.Set(models.User{UserID: userID, Height: 170}, "token")
	return s
}

func TestClientFoodLog_Log_NotLoggedIn(t *testing.T) {
	svc := NewClientFoodLogService(&mockServerAdapter{}, NewSession(), logger.Nop())

	_, err := svc.Log(context.Background(), 1, 1, models.Today())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientFoodLog_Log_BuildsRequestFromSession(t *testing.T) {
	var sent models.FoodLogCreateRequest
	serverAdapter := &mockServerAdapter{
		createFoodLogFn: func(_ context.Context, create models.FoodLogCreateRequest) (models.FoodLog, error) {
			sent = create
			return models.FoodLog{FoodLogID: 1, UserID: create.UserID}, nil
		},
	}
	svc := NewClientFoodLogService(serverAdapter, loggedInSession(7), logger.Nop())

	date := models.NewDate(2026, time.March, 14)
	_, err := svc.Log(context.Background(), 3, 2.5, date)
	require.NoError(t, err)

	assert.Equal(t, int64(7), sent.UserID, "owner must come from the session")
	assert.Equal(t, int64(3), sent.FoodID)
	assert.Equal(t, 2.5, sent.Quantity)
	assert.Equal(t, date.String(), sent.Date.String())
}

func TestClientFoodLog_DailySummary(t *testing.T) {
	day := models.NewDate(2026, time.March, 14)
	otherDay := models.NewDate(2026, time.March, 15)

	entries := []models.FoodLogEntry{
		{FoodLog: models.FoodLog{Date: day, Calories: 156, Protein: 12.6, Fat: 10.6, Carbohydrates: 1.2}},
		{FoodLog: models.FoodLog{Date: day, Calories: 105, Protein: 1.3, Fat: 0.3, Carbohydrates: 27}},
		{FoodLog: models.FoodLog{Date: otherDay, Calories: 999, Protein: 99, Fat: 99, Carbohydrates: 99}},
	}

	serverAdapter := &mockServerAdapter{
		listFoodLogsFn: func(_ context.Context, _ int64) ([]models.FoodLogEntry, error) {
			return entries, nil
		},
	}
	svc := NewClientFoodLogService(serverAdapter, loggedInSession(7), logger.Nop())

	summary, err := svc.DailySummary(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Entries, "entries from other days must be excluded")
	assert.Equal(t, 261, summary.Calories)
	assert.InDelta(t, 13.9, summary.Protein, 1e-9)
	assert.InDelta(t, 10.9, summary.Fat, 1e-9)
	assert.InDelta(t, 28.2, summary.Carbohydrates, 1e-9)
}

func TestClientFoodLog_DailySummary_EmptyDay(t *testing.T) {
	serverAdapter := &mockServerAdapter{
		listFoodLogsFn: func(_ context.Context, _ int64) ([]models.FoodLogEntry, error) {
			return nil, nil
		},
	}
	svc := NewClientFoodLogService(serverAdapter, loggedInSession(7), logger.Nop())

	summary, err := svc.DailySummary(context.Background(), models.Today())
	require.NoError(t, err)
	assert.Zero(t, summary.Entries)
	assert.Zero(t, summary.Calories)
}
