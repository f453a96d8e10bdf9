package service

import (
	"context"

	"github.com/msagdeev/go-fit-tracker/internal/adapter"
	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/models"
)

type clientFoodLogService struct {
	adapter adapter.ServerAdapter
	session *Session
	logger  *logger.Logger
}

func NewClientFoodLogService(serverAdapter adapter.ServerAdapter, session *Session, logger *logger.Logger) ClientFoodLogService {
	return &clientFoodLogService{adapter: serverAdapter, session: session, logger: logger}
}

// Log records quantity units of the given catalog food on date for the
// logged-in user. The server derives and freezes the nutrition totals.
func (f *clientFoodLogService) Log(ctx context.Context, foodID int64, quantity float64, date models.Date) (models.FoodLog, error) {
	user, ok := f.session.User()
	if !ok {
		return models.FoodLog{}, ErrNotLoggedIn
	}

	return f.adapter.CreateFoodLog(ctx, models.FoodLogCreateRequest{
		UserID:   user.UserID,
		FoodID:   foodID,
		Quantity: quantity,
		Date:     date,
	})
}

// List returns every intake record of the logged-in user.
func (f *clientFoodLogService) List(ctx context.Context) ([]models.FoodLogEntry, error) {
	user, ok := f.session.User()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	return f.adapter.ListFoodLogs(ctx, user.UserID)
}

// DailySummary sums the frozen nutrition totals of everything logged on one
// day. The aggregation happens locally over the full listing.
func (f *clientFoodLogService) DailySummary(ctx context.Context, date models.Date) (models.NutritionSummary, error) {
	entries, err := f.List(ctx)
	if err != nil {
		return models.NutritionSummary{}, err
	}

	summary := models.NutritionSummary{Date: date}
	for _, entry := range entries {
		if entry.Date.String() != date.String() {
			continue
		}
		summary.Entries++
		summary.Calories += entry.Calories
		summary.Protein += entry.Protein
		summary.Fat += entry.Fat
		summary.Carbohydrates += entry.Carbohydrates
	}

	return summary, nil
}
