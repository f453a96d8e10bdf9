package service

import (
	"context"

	"github.com/msagdeev/go-fit-tracker/internal/adapter"
	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/utils"
	"github.com/msagdeev/go-fit-tracker/models"
)

type clientProgressService struct {
	adapter adapter.ServerAdapter
	session *Session
	logger  *logger.Logger
}

func NewClientProgressService(serverAdapter adapter.ServerAdapter, session *Session, logger *logger.Logger) ClientProgressService {
	return &clientProgressService{adapter: serverAdapter, session: session, logger: logger}
}

// Record submits a check-in for date. BMI is computed locally from the given
// weight and the profile height; the server stores it as supplied. The
// calorie intake is the caller's total for the day, typically taken from
// [ClientFoodLogService.DailySummary].
func (p *clientProgressService) Record(ctx context.Context, date models.Date, weight float64, calorieIntake int) (models.Progress, error) {
	user, ok := p.session.User()
	if !ok {
		return models.Progress{}, ErrNotLoggedIn
	}

	return p.adapter.CreateProgress(ctx, models.ProgressCreateRequest{
		UserID:        user.UserID,
		Date:          date,
		Weight:        weight,
		BMI:           utils.CalculateBMI(weight, user.Height),
		CalorieIntake: calorieIntake,
	})
}

// List returns every check-in of the logged-in user.
func (p *clientProgressService) List(ctx context.Context) ([]models.Progress, error) {
	user, ok := p.session.User()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	return p.adapter.ListProgress(ctx, user.UserID)
}
