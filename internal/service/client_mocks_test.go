package service

import (
	"context"

	"github.com/msagdeev/go-fit-tracker/models"
)

// mockServerAdapter implements adapter.ServerAdapter for the client service
// tests. Each method field can be overridden per test case; unset methods
// return zero values.
type mockServerAdapter struct {
	token string

	registerFn       func(ctx context.Context, registration models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, email, password string) (models.TokenResponse, error)
	getCurrentUserFn func(ctx context.Context) (models.User, error)
	getUserFn        func(ctx context.Context, userID int64) (models.User, error)
	getUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	updateUserFn     func(ctx context.Context, userID int64, update models.UserUpdateRequest) (models.User, error)
	listFoodsFn      func(ctx context.Context, skip, limit uint64) ([]models.Food, error)
	createFoodLogFn  func(ctx context.Context, create models.FoodLogCreateRequest) (models.FoodLog, error)
	listFoodLogsFn   func(ctx context.Context, userID int64) ([]models.FoodLogEntry, error)
	createProgressFn func(ctx context.Context, create models.ProgressCreateRequest) (models.Progress, error)
	listProgressFn   func(ctx context.Context, userID int64) ([]models.Progress, error)
	seedFoodsFn      func(ctx context.Context) (models.MessageResponse, error)
}

func (m *mockServerAdapter) SetToken(token string) { m.token = token }
func (m *mockServerAdapter) Token() string         { return m.token }

func (m *mockServerAdapter) Register(ctx context.Context, registration models.RegisterRequest) (models.User, error) {
	if m.registerFn == nil {
		return models.User{}, nil
	}
	return m.registerFn(ctx, registration)
}

func (m *mockServerAdapter) Login(ctx context.Context, email, password string) (models.TokenResponse, error) {
	if m.loginFn == nil {
		return models.TokenResponse{}, nil
	}
	return m.loginFn(ctx, email, password)
}

func (m *mockServerAdapter) GetCurrentUser(ctx context.Context) (models.User, error) {
	if m.getCurrentUserFn == nil {
		return models.User{}, nil
	}
	return m.getCurrentUserFn(ctx)
}

func (m *mockServerAdapter) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserFn == nil {
		return models.User{}, nil
	}
	return m.getUserFn(ctx, userID)
}

func (m *mockServerAdapter) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.getUserByEmailFn == nil {
		return models.User{}, nil
	}
	return m.getUserByEmailFn(ctx, email)
}

func (m *mockServerAdapter) UpdateUser(ctx context.Context, userID int64, update models.UserUpdateRequest) (models.User, error) {
	if m.updateUserFn == nil {
		return models.User{}, nil
	}
	return m.updateUserFn(ctx, userID, update)
}

func (m *mockServerAdapter) ListFoods(ctx context.Context, skip, limit uint64) ([]models.Food, error) {
	if m.listFoodsFn == nil {
		return nil, nil
	}
	return m.listFoodsFn(ctx, skip, limit)
}

func (m *mockServerAdapter) CreateFoodLog(ctx context.Context, create models.FoodLogCreateRequest) (models.FoodLog, error) {
	if m.createFoodLogFn == nil {
		return models.FoodLog{}, nil
	}
	return m.createFoodLogFn(ctx, create)
}

func (m *mockServerAdapter) ListFoodLogs(ctx context.Context, userID int64) ([]models.FoodLogEntry, error) {
	if m.listFoodLogsFn == nil {
		return nil, nil
	}
	return m.listFoodLogsFn(ctx, userID)
}

func (m *mockServerAdapter) CreateProgress(ctx context.Context, create models.ProgressCreateRequest) (models.Progress, error) {
	if m.createProgressFn == nil {
		return models.Progress{}, nil
	}
	return m.createProgressFn(ctx, create)
}

func (m *mockServerAdapter) ListProgress(ctx context.Context, userID int64) ([]models.Progress, error) {
	if m.listProgressFn == nil {
		return nil, nil
	}
	return m.listProgressFn(ctx, userID)
}

func (m *mockServerAdapter) SeedFoods(ctx context.Context) (models.MessageResponse, error) {
	if m.seedFoodsFn == nil {
		return models.MessageResponse{}, nil
	}
	return m.seedFoodsFn(ctx)
}
