package service

import (
	"context"

	"github.com/msagdeev/go-fit-tracker/models"
)

// ─────────────────────────────────────────────
// Repository mocks shared by the service tests.
// Each method field can be overridden per test case.
// ─────────────────────────────────────────────

type mockUserRepo struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	updateUserFn      func(ctx context.Context, user models.User) (models.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepo) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.findUserByIDFn(ctx, userID)
}

func (m *mockUserRepo) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.updateUserFn(ctx, user)
}

type mockFoodRepo struct {
	listFoodsFn        func(ctx context.Context, skip, limit uint64) ([]models.Food, error)
	findFoodByIDFn     func(ctx context.Context, foodID int64) (models.Food, error)
	foodExistsByNameFn func(ctx context.Context, name string) (bool, error)
	createFoodFn       func(ctx context.Context, food models.Food) (models.Food, error)
}

func (m *mockFoodRepo) ListFoods(ctx context.Context, skip, limit uint64) ([]models.Food, error) {
	return m.listFoodsFn(ctx, skip, limit)
}

func (m *mockFoodRepo) FindFoodByID(ctx context.Context, foodID int64) (models.Food, error) {
	return m.findFoodByIDFn(ctx, foodID)
}

func (m *mockFoodRepo) FoodExistsByName(ctx context.Context, name string) (bool, error) {
	return m.foodExistsByNameFn(ctx, name)
}

func (m *mockFoodRepo) CreateFood(ctx context.Context, food models.Food) (models.Food, error) {
	return m.createFoodFn(ctx, food)
}

type mockFoodLogRepo struct {
	createFoodLogFn       func(ctx context.Context, foodLog models.FoodLog) (models.FoodLog, error)
	listFoodLogsForUserFn func(ctx context.Context, userID int64) ([]models.FoodLogEntry, error)
}

func (m *mockFoodLogRepo) CreateFoodLog(ctx context.Context, foodLog models.FoodLog) (models.FoodLog, error) {
	return m.createFoodLogFn(ctx, foodLog)
}

func (m *mockFoodLogRepo) ListFoodLogsForUser(ctx context.Context, userID int64) ([]models.FoodLogEntry, error) {
	return m.listFoodLogsForUserFn(ctx, userID)
}

type mockProgressRepo struct {
	createProgressFn      func(ctx context.Context, progress models.Progress) (models.Progress, error)
	listProgressForUserFn func(ctx context.Context, userID int64) ([]models.Progress, error)
}

func (m *mockProgressRepo) CreateProgress(ctx context.Context, progress models.Progress) (models.Progress, error) {
	return m.createProgressFn(ctx, progress)
}

func (m *mockProgressRepo) ListProgressForUser(ctx context.Context, userID int64) ([]models.Progress, error) {
	return m.listProgressForUserFn(ctx, userID)
}

// foundUser returns a FindUserByID stub that always succeeds.
func foundUser(userID int64) func(ctx context.Context, id int64) (models.User, error) {
	return func(_ context.Context, _ int64) (models.User, error) {
		return models.User{UserID: userID}, nil
	}
}
