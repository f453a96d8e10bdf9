package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/service"
	"github.com/msagdeev/go-fit-tracker/models"
)

// ─────────────────────────────────────────────
// Service mocks shared by the handler tests.
// Each method field can be overridden per test case.
// ─────────────────────────────────────────────

type mockAuthService struct {
	createTokenFn func(ctx context.Context, userID int64) (models.Token, error)
	parseTokenFn  func(ctx context.Context, signedToken string) (int64, error)
}

func (m *mockAuthService) CreateToken(ctx context.Context, userID int64) (models.Token, error) {
	return m.createTokenFn(ctx, userID)
}

func (m *mockAuthService) ParseToken(ctx context.Context, signedToken string) (int64, error) {
	return m.parseTokenFn(ctx, signedToken)
}

type mockUserService struct {
	registerFn       func(ctx context.Context, register models.RegisterRequest) (models.User, error)
	authenticateFn   func(ctx context.Context, email, password string) (models.User, error)
	getUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	getUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	updateUserFn     func(ctx context.Context, userID int64, update models.UserUpdateRequest) (models.User, error)
}

func (m *mockUserService) Register(ctx context.Context, register models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, register)
}

func (m *mockUserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	return m.authenticateFn(ctx, email, password)
}

func (m *mockUserService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserByIDFn(ctx, userID)
}

func (m *mockUserService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.getUserByEmailFn(ctx, email)
}

func (m *mockUserService) UpdateUser(ctx context.Context, userID int64, update models.UserUpdateRequest) (models.User, error) {
	return m.updateUserFn(ctx, userID, update)
}

type mockFoodService struct {
	listFoodsFn func(ctx context.Context, skip, limit uint64) ([]models.Food, error)
	seedFoodsFn func(ctx context.Context) (int, error)
}

func (m *mockFoodService) ListFoods(ctx context.Context, skip, limit uint64) ([]models.Food, error) {
	return m.listFoodsFn(ctx, skip, limit)
}

func (m *mockFoodService) SeedFoods(ctx context.Context) (int, error) {
	return m.seedFoodsFn(ctx)
}

type mockFoodLogService struct {
	createFoodLogFn func(ctx context.Context, create models.FoodLogCreateRequest) (models.FoodLog, error)
	listFoodLogsFn  func(ctx context.Context, userID int64) ([]models.FoodLogEntry, error)
}

func (m *mockFoodLogService) CreateFoodLog(ctx context.Context, create models.FoodLogCreateRequest) (models.FoodLog, error) {
	return m.createFoodLogFn(ctx, create)
}

func (m *mockFoodLogService) ListFoodLogs(ctx context.Context, userID int64) ([]models.FoodLogEntry, error) {
	return m.listFoodLogsFn(ctx, userID)
}

type mockProgressService struct {
	createProgressFn func(ctx context.Context, create models.ProgressCreateRequest) (models.Progress, error)
	listProgressFn   func(ctx context.Context, userID int64) ([]models.Progress, error)
}

func (m *mockProgressService) CreateProgress(ctx context.Context, create models.ProgressCreateRequest) (models.Progress, error) {
	return m.createProgressFn(ctx, create)
}

func (m *mockProgressService) ListProgress(ctx context.Context, userID int64) ([]models.Progress, error) {
	return m.listProgressFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// tokenFor is the stub bearer token understood by staticTokenAuth.
const testBearerToken = "test.bearer.token"

// staticTokenAuth returns an AuthService mock that accepts exactly
// testBearerToken and resolves it to userID.
func staticTokenAuth(userID int64) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, signedToken string) (int64, error) {
			if signedToken != testBearerToken {
				return 0, service.ErrTokenIsExpiredOrInvalid
			}
			return userID, nil
		},
	}
}

// newTestRouter builds the full chi router over the given services so that
// URL parameters and middleware behave exactly as in production.
func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	return NewHandler(services, logger.Nop()).Init()
}

// doRequest runs req through the router and returns the recorder.
func doRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// asBearer sets the Authorization header for an authenticated test request.
func asBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
