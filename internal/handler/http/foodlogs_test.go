package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/msagdeev/go-fit-tracker/internal/service"
	"github.com/msagdeev/go-fit-tracker/internal/store"
	"github.com/msagdeev/go-fit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func foodLogBody(t *testing.T, create models.FoodLogCreateRequest) string {
	t.Helper()
	b, err := json.Marshal(create)
	require.NoError(t, err)
	return string(b)
}

func TestCreateFoodLog_Created(t *testing.T) {
	foodLogs := &mockFoodLogService{
		createFoodLogFn: func(_ context.Context, create models.FoodLogCreateRequest) (models.FoodLog, error) {
			foodID := create.FoodID
			return models.FoodLog{
				FoodLogID: 1,
				UserID:    create.UserID,
				FoodID:    &foodID,
				Date:      create.Date,
				Quantity:  create.Quantity,
				Calories:  195,
			}, nil
		},
	}
	router := newTestRouter(t, &service.Services{FoodLogService: foodLogs, AuthService: staticTokenAuth(7)})

	body := foodLogBody(t, models.FoodLogCreateRequest{
		UserID:   7,
		FoodID:   1,
		Quantity: 2.5,
		Date:     models.NewDate(2026, time.March, 14),
	})
	req := asBearer(httptest.NewRequest(http.MethodPost, "/foodlogs", strings.NewReader(body)), testBearerToken)

	rec := doRequest(router, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.FoodLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 195, created.Calories)
	assert.Equal(t, "2026-03-14", created.Date.String())
}

// TestCreateFoodLog_ForAnotherUser verifies a log cannot be written into
// another user's history.
func TestCreateFoodLog_ForAnotherUser(t *testing.T) {
	foodLogs := &mockFoodLogService{
		createFoodLogFn: func(_ context.Context, _ models.FoodLogCreateRequest) (models.FoodLog, error) {
			t.Fatal("service must not be reached when ownership fails")
			return models.FoodLog{}, nil
		},
	}
	router := newTestRouter(t, &service.Services{FoodLogService: foodLogs, AuthService: staticTokenAuth(7)})

	body := foodLogBody(t, models.FoodLogCreateRequest{UserID: 99, FoodID: 1, Quantity: 1, Date: models.Today()})
	req := asBearer(httptest.NewRequest(http.MethodPost, "/foodlogs", strings.NewReader(body)), testBearerToken)

	rec := doRequest(router, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateFoodLog_UnknownFood(t *testing.T) {
	foodLogs := &mockFoodLogService{
		createFoodLogFn: func(_ context.Context, _ models.FoodLogCreateRequest) (models.FoodLog, error) {
			return models.FoodLog{}, service.ErrFoodNotFound
		},
	}
	router := newTestRouter(t, &service.Services{FoodLogService: foodLogs, AuthService: staticTokenAuth(7)})

	body := foodLogBody(t, models.FoodLogCreateRequest{UserID: 7, FoodID: 404, Quantity: 1, Date: models.Today()})
	req := asBearer(httptest.NewRequest(http.MethodPost, "/foodlogs", strings.NewReader(body)), testBearerToken)

	rec := doRequest(router, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Food not found", decodeError(t, rec).Detail)
}

// TestCreateFoodLog_RowDeletedDuringInsert covers the window where the
// referenced user or food passes the service's existence check but is deleted
// before the insert commits. The constraint violation must still read as a
// 404, not a server error.
func TestCreateFoodLog_RowDeletedDuringInsert(t *testing.T) {
	foodLogs := &mockFoodLogService{
		createFoodLogFn: func(_ context.Context, _ models.FoodLogCreateRequest) (models.FoodLog, error) {
			return models.FoodLog{}, store.ErrForeignKeyViolation
		},
	}
	router := newTestRouter(t, &service.Services{FoodLogService: foodLogs, AuthService: staticTokenAuth(7)})

	body := foodLogBody(t, models.FoodLogCreateRequest{UserID: 7, FoodID: 1, Quantity: 1, Date: models.Today()})
	req := asBearer(httptest.NewRequest(http.MethodPost, "/foodlogs", strings.NewReader(body)), testBearerToken)

	rec := doRequest(router, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListFoodLogs_Success(t *testing.T) {
	foodLogs := &mockFoodLogService{
		listFoodLogsFn: func(_ context.Context, userID int64) ([]models.FoodLogEntry, error) {
			assert.Equal(t, int64(7), userID)
			return []models.FoodLogEntry{
				{FoodLog: models.FoodLog{FoodLogID: 1, UserID: 7, Calories: 78}, FoodName: "Egg"},
			}, nil
		},
	}
	router := newTestRouter(t, &service.Services{FoodLogService: foodLogs, AuthService: staticTokenAuth(7)})

	req := asBearer(httptest.NewRequest(http.MethodGet, "/users/7/foodlogs", nil), testBearerToken)

	rec := doRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var entries []models.FoodLogEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Egg", entries[0].FoodName)
}

func TestListFoodLogs_CrossUser(t *testing.T) {
	router := newTestRouter(t, &service.Services{FoodLogService: &mockFoodLogService{}, AuthService: staticTokenAuth(7)})

	req := asBearer(httptest.NewRequest(http.MethodGet, "/users/99/foodlogs", nil), testBearerToken)

	rec := doRequest(router, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Not authorized to perform this action", decodeError(t, rec).Detail)
}
