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
	"github.com/msagdeev/go-fit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func progressBody(t *testing.T, create models.ProgressCreateRequest) string {
	t.Helper()
	b, err := json.Marshal(create)
	require.NoError(t, err)
	return string(b)
}

func TestCreateProgress_Created(t *testing.T) {
	progress := &mockProgressService{
		createProgressFn: func(_ context.Context, create models.ProgressCreateRequest) (models.Progress, error) {
			return models.Progress{
				ProgressID:    1,
				UserID:        create.UserID,
				Date:          create.Date,
				Weight:        create.Weight,
				BMI:           create.BMI,
				CalorieIntake: create.CalorieIntake,
			}, nil
		},
	}
	router := newTestRouter(t, &service.Services{ProgressService: progress, AuthService: staticTokenAuth(7)})

	body := progressBody(t, models.ProgressCreateRequest{
		UserID: 7, Date: models.NewDate(2026, time.March, 14), Weight: 72.5, BMI: 25.1, CalorieIntake: 1850,
	})
	req := asBearer(httptest.NewRequest(http.MethodPost, "/progress", strings.NewReader(body)), testBearerToken)

	rec := doRequest(router, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Progress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 25.1, created.BMI, "BMI must be echoed back as supplied")
}

func TestCreateProgress_ForAnotherUser(t *testing.T) {
	router := newTestRouter(t, &service.Services{ProgressService: &mockProgressService{}, AuthService: staticTokenAuth(7)})

	body := progressBody(t, models.ProgressCreateRequest{UserID: 99, Date: models.Today(), Weight: 70, BMI: 22})
	req := asBearer(httptest.NewRequest(http.MethodPost, "/progress", strings.NewReader(body)), testBearerToken)

	rec := doRequest(router, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateProgress_ValidationError(t *testing.T) {
	progress := &mockProgressService{
		createProgressFn: func(_ context.Context, _ models.ProgressCreateRequest) (models.Progress, error) {
			return models.Progress{}, service.ErrValidation
		},
	}
	router := newTestRouter(t, &service.Services{ProgressService: progress, AuthService: staticTokenAuth(7)})

	body := progressBody(t, models.ProgressCreateRequest{UserID: 7})
	req := asBearer(httptest.NewRequest(http.MethodPost, "/progress", strings.NewReader(body)), testBearerToken)

	rec := doRequest(router, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListProgress_Success(t *testing.T) {
	progress := &mockProgressService{
		listProgressFn: func(_ context.Context, userID int64) ([]models.Progress, error) {
			assert.Equal(t, int64(7), userID)
			return []models.Progress{{ProgressID: 1, UserID: 7, Weight: 72.5}}, nil
		},
	}
	router := newTestRouter(t, &service.Services{ProgressService: progress, AuthService: staticTokenAuth(7)})

	req := asBearer(httptest.NewRequest(http.MethodGet, "/progress/7", nil), testBearerToken)

	rec := doRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var records []models.Progress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
}

func TestListProgress_CrossUser(t *testing.T) {
	router := newTestRouter(t, &service.Services{ProgressService: &mockProgressService{}, AuthService: staticTokenAuth(7)})

	req := asBearer(httptest.NewRequest(http.MethodGet, "/progress/99", nil), testBearerToken)

	rec := doRequest(router, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
