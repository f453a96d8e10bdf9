package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/msagdeev/go-fit-tracker/internal/service"
	"github.com/msagdeev/go-fit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGzip_CompressesResponse(t *testing.T) {
	foods := &mockFoodService{
		listFoodsFn: func(_ context.Context, _, _ uint64) ([]models.Food, error) {
			return []models.Food{{FoodID: 1, Name: "Egg", Calories: 78}}, nil
		},
	}
	router := newTestRouter(t, &service.Services{FoodService: foods})

	req := httptest.NewRequest(http.MethodGet, "/foods", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rec := doRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	defer zr.Close()

	body, err := io.ReadAll(zr)
	require.NoError(t, err)

	var got []models.Food
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Egg", got[0].Name)
}

func TestGzip_PlainWhenNotAccepted(t *testing.T) {
	foods := &mockFoodService{
		listFoodsFn: func(_ context.Context, _, _ uint64) ([]models.Food, error) {
			return nil, nil
		},
	}
	router := newTestRouter(t, &service.Services{FoodService: foods})

	req := httptest.NewRequest(http.MethodGet, "/foods", nil)

	rec := doRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}

func TestGzip_DecompressesRequestBody(t *testing.T) {
	users := &mockUserService{
		registerFn: func(_ context.Context, registration models.RegisterRequest) (models.User, error) {
			assert.Equal(t, "alice@example.com", registration.Email)
			return models.User{UserID: 1, Email: registration.Email}, nil
		},
	}
	router := newTestRouter(t, &service.Services{UserService: users})

	payload, err := json.Marshal(models.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "s3cret",
		Height: 170, Weight: 65, Goal: "Maintain Weight",
	})
	require.NoError(t, err)

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err = zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/register", &compressed)
	req.Header.Set("Content-Encoding", "gzip")

	rec := doRequest(router, req)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestGzip_RejectsCorruptRequestBody(t *testing.T) {
	router := newTestRouter(t, &service.Services{UserService: &mockUserService{}})

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")

	rec := doRequest(router, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
