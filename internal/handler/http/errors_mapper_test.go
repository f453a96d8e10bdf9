package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/msagdeev/go-fit-tracker/internal/service"
	"github.com/msagdeev/go-fit-tracker/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("%w: quantity must be positive", service.ErrValidation),
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "validation failed: quantity must be positive",
		},
		{
			name:       "duplicate email",
			err:        service.ErrEmailAlreadyExists,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Email already registered",
		},
		{
			name:       "user not found",
			err:        service.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantDetail: "User not found",
		},
		{
			name:       "food not found",
			err:        service.ErrFoodNotFound,
			wantStatus: http.StatusNotFound,
			wantDetail: "Food not found",
		},
		{
			name:       "bad credentials",
			err:        service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Incorrect email or password",
		},
		{
			name:       "bad token",
			err:        service.ErrTokenIsExpiredOrInvalid,
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Could not validate credentials",
		},
		{
			name:       "foreign key violation on insert",
			err:        fmt.Errorf("inserting food log: %w", store.ErrForeignKeyViolation),
			wantStatus: http.StatusNotFound,
			wantDetail: "Not Found",
		},
		{
			name:       "wrapped sentinel",
			err:        fmt.Errorf("loading user: %w", service.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
			wantDetail: "User not found",
		},
		{
			name:       "unknown error hides internals",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Internal Server Error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, detail := mapServiceError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantDetail, detail)
		})
	}
}
