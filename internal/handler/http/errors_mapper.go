package http

import (
	"errors"
	"net/http"

	"github.com/msagdeev/go-fit-tracker/internal/service"
	"github.com/msagdeev/go-fit-tracker/internal/store"
)

// mapServiceError translates a service-layer error into the HTTP status code
// and client-facing detail message of the JSON error response. Unrecognised
// errors map to 500 with a generic message so internals never leak.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, service.ErrFoodNotFound):
		return http.StatusNotFound, "Food not found"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect email or password"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return http.StatusUnauthorized, "Could not validate credentials"
	case errors.Is(err, store.ErrForeignKeyViolation):
		// the referenced row vanished between the service's existence check
		// and the insert
		return http.StatusNotFound, http.StatusText(http.StatusNotFound)
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
