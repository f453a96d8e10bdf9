package adapter

import "errors"

// Sentinel errors mapped from HTTP response status codes by mapHTTPError.
// Each wrapped error also carries the server-provided detail message.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")
)
