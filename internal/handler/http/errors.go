package http

import "errors"

// Authorization header parsing errors returned to clients with HTTP 401.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the header does not
	// follow the "<scheme> <token>" format.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmptyToken is returned when the scheme is present but the token
	// part is an empty string.
	ErrEmptyToken = errors.New("empty token")
)
