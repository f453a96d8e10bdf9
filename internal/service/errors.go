package service

import "errors"

// Domain errors returned by the service layer. The HTTP handlers map these
// to response status codes; callers match them with [errors.Is].
var (
	// ErrValidation is returned when a request payload fails domain
	// validation (missing fields, non-positive quantities, malformed email).
	ErrValidation = errors.New("validation failed")

	// ErrEmailAlreadyExists is returned on registration or profile update
	// when the requested email is already taken by another account.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUserNotFound is returned when the addressed user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrFoodNotFound is returned when the referenced food catalog entry
	// does not exist.
	ErrFoodNotFound = errors.New("food not found")

	// ErrInvalidCredentials is returned by authentication when the email is
	// unknown or the password does not match. The two cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenIsExpiredOrInvalid is returned when a bearer token fails
	// signature, issuer or expiry checks. All token failures collapse into
	// this one error so responses leak nothing about the reason.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
