package service

import "errors"

// Client-side sentinel errors.
var (
	// ErrNotLoggedIn is returned by client services that require an active
	// session when no user is logged in.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrRegisterOnServer wraps any server failure during registration.
	ErrRegisterOnServer = errors.New("registration failed on server")

	// ErrLoginOnServer wraps any server failure during login.
	ErrLoginOnServer = errors.New("login failed on server")
)
