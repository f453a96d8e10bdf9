// Package adapter provides the transport layer the desktop client uses to
// talk to the fitness tracker server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/msagdeev/go-fit-tracker/models"
)

// ServerAdapter defines transport-agnostic communication with the fitness
// tracker server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login; calling it with an empty string clears the
	// stored token.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. It does not authenticate: the caller
	// is expected to Login afterwards.
	Register(ctx context.Context, registration models.RegisterRequest) (models.User, error)

	// Login exchanges the email/password pair for a bearer token. On success
	// the token is stored via SetToken and returned.
	Login(ctx context.Context, email string, password string) (models.TokenResponse, error)

	// GetCurrentUser fetches the profile of the account the stored bearer
	// token belongs to. Requires a valid bearer token.
	GetCurrentUser(ctx context.Context) (models.User, error)

	// GetUser fetches one user profile by id. Requires a valid bearer token.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// GetUserByEmail fetches one user profile by email. The endpoint is
	// unauthenticated; the registration flow uses it to detect taken emails.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)

	// UpdateUser overwrites the profile of the user identified by userID.
	// Requires a valid bearer token for that same user.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdateRequest) (models.User, error)

	// ListFoods fetches one page of the shared food catalog.
	ListFoods(ctx context.Context, skip, limit uint64) ([]models.Food, error)

	// CreateFoodLog records a food intake for the authenticated user.
	CreateFoodLog(ctx context.Context, create models.FoodLogCreateRequest) (models.FoodLog, error)

	// ListFoodLogs fetches every food-intake record of the given user with
	// catalog names joined in. Requires a valid bearer token for that user.
	ListFoodLogs(ctx context.Context, userID int64) ([]models.FoodLogEntry, error)

	// CreateProgress records a weight/BMI/calorie check-in for the
	// authenticated user.
	CreateProgress(ctx context.Context, create models.ProgressCreateRequest) (models.Progress, error)

	// ListProgress fetches every check-in of the given user. Requires a
	// valid bearer token for that user.
	ListProgress(ctx context.Context, userID int64) ([]models.Progress, error)

	// SeedFoods asks the server to populate the built-in food catalog.
	// Safe to call repeatedly.
	SeedFoods(ctx context.Context) (models.MessageResponse, error)
}
