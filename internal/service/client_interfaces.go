package service

import (
	"context"

	"github.com/msagdeev/go-fit-tracker/models"
)

// ClientAuthService drives the login/registration flow of the desktop
// client and owns the in-memory session.
type ClientAuthService interface {
	// Register creates a new account on the server. It does not log in.
	Register(ctx context.Context, registration models.RegisterRequest) error

	// Login authenticates against the server, loads the owning profile and
	// stores both in the session.
	Login(ctx context.Context, email string, password string) (models.User, error)

	// Logout clears the session and the transport token.
	Logout()

	// CurrentUser returns the profile stored in the session and whether a
	// user is logged in.
	CurrentUser() (models.User, bool)
}

// ClientProfileService reads and updates the logged-in user's profile.
type ClientProfileService interface {
	Get(ctx context.Context) (models.User, error)
	Update(ctx context.Context, update models.UserUpdateRequest) (models.User, error)
}

// ClientFoodService serves the shared food catalog to the UI.
type ClientFoodService interface {
	List(ctx context.Context, skip, limit uint64) ([]models.Food, error)
}

// ClientFoodLogService records and lists the logged-in user's food intake.
type ClientFoodLogService interface {
	// Log records quantity units of the given catalog food on date.
	Log(ctx context.Context, foodID int64, quantity float64, date models.Date) (models.FoodLog, error)

	// List returns every intake record of the logged-in user.
	List(ctx context.Context) ([]models.FoodLogEntry, error)

	// DailySummary sums the nutrition of everything logged on one day.
	DailySummary(ctx context.Context, date models.Date) (models.NutritionSummary, error)
}

// ClientProgressService records and lists the logged-in user's check-ins.
type ClientProgressService interface {
	// Record submits a check-in for date. The BMI is computed locally from
	// weight and the profile height before the request is sent.
	Record(ctx context.Context, date models.Date, weight float64, calorieIntake int) (models.Progress, error)

	// List returns every check-in of the logged-in user.
	List(ctx context.Context) ([]models.Progress, error)
}
