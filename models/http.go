package models

// RegisterRequest is the JSON body of POST /register.
type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Goal     string  `json:"goal"`
}

// UserUpdateRequest is the JSON body of PUT /users/{id}. Password is
// optional: when empty the stored hash is left unchanged.
type UserUpdateRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password,omitempty"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Goal     string  `json:"goal"`
}

// FoodLogCreateRequest is the JSON body of POST /foodlogs. The derived
// nutrition values are computed server-side and are not part of the request.
type FoodLogCreateRequest struct {
	UserID   int64   `json:"user_id"`
	FoodID   int64   `json:"food_id"`
	Quantity float64 `json:"quantity"`
	Date     Date    `json:"date"`
}

// ProgressCreateRequest is the JSON body of POST /progress.
type ProgressCreateRequest struct {
	UserID        int64   `json:"user_id"`
	Date          Date    `json:"date"`
	Weight        float64 `json:"weight"`
	BMI           float64 `json:"bmi"`
	CalorieIntake int     `json:"calorie_intake"`
}

// TokenResponse is the JSON body returned by POST /login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse is the JSON error body returned by all endpoints. Detail is
// a human-readable message safe to show to the end user.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the JSON body of informational responses such as
// POST /seed-foods.
type MessageResponse struct {
	Message string `json:"message"`
}
