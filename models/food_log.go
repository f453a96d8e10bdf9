package models

// FoodLog is a single food-intake record owned by one user. The nutrition
// fields are derived once at creation time from the referenced food's
// per-unit values and the logged quantity, and are never recalculated —
// later changes to the food catalog do not rewrite history.
type FoodLog struct {
	FoodLogID int64 `json:"foodlog_id"`

	// UserID is the owning user. Logs are cascade-deleted with the user.
	UserID int64 `json:"user_id"`

	// FoodID references the catalog entry the log was created from.
	// Nullable: deleting a food nulls the reference without deleting logs.
	FoodID *int64 `json:"food_id"`

	Date     Date    `json:"date"`
	Quantity float64 `json:"quantity"`

	// Derived nutrition, frozen at creation time.
	Calories      int     `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
}

// TableName returns the name of the database table
// associated with the FoodLog model.
func (f FoodLog) TableName() string {
	return "food_logs"
}

// FoodLogEntry is the list-view row returned by the food-log listing
// operations: the log fields joined with the referenced food's display name.
// FoodName is empty when the referenced food has been deleted.
type FoodLogEntry struct {
	FoodLog
	FoodName string `json:"food_name"`
}
