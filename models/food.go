package models

// Food is one entry of the reference nutrition catalog. Nutrition values are
// per unit of the food; calories are integral, macros fractional. The catalog
// is seeded once and read-only in normal operation.
type Food struct {
	FoodID        int64   `json:"food_id"`
	Name          string  `json:"name"`
	Calories      int     `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
}

// TableName returns the name of the database table
// associated with the Food model.
func (f Food) TableName() string {
	return "foods"
}
