package models

// NutritionSummary is the client-side aggregate of all food logged on one
// day. It is computed locally from the food-log listing and never stored.
type NutritionSummary struct {
	Date          Date    `json:"date"`
	Entries       int     `json:"entries"`
	Calories      int     `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
}
