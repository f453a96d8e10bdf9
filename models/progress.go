package models

// Progress is a single weight/BMI/calorie check-in owned by one user.
// BMI is supplied by the caller (the client computes it from the profile
// height) and is not recomputed server-side. There is no uniqueness
// constraint on the date: one record per submission.
type Progress struct {
	ProgressID    int64   `json:"progress_id"`
	UserID        int64   `json:"user_id"`
	Date          Date    `json:"date"`
	Weight        float64 `json:"weight"`
	BMI           float64 `json:"bmi"`
	CalorieIntake int     `json:"calorie_intake"`
}

// TableName returns the name of the database table
// associated with the Progress model.
func (p Progress) TableName() string {
	return "progress"
}
