package utils

import "math"

// CalculateBMI returns the body mass index for a weight in kilograms and a
// height in centimetres, rounded to one decimal place. Returns 0 for a
// non-positive height.
func CalculateBMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}

	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*10) / 10
}
