package utils

import "testing"

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     float64
	}{
		{"average adult", 70, 175, 22.9},
		{"heavier adult", 95, 180, 29.3},
		{"light adult", 50, 160, 19.5},
		{"rounds to one decimal", 68.5, 172, 23.2},
		{"zero height", 70, 0, 0},
		{"negative height", 70, -175, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBMI(tt.weightKg, tt.heightCm)
			if got != tt.want {
				t.Errorf("CalculateBMI(%v, %v) = %v, want %v", tt.weightKg, tt.heightCm, got, tt.want)
			}
		})
	}
}
