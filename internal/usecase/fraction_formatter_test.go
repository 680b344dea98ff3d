package usecase

import (
	"testing"
)

func TestFormatQuantity(t *testing.T) {
	testCases := []struct {
		name  string
		value float64
		want  string
	}{
		{"whole number", 3, "3"},
		{"whole number from float noise", 2.9999999, "3"},
		{"half", 0.5, "1/2"},
		{"quarter", 0.25, "1/4"},
		{"third from repeating decimal", 0.33, "1/3"},
		{"two thirds from repeating decimal", 0.67, "2/3"},
		{"eighth", 0.125, "1/8"},
		{"seven eighths", 0.875, "7/8"},
		{"mixed number half", 1.5, "1 1/2"},
		{"mixed number quarter", 2.25, "2 1/4"},
		{"mixed number two thirds", 2.66, "2 2/3"},
		{"snaps to nearest fraction within tolerance", 0.3, "1/4"},
		{"decimal outside tolerance", 0.6, "0.6"},
		{"decimal with whole part outside tolerance", 3.6, "3.6"},
		{"small decimal outside tolerance", 0.06, "0.06"},
		{"trailing zeros stripped", 2.5, "2 1/2"},
		{"rounds to two decimal places", 0.5555, "0.56"},
		{"zero", 0, "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatQuantity(tc.value)
			if got != tc.want {
				t.Errorf("FormatQuantity(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}
