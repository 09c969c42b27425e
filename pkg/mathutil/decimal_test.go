package mathutil

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Round up at midpoint", "1.235", "1.24"},
		{"Round down below midpoint", "1.234", "1.23"},
		{"No rounding needed", "1.23", "1.23"},
		{"Large number", "12345.678", "12345.68"},
		{"Negative number round down", "-1.234", "-1.23"},
		{"Zero", "0", "0"},
		{"Very small positive", "0.001", "0"},
		{"Nearly two paise", "0.019", "0.02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(d(tt.input))
			if !result.Equal(d(tt.expected)) {
				t.Errorf("Round(%s) = %s, expected %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestClampZero(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Positive unchanged", "150000", "150000"},
		{"Zero unchanged", "0", "0"},
		{"Negative clamps", "-20000", "0"},
		{"Tiny negative clamps", "-0.01", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClampZero(d(tt.input))
			if !result.Equal(d(tt.expected)) {
				t.Errorf("ClampZero(%s) = %s, expected %s", tt.input, result, tt.expected)
			}
			if result.IsNegative() {
				t.Errorf("ClampZero(%s) returned negative %s", tt.input, result)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      string
		val2      string
		tolerance string
		expected  bool
	}{
		{"Equal values", "100", "100", "1", true},
		{"Within tolerance", "100.5", "100", "1", true},
		{"At tolerance", "101", "100", "1", true},
		{"Outside tolerance", "101.01", "100", "1", false},
		{"Order independent", "100", "101.01", "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinTolerance(d(tt.val1), d(tt.val2), d(tt.tolerance))
			if result != tt.expected {
				t.Errorf("WithinTolerance(%s, %s, %s) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		total    string
		expected string
	}{
		{"Half", "50", "100", "50"},
		{"Effective rate", "54600", "1000000", "5.46"},
		{"Zero total", "100", "0", "0"},
		{"Zero value", "0", "1000", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePercentage(d(tt.value), d(tt.total))
			if !result.Equal(d(tt.expected)) {
				t.Errorf("CalculatePercentage(%s, %s) = %s, expected %s",
					tt.value, tt.total, result, tt.expected)
			}
		})
	}
}

func TestMustRatePanicsOnGarbage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustRate(\"abc\") expected panic")
		}
	}()
	MustRate("abc")
}
