package tax_test

import (
	"testing"

	"github.com/iwvelando/income-tax/pkg/tax"
	"github.com/iwvelando/income-tax/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestComputeHRAExemption(t *testing.T) {
	tests := []struct {
		name     string
		basic    int64
		hra      int64
		rent     int64
		metro    bool
		expected int64
	}{
		{"Rent excess is the least", 500000, 200000, 150000, false, 100000},
		{"Allowance is the least", 500000, 80000, 400000, false, 80000},
		{"Non-metro salary share is the least", 500000, 300000, 400000, false, 200000},
		{"Metro salary share is the least", 500000, 300000, 400000, true, 250000},
		{"Metro raises the salary share only", 500000, 200000, 150000, true, 100000},
		{"Rent below ten percent of basic floors at zero", 500000, 200000, 40000, false, 0},
		{"Rent exactly ten percent of basic", 500000, 200000, 50000, false, 0},
		{"No allowance", 500000, 0, 150000, true, 0},
		{"All zero", 0, 0, 0, false, 0},
		{"Zero basic leaves allowance and rent", 0, 50000, 60000, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tax.ComputeHRAExemption(
				testutil.Rupees(tt.basic),
				testutil.Rupees(tt.hra),
				testutil.Rupees(tt.rent),
				tt.metro,
			)
			assert.Truef(t, got.Equal(testutil.Rupees(tt.expected)),
				"ComputeHRAExemption() = %s, expected %d", got, tt.expected)
			assert.False(t, got.IsNegative())
		})
	}
}
