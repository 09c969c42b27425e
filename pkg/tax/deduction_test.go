package tax_test

import (
	"testing"

	"github.com/iwvelando/income-tax/pkg/tax"
	"github.com/iwvelando/income-tax/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapSection80C(t *testing.T) {
	for _, invested := range []int64{150000, 150001, 200000, 1000000000} {
		got := tax.CapSection80C(testutil.Rupees(invested))
		assert.Truef(t, got.Equal(testutil.Rupees(150000)), "CapSection80C(%d) = %s", invested, got)
	}
	for _, invested := range []int64{0, 1, 149999} {
		got := tax.CapSection80C(testutil.Rupees(invested))
		assert.Truef(t, got.Equal(testutil.Rupees(invested)), "CapSection80C(%d) = %s", invested, got)
	}
}

func TestComputeInterestDeduction(t *testing.T) {
	tests := []struct {
		name     string
		senior   bool
		savings  int64
		deposit  int64
		expected int64
	}{
		{"Non-senior savings under cap", false, 5000, 10000, 5000},
		{"Non-senior savings over cap", false, 15000, 0, 10000},
		{"Non-senior deposit interest is ignored", false, 0, 50000, 0},
		{"Senior combined under cap", true, 5000, 10000, 15000},
		{"Senior combined over cap", true, 20000, 10000, 25000},
		{"Senior deposit only", true, 0, 30000, 25000},
		{"No interest", true, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := tax.TaxProfile{
				IsSeniorCitizen:            tt.senior,
				SavingsInterestIncome:      testutil.Rupees(tt.savings),
				FixedDepositInterestIncome: testutil.Rupees(tt.deposit),
			}
			got := tax.ComputeInterestDeduction(profile)
			assert.Truef(t, got.Equal(testutil.Rupees(tt.expected)),
				"ComputeInterestDeduction() = %s, expected %d", got, tt.expected)
		})
	}
}

func TestComputeDeductionsOldRegime(t *testing.T) {
	profile := testutil.SalariedProfile()
	summary := tax.ComputeDeductions(profile, testutil.Rupees(100000), tax.RegimeOld)

	assert.True(t, summary.Section80C.Equal(testutil.Rupees(150000)))
	assert.True(t, summary.OtherDeductions.Equal(testutil.Rupees(50000)))
	assert.True(t, summary.InterestDeduction.Equal(testutil.Rupees(5000)))
	assert.True(t, summary.HRAExemption.Equal(testutil.Rupees(100000)))
	assert.True(t, summary.StandardDeduction.IsZero())
	assert.Truef(t, summary.Total.Equal(testutil.Rupees(305000)), "total = %s", summary.Total)
}

func TestComputeDeductionsCapsSection80C(t *testing.T) {
	profile := testutil.SalariedProfile()
	for _, invested := range []int64{150000, 250000, 10000000} {
		profile.Section80CInvestments = testutil.Rupees(invested)
		summary := tax.ComputeDeductions(profile, testutil.Rupees(0), tax.RegimeOld)
		require.Truef(t, summary.Section80C.Equal(testutil.Rupees(150000)),
			"80C used for %d invested = %s", invested, summary.Section80C)
		require.True(t, summary.Total.Equal(testutil.Rupees(205000)))
	}
}

func TestComputeDeductionsNewRegimeIgnoresProfile(t *testing.T) {
	profiles := []tax.TaxProfile{
		testutil.SalariedProfile(),
		testutil.IncomeOnlyProfile(0, tax.RegimeNew),
		{Section80CInvestments: testutil.Rupees(900000), OtherDeductions: testutil.Rupees(400000), IsSeniorCitizen: true},
	}

	for _, profile := range profiles {
		summary := tax.ComputeDeductions(profile, testutil.Rupees(100000), tax.RegimeNew)
		assert.True(t, summary.Total.Equal(testutil.Rupees(50000)))
		assert.True(t, summary.StandardDeduction.Equal(testutil.Rupees(50000)))
		assert.True(t, summary.Section80C.IsZero())
		assert.True(t, summary.HRAExemption.IsZero())
		assert.True(t, summary.InterestDeduction.IsZero())
		assert.True(t, summary.OtherDeductions.IsZero())
	}
}
