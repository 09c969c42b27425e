// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/income-tax/internal/assessment"
	"github.com/iwvelando/income-tax/pkg/tax"
	"github.com/shopspring/decimal"
)

// FindAssessment finds an assessment by profile name in the results slice.
// Returns a pointer to the assessment if found, nil otherwise.
func FindAssessment(results []assessment.Assessment, name string) *assessment.Assessment {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// Amount parses a decimal literal and panics on malformed input.
func Amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// Rupees converts a whole-rupee integer to a decimal.
func Rupees(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

// SalariedProfile returns the salaried employee used across tests: 10 lakh gross,
// non-metro, non-senior, full 80C, choosing the old regime. Under the old regime
// it yields an HRA exemption of 1,00,000 and taxable income of 6,95,000.
func SalariedProfile() tax.TaxProfile {
	return tax.TaxProfile{
		GrossAnnualIncome:          Rupees(1000000),
		HRAReceived:                Rupees(200000),
		RentPaid:                   Rupees(150000),
		BasicSalary:                Rupees(500000),
		IsMetroResident:            false,
		Section80CInvestments:      Rupees(150000),
		OtherDeductions:            Rupees(50000),
		IsSeniorCitizen:            false,
		SavingsInterestIncome:      Rupees(5000),
		FixedDepositInterestIncome: Rupees(10000),
		SelectedRegime:             tax.RegimeOld,
	}
}

// IncomeOnlyProfile returns a profile with only gross income set.
func IncomeOnlyProfile(gross int64, regime tax.Regime) tax.TaxProfile {
	return tax.TaxProfile{
		GrossAnnualIncome: Rupees(gross),
		SelectedRegime:    regime,
	}
}
