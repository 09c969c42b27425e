package config

import (
	"fmt"

	"github.com/iwvelando/income-tax/pkg/tax"
	"github.com/shopspring/decimal"
)

// ToTaxProfile converts a configured profile into the engine's input.
func (p Profile) ToTaxProfile() (tax.TaxProfile, error) {
	regime, err := p.SelectedRegime()
	if err != nil {
		return tax.TaxProfile{}, fmt.Errorf("profile %s: %w", p.Name, err)
	}

	return tax.TaxProfile{
		GrossAnnualIncome:          decimal.NewFromFloat(p.GrossAnnualIncome),
		HRAReceived:                decimal.NewFromFloat(p.HRAReceived),
		RentPaid:                   decimal.NewFromFloat(p.RentPaid),
		BasicSalary:                decimal.NewFromFloat(p.BasicSalary),
		IsMetroResident:            p.IsMetroResident,
		Section80CInvestments:      decimal.NewFromFloat(p.Section80CInvestments),
		OtherDeductions:            decimal.NewFromFloat(p.OtherDeductions),
		IsSeniorCitizen:            p.IsSeniorCitizen,
		SavingsInterestIncome:      decimal.NewFromFloat(p.SavingsInterestIncome),
		FixedDepositInterestIncome: decimal.NewFromFloat(p.FixedDepositInterestIncome),
		SelectedRegime:             regime,
	}, nil
}
