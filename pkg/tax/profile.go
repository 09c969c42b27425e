package tax

import (
	"fmt"

	"github.com/iwvelando/income-tax/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// TaxProfile holds the financial inputs of one taxpayer for one computation.
type TaxProfile struct {
	GrossAnnualIncome          decimal.Decimal `json:"grossAnnualIncome"`
	HRAReceived                decimal.Decimal `json:"hraReceived"`
	RentPaid                   decimal.Decimal `json:"rentPaid"`
	BasicSalary                decimal.Decimal `json:"basicSalary"`
	IsMetroResident            bool            `json:"isMetroResident"`
	Section80CInvestments      decimal.Decimal `json:"section80CInvestments"`
	OtherDeductions            decimal.Decimal `json:"otherDeductions"`
	IsSeniorCitizen            bool            `json:"isSeniorCitizen"`
	SavingsInterestIncome      decimal.Decimal `json:"savingsInterestIncome"`
	FixedDepositInterestIncome decimal.Decimal `json:"fixedDepositInterestIncome"`
	SelectedRegime             Regime          `json:"selectedRegime"`
}

// amounts pairs each monetary field with its name.
func (p *TaxProfile) amounts() []struct {
	name  string
	value *decimal.Decimal
} {
	return []struct {
		name  string
		value *decimal.Decimal
	}{
		{"grossAnnualIncome", &p.GrossAnnualIncome},
		{"hraReceived", &p.HRAReceived},
		{"rentPaid", &p.RentPaid},
		{"basicSalary", &p.BasicSalary},
		{"section80CInvestments", &p.Section80CInvestments},
		{"otherDeductions", &p.OtherDeductions},
		{"savingsInterestIncome", &p.SavingsInterestIncome},
		{"fixedDepositInterestIncome", &p.FixedDepositInterestIncome},
	}
}

// Normalize returns a copy of the profile with negative amounts clamped to zero
// and an unrecognized regime replaced by RegimeNew. The receiver is not modified.
func (p TaxProfile) Normalize() TaxProfile {
	for _, amount := range p.amounts() {
		*amount.value = mathutil.ClampZero(*amount.value)
	}
	if !p.SelectedRegime.Valid() {
		p.SelectedRegime = RegimeNew
	}
	return p
}

// Validate rejects negative amounts and unknown regimes. Compute does not call
// it; callers that accept untrusted input should.
func (p TaxProfile) Validate() error {
	for _, amount := range p.amounts() {
		if amount.value.IsNegative() {
			return fmt.Errorf("%s must not be negative, got %s", amount.name, amount.value.String())
		}
	}
	if !p.SelectedRegime.Valid() {
		return fmt.Errorf("selectedRegime must be %q or %q, got %q", RegimeOld, RegimeNew, p.SelectedRegime)
	}
	return nil
}
