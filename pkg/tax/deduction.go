package tax

import (
	"github.com/iwvelando/income-tax/pkg/constants"
	"github.com/shopspring/decimal"
)

var (
	section80CCap        = decimal.NewFromInt(constants.Section80CCap)
	interestCapNonSenior = decimal.NewFromInt(constants.InterestCapNonSenior)
	interestCapSenior    = decimal.NewFromInt(constants.InterestCapSenior)
	standardDeduction    = decimal.NewFromInt(constants.StandardDeduction)
)

// DeductionSummary itemizes the deductions claimed under one regime.
type DeductionSummary struct {
	Section80C        decimal.Decimal `json:"section80C"`
	OtherDeductions   decimal.Decimal `json:"otherDeductions"`
	InterestDeduction decimal.Decimal `json:"interestDeduction"`
	HRAExemption      decimal.Decimal `json:"hraExemption"`
	StandardDeduction decimal.Decimal `json:"standardDeduction"`
	Total             decimal.Decimal `json:"total"`
}

// CapSection80C limits Section 80C investments to the statutory cap.
func CapSection80C(investments decimal.Decimal) decimal.Decimal {
	return decimal.Min(investments, section80CCap)
}

// ComputeInterestDeduction applies 80TTB for senior citizens (savings and
// deposit interest combined, capped at 25,000) and 80TTA otherwise (savings
// interest only, capped at 10,000). Deposit interest is not eligible under 80TTA.
func ComputeInterestDeduction(p TaxProfile) decimal.Decimal {
	if p.IsSeniorCitizen {
		return decimal.Min(p.SavingsInterestIncome.Add(p.FixedDepositInterestIncome), interestCapSenior)
	}
	return decimal.Min(p.SavingsInterestIncome, interestCapNonSenior)
}

// ComputeDeductions aggregates the deductions available under regime. The new
// regime ignores the profile entirely and allows only the standard deduction.
func ComputeDeductions(p TaxProfile, hraExemption decimal.Decimal, regime Regime) DeductionSummary {
	if regime == RegimeNew {
		return DeductionSummary{
			Section80C:        decimal.Zero,
			OtherDeductions:   decimal.Zero,
			InterestDeduction: decimal.Zero,
			HRAExemption:      decimal.Zero,
			StandardDeduction: standardDeduction,
			Total:             standardDeduction,
		}
	}

	summary := DeductionSummary{
		Section80C:        CapSection80C(p.Section80CInvestments),
		OtherDeductions:   p.OtherDeductions,
		InterestDeduction: ComputeInterestDeduction(p),
		HRAExemption:      hraExemption,
		StandardDeduction: decimal.Zero,
	}
	summary.Total = summary.Section80C.
		Add(summary.OtherDeductions).
		Add(summary.InterestDeduction).
		Add(summary.HRAExemption)
	return summary
}
