package tax

import (
	"github.com/iwvelando/income-tax/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// TaxComputationResult is the computed liability under one regime.
type TaxComputationResult struct {
	Regime               Regime          `json:"regime"`
	TaxableIncome        decimal.Decimal `json:"taxableIncome"`
	TaxBeforeCess        decimal.Decimal `json:"taxBeforeCess"`
	RebateApplied        bool            `json:"rebateApplied"`
	CessAmount           decimal.Decimal `json:"cessAmount"`
	TotalTaxPayable      decimal.Decimal `json:"totalTaxPayable"`
	EffectiveRatePercent decimal.Decimal `json:"effectiveRatePercent"`
	Slabs                []SlabTax       `json:"slabs"`
}

// RegimeComparison holds the results for both regimes. DeductionSummary is only
// set when the old regime is selected.
type RegimeComparison struct {
	OldRegime        TaxComputationResult `json:"oldRegime"`
	NewRegime        TaxComputationResult `json:"newRegime"`
	SelectedRegime   Regime               `json:"selectedRegime"`
	DeductionSummary *DeductionSummary    `json:"deductionSummary,omitempty"`
}

// Compute runs both regime computations for the profile. It has no side
// effects and may be called concurrently.
func Compute(profile TaxProfile) RegimeComparison {
	p := profile.Normalize()

	hraExemption := ComputeHRAExemption(p.BasicSalary, p.HRAReceived, p.RentPaid, p.IsMetroResident)
	deductions := ComputeDeductions(p, hraExemption, RegimeOld)

	oldTaxable := mathutil.ClampZero(p.GrossAnnualIncome.Sub(deductions.Total))
	oldTax, oldSlabs, oldRebate := OldRegimeTax(oldTaxable)

	newTaxable, newTax, newSlabs, newRebate := NewRegimeTax(p.GrossAnnualIncome)

	comparison := RegimeComparison{
		OldRegime:      buildResult(RegimeOld, p.GrossAnnualIncome, oldTaxable, oldTax, oldSlabs, oldRebate),
		NewRegime:      buildResult(RegimeNew, p.GrossAnnualIncome, newTaxable, newTax, newSlabs, newRebate),
		SelectedRegime: p.SelectedRegime,
	}
	if p.SelectedRegime == RegimeOld {
		comparison.DeductionSummary = &deductions
	}
	return comparison
}

func buildResult(regime Regime, gross, taxable, tax decimal.Decimal, slabs []SlabTax, rebate bool) TaxComputationResult {
	cess := ComputeCess(tax)
	total := tax.Add(cess)
	return TaxComputationResult{
		Regime:               regime,
		TaxableIncome:        taxable,
		TaxBeforeCess:        tax,
		RebateApplied:        rebate,
		CessAmount:           cess,
		TotalTaxPayable:      total,
		EffectiveRatePercent: mathutil.CalculatePercentage(total, gross),
		Slabs:                slabs,
	}
}

// Result returns the computation for regime.
func (c RegimeComparison) Result(regime Regime) TaxComputationResult {
	if regime == RegimeOld {
		return c.OldRegime
	}
	return c.NewRegime
}

// Selected returns the computation for the selected regime.
func (c RegimeComparison) Selected() TaxComputationResult {
	return c.Result(c.SelectedRegime)
}

// Recommended returns the regime with the lower total liability, preferring the
// new regime on a tie.
func (c RegimeComparison) Recommended() Regime {
	if c.OldRegime.TotalTaxPayable.LessThan(c.NewRegime.TotalTaxPayable) {
		return RegimeOld
	}
	return RegimeNew
}

// Savings is the difference between the two regime totals.
func (c RegimeComparison) Savings() decimal.Decimal {
	return c.OldRegime.TotalTaxPayable.Sub(c.NewRegime.TotalTaxPayable).Abs()
}
