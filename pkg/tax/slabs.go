package tax

import (
	"github.com/iwvelando/income-tax/pkg/constants"
	"github.com/iwvelando/income-tax/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Slab is one marginal band: income above Lower (up to the next slab's Lower)
// is taxed at Rate.
type Slab struct {
	Lower decimal.Decimal
	Rate  decimal.Decimal
}

// SlabTax records how one slab contributed to a computed tax.
type SlabTax struct {
	Lower decimal.Decimal `json:"lower"`
	// Upper is zero for the unbounded top slab.
	Upper decimal.Decimal `json:"upper"`
	Rate  decimal.Decimal `json:"rate"`
	Taxed decimal.Decimal `json:"taxed"`
	Tax   decimal.Decimal `json:"tax"`
}

func slab(lower int64, rate string) Slab {
	return Slab{Lower: decimal.NewFromInt(lower), Rate: mathutil.MustRate(rate)}
}

// OldRegimeSlabs are ordered by ascending lower bound.
var OldRegimeSlabs = []Slab{
	slab(0, "0"),
	slab(250000, "0.05"),
	slab(500000, "0.20"),
	slab(1000000, "0.30"),
}

// NewRegimeSlabs are ordered by ascending lower bound.
var NewRegimeSlabs = []Slab{
	slab(0, "0"),
	slab(300000, "0.05"),
	slab(600000, "0.10"),
	slab(900000, "0.15"),
	slab(1200000, "0.20"),
	slab(1500000, "0.30"),
}

var (
	oldRegimeRebateLimit = decimal.NewFromInt(constants.OldRegimeRebateLimit)
	newRegimeRebateLimit = decimal.NewFromInt(constants.NewRegimeRebateLimit)
)

// EvaluateSlabs computes progressive tax on income. Slabs are walked from the
// highest down; each slab whose lower bound income exceeds taxes the excess and
// lowers the remaining income to that bound. The breakdown is returned in
// ascending slab order and only lists slabs that received income.
func EvaluateSlabs(income decimal.Decimal, slabs []Slab) (decimal.Decimal, []SlabTax) {
	total := decimal.Zero
	remaining := mathutil.ClampZero(income)
	breakdown := make([]SlabTax, 0, len(slabs))

	for i := len(slabs) - 1; i >= 0; i-- {
		s := slabs[i]
		if !remaining.GreaterThan(s.Lower) {
			continue
		}
		taxed := remaining.Sub(s.Lower)
		tax := taxed.Mul(s.Rate)
		total = total.Add(tax)

		upper := decimal.Zero
		if i+1 < len(slabs) {
			upper = slabs[i+1].Lower
		}
		breakdown = append(breakdown, SlabTax{
			Lower: s.Lower,
			Upper: upper,
			Rate:  s.Rate,
			Taxed: taxed,
			Tax:   tax,
		})
		remaining = s.Lower
	}

	for i, j := 0, len(breakdown)-1; i < j; i, j = i+1, j-1 {
		breakdown[i], breakdown[j] = breakdown[j], breakdown[i]
	}
	return total, breakdown
}

// OldRegimeTax returns tax on taxable income under the old regime. Tax is zero
// when taxable income does not exceed 500,000.
func OldRegimeTax(taxableIncome decimal.Decimal) (decimal.Decimal, []SlabTax, bool) {
	tax, breakdown := EvaluateSlabs(taxableIncome, OldRegimeSlabs)
	if taxableIncome.LessThanOrEqual(oldRegimeRebateLimit) {
		return decimal.Zero, breakdown, tax.IsPositive()
	}
	return tax, breakdown, false
}

// NewRegimeTax returns the taxable income and tax for gross income under the
// new regime. The standard deduction is subtracted before the slabs are
// applied, but the rebate is tested against gross income: tax is zero when
// gross income does not exceed 700,000.
func NewRegimeTax(grossIncome decimal.Decimal) (decimal.Decimal, decimal.Decimal, []SlabTax, bool) {
	taxable := mathutil.ClampZero(grossIncome.Sub(standardDeduction))
	tax, breakdown := EvaluateSlabs(taxable, NewRegimeSlabs)
	if grossIncome.LessThanOrEqual(newRegimeRebateLimit) {
		return taxable, decimal.Zero, breakdown, tax.IsPositive()
	}
	return taxable, tax, breakdown, false
}
