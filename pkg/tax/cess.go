package tax

import (
	"github.com/iwvelando/income-tax/pkg/constants"
	"github.com/iwvelando/income-tax/pkg/mathutil"
	"github.com/shopspring/decimal"
)

var cessRate = mathutil.MustRate(constants.CessRate)

// ComputeCess returns the 4% cess on tax. It is levied on tax, never on income.
func ComputeCess(taxBeforeCess decimal.Decimal) decimal.Decimal {
	return taxBeforeCess.Mul(cessRate)
}
