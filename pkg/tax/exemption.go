package tax

import (
	"github.com/iwvelando/income-tax/pkg/constants"
	"github.com/iwvelando/income-tax/pkg/mathutil"
	"github.com/shopspring/decimal"
)

var (
	hraMetroRate      = mathutil.MustRate(constants.HRAMetroRate)
	hraNonMetroRate   = mathutil.MustRate(constants.HRANonMetroRate)
	hraRentOffsetRate = mathutil.MustRate(constants.HRARentOffsetRate)
)

// ComputeHRAExemption returns the exempt part of the house rent allowance: the
// least of the allowance received, 50% (metro) or 40% of basic salary, and rent
// paid in excess of 10% of basic salary, never below zero.
func ComputeHRAExemption(basicSalary, hraReceived, rentPaid decimal.Decimal, isMetroResident bool) decimal.Decimal {
	salaryShare := basicSalary.Mul(hraNonMetroRate)
	if isMetroResident {
		salaryShare = basicSalary.Mul(hraMetroRate)
	}
	rentExcess := rentPaid.Sub(basicSalary.Mul(hraRentOffsetRate))

	return mathutil.ClampZero(decimal.Min(hraReceived, salaryShare, rentExcess))
}
