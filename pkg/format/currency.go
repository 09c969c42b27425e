// Package format renders amounts for display.
package format

import (
	"github.com/iwvelando/income-tax/pkg/constants"
	"github.com/iwvelando/income-tax/pkg/mathutil"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The en-IN locale groups digits in lakhs and crores (10,00,000).
var indianPrinter = message.NewPrinter(language.MustParse("en-IN"))

// Rupees returns a currency string with a rupee sign and Indian digit grouping
// (e.g., "₹10,00,000.00", "-₹1,234.50").
func Rupees(amount decimal.Decimal) string {
	sign, digits := grouped(amount)
	return sign + "₹" + digits
}

// NumericRupees returns the grouped amount without a currency symbol (e.g., "-1,23,456.78").
func NumericRupees(amount decimal.Decimal) string {
	sign, digits := grouped(amount)
	return sign + digits
}

// Percent renders a percentage with two decimals (e.g., "5.36%").
func Percent(value decimal.Decimal) string {
	return mathutil.Round(value).StringFixed(constants.DecimalPlaces) + "%"
}

// grouped rounds amount to paise and splits it into a sign and grouped digits.
// Amounts that round to zero carry no sign.
func grouped(amount decimal.Decimal) (string, string) {
	rounded := mathutil.Round(amount)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	digits := indianPrinter.Sprint(number.Decimal(rounded.Abs().InexactFloat64(),
		number.MinFractionDigits(constants.DecimalPlaces),
		number.MaxFractionDigits(constants.DecimalPlaces),
	))
	return sign, digits
}
