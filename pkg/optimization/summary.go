// Package optimization provides shared data structures for optimization results.
package optimization

import "github.com/shopspring/decimal"

// FieldAdditionalDeduction names the quantity the break-even search adjusts.
const FieldAdditionalDeduction = "additionalDeduction"

// Summary captures the result of a break-even search for one profile.
type Summary struct {
	Profile        string          `json:"profile"`
	Field          string          `json:"field"`
	Original       decimal.Decimal `json:"original"`
	Value          decimal.Decimal `json:"value"`
	OldRegimeTotal decimal.Decimal `json:"oldRegimeTotal"`
	NewRegimeTotal decimal.Decimal `json:"newRegimeTotal"`
	Remaining80C   decimal.Decimal `json:"remaining80C"`
	Iterations     int             `json:"iterations"`
	Converged      bool            `json:"converged"`
	Notes          []string        `json:"notes,omitempty"`
	ValueDisplay   string          `json:"valueDisplay,omitempty"`
}
