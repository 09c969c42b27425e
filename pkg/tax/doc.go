// Package tax computes individual income-tax liability under the old and new
// regimes and compares them.
//
// The computation is a pure function of a TaxProfile:
//
//	HRA exemption -> deductions -> taxable income -> slab tax -> rebate -> cess
//
// Both regimes are always evaluated so callers can present them side by side.
// Amounts are exact decimals; formatting for display is left to the caller.
package tax
