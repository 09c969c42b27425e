// Package output provides utilities for formatting and displaying tax assessments.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/income-tax/internal/assessment"
	"github.com/iwvelando/income-tax/pkg/constants"
	"github.com/iwvelando/income-tax/pkg/format"
	"github.com/iwvelando/income-tax/pkg/mathutil"
	"github.com/iwvelando/income-tax/pkg/optimization"
	"github.com/iwvelando/income-tax/pkg/tax"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var percentMultiplier = decimal.NewFromInt(constants.PercentageMultiplier)

// Report is the machine-readable view of one assessment.
type Report struct {
	Name        string                   `json:"name"`
	Profile     tax.TaxProfile           `json:"profile"`
	Comparison  tax.RegimeComparison     `json:"comparison"`
	Selected    tax.TaxComputationResult `json:"selected"`
	Recommended tax.Regime               `json:"recommended"`
	Savings     decimal.Decimal          `json:"savings"`
	BreakEven   *optimization.Summary    `json:"breakEven,omitempty"`
}

// NewReport flattens an assessment into a Report.
func NewReport(a assessment.Assessment) Report {
	return Report{
		Name:        a.Name,
		Profile:     a.Profile,
		Comparison:  a.Comparison,
		Selected:    a.Comparison.Selected(),
		Recommended: a.Comparison.Recommended(),
		Savings:     a.Comparison.Savings(),
		BreakEven:   a.Metrics.BreakEven,
	}
}

// Reports converts every assessment into a Report.
func Reports(results []assessment.Assessment) []Report {
	return lo.Map(results, func(a assessment.Assessment, _ int) Report {
		return NewReport(a)
	})
}

// InterestLabel names the interest deduction section that applies.
func InterestLabel(isSeniorCitizen bool) string {
	if isSeniorCitizen {
		return "Interest deduction (80TTB)"
	}
	return "Interest deduction (80TTA)"
}

// displayDeductions returns the itemized deductions behind the selected regime.
func displayDeductions(a assessment.Assessment) tax.DeductionSummary {
	if a.Comparison.DeductionSummary != nil {
		return *a.Comparison.DeductionSummary
	}
	return tax.ComputeDeductions(a.Profile.Normalize(), decimal.Zero, tax.RegimeNew)
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []assessment.Assessment) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		selected := result.Comparison.Selected()
		deductions := displayDeductions(result)
		profile := result.Profile.Normalize()

		_, _ = p.Fprintf(w, "--- Results for profile %s (%s regime) ---\n", result.Name, selected.Regime)
		_, _ = p.Fprintf(w, "%-28s| %s\n", "Item", "Amount")
		_, _ = p.Fprintf(w, "%-28s| %s\n", "____", "______")

		rows := [][2]string{
			{"Gross annual income", format.Rupees(profile.GrossAnnualIncome)},
			{"HRA exemption", format.Rupees(deductions.HRAExemption)},
			{"Section 80C", format.Rupees(deductions.Section80C)},
			{InterestLabel(profile.IsSeniorCitizen), format.Rupees(deductions.InterestDeduction)},
			{"Other deductions", format.Rupees(deductions.OtherDeductions)},
			{"Standard deduction", format.Rupees(deductions.StandardDeduction)},
			{"Total deductions", format.Rupees(deductions.Total)},
			{"Taxable income", format.Rupees(selected.TaxableIncome)},
			{"Tax before cess", format.Rupees(selected.TaxBeforeCess)},
			{"Health and education cess", format.Rupees(selected.CessAmount)},
			{"Total tax payable", format.Rupees(selected.TotalTaxPayable)},
			{"Effective rate", format.Percent(selected.EffectiveRatePercent)},
		}
		for _, row := range rows {
			_, _ = p.Fprintf(w, "%-28s| %s\n", row[0], row[1])
		}
		if selected.RebateApplied {
			_, _ = p.Fprintf(w, "Rebate under section 87A applied\n")
		}

		if len(selected.Slabs) > 0 {
			_, _ = p.Fprintf(w, "Slab breakdown:\n")
			for _, slab := range selected.Slabs {
				_, _ = p.Fprintf(w, "  %s at %s%%: %s\n",
					slabRange(slab), slab.Rate.Mul(percentMultiplier).String(), format.Rupees(slab.Tax))
			}
		}

		_, _ = p.Fprintf(w, "Old regime total: %s\n", format.Rupees(result.Comparison.OldRegime.TotalTaxPayable))
		_, _ = p.Fprintf(w, "New regime total: %s\n", format.Rupees(result.Comparison.NewRegime.TotalTaxPayable))
		_, _ = p.Fprintf(w, "Recommended regime: %s (saves %s)\n",
			result.Comparison.Recommended(), format.Rupees(result.Comparison.Savings()))

		if summary := result.Metrics.BreakEven; summary != nil {
			_, _ = p.Fprintf(w, "Break-even additional deduction: %s\n", format.Rupees(summary.Value))
			for _, note := range summary.Notes {
				_, _ = p.Fprintf(w, "  Note: %s\n", note)
			}
		}

		if i < len(results)-1 {
			_, _ = fmt.Fprintln(w)
		}
	}
}

func slabRange(slab tax.SlabTax) string {
	if slab.Upper.IsZero() {
		return "above " + format.Rupees(slab.Lower)
	}
	return format.Rupees(slab.Lower) + " to " + format.Rupees(slab.Upper)
}

var csvHeader = []string{
	"profile",
	"selected regime",
	"gross income",
	"total deductions",
	"taxable income",
	"tax before cess",
	"rebate applied",
	"cess",
	"total tax payable",
	"effective rate",
	"old regime total",
	"new regime total",
	"recommended regime",
	"savings",
	"break-even deduction",
}

func csvRow(a assessment.Assessment) []string {
	selected := a.Comparison.Selected()
	breakEven := ""
	if a.Metrics.BreakEven != nil {
		breakEven = mathutil.Round(a.Metrics.BreakEven.Value).StringFixed(constants.DecimalPlaces)
	}
	fixed := func(d decimal.Decimal) string {
		return mathutil.Round(d).StringFixed(constants.DecimalPlaces)
	}
	return []string{
		a.Name,
		selected.Regime.String(),
		fixed(a.Profile.GrossAnnualIncome),
		fixed(displayDeductions(a).Total),
		fixed(selected.TaxableIncome),
		fixed(selected.TaxBeforeCess),
		fmt.Sprintf("%t", selected.RebateApplied),
		fixed(selected.CessAmount),
		fixed(selected.TotalTaxPayable),
		fixed(selected.EffectiveRatePercent),
		fixed(a.Comparison.OldRegime.TotalTaxPayable),
		fixed(a.Comparison.NewRegime.TotalTaxPayable),
		a.Comparison.Recommended().String(),
		fixed(a.Comparison.Savings()),
		breakEven,
	}
}

// CsvFormat outputs in comma-separated value format, one row per profile.
func CsvFormat(w io.Writer, results []assessment.Assessment) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write(csvRow(result)); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", result.Name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// CsvString renders the CSV output as a string.
func CsvString(results []assessment.Assessment) string {
	var builder strings.Builder
	_ = CsvFormat(&builder, results)
	return builder.String()
}

// JSONFormat outputs the reports as indented JSON.
func JSONFormat(w io.Writer, results []assessment.Assessment) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(Reports(results)); err != nil {
		return fmt.Errorf("failed to encode assessments: %w", err)
	}
	return nil
}
