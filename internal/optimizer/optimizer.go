// Package optimizer searches for the additional old-regime deduction at which
// the old regime stops costing more than the new regime.
package optimizer

import (
	"fmt"
	"math"

	"github.com/iwvelando/income-tax/internal/assessment"
	"github.com/iwvelando/income-tax/internal/config"
	"github.com/iwvelando/income-tax/pkg/constants"
	"github.com/iwvelando/income-tax/pkg/format"
	"github.com/iwvelando/income-tax/pkg/mathutil"
	"github.com/iwvelando/income-tax/pkg/optimization"
	"github.com/iwvelando/income-tax/pkg/tax"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	maxBound = decimal.NewFromInt(math.MaxInt64)
	oneRupee = decimal.NewFromInt(1)
)

// Runner executes the break-even search for every active profile.
type Runner struct {
	logger *zap.Logger
	conf   *config.Configuration
}

// Result summarizes break-even searches keyed by profile name.
type Result struct {
	Summaries map[string]optimization.Summary
}

// Empty indicates whether any summaries were produced.
func (r Result) Empty() bool {
	return len(r.Summaries) == 0
}

// Apply attaches summaries to the matching assessments.
func (r Result) Apply(assessments []assessment.Assessment) {
	if len(r.Summaries) == 0 {
		return
	}
	for i := range assessments {
		summary, ok := r.Summaries[assessments[i].Name]
		if !ok {
			continue
		}
		s := summary
		assessments[i].Metrics.BreakEven = &s
	}
}

// NewRunner constructs a Runner for the provided configuration.
func NewRunner(logger *zap.Logger, conf *config.Configuration) (*Runner, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, conf: conf}, nil
}

// Run searches every active profile. The configuration is not modified.
func (r *Runner) Run() (*Result, error) {
	summaries := make(map[string]optimization.Summary)

	for _, profile := range r.conf.ActiveProfiles() {
		taxProfile, err := profile.ToTaxProfile()
		if err != nil {
			return nil, err
		}

		summary := BreakEven(profile.Name, taxProfile)
		summaries[profile.Name] = summary

		r.logger.Info("break-even deduction computed",
			zap.String("op", "optimizer.Run"),
			zap.String("profile", profile.Name),
			zap.String("original", summary.Original.String()),
			zap.String("value", summary.Value.String()),
			zap.String("valueDisplay", summary.ValueDisplay),
			zap.String("oldRegimeTotal", summary.OldRegimeTotal.String()),
			zap.String("newRegimeTotal", summary.NewRegimeTotal.String()),
			zap.Int("iterations", summary.Iterations),
			zap.Bool("converged", summary.Converged),
		)
	}

	return &Result{Summaries: summaries}, nil
}

// BreakEven finds the smallest whole-rupee deduction that, added to the
// profile's other deductions, makes the old regime total no greater than the
// new regime total. Old-regime tax is non-increasing in deductions, so a
// bisection over [0, gross income] suffices. The upper bound is capped at
// math.MaxInt64 rupees.
func BreakEven(name string, profile tax.TaxProfile) optimization.Summary {
	p := profile.Normalize()
	base := tax.Compute(p)
	target := base.NewRegime.TotalTaxPayable

	hra := tax.ComputeHRAExemption(p.BasicSalary, p.HRAReceived, p.RentPaid, p.IsMetroResident)
	summary := optimization.Summary{
		Profile:        name,
		Field:          optimization.FieldAdditionalDeduction,
		Original:       tax.ComputeDeductions(p, hra, tax.RegimeOld).Total,
		NewRegimeTotal: target,
		Remaining80C:   decimal.NewFromInt(constants.Section80CCap).Sub(tax.CapSection80C(p.Section80CInvestments)),
	}

	if !base.OldRegime.TotalTaxPayable.GreaterThan(target) {
		summary.Value = decimal.Zero
		summary.OldRegimeTotal = base.OldRegime.TotalTaxPayable
		summary.Converged = true
		summary.ValueDisplay = format.Rupees(summary.Value)
		summary.Notes = []string{"old regime already costs no more than the new regime"}
		return summary
	}

	oldTotalWith := func(extra int64) decimal.Decimal {
		adjusted := p
		adjusted.OtherDeductions = p.OtherDeductions.Add(decimal.NewFromInt(extra))
		return tax.Compute(adjusted).OldRegime.TotalTaxPayable
	}

	// lo is always infeasible and hi always feasible: at hi the old-regime
	// taxable income is zero, or past the capped bound the gap between the
	// regimes has long been closed.
	lo := int64(0)
	hi := int64(math.MaxInt64)
	if ceiling := p.GrossAnnualIncome.Ceil(); ceiling.LessThan(maxBound) {
		hi = ceiling.IntPart()
	}
	iterations := 0
	for hi-lo > 1 && iterations < constants.BreakEvenMaxIterations {
		iterations++
		mid := lo + (hi-lo)/2
		if oldTotalWith(mid).GreaterThan(target) {
			lo = mid
		} else {
			hi = mid
		}
	}

	summary.Value = decimal.NewFromInt(hi)
	summary.OldRegimeTotal = oldTotalWith(hi)
	summary.Iterations = iterations
	summary.Converged = mathutil.WithinTolerance(decimal.NewFromInt(hi), decimal.NewFromInt(lo), oneRupee)
	summary.ValueDisplay = format.Rupees(summary.Value)

	if !summary.Converged {
		summary.Notes = append(summary.Notes,
			fmt.Sprintf("search stopped after %d iterations", iterations))
	}
	if summary.Value.LessThanOrEqual(summary.Remaining80C) {
		summary.Notes = append(summary.Notes, fmt.Sprintf(
			"investing %s more under Section 80C makes the old regime no costlier",
			format.Rupees(summary.Value)))
	} else {
		summary.Notes = append(summary.Notes, fmt.Sprintf(
			"needs %s of further deductions, beyond the remaining Section 80C room of %s",
			format.Rupees(summary.Value), format.Rupees(summary.Remaining80C)))
	}
	return summary
}
