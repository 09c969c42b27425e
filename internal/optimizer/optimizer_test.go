package optimizer

import (
	"strings"
	"testing"

	"github.com/iwvelando/income-tax/internal/assessment"
	"github.com/iwvelando/income-tax/internal/config"
	"github.com/iwvelando/income-tax/pkg/constants"
	"github.com/iwvelando/income-tax/pkg/optimization"
	"github.com/iwvelando/income-tax/pkg/tax"
	"github.com/iwvelando/income-tax/pkg/testutil"
	"go.uber.org/zap"
)

func retiredProfile() tax.TaxProfile {
	return tax.TaxProfile{
		GrossAnnualIncome:          testutil.Rupees(650000),
		Section80CInvestments:      testutil.Rupees(100000),
		IsSeniorCitizen:            true,
		SavingsInterestIncome:      testutil.Rupees(12000),
		FixedDepositInterestIncome: testutil.Rupees(40000),
		SelectedRegime:             tax.RegimeOld,
	}
}

func TestBreakEven(t *testing.T) {
	tests := []struct {
		name           string
		profile        tax.TaxProfile
		value          int64
		original       int64
		oldTotal       string
		newTotal       string
		remaining80C   int64
		noteSnippet    string
		wantIterations bool
	}{
		{
			name:         "Old regime already cheaper",
			profile:      testutil.SalariedProfile(),
			value:        0,
			original:     305000,
			oldTotal:     "53560",
			newTotal:     "54600",
			remaining80C: 0,
			noteSnippet:  "already costs no more",
		},
		{
			name:           "No deductions claimed",
			profile:        testutil.IncomeOnlyProfile(1000000, tax.RegimeOld),
			value:          300000,
			original:       0,
			oldTotal:       "54600",
			newTotal:       "54600",
			remaining80C:   150000,
			noteSnippet:    "beyond the remaining Section 80C room of ₹1,50,000.00",
			wantIterations: true,
		},
		{
			name:           "Senior reaches the old regime rebate",
			profile:        retiredProfile(),
			value:          25000,
			original:       125000,
			oldTotal:       "0",
			newTotal:       "0",
			remaining80C:   50000,
			noteSnippet:    "investing ₹25,000.00 more under Section 80C",
			wantIterations: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := BreakEven(tt.name, tt.profile)

			if summary.Profile != tt.name {
				t.Errorf("Profile = %q, expected %q", summary.Profile, tt.name)
			}
			if summary.Field != optimization.FieldAdditionalDeduction {
				t.Errorf("Field = %q", summary.Field)
			}
			if !summary.Converged {
				t.Errorf("expected convergence, notes %v", summary.Notes)
			}
			if !summary.Value.Equal(testutil.Rupees(tt.value)) {
				t.Errorf("Value = %s, expected %d", summary.Value, tt.value)
			}
			if !summary.Original.Equal(testutil.Rupees(tt.original)) {
				t.Errorf("Original = %s, expected %d", summary.Original, tt.original)
			}
			if !summary.OldRegimeTotal.Equal(testutil.Amount(tt.oldTotal)) {
				t.Errorf("OldRegimeTotal = %s, expected %s", summary.OldRegimeTotal, tt.oldTotal)
			}
			if !summary.NewRegimeTotal.Equal(testutil.Amount(tt.newTotal)) {
				t.Errorf("NewRegimeTotal = %s, expected %s", summary.NewRegimeTotal, tt.newTotal)
			}
			if !summary.Remaining80C.Equal(testutil.Rupees(tt.remaining80C)) {
				t.Errorf("Remaining80C = %s, expected %d", summary.Remaining80C, tt.remaining80C)
			}
			if tt.wantIterations != (summary.Iterations > 0) {
				t.Errorf("Iterations = %d", summary.Iterations)
			}
			if len(summary.Notes) == 0 || !strings.Contains(strings.Join(summary.Notes, "; "), tt.noteSnippet) {
				t.Errorf("Notes = %v, expected to contain %q", summary.Notes, tt.noteSnippet)
			}
		})
	}
}

func TestBreakEvenIsMinimal(t *testing.T) {
	profile := testutil.IncomeOnlyProfile(1800000, tax.RegimeOld)
	summary := BreakEven("high earner", profile)
	if summary.Value.IsZero() {
		t.Fatalf("expected a positive break-even deduction")
	}

	oneLess := profile
	oneLess.OtherDeductions = summary.Value.Sub(testutil.Rupees(1))
	comparison := tax.Compute(oneLess)
	if !comparison.OldRegime.TotalTaxPayable.GreaterThan(comparison.NewRegime.TotalTaxPayable) {
		t.Errorf("one rupee less than %s already breaks even", summary.Value)
	}

	exact := profile
	exact.OtherDeductions = summary.Value
	comparison = tax.Compute(exact)
	if comparison.OldRegime.TotalTaxPayable.GreaterThan(comparison.NewRegime.TotalTaxPayable) {
		t.Errorf("break-even value %s does not break even", summary.Value)
	}
}

func TestNewRunnerRejectsNilConfig(t *testing.T) {
	if _, err := NewRunner(zap.NewNop(), nil); err == nil {
		t.Errorf("expected error for nil configuration")
	}
}

func TestRunnerRunAndApply(t *testing.T) {
	conf := &config.Configuration{Profiles: []config.Profile{
		{Name: "salaried", Active: true, Regime: "old", GrossAnnualIncome: 1000000},
		{Name: "draft", Active: false, Regime: "new", GrossAnnualIncome: 2000000},
	}}

	runner, err := NewRunner(nil, conf)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	result, err := runner.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Empty() {
		t.Fatal("expected summaries")
	}
	if _, ok := result.Summaries["draft"]; ok {
		t.Errorf("inactive profile should not be searched")
	}

	assessments, err := assessment.GetAssessments(zap.NewNop(), *conf)
	if err != nil {
		t.Fatalf("GetAssessments() error = %v", err)
	}
	result.Apply(assessments)

	found := testutil.FindAssessment(assessments, "salaried")
	if found == nil || found.Metrics.BreakEven == nil {
		t.Fatalf("expected break-even metrics on salaried assessment")
	}
	if !found.Metrics.BreakEven.Value.Equal(testutil.Rupees(300000)) {
		t.Errorf("break-even value = %s, expected 300000", found.Metrics.BreakEven.Value)
	}
	if conf.Profiles[0].OtherDeductions != 0 {
		t.Errorf("Run() must not modify the configuration")
	}
}

func TestRunnerInvalidRegime(t *testing.T) {
	conf := &config.Configuration{Profiles: []config.Profile{
		{Name: "bad", Active: true, Regime: "flat"},
	}}
	runner, err := NewRunner(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	if _, err := runner.Run(); err == nil {
		t.Errorf("expected error for unknown regime")
	}
}

func TestEmptyResultApplyIsNoop(t *testing.T) {
	assessments := []assessment.Assessment{{Name: "salaried"}}
	Result{}.Apply(assessments)
	if assessments[0].Metrics.BreakEven != nil {
		t.Errorf("expected no metrics from empty result")
	}
}

func TestBreakEvenIncomeBeyondInt64(t *testing.T) {
	profile := tax.TaxProfile{
		GrossAnnualIncome: testutil.Amount("20000000000000000000"),
		SelectedRegime:    tax.RegimeOld,
	}

	summary := BreakEven("beyond int64", profile)
	if !summary.Converged {
		t.Fatalf("expected convergence, notes %v", summary.Notes)
	}
	if summary.Iterations > constants.BreakEvenMaxIterations {
		t.Errorf("Iterations = %d, exceeds %d", summary.Iterations, constants.BreakEvenMaxIterations)
	}
	if !summary.Value.Equal(testutil.Rupees(425000)) {
		t.Errorf("Value = %s, expected 425000", summary.Value)
	}
	if !summary.OldRegimeTotal.Equal(summary.NewRegimeTotal) {
		t.Errorf("OldRegimeTotal = %s, expected %s", summary.OldRegimeTotal, summary.NewRegimeTotal)
	}
}
