// Package assessment defines the per-profile results of a run and includes
// functions for computing them from a configuration.
package assessment

import (
	"fmt"

	"github.com/iwvelando/income-tax/internal/config"
	"github.com/iwvelando/income-tax/pkg/optimization"
	"github.com/iwvelando/income-tax/pkg/tax"
	"go.uber.org/zap"
)

// Assessment holds the tax computation for one configured profile.
type Assessment struct {
	Name       string
	Profile    tax.TaxProfile
	Comparison tax.RegimeComparison
	Metrics    Metrics
}

// Metrics carries optional analysis attached after the computation.
type Metrics struct {
	BreakEven *optimization.Summary
}

// GetAssessments computes the regime comparison for every active profile.
func GetAssessments(logger *zap.Logger, conf config.Configuration) ([]Assessment, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Assessment
	for _, profile := range conf.Profiles {
		if !profile.Active {
			logger.Debug(fmt.Sprintf("skipping profile %s because it is inactive", profile.Name),
				zap.String("op", "assessment.GetAssessments"),
			)
			continue
		}

		result, err := Assess(profile)
		if err != nil {
			return results, err
		}

		selected := result.Comparison.Selected()
		logger.Debug("profile assessed",
			zap.String("op", "assessment.GetAssessments"),
			zap.String("profile", profile.Name),
			zap.String("regime", selected.Regime.String()),
			zap.String("taxableIncome", selected.TaxableIncome.String()),
			zap.String("totalTaxPayable", selected.TotalTaxPayable.String()),
			zap.String("recommended", result.Comparison.Recommended().String()),
		)
		results = append(results, result)
	}

	return results, nil
}

// Assess computes a single profile regardless of its active flag.
func Assess(profile config.Profile) (Assessment, error) {
	taxProfile, err := profile.ToTaxProfile()
	if err != nil {
		return Assessment{}, err
	}
	return Assessment{
		Name:       profile.Name,
		Profile:    taxProfile,
		Comparison: tax.Compute(taxProfile),
	}, nil
}
