// Package configprocessor provides shared configuration processing utilities.
package configprocessor

import (
	"fmt"

	"github.com/iwvelando/income-tax/pkg/constants"
)

// ProfileInfo represents the profile fields relevant to configuration warnings
type ProfileInfo struct {
	Name                       string
	Active                     bool
	Regime                     string
	HRAReceived                float64
	RentPaid                   float64
	BasicSalary                float64
	Section80CInvestments      float64
	OtherDeductions            float64
	IsSeniorCitizen            bool
	FixedDepositInterestIncome float64
}

// Processor handles configuration processing and validation
type Processor struct{}

// NewProcessor creates a new configuration processor
func NewProcessor() *Processor {
	return &Processor{}
}

// ValidateConfiguration inspects active profiles and returns warnings about
// inputs the computation will cap or ignore. It returns nil when there is
// nothing to report.
func (p *Processor) ValidateConfiguration(profiles []ProfileInfo) []string {
	var warnings []string

	active := 0
	for _, profile := range profiles {
		if !profile.Active {
			continue
		}
		active++
		warnings = append(warnings, p.profileWarnings(profile)...)
	}

	if active == 0 {
		warnings = append(warnings, "No active profiles - nothing will be computed")
	}

	if len(warnings) == 0 {
		return nil
	}
	return warnings
}

func (p *Processor) profileWarnings(profile ProfileInfo) []string {
	var warnings []string

	if profile.Section80CInvestments > constants.Section80CCap {
		warnings = append(warnings, fmt.Sprintf(
			"Profile '%s' declares 80C investments of %.2f; only %d is deductible",
			profile.Name, profile.Section80CInvestments, constants.Section80CCap))
	}

	if profile.HRAReceived > 0 && profile.RentPaid <= profile.BasicSalary*0.10 {
		warnings = append(warnings, fmt.Sprintf(
			"Profile '%s' receives HRA but rent paid does not exceed 10%% of basic salary - HRA exemption is zero",
			profile.Name))
	}

	if !profile.IsSeniorCitizen && profile.FixedDepositInterestIncome > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"Profile '%s' declares fixed deposit interest, which is not deductible for non-senior citizens",
			profile.Name))
	}

	itemized := profile.HRAReceived > 0 || profile.Section80CInvestments > 0 || profile.OtherDeductions > 0
	if profile.Regime == "new" && itemized {
		warnings = append(warnings, fmt.Sprintf(
			"Profile '%s' selects the new regime; HRA and itemized deductions only affect the old regime figures",
			profile.Name))
	}

	return warnings
}
