// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/income-tax/pkg/configprocessor"
	"github.com/iwvelando/income-tax/pkg/constants"
	"github.com/iwvelando/income-tax/pkg/tax"
	"github.com/iwvelando/income-tax/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for income-tax.
type Configuration struct {
	Profiles []Profile     `yaml:"profiles"`
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Profile is one named taxpayer whose liability is computed. Amounts are
// annual figures in rupees.
type Profile struct {
	Name                       string  `yaml:"name"`
	Active                     bool    `yaml:"active"`
	Regime                     string  `yaml:"regime"`
	GrossAnnualIncome          float64 `yaml:"grossAnnualIncome"`
	HRAReceived                float64 `yaml:"hraReceived,omitempty"`
	RentPaid                   float64 `yaml:"rentPaid,omitempty"`
	BasicSalary                float64 `yaml:"basicSalary,omitempty"`
	IsMetroResident            bool    `yaml:"isMetroResident,omitempty"`
	Section80CInvestments      float64 `yaml:"section80CInvestments,omitempty"`
	OtherDeductions            float64 `yaml:"otherDeductions,omitempty"`
	IsSeniorCitizen            bool    `yaml:"isSeniorCitizen,omitempty"`
	SavingsInterestIncome      float64 `yaml:"savingsInterestIncome,omitempty"`
	FixedDepositInterestIncome float64 `yaml:"fixedDepositInterestIncome,omitempty"`
}

// envKeys may be overridden from the environment even when absent from the file.
var envKeys = []string{"logging.level", "logging.format", "logging.outputFile", "output.format"}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ActiveProfiles returns the profiles marked active, in file order.
func (conf *Configuration) ActiveProfiles() []Profile {
	var active []Profile
	for _, profile := range conf.Profiles {
		if profile.Active {
			active = append(active, profile)
		}
	}
	return active
}

// OverrideRegime sets the selected regime of every profile.
func (conf *Configuration) OverrideRegime(regime string) error {
	parsed, err := tax.ParseRegime(regime)
	if err != nil {
		return err
	}
	for i := range conf.Profiles {
		conf.Profiles[i].Regime = parsed.String()
	}
	return nil
}

// Validate returns an error for any input the computation cannot accept:
// missing or duplicate names, unknown regimes, and negative or non-finite
// amounts.
func (conf *Configuration) Validate() error {
	seen := make(map[string]struct{}, len(conf.Profiles))
	for i, profile := range conf.Profiles {
		if err := validation.ValidateProfileName(profile.Name, seen); err != nil {
			return fmt.Errorf("profile %d: %w", i+1, err)
		}
		if err := profile.Validate(); err != nil {
			return fmt.Errorf("profile %s: %w", profile.Name, err)
		}
	}
	return nil
}

// SelectedRegime parses the configured regime. A blank regime selects the
// new regime, matching the compute endpoint.
func (p Profile) SelectedRegime() (tax.Regime, error) {
	if strings.TrimSpace(p.Regime) == "" {
		return tax.RegimeNew, nil
	}
	return tax.ParseRegime(p.Regime)
}

// Validate checks the regime and every amount of a single profile.
func (p Profile) Validate() error {
	if _, err := p.SelectedRegime(); err != nil {
		return err
	}
	for _, amount := range p.amounts() {
		if err := validation.ValidateAmount(amount.name, amount.value); err != nil {
			return err
		}
	}
	return nil
}

type namedAmount struct {
	name  string
	value float64
}

func (p Profile) amounts() []namedAmount {
	return []namedAmount{
		{"grossAnnualIncome", p.GrossAnnualIncome},
		{"hraReceived", p.HRAReceived},
		{"rentPaid", p.RentPaid},
		{"basicSalary", p.BasicSalary},
		{"section80CInvestments", p.Section80CInvestments},
		{"otherDeductions", p.OtherDeductions},
		{"savingsInterestIncome", p.SavingsInterestIncome},
		{"fixedDepositInterestIncome", p.FixedDepositInterestIncome},
	}
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	profiles := make([]configprocessor.ProfileInfo, 0, len(conf.Profiles))
	for _, profile := range conf.Profiles {
		regime := strings.ToLower(strings.TrimSpace(profile.Regime))
		if parsed, err := profile.SelectedRegime(); err == nil {
			regime = parsed.String()
		}
		profiles = append(profiles, configprocessor.ProfileInfo{
			Name:                       profile.Name,
			Active:                     profile.Active,
			Regime:                     regime,
			HRAReceived:                profile.HRAReceived,
			RentPaid:                   profile.RentPaid,
			BasicSalary:                profile.BasicSalary,
			Section80CInvestments:      profile.Section80CInvestments,
			OtherDeductions:            profile.OtherDeductions,
			IsSeniorCitizen:            profile.IsSeniorCitizen,
			FixedDepositInterestIncome: profile.FixedDepositInterestIncome,
		})
	}

	processor := configprocessor.NewProcessor()
	return processor.ValidateConfiguration(profiles)
}
