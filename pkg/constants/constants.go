// Package constants provides shared constants for the income-tax application.
package constants

// Statutory amounts, in rupees.
const (
	// Section80CCap is the maximum Section 80C deduction.
	Section80CCap = 150000

	// InterestCapNonSenior is the 80TTA cap on savings account interest.
	InterestCapNonSenior = 10000

	// InterestCapSenior is the 80TTB cap on combined savings and deposit interest.
	InterestCapSenior = 25000

	// StandardDeduction is the flat deduction of the new regime.
	StandardDeduction = 50000

	// OldRegimeRebateLimit is the taxable income at or below which old-regime tax is zero.
	OldRegimeRebateLimit = 500000

	// NewRegimeRebateLimit is the gross income at or below which new-regime tax is zero.
	NewRegimeRebateLimit = 700000
)

// Rates, expressed as decimal strings so they parse exactly.
const (
	// CessRate is the health and education cess applied to tax.
	CessRate = "0.04"

	// HRAMetroRate is the share of basic salary usable in a metro city.
	HRAMetroRate = "0.50"

	// HRANonMetroRate is the share of basic salary usable elsewhere.
	HRANonMetroRate = "0.40"

	// HRARentOffsetRate is the share of basic salary subtracted from rent paid.
	HRARentOffsetRate = "0.10"
)

// DecimalPlaces is the precision used when rounding currency for display.
const DecimalPlaces = 2

// PercentageMultiplier is used for percentage conversions.
const PercentageMultiplier = 100

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment variable overrides, e.g. INCOME_TAX_LOGGING_LEVEL.
	EnvPrefix = "INCOME_TAX"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// CorrelationIDHeader carries the per-request correlation ID.
	CorrelationIDHeader = "X-Correlation-ID"
)

// BreakEvenMaxIterations bounds the break-even bisection loop.
const BreakEvenMaxIterations = 64
