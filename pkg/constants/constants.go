// Package constants provides shared constants for the compound-forecast application.
package constants

// Financial constants
const (
	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyPlaces is the number of fractional digits shown for currency
	CurrencyPlaces = 2

	// DefaultInflationRate is the long-run average US inflation rate, in percent.
	DefaultInflationRate = 3.2
)

// Input bounds enforced by the interactive reader and the project command.
const (
	MinPrincipal = 1_000.0
	MaxPrincipal = 1_000_000.0

	MinContribution = 0.0
	MaxContribution = 1_000_000.0

	MinRatePercent = 1.0
	MaxRatePercent = 100.0

	MinYears = 1
	MaxYears = 100
)

// Menu choices
const (
	MenuYearlyBreakdown       = 1
	MenuContributionBreakdown = 2
	MenuInflationAdjusted     = 3
	MenuNewCalculation        = 4
	MenuExit                  = 5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration constants
const (
	// EnvPrefix prefixes environment variable overrides, e.g. COMPOUND_FORECAST_LOGGING_LEVEL.
	EnvPrefix = "COMPOUND_FORECAST"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultLogLevel keeps interactive sessions free of informational logs.
	DefaultLogLevel = "warn"

	// DefaultLogFormat is the zap encoder used when none is configured.
	DefaultLogFormat = "json"
)
