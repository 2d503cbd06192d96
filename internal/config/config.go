// Package config defines the data structures related to configuration and
// includes functions for loading, validating and exporting it.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/compound-forecast/pkg/constants"
	"github.com/iwvelando/compound-forecast/pkg/validation"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for compound-forecast.
type Configuration struct {
	Logging    LoggingConfig     `mapstructure:"logging" yaml:"logging"`
	Output     OutputConfig      `mapstructure:"output" yaml:"output"`
	Projection ProjectionConfig  `mapstructure:"projection" yaml:"projection"`
	Input      validation.Bounds `mapstructure:"input" yaml:"input"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format         string `mapstructure:"format" yaml:"format,omitempty"` // pretty, csv
	Locale         string `mapstructure:"locale" yaml:"locale,omitempty"`
	CurrencySymbol string `mapstructure:"currencySymbol" yaml:"currencySymbol,omitempty"`
}

// ProjectionConfig holds the assumptions applied to every calculation.
type ProjectionConfig struct {
	InflationRate float64 `mapstructure:"inflationRate" yaml:"inflationRate"` // percent
}

// Viper keys shared with command line flag bindings.
const (
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
	KeyLogOutputFile  = "logging.outputFile"
	KeyOutputFormat   = "output.format"
	KeyOutputLocale   = "output.locale"
	KeyCurrencySymbol = "output.currencySymbol"
	KeyInflationRate  = "projection.inflationRate"
)

// NewViper returns a viper instance carrying the default configuration and
// environment overrides (COMPOUND_FORECAST_<SECTION>_<KEY>, upper case).
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault(KeyLogLevel, d.Logging.Level)
	v.SetDefault(KeyLogFormat, d.Logging.Format)
	v.SetDefault(KeyLogOutputFile, d.Logging.OutputFile)
	v.SetDefault(KeyOutputFormat, d.Output.Format)
	v.SetDefault(KeyOutputLocale, d.Output.Locale)
	v.SetDefault(KeyCurrencySymbol, d.Output.CurrencySymbol)
	v.SetDefault(KeyInflationRate, d.Projection.InflationRate)

	for key, r := range map[string]validation.Range{
		"input.principal":    d.Input.Principal,
		"input.contribution": d.Input.Contribution,
		"input.rate":         d.Input.RatePercent,
		"input.years":        d.Input.Years,
	} {
		v.SetDefault(key+".min", r.Min)
		v.SetDefault(key+".max", r.Max)
	}
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there on top of the defaults. An empty path loads defaults
// and environment overrides only.
func LoadConfiguration(configPath string) (*Configuration, error) {
	return Load(NewViper(), configPath)
}

// Load reads configPath (if set) into v and decodes the result.
func Load(v *viper.Viper, configPath string) (*Configuration, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &configuration, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{Level: constants.DefaultLogLevel, Format: constants.DefaultLogFormat},
		Output: OutputConfig{
			Format:         constants.OutputFormatPretty,
			Locale:         "en-US",
			CurrencySymbol: "$",
		},
		Projection: ProjectionConfig{InflationRate: constants.DefaultInflationRate},
		Input:      validation.DefaultBounds(),
	}
}

// Validate returns an error for settings the application cannot run with.
func (c *Configuration) Validate() error {
	var errs []error
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		errs = append(errs, err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level: %s", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("invalid log format: %s", c.Logging.Format))
	}
	if c.Projection.InflationRate <= -constants.PercentageMultiplier {
		errs = append(errs, fmt.Errorf("inflation rate must be greater than -100%%, got %g", c.Projection.InflationRate))
	}
	if err := c.Input.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("input bounds: %w", err))
	}
	return errors.Join(errs...)
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	inflation := c.Projection.InflationRate
	if inflation < 0 {
		warnings = append(warnings, fmt.Sprintf("Inflation rate %g%% is negative (deflation)", inflation))
	}
	if inflation > 20 {
		warnings = append(warnings, fmt.Sprintf("Inflation rate %g%% is far above the long-run average of %g%%",
			inflation, constants.DefaultInflationRate))
	}
	if inflation >= c.Input.RatePercent.Max {
		warnings = append(warnings, fmt.Sprintf("No accepted return rate (max %g%%) beats inflation of %g%%; inflation-adjusted values will not grow",
			c.Input.RatePercent.Max, inflation))
	}
	return warnings
}

// Marshal renders the configuration as YAML.
func (c *Configuration) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return data, nil
}
