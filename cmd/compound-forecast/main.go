package main

import (
	"fmt"
	"os"

	"github.com/iwvelando/compound-forecast/internal/calculator"
	"github.com/iwvelando/compound-forecast/internal/config"
	"github.com/iwvelando/compound-forecast/internal/console"
	"github.com/iwvelando/compound-forecast/pkg/constants"
	"github.com/iwvelando/compound-forecast/pkg/format"
	"github.com/iwvelando/compound-forecast/pkg/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app is what every command needs once configuration is loaded.
type app struct {
	conf   *config.Configuration
	logger *zap.Logger
}

func (a *app) printer(cmd *cobra.Command) *output.Printer {
	f := format.NewFormatter(a.conf.Output.Locale, a.conf.Output.CurrencySymbol)
	return output.NewPrinter(cmd.OutOrStdout(), f)
}

func (a *app) sync() {
	_ = a.logger.Sync()
}

// loadApp loads the configuration and initializes logging.
func loadApp(v *viper.Viper, configPath string) (*app, error) {
	conf, err := config.Load(v, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %q: %w", configPath, err)
	}

	logger, err := initializeLogger(conf.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}
	return &app{conf: conf, logger: logger}, nil
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	var configPath string

	root := &cobra.Command{
		Use:   "compound-forecast",
		Short: "Project the growth of an investment with annual contributions",
		Long: "compound-forecast asks for an initial investment, an annual contribution, an expected\n" +
			"annual return rate and a time horizon, prints the projected portfolio value and then\n" +
			"offers a year-by-year breakdown, a contributions vs. growth split and an\n" +
			"inflation-adjusted value.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(v, configPath)
			if err != nil {
				return err
			}
			defer a.sync()

			reader := console.NewReader(cmd.InOrStdin(), cmd.OutOrStdout(), a.logger)
			session := calculator.NewSession(reader, a.printer(cmd), calculator.Settings{
				InflationRate: a.conf.Projection.InflationRate,
				OutputFormat:  a.conf.Output.Format,
				Bounds:        a.conf.Input,
			}, a.logger)

			if err := session.Run(cmd.Context()); err != nil {
				a.logger.Error("session ended with error",
					zap.String("op", "main"),
					zap.Error(err),
				)
				return err
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to configuration file (defaults and environment only when empty)")
	flags.String("log-level", "", "log level override (debug, info, warn, error)")
	flags.String("output-format", "", "type of output override: pretty, csv")
	flags.Float64("inflation-rate", constants.DefaultInflationRate, "annual inflation rate in percent")
	bindFlags(v, flags, map[string]string{
		config.KeyLogLevel:      "log-level",
		config.KeyOutputFormat:  "output-format",
		config.KeyInflationRate: "inflation-rate",
	})

	root.AddCommand(newProjectCmd(v, &configPath), newConfigCmd(v, &configPath))
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", name, err))
		}
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
