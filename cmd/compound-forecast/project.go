package main

import (
	"errors"
	"fmt"

	"github.com/iwvelando/compound-forecast/pkg/constants"
	"github.com/iwvelando/compound-forecast/pkg/projection"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type projectOptions struct {
	inputs    projection.Inputs
	breakdown bool
	split     bool
	inflation bool
}

func newProjectCmd(v *viper.Viper, configPath *string) *cobra.Command {
	var opts projectOptions

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Compute a projection once from flags, without the interactive menu",
		Example: "  compound-forecast project --principal 10000 --contribution 1000 --rate 7 --years 10\n" +
			"  compound-forecast project --principal 50000 --rate 5 --years 20 --breakdown --output-format csv",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(v, *configPath)
			if err != nil {
				return err
			}
			defer a.sync()
			return runProject(cmd, a, opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.inputs.Principal, "principal", 0, "initial investment amount")
	flags.Float64Var(&opts.inputs.Contribution, "contribution", 0, "annual contribution amount")
	flags.Float64Var(&opts.inputs.RatePercent, "rate", 0, "expected annual return rate in percent")
	flags.IntVar(&opts.inputs.Years, "years", 0, "time horizon in years")
	flags.BoolVar(&opts.breakdown, "breakdown", false, "print the year-by-year breakdown")
	flags.BoolVar(&opts.split, "split", false, "print the contributions vs. growth breakdown")
	flags.BoolVar(&opts.inflation, "inflation", false, "print the inflation-adjusted value")
	for _, name := range []string{"principal", "rate", "years"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func runProject(cmd *cobra.Command, a *app, opts projectOptions) error {
	in := opts.inputs
	if err := a.conf.Input.ValidateInputs(in); err != nil {
		return fmt.Errorf("invalid inputs: %w", err)
	}

	// A csv breakdown is the whole output so it stays parseable.
	csvOnly := opts.breakdown && a.conf.Output.Format == constants.OutputFormatCSV
	if csvOnly && (opts.split || opts.inflation) {
		return errors.New("--split and --inflation cannot be combined with a csv --breakdown")
	}

	printer := a.printer(cmd)

	value, err := in.Value()
	if err != nil {
		return fmt.Errorf("failed to compute portfolio value: %w", err)
	}
	a.logger.Info("computed portfolio value",
		zap.String("op", "main.project"),
		zap.Float64("value", value),
	)

	if opts.breakdown {
		series, err := in.Series()
		if err != nil {
			return fmt.Errorf("failed to compute yearly series: %w", err)
		}
		if err := printer.YearlyBreakdown(a.conf.Output.Format, series); err != nil {
			return err
		}
		if csvOnly {
			return nil
		}
	}

	if opts.split {
		breakdown, err := in.Breakdown()
		if err != nil {
			return fmt.Errorf("failed to compute contribution breakdown: %w", err)
		}
		printer.ContributionBreakdown(breakdown)
	}

	if !opts.inflation {
		printer.PortfolioValue("End Portfolio Value: ", value)
		return nil
	}

	inflation := a.conf.Projection.InflationRate
	adjusted, err := in.InflationAdjustedValue(inflation)
	switch {
	case errors.Is(err, projection.ErrZeroRate):
		printer.ZeroRealReturn(value, in.PaidIn(), inflation)
	case err != nil:
		return fmt.Errorf("failed to compute inflation-adjusted value: %w", err)
	default:
		printer.InflationAdjusted(value, adjusted, inflation)
	}
	return nil
}
