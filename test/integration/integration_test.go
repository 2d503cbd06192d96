package integration

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/iwvelando/compound-forecast/internal/calculator"
	"github.com/iwvelando/compound-forecast/internal/config"
	"github.com/iwvelando/compound-forecast/internal/console"
	"github.com/iwvelando/compound-forecast/pkg/format"
	"github.com/iwvelando/compound-forecast/pkg/output"
	"github.com/iwvelando/compound-forecast/pkg/projection"
	"github.com/iwvelando/compound-forecast/pkg/testutil"
	"go.uber.org/zap"
)

func runSession(t *testing.T, conf *config.Configuration, input string) string {
	t.Helper()
	logger := zap.NewNop()

	var out bytes.Buffer
	reader := console.NewReader(strings.NewReader(input), &out, logger)
	printer := output.NewPrinter(&out, format.NewFormatter(conf.Output.Locale, conf.Output.CurrencySymbol))
	session := calculator.NewSession(reader, printer, calculator.Settings{
		InflationRate: conf.Projection.InflationRate,
		OutputFormat:  conf.Output.Format,
		Bounds:        conf.Input,
	}, logger)

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

// TestSessionFromTestConfig drives a full session configured exactly as main() does.
func TestSessionFromTestConfig(t *testing.T) {
	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("unexpected configuration warnings: %v", warnings)
	}

	got := runSession(t, conf, testutil.Script(
		"abc",   // rejected, not a number
		"500",   // rejected, below the principal minimum
		"10000", // principal
		"1000",  // contribution
		"7",     // rate
		"10",    // years
		"1", "2", "3",
		"5",
	))

	adjusted, err := projection.InflationAdjustedPortfolioValue(10000, 1000, 7, 10, conf.Projection.InflationRate)
	if err != nil {
		t.Fatalf("InflationAdjustedPortfolioValue() error = %v", err)
	}

	testutil.RequireContains(t, got,
		"Enter a valid number",
		"Enter a value between 1000 and 1000000",
		"End Portfolio Value: $33,487.96",
		"YEAR 1: $11,700.00",
		"YEAR 10: $33,487.96",
		"Total Contributions: $10,000.00",
		"Portfolio Value (Inflation-Adjusted, 3.2%): "+format.Currency(adjusted),
	)
}

// TestYearlyBreakdownMatchesEndValue checks that the printed breakdown ends on
// the same amount as the summary for a range of inputs.
func TestYearlyBreakdownMatchesEndValue(t *testing.T) {
	conf := config.Default()

	cases := []projection.Inputs{
		{Principal: 1000, Contribution: 0, RatePercent: 10, Years: 3},
		{Principal: 50000, Contribution: 0, RatePercent: 5, Years: 20},
		{Principal: 250000, Contribution: 12000, RatePercent: 6.5, Years: 35},
	}

	for _, c := range cases {
		value, err := c.Value()
		if err != nil {
			t.Fatalf("Value() error = %v", err)
		}
		series, err := c.Series()
		if err != nil {
			t.Fatalf("Series() error = %v", err)
		}
		if series[len(series)-1].Value != value {
			t.Errorf("series end %v differs from value %v", series[len(series)-1].Value, value)
		}

		got := runSession(t, conf, testutil.Script(
			formatInput(c.Principal), formatInput(c.Contribution), formatInput(c.RatePercent), formatInput(float64(c.Years)),
			"1", "5",
		))
		endValue := format.Currency(value)
		testutil.RequireContains(t, got,
			"End Portfolio Value: "+endValue,
			"YEAR "+formatInput(float64(c.Years))+": "+endValue,
		)
	}
}

func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
