// Package calculator runs the interactive projection session: it reads the
// calculation inputs, prints the end value and then serves menu actions
// until the user exits.
package calculator

import (
	"context"
	"errors"
	"fmt"

	"github.com/iwvelando/compound-forecast/internal/console"
	"github.com/iwvelando/compound-forecast/pkg/constants"
	"github.com/iwvelando/compound-forecast/pkg/output"
	"github.com/iwvelando/compound-forecast/pkg/projection"
	"github.com/iwvelando/compound-forecast/pkg/validation"
	"go.uber.org/zap"
)

// Settings are the per-session options taken from configuration.
type Settings struct {
	InflationRate float64
	OutputFormat  string
	Bounds        validation.Bounds
}

// Session is one interactive run. It is not safe for concurrent use.
type Session struct {
	reader   *console.Reader
	printer  *output.Printer
	settings Settings
	logger   *zap.Logger

	inputs projection.Inputs
}

// NewSession creates a session reading from reader and printing through printer.
func NewSession(reader *console.Reader, printer *output.Printer, settings Settings, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{reader: reader, printer: printer, settings: settings, logger: logger}
}

// Inputs returns the inputs of the current calculation.
func (s *Session) Inputs() projection.Inputs {
	return s.inputs
}

// Run reads a calculation and loops on the menu until the user exits, the
// input is exhausted or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if errors.Is(err, console.ErrInputClosed) {
		s.logger.Debug("input closed, ending session", zap.String("op", "calculator.Run"))
		return nil
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	if err := s.newCalculation(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printer.Menu()
		choice, err := s.reader.ReadChoice("Select an option: ", constants.MenuYearlyBreakdown, constants.MenuExit)
		if err != nil {
			return err
		}
		if choice == constants.MenuExit {
			s.logger.Debug("user exited", zap.String("op", "calculator.Run"))
			return nil
		}
		if err := s.Dispatch(choice); err != nil {
			return err
		}
	}
}

// Dispatch performs a single menu action other than exit.
func (s *Session) Dispatch(choice int) error {
	s.logger.Debug("menu choice",
		zap.String("op", "calculator.Dispatch"),
		zap.Int("choice", choice),
	)

	switch choice {
	case constants.MenuYearlyBreakdown:
		return s.showYearlyBreakdown()
	case constants.MenuContributionBreakdown:
		return s.showContributionBreakdown()
	case constants.MenuInflationAdjusted:
		return s.showInflationAdjusted()
	case constants.MenuNewCalculation:
		return s.newCalculation()
	default:
		return fmt.Errorf("unknown menu choice %d", choice)
	}
}

func (s *Session) newCalculation() error {
	inputs, err := s.readInputs()
	if err != nil {
		return err
	}
	s.inputs = inputs

	value, err := inputs.Value()
	if err != nil {
		return fmt.Errorf("failed to compute portfolio value: %w", err)
	}
	s.logger.Info("computed portfolio value",
		zap.String("op", "calculator.newCalculation"),
		zap.Float64("principal", inputs.Principal),
		zap.Float64("contribution", inputs.Contribution),
		zap.Float64("ratePercent", inputs.RatePercent),
		zap.Int("years", inputs.Years),
		zap.Float64("value", value),
	)
	s.printer.PortfolioValue("End Portfolio Value: ", value)
	return nil
}

func (s *Session) readInputs() (projection.Inputs, error) {
	b := s.settings.Bounds
	var in projection.Inputs
	var err error

	in.Principal, err = s.reader.ReadBoundedNumber(
		fmt.Sprintf("Initial Investment Amount (%s - %s): ", shortAmount(b.Principal.Min), shortAmount(b.Principal.Max)),
		b.Principal.Min, b.Principal.Max)
	if err != nil {
		return in, err
	}
	in.Contribution, err = s.reader.ReadBoundedNumber(
		fmt.Sprintf("Annual Contribution (%s - %s): ", shortAmount(b.Contribution.Min), shortAmount(b.Contribution.Max)),
		b.Contribution.Min, b.Contribution.Max)
	if err != nil {
		return in, err
	}
	in.RatePercent, err = s.reader.ReadBoundedNumber(
		fmt.Sprintf("Expected Annual Return Rate (%g%% - %g%%): ", b.RatePercent.Min, b.RatePercent.Max),
		b.RatePercent.Min, b.RatePercent.Max)
	if err != nil {
		return in, err
	}
	in.Years, err = s.reader.ReadBoundedInt(
		fmt.Sprintf("Time Horizon (%g - %g Years): ", b.Years.Min, b.Years.Max),
		int(b.Years.Min), int(b.Years.Max))
	if err != nil {
		return in, err
	}
	return in, nil
}

func (s *Session) showYearlyBreakdown() error {
	series, err := s.inputs.Series()
	if err != nil {
		return fmt.Errorf("failed to compute yearly series: %w", err)
	}
	return s.printer.YearlyBreakdown(s.settings.OutputFormat, series)
}

func (s *Session) showContributionBreakdown() error {
	breakdown, err := s.inputs.Breakdown()
	if err != nil {
		return fmt.Errorf("failed to compute contribution breakdown: %w", err)
	}
	s.printer.ContributionBreakdown(breakdown)
	return nil
}

// showInflationAdjusted recomputes both values from the current inputs on
// every request.
func (s *Session) showInflationAdjusted() error {
	nominal, err := s.inputs.Value()
	if err != nil {
		return fmt.Errorf("failed to compute portfolio value: %w", err)
	}

	inflation := s.settings.InflationRate
	adjusted, err := s.inputs.InflationAdjustedValue(inflation)
	switch {
	case errors.Is(err, projection.ErrZeroRate):
		s.logger.Info("real return rate is zero",
			zap.String("op", "calculator.showInflationAdjusted"),
			zap.Float64("ratePercent", s.inputs.RatePercent),
			zap.Float64("inflationRate", inflation),
		)
		s.printer.ZeroRealReturn(nominal, s.inputs.PaidIn(), inflation)
		return nil
	case err != nil:
		return fmt.Errorf("failed to compute inflation-adjusted value: %w", err)
	}

	s.printer.InflationAdjusted(nominal, adjusted, inflation)
	return nil
}

// shortAmount renders bounds like 1000 and 1000000 as $1K and $1M.
func shortAmount(amount float64) string {
	whole := amount == float64(int64(amount))
	switch {
	case whole && amount >= 1_000_000 && int64(amount)%1_000_000 == 0:
		return fmt.Sprintf("$%dM", int64(amount)/1_000_000)
	case whole && amount >= 1_000 && int64(amount)%1_000 == 0:
		return fmt.Sprintf("$%dK", int64(amount)/1_000)
	default:
		return fmt.Sprintf("$%g", amount)
	}
}
