package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/compound-forecast/pkg/constants"
	"github.com/iwvelando/compound-forecast/pkg/projection"
)

// Range is an inclusive numeric interval.
type Range struct {
	Min float64 `mapstructure:"min" yaml:"min"`
	Max float64 `mapstructure:"max" yaml:"max"`
}

// Contains reports whether value lies within the range.
func (r Range) Contains(value float64) bool {
	return value >= r.Min && value <= r.Max
}

func (r Range) check(field string, value float64) error {
	if !r.Contains(value) {
		return fmt.Errorf("%s must be between %g and %g, got %g", field, r.Min, r.Max, value)
	}
	return nil
}

// Bounds are the accepted ranges for each user input.
type Bounds struct {
	Principal    Range `mapstructure:"principal" yaml:"principal"`
	Contribution Range `mapstructure:"contribution" yaml:"contribution"`
	RatePercent  Range `mapstructure:"rate" yaml:"rate"`
	Years        Range `mapstructure:"years" yaml:"years"`
}

// DefaultBounds returns the standard input ranges.
func DefaultBounds() Bounds {
	return Bounds{
		Principal:    Range{Min: constants.MinPrincipal, Max: constants.MaxPrincipal},
		Contribution: Range{Min: constants.MinContribution, Max: constants.MaxContribution},
		RatePercent:  Range{Min: constants.MinRatePercent, Max: constants.MaxRatePercent},
		Years:        Range{Min: constants.MinYears, Max: constants.MaxYears},
	}
}

// Validate checks that the bounds themselves are usable: each range is ordered,
// amounts are non-negative, the rate range excludes zero and the horizon is
// a whole number of years starting at one or later.
func (b Bounds) Validate() error {
	var errs []error
	for _, r := range []struct {
		field string
		rng   Range
	}{
		{"principal", b.Principal},
		{"contribution", b.Contribution},
		{"rate", b.RatePercent},
		{"years", b.Years},
	} {
		if r.rng.Min > r.rng.Max {
			errs = append(errs, fmt.Errorf("%s range minimum %g exceeds maximum %g", r.field, r.rng.Min, r.rng.Max))
		}
	}
	if b.Principal.Min < 0 || b.Contribution.Min < 0 {
		errs = append(errs, errors.New("principal and contribution minimums cannot be negative"))
	}
	if b.RatePercent.Min <= 0 {
		errs = append(errs, fmt.Errorf("rate minimum must be positive, got %g", b.RatePercent.Min))
	}
	if b.Years.Min < 1 {
		errs = append(errs, fmt.Errorf("years minimum must be at least 1, got %g", b.Years.Min))
	}
	if !isWhole(b.Years.Min) || !isWhole(b.Years.Max) {
		errs = append(errs, fmt.Errorf("years range must be whole numbers, got %g to %g", b.Years.Min, b.Years.Max))
	}
	return errors.Join(errs...)
}

func isWhole(value float64) bool {
	return value == math.Trunc(value)
}

// ValidateInputs reports every input that falls outside the bounds.
func (b Bounds) ValidateInputs(in projection.Inputs) error {
	return errors.Join(
		b.Principal.check("principal", in.Principal),
		b.Contribution.check("contribution", in.Contribution),
		b.RatePercent.check("rate", in.RatePercent),
		b.Years.check("years", float64(in.Years)),
	)
}
