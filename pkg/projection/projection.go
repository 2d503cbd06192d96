// Package projection computes portfolio values from a principal, a recurring
// annual contribution and an annual return rate using the closed-form
// compound growth and annuity formulas.
//
// Rates are expressed in percent (7 means 7%). Every function here is pure
// and safe for concurrent use.
package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/compound-forecast/pkg/constants"
	"github.com/iwvelando/compound-forecast/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// DefaultInflationRatePercent is the inflation rate used when none is configured.
const DefaultInflationRatePercent = constants.DefaultInflationRate

var (
	// ErrZeroRate is returned when the (nominal or derived real) rate is zero,
	// where the contribution term of the formula is undefined.
	ErrZeroRate = errors.New("annual return rate must be nonzero")

	// ErrNegativeYears is returned for a negative horizon.
	ErrNegativeYears = errors.New("horizon cannot be negative")

	// ErrInflationRate is returned when inflation is at or below -100%.
	ErrInflationRate = errors.New("inflation rate must be greater than -100%")

	// ErrOverflow is returned when the result cannot be represented.
	ErrOverflow = errors.New("portfolio value overflows float64")
)

// Inputs holds the values a user supplies for one calculation.
type Inputs struct {
	Principal    float64
	Contribution float64
	RatePercent  float64
	Years        int
}

// YearValue is the portfolio value at the end of a given year.
type YearValue struct {
	Year  int
	Value float64
}

// Breakdown splits an end value into what was paid in and what it earned.
type Breakdown struct {
	Value         float64
	Principal     float64
	Contributions float64
	Growth        float64
}

// PortfolioValue returns the value after the given number of years:
//
//	A = P(1+r)^y + C((1+r)^y - 1)/r
func PortfolioValue(principal, contribution, ratePercent float64, years int) (float64, error) {
	if ratePercent == 0 {
		return 0, ErrZeroRate
	}
	if years < 0 {
		return 0, ErrNegativeYears
	}
	if years == 0 {
		return principal, nil
	}

	rate := mathutil.PercentToDecimal(ratePercent)
	growth := math.Pow(1+rate, float64(years))

	value := principal*growth + contribution*((growth-1)/rate)
	if !mathutil.IsFinite(value) {
		return 0, ErrOverflow
	}
	return value, nil
}

// RealRatePercent discounts a nominal rate by inflation:
// ((1+r)/(1+i) - 1) * 100.
func RealRatePercent(ratePercent, inflationRatePercent float64) (float64, error) {
	if inflationRatePercent <= -constants.PercentageMultiplier {
		return 0, ErrInflationRate
	}
	if inflationRatePercent == 0 {
		return ratePercent, nil
	}
	rate := mathutil.PercentToDecimal(ratePercent)
	inflation := mathutil.PercentToDecimal(inflationRatePercent)
	return mathutil.DecimalToPercent((1+rate)/(1+inflation) - 1), nil
}

// InflationAdjustedPortfolioValue is PortfolioValue evaluated at the real
// rate. A real rate below zero is valid and yields a value that can fall below
// the principal; a real rate of exactly zero returns ErrZeroRate.
func InflationAdjustedPortfolioValue(principal, contribution, ratePercent float64, years int, inflationRatePercent float64) (float64, error) {
	realRate, err := RealRatePercent(ratePercent, inflationRatePercent)
	if err != nil {
		return 0, err
	}
	value, err := PortfolioValue(principal, contribution, realRate, years)
	if err != nil {
		return 0, fmt.Errorf("inflation-adjusted value at real rate %.4f%%: %w", realRate, err)
	}
	return value, nil
}

// YearlySeries returns the value at the end of each year from 1 to years.
// Each entry is computed independently from the closed form, so the last
// entry is identical to PortfolioValue(principal, contribution, ratePercent, years).
func YearlySeries(principal, contribution, ratePercent float64, years int) ([]YearValue, error) {
	if ratePercent == 0 {
		return nil, ErrZeroRate
	}
	if years < 0 {
		return nil, ErrNegativeYears
	}

	series := make([]YearValue, 0, years)
	for year := 1; year <= years; year++ {
		value, err := PortfolioValue(principal, contribution, ratePercent, year)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", year, err)
		}
		series = append(series, YearValue{Year: year, Value: value})
	}
	return series, nil
}

// ContributionBreakdown reports how much of the end value came from the
// principal, from contributions, and from growth.
func ContributionBreakdown(principal, contribution, ratePercent float64, years int) (Breakdown, error) {
	value, err := PortfolioValue(principal, contribution, ratePercent, years)
	if err != nil {
		return Breakdown{}, err
	}

	contributions := decimal.NewFromFloat(contribution).Mul(decimal.NewFromInt(int64(years)))
	paidIn := decimal.NewFromFloat(principal).Add(contributions)
	growth := decimal.NewFromFloat(value).Sub(paidIn)

	return Breakdown{
		Value:         value,
		Principal:     principal,
		Contributions: contributions.InexactFloat64(),
		Growth:        growth.InexactFloat64(),
	}, nil
}

// Value evaluates PortfolioValue for the inputs.
func (in Inputs) Value() (float64, error) {
	return PortfolioValue(in.Principal, in.Contribution, in.RatePercent, in.Years)
}

// InflationAdjustedValue evaluates InflationAdjustedPortfolioValue for the inputs.
func (in Inputs) InflationAdjustedValue(inflationRatePercent float64) (float64, error) {
	return InflationAdjustedPortfolioValue(in.Principal, in.Contribution, in.RatePercent, in.Years, inflationRatePercent)
}

// Series evaluates YearlySeries for the inputs.
func (in Inputs) Series() ([]YearValue, error) {
	return YearlySeries(in.Principal, in.Contribution, in.RatePercent, in.Years)
}

// Breakdown evaluates ContributionBreakdown for the inputs.
func (in Inputs) Breakdown() (Breakdown, error) {
	return ContributionBreakdown(in.Principal, in.Contribution, in.RatePercent, in.Years)
}

// PaidIn is the principal plus every contribution over the horizon, i.e. the
// value of the portfolio when it earns nothing.
func (in Inputs) PaidIn() float64 {
	return decimal.NewFromFloat(in.Principal).
		Add(decimal.NewFromFloat(in.Contribution).Mul(decimal.NewFromInt(int64(in.Years)))).
		InexactFloat64()
}
