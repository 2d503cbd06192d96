package projection

import (
	"errors"
	"math"
	"testing"
)

func TestPortfolioValue(t *testing.T) {
	tests := []struct {
		name         string
		principal    float64
		contribution float64
		rate         float64
		years        int
		expected     float64
	}{
		{
			name:         "Principal and contributions at 7% for 10 years",
			principal:    10000,
			contribution: 1000,
			rate:         7,
			years:        10,
			expected:     33487.96, // 19671.51 + 13816.45
		},
		{
			name:      "Principal only at 5% for 20 years",
			principal: 50000,
			rate:      5,
			years:     20,
			expected:  132664.89,
		},
		{
			name:         "Contributions only at 10% for 2 years",
			contribution: 1000,
			rate:         10,
			years:        2,
			expected:     2100.00, // 1000*1.1 + 1000
		},
		{
			name:      "One year at 100%",
			principal: 1000,
			rate:      100,
			years:     1,
			expected:  2000.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := PortfolioValue(tt.principal, tt.contribution, tt.rate, tt.years)
			if err != nil {
				t.Fatalf("PortfolioValue returned error: %v", err)
			}
			if math.Abs(value-tt.expected) > 0.005 {
				t.Errorf("PortfolioValue() = %.6f, expected %.2f", value, tt.expected)
			}
		})
	}
}

func TestPortfolioValueMatchesClosedForm(t *testing.T) {
	value, err := PortfolioValue(10000, 1000, 7, 10)
	if err != nil {
		t.Fatalf("PortfolioValue returned error: %v", err)
	}

	growth := math.Pow(1.07, 10)
	expected := 10000*growth + 1000*((growth-1)/0.07)
	if math.Abs(value-expected) > 1e-6 {
		t.Errorf("PortfolioValue() = %.9f, expected %.9f", value, expected)
	}
}

func TestPortfolioValueZeroYearsReturnsPrincipal(t *testing.T) {
	principals := []float64{0, 1000, 12345.67, 1_000_000}
	for _, principal := range principals {
		for _, rate := range []float64{1, 7, 55.5, 100} {
			value, err := PortfolioValue(principal, 5000, rate, 0)
			if err != nil {
				t.Fatalf("PortfolioValue returned error: %v", err)
			}
			if value != principal {
				t.Errorf("PortfolioValue(%v, 5000, %v, 0) = %v, expected principal", principal, rate, value)
			}
		}
	}
}

func TestPortfolioValueZeroRate(t *testing.T) {
	value, err := PortfolioValue(10000, 1000, 0, 10)
	if !errors.Is(err, ErrZeroRate) {
		t.Fatalf("expected ErrZeroRate, got %v", err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		t.Errorf("expected a finite zero value alongside the error, got %v", value)
	}
}

func TestPortfolioValueNegativeYears(t *testing.T) {
	if _, err := PortfolioValue(10000, 1000, 7, -1); !errors.Is(err, ErrNegativeYears) {
		t.Fatalf("expected ErrNegativeYears, got %v", err)
	}
}

func TestPortfolioValueOverflow(t *testing.T) {
	if _, err := PortfolioValue(1_000_000, 1_000_000, 1_000_000, 1000); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestPortfolioValueMonotonicInYears(t *testing.T) {
	cases := []Inputs{
		{Principal: 1000, Contribution: 0, RatePercent: 1},
		{Principal: 10000, Contribution: 1000, RatePercent: 7},
		{Principal: 0, Contribution: 500, RatePercent: 3.5},
		{Principal: 1_000_000, Contribution: 1_000_000, RatePercent: 100},
	}

	for _, c := range cases {
		previous := c.Principal
		for years := 1; years <= 100; years++ {
			value, err := PortfolioValue(c.Principal, c.Contribution, c.RatePercent, years)
			if err != nil {
				t.Fatalf("PortfolioValue returned error: %v", err)
			}
			if value < previous {
				t.Fatalf("value decreased at year %d for %+v: %v < %v", years, c, value, previous)
			}
			previous = value
		}
	}
}

func TestRealRatePercent(t *testing.T) {
	tests := []struct {
		name      string
		rate      float64
		inflation float64
		expected  float64
	}{
		{"Default inflation", 7, 3.2, (1.07/1.032 - 1) * 100},
		{"Zero inflation", 7, 0, 7},
		{"Rate below inflation", 2, 3.2, (1.02/1.032 - 1) * 100},
		{"Deflation", 5, -2, (1.05/0.98 - 1) * 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RealRatePercent(tt.rate, tt.inflation)
			if err != nil {
				t.Fatalf("RealRatePercent returned error: %v", err)
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("RealRatePercent(%v, %v) = %v, expected %v", tt.rate, tt.inflation, got, tt.expected)
			}
		})
	}

	if _, err := RealRatePercent(7, -100); !errors.Is(err, ErrInflationRate) {
		t.Errorf("expected ErrInflationRate for -100%% inflation, got %v", err)
	}
}

func TestInflationAdjustedPortfolioValue(t *testing.T) {
	nominal, err := PortfolioValue(10000, 1000, 7, 10)
	if err != nil {
		t.Fatalf("PortfolioValue returned error: %v", err)
	}

	adjusted, err := InflationAdjustedPortfolioValue(10000, 1000, 7, 10, DefaultInflationRatePercent)
	if err != nil {
		t.Fatalf("InflationAdjustedPortfolioValue returned error: %v", err)
	}

	realRate := (1.07/1.032 - 1) * 100
	expected, _ := PortfolioValue(10000, 1000, realRate, 10)
	if math.Abs(adjusted-expected) > 1e-6 {
		t.Errorf("adjusted = %.6f, expected %.6f", adjusted, expected)
	}
	if adjusted >= nominal {
		t.Errorf("adjusted value %.2f should be below nominal %.2f", adjusted, nominal)
	}
}

func TestInflationAdjustedZeroInflationIsNoOp(t *testing.T) {
	cases := []Inputs{
		{Principal: 10000, Contribution: 1000, RatePercent: 7, Years: 10},
		{Principal: 50000, Contribution: 0, RatePercent: 5, Years: 20},
		{Principal: 1000, Contribution: 250, RatePercent: 3.3, Years: 100},
	}

	for _, c := range cases {
		nominal, err := c.Value()
		if err != nil {
			t.Fatalf("Value returned error: %v", err)
		}
		adjusted, err := c.InflationAdjustedValue(0)
		if err != nil {
			t.Fatalf("InflationAdjustedValue returned error: %v", err)
		}
		if adjusted != nominal {
			t.Errorf("zero inflation changed the value for %+v: %v != %v", c, adjusted, nominal)
		}
	}
}

func TestInflationAdjustedNegativeRealRate(t *testing.T) {
	value, err := InflationAdjustedPortfolioValue(10000, 0, 1, 10, 3.2)
	if err != nil {
		t.Fatalf("negative real rate should not be an error, got %v", err)
	}
	if value >= 10000 {
		t.Errorf("expected value below principal for negative real rate, got %.2f", value)
	}
}

func TestInflationAdjustedRateEqualsInflation(t *testing.T) {
	_, err := InflationAdjustedPortfolioValue(10000, 1000, 3.2, 10, 3.2)
	if !errors.Is(err, ErrZeroRate) {
		t.Fatalf("expected ErrZeroRate when the real rate is zero, got %v", err)
	}
}

func TestYearlySeries(t *testing.T) {
	series, err := YearlySeries(1000, 0, 10, 3)
	if err != nil {
		t.Fatalf("YearlySeries returned error: %v", err)
	}

	expected := []YearValue{
		{Year: 1, Value: 1100.00},
		{Year: 2, Value: 1210.00},
		{Year: 3, Value: 1331.00},
	}
	if len(series) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(series))
	}
	for i, entry := range series {
		if entry.Year != expected[i].Year {
			t.Errorf("entry %d year = %d, expected %d", i, entry.Year, expected[i].Year)
		}
		if math.Abs(entry.Value-expected[i].Value) > 1e-6 {
			t.Errorf("entry %d value = %.6f, expected %.2f", i, entry.Value, expected[i].Value)
		}
	}
}

func TestYearlySeriesLastEntryMatchesPortfolioValue(t *testing.T) {
	cases := []Inputs{
		{Principal: 10000, Contribution: 1000, RatePercent: 7, Years: 10},
		{Principal: 1000, Contribution: 1_000_000, RatePercent: 99.9, Years: 100},
		{Principal: 250000, Contribution: 12000, RatePercent: 4.25, Years: 1},
	}

	for _, c := range cases {
		series, err := c.Series()
		if err != nil {
			t.Fatalf("Series returned error: %v", err)
		}
		if len(series) != c.Years {
			t.Fatalf("expected %d entries, got %d", c.Years, len(series))
		}
		value, err := c.Value()
		if err != nil {
			t.Fatalf("Value returned error: %v", err)
		}
		if last := series[len(series)-1]; last.Year != c.Years || last.Value != value {
			t.Errorf("last entry %+v does not match PortfolioValue %v", last, value)
		}
	}
}

func TestYearlySeriesIsRestartable(t *testing.T) {
	first, err := YearlySeries(10000, 1000, 7, 30)
	if err != nil {
		t.Fatalf("YearlySeries returned error: %v", err)
	}
	second, err := YearlySeries(10000, 1000, 7, 30)
	if err != nil {
		t.Fatalf("YearlySeries returned error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entry %d differs between runs: %+v != %+v", i, first[i], second[i])
		}
	}
}

func TestYearlySeriesEdgeCases(t *testing.T) {
	series, err := YearlySeries(1000, 0, 10, 0)
	if err != nil {
		t.Fatalf("YearlySeries returned error: %v", err)
	}
	if len(series) != 0 {
		t.Errorf("expected empty series for zero years, got %d entries", len(series))
	}

	if _, err := YearlySeries(1000, 0, 0, 5); !errors.Is(err, ErrZeroRate) {
		t.Errorf("expected ErrZeroRate, got %v", err)
	}
	if _, err := YearlySeries(1000, 0, 10, -3); !errors.Is(err, ErrNegativeYears) {
		t.Errorf("expected ErrNegativeYears, got %v", err)
	}
}

func TestContributionBreakdown(t *testing.T) {
	breakdown, err := ContributionBreakdown(10000, 1000, 7, 10)
	if err != nil {
		t.Fatalf("ContributionBreakdown returned error: %v", err)
	}

	if breakdown.Principal != 10000 {
		t.Errorf("Principal = %.2f, expected 10000.00", breakdown.Principal)
	}
	if breakdown.Contributions != 10000 {
		t.Errorf("Contributions = %.2f, expected 10000.00", breakdown.Contributions)
	}
	if math.Abs(breakdown.Growth-13487.96) > 0.005 {
		t.Errorf("Growth = %.6f, expected 13487.96", breakdown.Growth)
	}
	total := breakdown.Principal + breakdown.Contributions + breakdown.Growth
	if math.Abs(total-breakdown.Value) > 1e-6 {
		t.Errorf("parts sum to %.6f, expected value %.6f", total, breakdown.Value)
	}

	if _, err := ContributionBreakdown(10000, 1000, 0, 10); !errors.Is(err, ErrZeroRate) {
		t.Errorf("expected ErrZeroRate, got %v", err)
	}
}

func TestInputsPaidIn(t *testing.T) {
	in := Inputs{Principal: 10000, Contribution: 1500.50, RatePercent: 7, Years: 4}
	if got := in.PaidIn(); math.Abs(got-16002) > 1e-9 {
		t.Errorf("PaidIn() = %.2f, expected 16002.00", got)
	}
}
