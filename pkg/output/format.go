// Package output provides utilities for formatting and displaying projection results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/compound-forecast/pkg/constants"
	"github.com/iwvelando/compound-forecast/pkg/format"
	"github.com/iwvelando/compound-forecast/pkg/projection"
)

// Printer writes projection results to w using f for amounts.
type Printer struct {
	w io.Writer
	f *format.Formatter
}

// NewPrinter returns a Printer. A nil formatter uses US dollars.
func NewPrinter(w io.Writer, f *format.Formatter) *Printer {
	if f == nil {
		f = format.NewFormatter("en-US", "$")
	}
	return &Printer{w: w, f: f}
}

// PortfolioValue prints a labelled amount preceded by a blank line.
func (p *Printer) PortfolioValue(label string, value float64) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, label+p.f.Currency(value))
}

// Menu prints the list of actions available after a calculation.
func (p *Printer) Menu() {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, "======== MENU OPTIONS ========")
	fmt.Fprintf(p.w, "%d. Show Investment Growth Summary\n", constants.MenuYearlyBreakdown)
	fmt.Fprintf(p.w, "%d. Show Contributions vs. Growth Breakdown\n", constants.MenuContributionBreakdown)
	fmt.Fprintf(p.w, "%d. Show Inflation-Adjusted Returns\n", constants.MenuInflationAdjusted)
	fmt.Fprintln(p.w, "--------------------------------------")
	fmt.Fprintf(p.w, "%d. Start New Calculation\n", constants.MenuNewCalculation)
	fmt.Fprintf(p.w, "%d. Exit\n", constants.MenuExit)
	fmt.Fprintln(p.w, "================================")
	fmt.Fprintln(p.w)
}

// YearlyBreakdown prints the series in the requested output format.
func (p *Printer) YearlyBreakdown(outputFormat string, series []projection.YearValue) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		p.prettySeries(series)
		return nil
	case constants.OutputFormatCSV:
		return p.csvSeries(series)
	default:
		return fmt.Errorf("unsupported output format %s", outputFormat)
	}
}

func (p *Printer) prettySeries(series []projection.YearValue) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, "YEAR-BY-YEAR BREAKDOWN")
	fmt.Fprintln(p.w, "----------------------")
	fmt.Fprintln(p.w)
	for _, entry := range series {
		fmt.Fprintf(p.w, "YEAR %d: %s\n", entry.Year, p.f.Currency(entry.Value))
	}
}

func (p *Printer) csvSeries(series []projection.YearValue) error {
	writer := csv.NewWriter(p.w)
	if err := writer.Write([]string{"year", "value"}); err != nil {
		return err
	}
	for _, entry := range series {
		record := []string{
			strconv.Itoa(entry.Year),
			strconv.FormatFloat(entry.Value, 'f', constants.CurrencyPlaces, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ContributionBreakdown prints how the end value splits into principal,
// contributions and growth, with each part's share of the total.
func (p *Printer) ContributionBreakdown(b projection.Breakdown) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, "CONTRIBUTIONS VS. GROWTH")
	fmt.Fprintln(p.w, "------------------------")
	fmt.Fprintln(p.w)
	rows := []struct {
		label  string
		amount float64
	}{
		{"Initial Investment", b.Principal},
		{"Total Contributions", b.Contributions},
		{"Investment Growth", b.Growth},
	}
	for _, row := range rows {
		fmt.Fprintf(p.w, "%-20s %s (%s)\n", row.label+":", p.f.Currency(row.amount), p.f.Percent(share(row.amount, b.Value)))
	}
	fmt.Fprintf(p.w, "%-20s %s\n", "End Portfolio Value:", p.f.Currency(b.Value))
}

// InflationAdjusted prints the nominal value next to its inflation-adjusted equivalent.
func (p *Printer) InflationAdjusted(nominal, adjusted, inflationRatePercent float64) {
	p.PortfolioValue("Portfolio Value (Nominal): ", nominal)
	fmt.Fprintf(p.w, "Portfolio Value (Inflation-Adjusted, %s): %s\n", p.f.Percent(inflationRatePercent), p.f.Currency(adjusted))
}

// ZeroRealReturn reports an inflation adjustment whose real rate is exactly
// zero; the portfolio then holds only what was paid in.
func (p *Printer) ZeroRealReturn(nominal, paidIn, inflationRatePercent float64) {
	p.PortfolioValue("Portfolio Value (Nominal): ", nominal)
	fmt.Fprintf(p.w, "Return matches inflation of %s: real return is 0%%, worth what was paid in: %s\n",
		p.f.Percent(inflationRatePercent), p.f.Currency(paidIn))
}

func share(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * constants.PercentageMultiplier
}
