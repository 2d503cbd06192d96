// Package console reads bounded numeric input from a line-oriented stream,
// reprompting until the user enters an acceptable value.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrInputClosed is returned once the input stream is exhausted.
var ErrInputClosed = errors.New("input closed")

var (
	errNotNumber = errors.New("not a number")
	errNotWhole  = errors.New("not a whole number")
)

// Reader prompts on out and reads answers from in, one per line. Lines have
// no length limit.
type Reader struct {
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

// NewReader creates a Reader. A nil logger disables logging.
func NewReader(in io.Reader, out io.Writer, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{in: bufio.NewReader(in), out: out, logger: logger}
}

// ReadBoundedNumber prompts until a number within [min, max] is entered.
// Malformed and out-of-range entries are answered with a reprompt; the only
// errors returned are ErrInputClosed and read failures.
func (r *Reader) ReadBoundedNumber(prompt string, min, max float64) (float64, error) {
	value, err := r.readBounded(prompt, min, max, false)
	if err != nil {
		return 0, err
	}
	return value.InexactFloat64(), nil
}

// ReadBoundedInt is ReadBoundedNumber restricted to whole numbers.
func (r *Reader) ReadBoundedInt(prompt string, min, max int) (int, error) {
	value, err := r.readBounded(prompt, float64(min), float64(max), true)
	if err != nil {
		return 0, err
	}
	return int(value.IntPart()), nil
}

// ReadChoice reads a menu selection between min and max.
func (r *Reader) ReadChoice(prompt string, min, max int) (int, error) {
	return r.ReadBoundedInt(prompt, min, max)
}

func (r *Reader) readBounded(prompt string, min, max float64, whole bool) (decimal.Decimal, error) {
	lower := decimal.NewFromFloat(min)
	upper := decimal.NewFromFloat(max)

	for {
		fmt.Fprint(r.out, prompt)

		line, err := r.readLine()
		if err != nil {
			return decimal.Zero, err
		}

		value, err := ParseNumber(line, whole)
		switch {
		case errors.Is(err, errNotWhole):
			r.logger.Debug("rejected fractional entry",
				zap.String("op", "console.readBounded"),
				zap.String("input", line),
			)
			fmt.Fprintln(r.out, "Enter a whole number")
			continue
		case err != nil:
			r.logger.Debug("rejected non-numeric entry",
				zap.String("op", "console.readBounded"),
				zap.String("input", line),
			)
			fmt.Fprintln(r.out, "Enter a valid number")
			continue
		}

		if value.LessThan(lower) || value.GreaterThan(upper) {
			r.logger.Debug("rejected out-of-range entry",
				zap.String("op", "console.readBounded"),
				zap.String("input", line),
				zap.Float64("min", min),
				zap.Float64("max", max),
			)
			fmt.Fprintf(r.out, "Enter a value between %s and %s\n", lower.String(), upper.String())
			continue
		}
		return value, nil
	}
}

func (r *Reader) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", ErrInputClosed
		}
	case err != nil:
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ParseNumber parses a user entry such as "10000", "$1,000.50" or "7.5".
// Currency symbols, thousands separators, underscores and a trailing percent
// sign are ignored. With whole set, fractional values are rejected.
func ParseNumber(text string, whole bool) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimSuffix(cleaned, "%")
	cleaned = strings.NewReplacer("$", "", ",", "", "_", "", " ", "").Replace(cleaned)
	if cleaned == "" {
		return decimal.Zero, errNotNumber
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", errNotNumber, text)
	}
	if whole && !value.Equal(value.Truncate(0)) {
		return decimal.Zero, fmt.Errorf("%w: %q", errNotWhole, text)
	}
	return value, nil
}
