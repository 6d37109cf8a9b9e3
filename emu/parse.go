package emu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrNotANumber marks input that cannot be read as a dimension. It is the
// only parse failure the package reports.
var ErrNotANumber = errors.New("not a number")

// Parse reads a single authored dimension ("12pt", "1.5em", "50%", "400").
// Bare numbers come back as unitless ratios. Anything else, including
// trailing garbage after the value, fails with ErrNotANumber.
func Parse(raw string) (Dimension, error) {
	s := strings.TrimSpace(raw)
	if len(s) == 0 {
		return Dimension{}, fmt.Errorf("empty dimension: %w", ErrNotANumber)
	}

	l := css.NewLexer(parse.NewInputString(s))

	var (
		dim  Dimension
		seen bool
	)
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			// EOF or lexer failure, either way we are done
			if !seen {
				return Dimension{}, fmt.Errorf("cannot parse dimension %q: %w", raw, ErrNotANumber)
			}
			return dim, nil

		case css.WhitespaceToken, css.CommentToken:
			continue

		case css.NumberToken:
			if seen {
				return Dimension{}, fmt.Errorf("trailing value in dimension %q: %w", raw, ErrNotANumber)
			}
			v, err := strconv.ParseFloat(string(data), 64)
			if err != nil {
				return Dimension{}, fmt.Errorf("cannot parse dimension %q: %w", raw, ErrNotANumber)
			}
			dim = Dimension{Value: v, Unit: UnitUnitless}
			seen = true

		case css.PercentageToken:
			if seen {
				return Dimension{}, fmt.Errorf("trailing value in dimension %q: %w", raw, ErrNotANumber)
			}
			v, err := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 64)
			if err != nil {
				return Dimension{}, fmt.Errorf("cannot parse dimension %q: %w", raw, ErrNotANumber)
			}
			dim = Dimension{Value: v, Unit: UnitPercent}
			seen = true

		case css.DimensionToken:
			if seen {
				return Dimension{}, fmt.Errorf("trailing value in dimension %q: %w", raw, ErrNotANumber)
			}
			num, unitName := splitDimension(string(data))
			if len(unitName) == 0 {
				return Dimension{}, fmt.Errorf("cannot parse dimension %q: %w", raw, ErrNotANumber)
			}
			unit, err := ParseUnit(unitName)
			if err != nil {
				return Dimension{}, fmt.Errorf("unsupported unit in %q: %w", raw, ErrNotANumber)
			}
			dim = Dimension{Value: num, Unit: unit}
			seen = true

		default:
			return Dimension{}, fmt.Errorf("cannot parse dimension %q: %w", raw, ErrNotANumber)
		}
	}
}

// IsDimension reports whether raw parses as a dimension. Convenience for
// callers deciding between numeric and plain value comparison.
func IsDimension(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// splitDimension separates the numeric value from the unit in a CSS
// dimension token ("12.5pt" -> 12.5, "pt").
func splitDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, ""
	}
	num, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		return 0, ""
	}
	return num, strings.ToLower(s[numEnd:])
}
