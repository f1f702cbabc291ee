// internal/schema/parse.go
package schema

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrOutOfRange is returned when a scaled default does not fit in 16 bits.
var ErrOutOfRange = errors.New("schema: scaled value out of int16 range")

var (
	minScaled = decimal.NewFromInt(math.MinInt16)
	maxScaled = decimal.NewFromInt(math.MaxInt16)
)

// Parse reads schema source lines of the form
//
//	<name words...> <default decimal>
//
// The last token is the default; the preceding tokens form the name.
// Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) ([]Item, error) {
	var items []Item

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		tokens := strings.Fields(text)
		if len(tokens) < 2 {
			return nil, fmt.Errorf("schema: line %d: want \"<name> <default>\", got %q", line, text)
		}

		words := tokens[:len(tokens)-1]
		def, err := Scale(tokens[len(tokens)-1])
		if err != nil {
			return nil, fmt.Errorf("schema: line %d: %w", line, err)
		}

		items = append(items, Item{
			Field:   strings.Join(words, "_"),
			Display: strings.Join(words, " "),
			Default: def,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("schema: read: %w", err)
	}

	if err := Validate(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Scale converts a decimal literal to round(value * 100).
// Halves round away from zero.
func Scale(s string) (int16, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("schema: invalid decimal %q: %w", s, err)
	}

	scaled := d.Shift(2).Round(0)
	if scaled.LessThan(minScaled) || scaled.GreaterThan(maxScaled) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, s)
	}
	return int16(scaled.IntPart()), nil
}

// FormatScaled renders a scaled integer with its two implied decimals.
func FormatScaled(v int16) string {
	return decimal.New(int64(v), -2).StringFixed(2)
}
