// Package coupon maps user-entered coupon codes to flat discount amounts.
package coupon

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCode is the single promotion the storefront ships with.
// The discount is a flat currency amount, not a percentage.
const DefaultCode = "CRAZE10"

var defaultAmount = decimal.NewFromInt(10)

// Table is a static code lookup. Matching is exact: no case folding, no
// trimming, no expiry. Unknown codes, including the empty string, evaluate
// to a zero discount.
type Table struct {
	codes map[string]decimal.Decimal
}

// NewTable builds a table from code -> amount strings (amounts are decimal
// strings, e.g. "10" or "5.50"). Negative amounts are rejected.
func NewTable(rules map[string]string) (*Table, error) {
	codes := make(map[string]decimal.Decimal, len(rules))

	for code, amount := range rules {
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("coupon %q: invalid amount %q: %w", code, amount, err)
		}

		if d.IsNegative() {
			return nil, fmt.Errorf("coupon %q: negative amount %s", code, d)
		}

		codes[code] = d
	}

	return &Table{codes: codes}, nil
}

// DefaultTable returns the table with only the built-in CRAZE10 promotion.
func DefaultTable() *Table {
	return &Table{codes: map[string]decimal.Decimal{DefaultCode: defaultAmount}}
}

// Evaluate returns the flat discount for code, or zero for anything
// unrecognized.
func (t *Table) Evaluate(code string) decimal.Decimal {
	if amount, ok := t.codes[code]; ok {
		return amount
	}

	return decimal.Zero
}
