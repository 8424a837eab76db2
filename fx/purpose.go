// Package fx resolves historical INR buy-rates for a currency from the SBI
// reference-rate feed, with purpose-specific reference dates, a persistent
// per-currency cache, and as-of-or-before lookup semantics.
package fx

import (
	"fmt"

	"github.com/TheAlakazam/file2fa/date"
)

// Purpose is the semantic role a rate lookup plays in the valuation. The
// purpose decides which calendar date the rate is resolved for.
type Purpose string

const (
	Initial  Purpose = "initial"
	Peak     Purpose = "peak"
	Closing  Purpose = "closing"
	Dividend Purpose = "dividend"
	Sale     Purpose = "sale"
)

// ParsePurpose returns the Purpose named by s.
func ParsePurpose(s string) (Purpose, error) {
	switch p := Purpose(s); p {
	case Initial, Peak, Closing, Dividend, Sale:
		return p, nil
	}
	return "", fmt.Errorf("unknown rate purpose %q", s)
}

// ReferenceDate derives the target date a rate must be resolved for, as a
// pure function of purpose and reference date:
//
//   - initial, peak: the reference date itself
//   - closing: December 31 of the reference date's year
//   - dividend, sale: the last day of the month preceding the reference
//     date's month
func ReferenceDate(p Purpose, on date.Date) date.Date {
	switch p {
	case Closing:
		return on.YearEnd()
	case Dividend, Sale:
		return on.PrevMonthEnd()
	}
	return on
}
