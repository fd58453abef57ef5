// Package report shapes aggregated data into the series and tabular
// structures charts and exports consume. Formatting lives here once so
// summary cards, tooltips and export rows render the same number the
// same way.
package report

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const displayDateLayout = "Jan 02, 2006"

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount as USD with two decimals and
// thousands separators, e.g. "$1,234.56".
func FormatCurrency(amount float64) string {
	if amount < 0 {
		return "-" + FormatCurrency(-amount)
	}
	return printer.Sprintf("$%.2f", amount)
}

// FormatShare renders a percentage with one decimal, the precision
// used for category and type shares.
func FormatShare(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// FormatProgress renders a whole-number percentage, the precision used
// for progress bars and usage columns.
func FormatProgress(value float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(value)))
}

// FormatDate renders a calendar date for display, e.g. "Jan 05, 2024".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(displayDateLayout)
}
