// Package format provides display formatting for currency values, dates, and
// customer text fields.
package format

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/onestop-insurance/onestop/pkg/constants"
)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	p := message.NewPrinter(language.English)
	if amount < 0 {
		return p.Sprintf("-$%.2f", -amount)
	}
	return p.Sprintf("$%.2f", amount)
}

// Date renders a date in the receipt's YYYY-MM-DD layout.
func Date(t time.Time) string {
	return t.Format(constants.DateLayout)
}

// TitleName title-cases a personal name or city for display.
func TitleName(s string) string {
	return cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(s)))
}

// CapWords capitalizes the first letter of every word in a street address.
func CapWords(s string) string {
	words := strings.Fields(s)
	caser := cases.Title(language.English)
	for i, w := range words {
		words[i] = caser.String(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}
