// Package format turns stored invoice values into display strings.
package format

import (
	"html"
	"strconv"
	"strings"
	"time"

	"invoice-preview-backend/internal/models"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateLayout = "January 2, 2006"

var printer = message.NewPrinter(language.English)

// Price formats amount in the given ISO 4217 currency. Unknown codes are
// printed as a plain two-decimal number followed by the code.
func Price(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return strings.TrimSpace(printer.Sprintf("%.2f %s", amount, strings.ToUpper(code)))
	}
	return printer.Sprint(currency.Symbol(unit.Amount(amount)))
}

func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func DatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Date(*t)
}

// BTC converts satoshis to bitcoin with a plain division.
func BTC(satoshis int64) float64 {
	return float64(satoshis) / models.SatoshisPerBTC
}

func BTCString(btc float64) string {
	return strconv.FormatFloat(btc, 'f', -1, 64)
}

// Lines escapes each address line and joins them with HTML line breaks.
func Lines(lines []string) string {
	escaped := make([]string, len(lines))
	for i, l := range lines {
		escaped[i] = html.EscapeString(l)
	}
	return strings.Join(escaped, "<br>")
}
