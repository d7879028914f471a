package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// CurrencyCode is appended to every formatted amount.
const CurrencyCode = "Kč"

// GroupSeparator is the Czech thousands separator (no-break space).
const GroupSeparator = "\u00a0"

const wholeFormat = "#" + GroupSeparator + "###."

// FormatCZK formats an amount in Czech notation, e.g. "12 100 Kč".
// Whole amounts have no decimals. Anything else keeps every fraction digit
// after a decimal comma, with at least two places ("1 275,50 Kč",
// "0,375 Kč"), so the printed value parses back to the exact amount.
func FormatCZK(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	whole := humanize.FormatInteger(wholeFormat, int(amount.IntPart()))

	frac := amount.Sub(amount.Truncate(0))
	if frac.IsZero() {
		return sign + whole + " " + CurrencyCode
	}
	digits := strings.TrimPrefix(frac.String(), "0.")
	if len(digits) < 2 {
		digits += "0"
	}
	return sign + whole + "," + digits + " " + CurrencyCode
}

// ParseCZK is the inverse of FormatCZK.
func ParseCZK(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimSuffix(raw, CurrencyCode)
	raw = strings.ReplaceAll(raw, GroupSeparator, "")
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.Replace(raw, ",", ".", 1)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}

// FormatQty renders a quantity with a decimal comma and without trailing
// zeros: 8 → "8", 1.5 → "1,5".
func FormatQty(qty decimal.Decimal) string {
	return strings.Replace(qty.String(), ".", ",", 1)
}

// czechMonths holds month names in the genitive case used in dates.
var czechMonths = [...]string{
	"ledna", "února", "března", "dubna", "května", "června",
	"července", "srpna", "září", "října", "listopadu", "prosince",
}

// FormatDateCZ formats a date the way Czech documents print it,
// e.g. "16. října 2026".
func FormatDateCZ(t time.Time) string {
	return fmt.Sprintf("%d. %s %d", t.Day(), czechMonths[t.Month()-1], t.Year())
}
