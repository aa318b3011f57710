package utils

import (
	"math"
	"strconv"
	"strings"
)

// zeroDecimalCurrencies are shown without cents
var zeroDecimalCurrencies = map[string]bool{
	"COP": true,
	"CLP": true,
	"JPY": true,
	"PYG": true,
}

// FormatPrice formats an amount for display in product lists and concept briefs.
// COP-style currencies use dot thousands separators and no decimals ("COP $12.500");
// everything else uses comma separators and two decimals ("USD $1,234.50").
func FormatPrice(amount float64, currency string) string {
	currency = NormalizeCurrency(currency)

	neg := amount < 0
	if neg {
		amount = -amount
	}

	var whole, cents int64
	if zeroDecimalCurrencies[currency] {
		whole = int64(math.Round(amount))
	} else {
		total := int64(math.Round(amount * 100))
		whole, cents = total/100, total%100
	}

	sep := byte(',')
	if zeroDecimalCurrencies[currency] {
		sep = '.'
	}

	var b strings.Builder
	b.WriteString(currency)
	b.WriteByte(' ')
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	b.WriteString(groupThousands(strconv.FormatInt(whole, 10), sep))
	if !zeroDecimalCurrencies[currency] {
		b.WriteByte('.')
		if cents < 10 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.FormatInt(cents, 10))
	}

	return b.String()
}

// groupThousands inserts sep every three digits from the left of s
func groupThousands(s string, sep byte) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3)

	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(sep)
		b.WriteString(s[i : i+3])
	}

	return b.String()
}
