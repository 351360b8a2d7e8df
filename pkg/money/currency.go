package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatCurrency formats amount as US dollars the way en-US locale does, e.g. "$1,234.50".
func FormatCurrency(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return formatSpecial(language.AmericanEnglish, currency.USD, "", "NaN")
	case math.IsInf(amount, 1):
		return formatSpecial(language.AmericanEnglish, currency.USD, "", "∞")
	case math.IsInf(amount, -1):
		return formatSpecial(language.AmericanEnglish, currency.USD, "-", "∞")
	}

	return NewFromFloat(amount).Format()
}

// Format returns amount formatted as US dollars.
func (m Money) Format() string {
	return m.FormatIn(language.AmericanEnglish, currency.USD)
}

// FormatIn formats amount in the given currency using grouping and
// symbols of the given locale. Amounts are rounded half away from zero to 2 places.
func (m Money) FormatIn(tag language.Tag, unit currency.Unit) string {
	printer := message.NewPrinter(tag)

	var sign string
	if m.decimal.IsNegative() {
		sign = "-"
	}

	return sign +
		printer.Sprint(currency.NarrowSymbol(unit)) +
		formatDecimal(printer, m.decimal.Abs().Round(2))
}

// formatDecimal prints a non-negative amount with two fraction digits.
// Integer parts beyond uint64 are printed through float64 and lose precision.
func formatDecimal(printer *message.Printer, amount decimal.Decimal) string {
	integerPart := amount.Truncate(0)
	if !integerPart.BigInt().IsUint64() {
		return printer.Sprint(number.Decimal(amount.InexactFloat64(), number.Scale(2)))
	}

	cents := amount.Sub(integerPart).Shift(2).IntPart()

	return printer.Sprint(number.Decimal(integerPart.BigInt().Uint64())) +
		decimalSeparator(printer) +
		fmt.Sprintf("%02d", cents)
}

func decimalSeparator(printer *message.Printer) string {
	formatted := printer.Sprint(number.Decimal(1.5, number.Scale(1)))
	return strings.TrimSuffix(strings.TrimPrefix(formatted, "1"), "5")
}

func formatSpecial(tag language.Tag, unit currency.Unit, sign, value string) string {
	return sign + message.NewPrinter(tag).Sprint(currency.NarrowSymbol(unit)) + value
}
