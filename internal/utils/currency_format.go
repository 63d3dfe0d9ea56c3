package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Masked placeholders shown when the hide-values preference is on.
const (
	maskedCurrency   = "R$ ******"
	maskedPercentage = "***%"
)

// FormatCurrency formats an amount as Brazilian Real with two fraction
// digits and pt-BR grouping, e.g. 1234.5 -> "R$ 1.234,50".
// When hideValues is true it returns the fixed masked string regardless
// of the amount.
func FormatCurrency(value decimal.Decimal, hideValues bool) string {
	if hideValues {
		return maskedCurrency
	}

	fixed := value.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	return "R$ " + sign + groupThousands(intPart) + "," + fracPart
}

// FormatPercentage formats a percentage value with an explicit sign,
// e.g. 268 -> "+268%", -5 -> "-5%". When hideValues is true it returns
// the fixed masked string.
func FormatPercentage(value decimal.Decimal, hideValues bool) string {
	if hideValues {
		return maskedPercentage
	}

	if value.IsNegative() {
		return value.String() + "%"
	}
	return "+" + value.String() + "%"
}

// groupThousands inserts pt-BR thousand separators into a bare digit
// string: "1234567" -> "1.234.567".
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
