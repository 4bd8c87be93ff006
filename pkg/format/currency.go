// Package format provides string formatting helpers for monetary and rate
// values in rendered output.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := groupThousands(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent renders a fractional rate as a percentage string (0.0725 -> "7.25%").
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// PerKwh renders a $/kWh rate with four-decimal precision.
func PerKwh(rate float64) string {
	return fmt.Sprintf("$%.4f/kWh", rate)
}

func groupThousands(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
