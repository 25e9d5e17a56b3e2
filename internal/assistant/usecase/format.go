package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// formatCurrency renders a rupee amount with comma separators and two
// decimals, e.g. ₹1,234.50.
func formatCurrency(d decimal.Decimal) string {
	s := d.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	intPart, decPart, _ := strings.Cut(s, ".")
	out := "₹" + groupThousands(intPart) + "." + decPart
	if negative {
		out = "-" + out
	}
	return out
}

// formatInt renders an integer with comma separators.
func formatInt(n int) string {
	if n < 0 {
		return "-" + formatInt(-n)
	}
	if n < 1000 {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%s,%03d", formatInt(n/1000), n%1000)
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
