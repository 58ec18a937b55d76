package services

import (
	"fmt"
	"strings"
)

// FormatGBP formats a float64 amount as pounds sterling with thousands
// separators and exactly 2 decimal places, e.g. £12,345.67. This is the
// only place amounts are rounded; the underlying figures keep full float
// precision.
func FormatGBP(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "£" + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// FormatEUR formats an amount in euros, same grouping rules as FormatGBP.
func FormatEUR(amount float64) string {
	s := FormatGBP(amount)
	return strings.Replace(s, "£", "€", 1)
}

// groupThousands inserts commas every 3 digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}
