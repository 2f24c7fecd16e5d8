package services

import (
	"fmt"
	"math"
)

// FormatNTD formats an amount as New Taiwan dollars with comma grouping,
// e.g. 1234567 → "NT$ 1,234,567". Amounts are rounded to whole dollars,
// matching how the printed documents show money.
func FormatNTD(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	formatted := groupThousands(fmt.Sprintf("%d", int64(math.Round(amount))))

	result := "NT$ " + formatted
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas into an integer string every 3 digits
// from the right.
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
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}
