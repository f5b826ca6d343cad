// format.go - Rupee amount formatting with Lakh/Crore abbreviation.

package currency

import (
	"fmt"
	"strings"
)

const (
	lakh  = 100_000
	crore = 10_000_000
)

// Rupees renders a whole-rupee amount for display in finding messages.
// Zero renders bare as "0"; everything else carries the rupee symbol.
// Amounts of one crore and above render as "₹X.X Cr", one lakh and above
// as "₹X.X L", and smaller amounts use Indian digit grouping (last three
// digits, then pairs), e.g. 56789 -> "₹56,789".
func Rupees(n int64) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		// Negative amounts never occur in extracted records; render them
		// grouped with a leading minus rather than guessing at scale.
		return "-" + Rupees(-n)
	}
	switch {
	case n >= crore:
		return fmt.Sprintf("₹%.1f Cr", float64(n)/crore)
	case n >= lakh:
		return fmt.Sprintf("₹%.1f L", float64(n)/lakh)
	default:
		return "₹" + group(n)
	}
}

// group applies the South-Asian grouping convention: the last three digits
// form one group and the remaining digits are grouped in pairs.
func group(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
