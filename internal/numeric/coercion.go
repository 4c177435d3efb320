// Package numeric provides lenient parsing and display formatting for
// user-entered slip values. Parsing never fails: unparsable text resolves
// to the caller's fallback so the reconciliation engine can treat it as
// "unknown" instead of raising.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// ParseFloat parses text as a float after stripping thousands separators.
// Non-numeric or non-finite input yields fallback.
func ParseFloat(text string, fallback float64) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return fallback
	}
	return n
}

// ParseInt parses text as a base-10 integer, tolerating a trailing
// fractional part the way the slip form does ("12.0" -> 12).
func ParseInt(text string, fallback int) int {
	s := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
	if s == "" {
		return fallback
	}
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = s[:dot]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

// FormatDecimal renders f with six fixed decimals, then trims trailing
// zeros and a dangling decimal point. This is the canonical display format
// for derived price and spec values. Non-finite input renders as "".
func FormatDecimal(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return ""
	}
	s := strconv.FormatFloat(f, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// FormatAmountCN renders a yuan amount with 万-grouping for display in
// statistics summaries: 53732 -> "5万3732元", 50000 -> "5万元", 900 -> "900元".
func FormatAmountCN(amount float64) string {
	v := int64(math.Round(amount))
	if v >= 10000 {
		wan := v / 10000
		rest := v % 10000
		if rest != 0 {
			return strconv.FormatInt(wan, 10) + "万" + strconv.FormatInt(rest, 10) + "元"
		}
		return strconv.FormatInt(wan, 10) + "万元"
	}
	return strconv.FormatInt(v, 10) + "元"
}
