package planning

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Sanitize normalizes raw keystroke input into canonical numeric text:
// digits plus at most one decimal point. When the raw text contains more
// than one point, the first one separates integer from fraction and the
// digits after later points are merged into the fraction. The fraction is
// truncated, not rounded, to maxDecimals digits. Empty input stays empty.
//
// Sanitize is idempotent: Sanitize(Sanitize(s, d), d) == Sanitize(s, d).
func Sanitize(raw string, maxDecimals int) string {
	if maxDecimals < 0 {
		maxDecimals = 0
	}
	var intPart, fracPart strings.Builder
	inFraction := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			if inFraction {
				fracPart.WriteRune(r)
			} else {
				intPart.WriteRune(r)
			}
		case r == '.':
			inFraction = true
		}
	}
	if !inFraction {
		return intPart.String()
	}
	if maxDecimals == 0 {
		return intPart.String()
	}
	frac := fracPart.String()
	if len(frac) > maxDecimals {
		frac = frac[:maxDecimals]
	}
	return intPart.String() + "." + frac
}

// ToNumber parses canonical or display text into a decimal amount. Grouping
// separators are removed first; empty or unparseable text yields zero, the
// value "not entered" aggregates as.
func ToNumber(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatAmount renders an amount for display with comma-grouped thousands
// and a fixed number of decimal places.
func FormatAmount(d decimal.Decimal, places int) string {
	if places < 0 {
		places = 0
	}
	s := d.StringFixed(int32(places))
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	intPart = groupThousands(intPart)
	if neg {
		intPart = "-" + intPart
	}
	return intPart + fracPart
}

// groupThousands inserts a comma every three digits, right to left.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
