// Package lenient implements the best-effort numeric parsing used when a
// textual value is read as a number.
//
// Like strtol and strtof, leading whitespace is skipped and the longest
// numeric prefix is read, so "12abc" is 12 and "1.5kg" is 1.5. Parsing is
// intentionally lossy: callers get a zero value and ok == false when there
// is no leading number, and decide themselves what that means.
package lenient

import (
	"strings"

	"github.com/valyala/fastjson/fastfloat"
)

// ParseInt parses the leading base-10 integer of s.
func ParseInt(s string) (int64, bool) {
	prefix := intPrefix(strings.TrimLeft(s, " \t\n\r\v\f"))
	if prefix == "" {
		return 0, false
	}
	v, err := fastfloat.ParseInt64(prefix)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseFloat parses the leading decimal floating point number of s.
func ParseFloat(s string) (float64, bool) {
	prefix := floatPrefix(strings.TrimLeft(s, " \t\n\r\v\f"))
	if prefix == "" {
		return 0, false
	}
	v, err := fastfloat.Parse(prefix)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IntOrZero returns the leading integer in s, or 0 if there isn't one.
func IntOrZero(s string) int64 {
	v, _ := ParseInt(s)
	return v
}

// FloatOrZero returns the leading float in s, or 0 if there isn't one.
func FloatOrZero(s string) float64 {
	v, _ := ParseFloat(s)
	return v
}

// sign returns the length of an optional leading sign and the text to keep
// for it; fastfloat rejects a leading '+'.
func sign(s string) (int, string) {
	if s != "" && s[0] == '-' {
		return 1, "-"
	}
	if s != "" && s[0] == '+' {
		return 1, ""
	}
	return 0, ""
}

func digits(s string, from int) int {
	i := from
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// intPrefix returns [-]digits from the start of s, or "" without digits.
func intPrefix(s string) string {
	start, minus := sign(s)
	end := digits(s, start)
	if end == start {
		return ""
	}
	return minus + s[start:end]
}

// floatPrefix returns [-]digits[.digits][e[+-]digits] from the start of s,
// or "" if there are no mantissa digits. A dangling exponent is not consumed.
// The result is rewritten into a form fastfloat accepts, so ".5" becomes
// "0.5" and "2." becomes "2".
func floatPrefix(s string) string {
	start, minus := sign(s)
	intEnd := digits(s, start)
	whole := s[start:intEnd]
	end := intEnd
	var frac string
	if end < len(s) && s[end] == '.' {
		fracEnd := digits(s, end+1)
		frac = s[end+1 : fracEnd]
		end = fracEnd
	}
	if whole == "" && frac == "" {
		return ""
	}
	if whole == "" {
		whole = "0"
	}
	out := minus + whole
	if frac != "" {
		out += "." + frac
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		expSign, _ := sign(s[end+1:])
		expStart := end + 1 + expSign
		if expEnd := digits(s, expStart); expEnd > expStart {
			out += s[end:expEnd]
		}
	}
	return out
}
