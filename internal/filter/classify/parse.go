package classify

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseInteger parses a token as a signed 64-bit decimal integer. An
// optional leading sign and at least one ASCII digit are required; points,
// exponents, grouping separators and values outside the int64 range are
// rejected.
func ParseInteger(token string) (int64, bool) {
	digits := token
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if digits == "" || !allDigits(digits) {
		return 0, false
	}

	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseFloat parses a token as a double precision float using '.' as the
// decimal separator regardless of the process locale. Accepted forms are
// "12", "3.5", "5.", ".5", each with an optional sign and exponent ("1e10",
// "2.5E-3"), and the literals "NaN" and "Infinity" with an optional sign.
// Magnitudes beyond the float64 range become ±Infinity or zero.
func ParseFloat(token string) (float64, bool) {
	if !isFloatLiteral(token) {
		return 0, false
	}

	unsigned := strings.TrimLeft(token, "+-")
	switch unsigned {
	case "NaN":
		return math.NaN(), true
	case "Infinity":
		if token[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// isFloatLiteral reports whether token matches
// [+-]?(NaN|Infinity|(digits[.digits*]|.digits)([eE][+-]?digits)?)
func isFloatLiteral(token string) bool {
	s := token
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "NaN" || s == "Infinity" {
		return true
	}

	i := 0
	intDigits := countDigits(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		i++
		fracDigits = countDigits(s[i:])
		i += fracDigits
	}
	if intDigits == 0 && fracDigits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := countDigits(s[i:])
		if expDigits == 0 {
			return false
		}
		i += expDigits
	}

	return i == len(s)
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func allDigits(s string) bool {
	return countDigits(s) == len(s)
}
