package classify

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which collection a value belongs to
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindText
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Value is the classification result of one line. Only the field matching
// Kind is meaningful.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Text  string
}

// IntegerValue returns an integer value
func IntegerValue(v int64) Value {
	return Value{Kind: KindInteger, Int: v}
}

// FloatValue returns a float value
func FloatValue(v float64) Value {
	return Value{Kind: KindFloat, Float: v}
}

// TextValue returns a text value
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// String returns the canonical text form of the value
func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		return FormatInteger(v.Int)
	case KindFloat:
		return FormatFloat(v.Float)
	case KindText:
		return v.Text
	default:
		return fmt.Sprintf("Value(%d)", int(v.Kind))
	}
}

// FormatInteger returns the canonical text form of an integer
func FormatInteger(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatFloat returns the canonical text form of a float. Values in
// [1e-3, 1e7) print as plain decimals, others in scientific notation with a
// bare exponent ("1.0E10"). The mantissa always carries a fractional digit
// so the text is read back as a float, never as an integer.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(e)
}
