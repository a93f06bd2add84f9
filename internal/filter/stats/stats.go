// Package stats computes and renders statistics over the collected values.
package stats

import (
	"math"
	"unicode/utf8"

	"github.com/msto63/datafilter/foundation/utils/slicex"
	"github.com/msto63/datafilter/internal/filter/aggregate"
)

// IntegerStats summarizes the integer collection. Sum wraps silently on
// int64 overflow; Mean is accumulated in float64 and does not.
type IntegerStats struct {
	Count int
	Min   int64
	Max   int64
	Sum   int64
	Mean  float64
}

// FloatStats summarizes the float collection
type FloatStats struct {
	Count int
	Min   float64
	Max   float64
	Sum   float64
	Mean  float64
}

// StringStats summarizes the string collection by length in characters
type StringStats struct {
	Count     int
	MinLength int
	MaxLength int
}

// Report holds the statistics of all three collections. Fields other than
// Count are zero for an empty collection.
type Report struct {
	Integers IntegerStats
	Floats   FloatStats
	Strings  StringStats
}

// Compute calculates the statistics of c. c is only read.
func Compute(c *aggregate.Collections) Report {
	if c == nil {
		return Report{}
	}
	return Report{
		Integers: computeIntegers(c.Integers),
		Floats:   computeFloats(c.Floats),
		Strings:  computeStrings(c.Strings),
	}
}

func computeIntegers(values []int64) IntegerStats {
	s := IntegerStats{Count: len(values)}
	if slicex.IsEmpty(values) {
		return s
	}

	s.Min, _ = slicex.Min(values)
	s.Max, _ = slicex.Max(values)
	s.Sum = slicex.Sum(values)

	var total float64
	for _, v := range values {
		total += float64(v)
	}
	s.Mean = total / float64(len(values))
	return s
}

func computeFloats(values []float64) FloatStats {
	s := FloatStats{Count: len(values)}
	if slicex.IsEmpty(values) {
		return s
	}

	// math.Min and math.Max propagate NaN, unlike the < comparison
	s.Min, s.Max = values[0], values[0]
	for _, v := range values[1:] {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Sum = compensatedSum(values)
	s.Mean = s.Sum / float64(len(values))
	return s
}

// compensatedSum adds values with Kahan summation. When compensation turns
// an infinite sum into NaN the plain sum is returned.
func compensatedSum(values []float64) float64 {
	var sum, c, simple float64
	for _, v := range values {
		simple += v
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	if math.IsNaN(sum) && math.IsInf(simple, 0) {
		return simple
	}
	return sum
}

func computeStrings(values []string) StringStats {
	s := StringStats{Count: len(values)}
	if slicex.IsEmpty(values) {
		return s
	}

	lengths := slicex.Map(values, utf8.RuneCountInString)
	s.MinLength, _ = slicex.Min(lengths)
	s.MaxLength, _ = slicex.Max(lengths)
	return s
}
