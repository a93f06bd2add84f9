package stats

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/msto63/datafilter/internal/filter/aggregate"
)

func TestCompute_Integers(t *testing.T) {
	r := Compute(&aggregate.Collections{Integers: []int64{12, 7}})

	want := IntegerStats{Count: 2, Min: 7, Max: 12, Sum: 19, Mean: 9.5}
	if r.Integers != want {
		t.Errorf("Integers = %+v, want %+v", r.Integers, want)
	}
}

func TestCompute_IntegerSumWrapsMeanDoesNot(t *testing.T) {
	r := Compute(&aggregate.Collections{Integers: []int64{math.MaxInt64, math.MaxInt64}})

	if r.Integers.Sum != -2 {
		t.Errorf("Sum = %d, want -2", r.Integers.Sum)
	}
	if r.Integers.Mean != float64(math.MaxInt64) {
		t.Errorf("Mean = %v, want %v", r.Integers.Mean, float64(math.MaxInt64))
	}
}

func TestCompute_Floats(t *testing.T) {
	r := Compute(&aggregate.Collections{Floats: []float64{3.5, -1.25, 10}})

	want := FloatStats{Count: 3, Min: -1.25, Max: 10, Sum: 12.25, Mean: 12.25 / 3}
	if r.Floats != want {
		t.Errorf("Floats = %+v, want %+v", r.Floats, want)
	}
}

func TestCompute_FloatsCompensated(t *testing.T) {
	values := make([]float64, 10)
	for i := range values {
		values[i] = 0.1
	}

	r := Compute(&aggregate.Collections{Floats: values})

	if r.Floats.Sum != 1.0 {
		t.Errorf("Sum = %v, want 1", r.Floats.Sum)
	}
}

func TestCompute_FloatSpecials(t *testing.T) {
	r := Compute(&aggregate.Collections{Floats: []float64{1, math.NaN(), 2}})
	if !math.IsNaN(r.Floats.Min) || !math.IsNaN(r.Floats.Max) || !math.IsNaN(r.Floats.Sum) {
		t.Errorf("NaN not propagated: %+v", r.Floats)
	}

	r = Compute(&aggregate.Collections{Floats: []float64{math.Inf(1), 1}})
	if !math.IsInf(r.Floats.Sum, 1) {
		t.Errorf("Sum = %v, want +Inf", r.Floats.Sum)
	}
}

func TestCompute_StringsByLength(t *testing.T) {
	r := Compute(&aggregate.Collections{Strings: []string{"bb", "a", "ccc", "äöü!"}})

	want := StringStats{Count: 4, MinLength: 1, MaxLength: 4}
	if r.Strings != want {
		t.Errorf("Strings = %+v, want %+v", r.Strings, want)
	}
}

func TestCompute_Empty(t *testing.T) {
	if r := Compute(aggregate.NewCollections()); r != (Report{}) {
		t.Errorf("Compute(empty) = %+v", r)
	}
	if r := Compute(nil); r != (Report{}) {
		t.Errorf("Compute(nil) = %+v", r)
	}
}

func TestRender(t *testing.T) {
	c := &aggregate.Collections{
		Integers: []int64{12, 7},
		Floats:   []float64{3.5},
		Strings:  []string{"hello"},
	}
	r := Compute(c)

	tests := []struct {
		name  string
		modes Modes
		want  string
	}{
		{"none", Modes{}, ""},
		{
			"short",
			Modes{Short: true},
			"Integers count: 2\nFloats count: 1\nStrings count: 1\n",
		},
		{
			"full",
			Modes{Full: true},
			"Integers statistics:\nmin: 7\nmax: 12\nsum: 19\naverage: 9.5\n" +
				"Floats statistics:\nmin: 3.5\nmax: 3.5\nsum: 3.5\naverage: 3.5\n" +
				"Strings statistics:\nmin: 5\nmax: 5\n",
		},
		{
			"both",
			Modes{Short: true, Full: true},
			"Integers count: 2\nFloats count: 1\nStrings count: 1\n" +
				"Integers statistics:\nmin: 7\nmax: 12\nsum: 19\naverage: 9.5\n" +
				"Floats statistics:\nmin: 3.5\nmax: 3.5\nsum: 3.5\naverage: 3.5\n" +
				"Strings statistics:\nmin: 5\nmax: 5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, r, tt.modes); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Render() =\n%q\nwant\n%q", buf.String(), tt.want)
			}
		})
	}
}

func TestRenderFull_SkipsEmptyCollections(t *testing.T) {
	r := Compute(&aggregate.Collections{Floats: []float64{100, 1e10}})

	var buf bytes.Buffer
	if err := r.RenderFull(&buf); err != nil {
		t.Fatalf("RenderFull() error = %v", err)
	}

	want := "Floats statistics:\nmin: 100.0\nmax: 1.0E10\nsum: 1.00000001E10\naverage: 5.00000005E9\n"
	if buf.String() != want {
		t.Errorf("RenderFull() = %q, want %q", buf.String(), want)
	}
}

func TestRenderShort_EmptyCountsShown(t *testing.T) {
	var buf bytes.Buffer
	if err := Compute(nil).RenderShort(&buf); err != nil {
		t.Fatalf("RenderShort() error = %v", err)
	}
	want := "Integers count: 0\nFloats count: 0\nStrings count: 0\n"
	if buf.String() != want {
		t.Errorf("RenderShort() = %q, want %q", buf.String(), want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRender_WriterError(t *testing.T) {
	err := Render(failingWriter{}, Compute(nil), Modes{Short: true})
	if err == nil {
		t.Error("Render() should return the writer error")
	}
}
