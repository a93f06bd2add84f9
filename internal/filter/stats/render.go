package stats

import (
	"bufio"
	"io"
	"strconv"

	"github.com/msto63/datafilter/internal/filter/classify"
)

// Modes selects which statistics blocks are rendered
type Modes struct {
	Short bool
	Full  bool
}

// Render writes the selected statistics to w, short counts first
func Render(w io.Writer, r Report, modes Modes) error {
	if modes.Short {
		if err := r.RenderShort(w); err != nil {
			return err
		}
	}
	if modes.Full {
		if err := r.RenderFull(w); err != nil {
			return err
		}
	}
	return nil
}

// RenderShort writes the count of every collection, including empty ones
func (r Report) RenderShort(w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeLine(bw, "Integers count: ", strconv.Itoa(r.Integers.Count))
	writeLine(bw, "Floats count: ", strconv.Itoa(r.Floats.Count))
	writeLine(bw, "Strings count: ", strconv.Itoa(r.Strings.Count))
	return bw.Flush()
}

// RenderFull writes one block per non-empty collection
func (r Report) RenderFull(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if r.Integers.Count > 0 {
		bw.WriteString("Integers statistics:\n")
		writeLine(bw, "min: ", classify.FormatInteger(r.Integers.Min))
		writeLine(bw, "max: ", classify.FormatInteger(r.Integers.Max))
		writeLine(bw, "sum: ", classify.FormatInteger(r.Integers.Sum))
		writeLine(bw, "average: ", classify.FormatFloat(r.Integers.Mean))
	}

	if r.Floats.Count > 0 {
		bw.WriteString("Floats statistics:\n")
		writeLine(bw, "min: ", classify.FormatFloat(r.Floats.Min))
		writeLine(bw, "max: ", classify.FormatFloat(r.Floats.Max))
		writeLine(bw, "sum: ", classify.FormatFloat(r.Floats.Sum))
		writeLine(bw, "average: ", classify.FormatFloat(r.Floats.Mean))
	}

	if r.Strings.Count > 0 {
		bw.WriteString("Strings statistics:\n")
		writeLine(bw, "min: ", strconv.Itoa(r.Strings.MinLength))
		writeLine(bw, "max: ", strconv.Itoa(r.Strings.MaxLength))
	}

	return bw.Flush()
}

// writeLine ignores errors; bufio.Writer keeps the first one for Flush
func writeLine(bw *bufio.Writer, label, value string) {
	bw.WriteString(label)
	bw.WriteString(value)
	bw.WriteByte('\n')
}
