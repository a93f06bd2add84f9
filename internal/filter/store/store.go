// Package store persists the collections of a run to their output files.
package store

import (
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/datafilter/foundation/core/error"
	mdwlog "github.com/msto63/datafilter/foundation/core/log"
	"github.com/msto63/datafilter/foundation/utils/filex"
	"github.com/msto63/datafilter/foundation/utils/slicex"
	"github.com/msto63/datafilter/internal/filter/aggregate"
	"github.com/msto63/datafilter/internal/filter/classify"
)

// Default output file names, prefixed by the configured prefix
const (
	IntegersFile = "integers.txt"
	FloatsFile   = "floats.txt"
	StringsFile  = "strings.txt"
)

// Mode selects how an existing output file is treated
type Mode int

const (
	// ModeOverwrite creates the file or truncates it
	ModeOverwrite Mode = iota
	// ModeAppend creates the file or appends to it
	ModeAppend
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeOverwrite:
		return "overwrite"
	case ModeAppend:
		return "append"
	default:
		return "unknown"
	}
}

// Target is a resolved output file
type Target struct {
	Path string
	Mode Mode
}

// Targets holds the output file of every collection
type Targets struct {
	Integers Target
	Floats   Target
	Strings  Target
}

// ResolveTargets builds the output paths dir/prefix+name. An empty dir
// means the current directory.
func ResolveTargets(dir, prefix string, mode Mode) Targets {
	resolve := func(name string) Target {
		return Target{Path: filepath.Join(dir, prefix+name), Mode: mode}
	}
	return Targets{
		Integers: resolve(IntegersFile),
		Floats:   resolve(FloatsFile),
		Strings:  resolve(StringsFile),
	}
}

// Writer serializes collections to their targets
type Writer struct {
	logger *mdwlog.Logger
}

// NewWriter creates a writer. A nil logger discards output.
func NewWriter(logger *mdwlog.Logger) *Writer {
	if logger == nil {
		logger = mdwlog.Discard()
	}
	return &Writer{logger: logger.WithName("store")}
}

// Save writes every non-empty collection to its target, one value per
// line. Empty collections leave their file untouched. A failed write is
// reported and the remaining collections are still written.
func (w *Writer) Save(c *aggregate.Collections, targets Targets) []error {
	if c == nil {
		return nil
	}

	var errs []error
	save := func(kind string, lines []string, target Target) {
		if err := w.write(kind, lines, target); err != nil {
			w.logger.LogError(err)
			errs = append(errs, err)
		}
	}

	save("integers", slicex.Map(c.Integers, classify.FormatInteger), targets.Integers)
	save("floats", slicex.Map(c.Floats, classify.FormatFloat), targets.Floats)
	save("strings", c.Strings, targets.Strings)

	return errs
}

func (w *Writer) write(kind string, lines []string, target Target) error {
	if slicex.IsEmpty(lines) {
		w.logger.Debug("Skipping empty collection", mdwlog.String("collection", kind))
		return nil
	}

	data := []byte(Encode(lines))

	var err error
	switch target.Mode {
	case ModeAppend:
		err = filex.AppendFile(target.Path, data, filex.DefaultFilePerm)
	default:
		err = filex.WriteFile(target.Path, data, filex.DefaultFilePerm)
	}
	if err != nil {
		return mdwerror.Wrap(err, "failed to save "+kind).
			WithCode(mdwerror.CodeWriteFailure).
			WithOperation("store.Save").
			WithDetail("path", target.Path).
			WithDetail("mode", target.Mode.String())
	}

	w.logger.Debug("Saved collection", mdwlog.Fields{
		"collection": kind,
		"path":       target.Path,
		"mode":       target.Mode.String(),
		"values":     len(lines),
	})
	return nil
}

// Encode joins lines with "\n" and terminates the last one
func Encode(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
