// Package aggregate runs the classifier over input files and collects the
// results into three ordered collections.
package aggregate

import (
	"io"
	"os"

	mdwerror "github.com/msto63/datafilter/foundation/core/error"
	mdwlog "github.com/msto63/datafilter/foundation/core/log"
	"github.com/msto63/datafilter/foundation/utils/filex"
	"github.com/msto63/datafilter/internal/filter/classify"
)

// StdinPath is the input path that reads standard input
const StdinPath = "-"

// Collections holds the values of one run in encounter order
type Collections struct {
	Integers []int64
	Floats   []float64
	Strings  []string
}

// NewCollections returns an empty collection set
func NewCollections() *Collections {
	return &Collections{}
}

// Add appends a classified value to the matching collection
func (c *Collections) Add(v classify.Value) {
	switch v.Kind {
	case classify.KindInteger:
		c.Integers = append(c.Integers, v.Int)
	case classify.KindFloat:
		c.Floats = append(c.Floats, v.Float)
	default:
		c.Strings = append(c.Strings, v.Text)
	}
}

// Len returns the number of values over all collections
func (c *Collections) Len() int {
	return len(c.Integers) + len(c.Floats) + len(c.Strings)
}

// Config holds aggregator configuration
type Config struct {
	Policy classify.Policy
	Logger *mdwlog.Logger
	Stdin  io.Reader
}

// Aggregator reads input files and classifies their lines
type Aggregator struct {
	classifier *classify.Classifier
	logger     *mdwlog.Logger
	stdin      io.Reader
}

// New creates an aggregator. A nil logger discards output and a nil stdin
// falls back to os.Stdin.
func New(cfg Config) *Aggregator {
	logger := cfg.Logger
	if logger == nil {
		logger = mdwlog.Discard()
	}
	stdin := cfg.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Aggregator{
		classifier: classify.New(cfg.Policy),
		logger:     logger.WithName("aggregate"),
		stdin:      stdin,
	}
}

// Collect classifies every line of the given files in order. Missing or
// unreadable files and read failures are reported as error records and
// never stop the run; values read before a failure are kept.
func (a *Aggregator) Collect(paths []string) (*Collections, []error) {
	c := NewCollections()
	var errs []error

	for _, path := range paths {
		if err := a.collectPath(path, c); err != nil {
			a.logger.LogError(err)
			errs = append(errs, err)
		}
	}

	return c, errs
}

func (a *Aggregator) collectPath(path string, c *Collections) error {
	if path == StdinPath {
		a.logger.Info("Filtering standard input")
		return a.CollectReader(path, a.stdin, c)
	}

	if !filex.IsReadable(path) {
		return mdwerror.Newf("File %s doesn't exist.", path).
			WithCode(mdwerror.CodeMissingInputFile).
			WithOperation("aggregate.Collect").
			WithDetail("path", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return mdwerror.Wrap(err, "failed to open input file").
			WithCode(mdwerror.CodeMissingInputFile).
			WithOperation("aggregate.Collect").
			WithDetail("path", path)
	}
	defer file.Close()

	a.logger.Info("Filtering "+path+"...", mdwlog.String("path", path))
	return a.CollectReader(path, file, c)
}

// CollectReader classifies every line of r into c. name identifies the
// stream in logs and errors.
func (a *Aggregator) CollectReader(name string, r io.Reader, c *Collections) error {
	timer := a.logger.StartTimer("collect " + name)
	before := c.Len()

	scanner := classify.NewScanner(name, r)
	for scanner.Scan() {
		line := scanner.Line()
		v := a.classifier.Classify(line.Text)
		c.Add(v)
		if a.logger.IsLevelEnabled(mdwlog.LevelTrace) {
			a.logger.Trace("Classified line", mdwlog.Fields{
				"source": line.Source,
				"line":   line.Number,
				"kind":   v.Kind.String(),
			})
		}
	}

	timer.Stop(mdwlog.Fields{"source": name, "values": c.Len() - before})

	if err := scanner.Err(); err != nil {
		return mdwerror.Wrap(err, "failed to read input").
			WithCode(mdwerror.CodeReadFailure).
			WithOperation("aggregate.CollectReader").
			WithDetail("path", name).
			WithDetail("values_kept", c.Len()-before)
	}
	return nil
}
