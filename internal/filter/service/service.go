// Package service runs one filter pass: collect, save, report.
package service

import (
	"io"
	"os"
	"time"

	mdwlog "github.com/msto63/datafilter/foundation/core/log"
	"github.com/msto63/datafilter/internal/filter/aggregate"
	"github.com/msto63/datafilter/internal/filter/classify"
	"github.com/msto63/datafilter/internal/filter/stats"
	"github.com/msto63/datafilter/internal/filter/store"
)

// Options is the validated configuration of one run
type Options struct {
	Files      []string
	OutputDir  string
	Prefix     string
	Append     bool
	ShortStats bool
	FullStats  bool
	Policy     classify.Policy
}

// Mode returns the output mode selected by Append
func (o Options) Mode() store.Mode {
	if o.Append {
		return store.ModeAppend
	}
	return store.ModeOverwrite
}

// Result is the outcome of a run. Errors holds the non-fatal error records
// in the order they occurred.
type Result struct {
	Collections *aggregate.Collections
	Targets     store.Targets
	Stats       stats.Report
	Errors      []error
	Duration    time.Duration
}

// Config holds service dependencies
type Config struct {
	Logger *mdwlog.Logger
	// Output receives the rendered statistics (default os.Stdout)
	Output io.Writer
	// Stdin is read for the "-" input path (default os.Stdin)
	Stdin io.Reader
}

// Service executes filter runs
type Service struct {
	logger *mdwlog.Logger
	output io.Writer
	stdin  io.Reader
}

// New creates a new filter service
func New(cfg Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = mdwlog.Discard()
	}
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}
	return &Service{
		logger: logger,
		output: output,
		stdin:  cfg.Stdin,
	}
}

// Run classifies the input files, saves the non-empty collections and
// renders the requested statistics. Missing inputs, read failures and write
// failures never abort the run; they are returned in Result.Errors. The
// only error returned directly is a failure to write the statistics.
func (s *Service) Run(opts Options) (*Result, error) {
	start := time.Now()
	s.logger.Info("Starting filter run", mdwlog.Fields{
		"files":  len(opts.Files),
		"policy": opts.Policy.String(),
		"mode":   opts.Mode().String(),
	})

	agg := aggregate.New(aggregate.Config{
		Policy: opts.Policy,
		Logger: s.logger,
		Stdin:  s.stdin,
	})
	collections, errs := agg.Collect(opts.Files)

	targets := store.ResolveTargets(opts.OutputDir, opts.Prefix, opts.Mode())
	errs = append(errs, store.NewWriter(s.logger).Save(collections, targets)...)

	result := &Result{
		Collections: collections,
		Targets:     targets,
		Stats:       stats.Compute(collections),
		Errors:      errs,
	}

	modes := stats.Modes{Short: opts.ShortStats, Full: opts.FullStats}
	if err := stats.Render(s.output, result.Stats, modes); err != nil {
		result.Duration = time.Since(start)
		return result, err
	}

	result.Duration = time.Since(start)
	s.logger.Info("Filter run completed", mdwlog.Fields{
		"integers": len(collections.Integers),
		"floats":   len(collections.Floats),
		"strings":  len(collections.Strings),
		"warnings": len(errs),
	})
	return result, nil
}
