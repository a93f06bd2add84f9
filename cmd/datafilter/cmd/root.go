package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/datafilter/foundation/core/error"
	mdwlog "github.com/msto63/datafilter/foundation/core/log"
	"github.com/msto63/datafilter/foundation/utils/filex"
	"github.com/msto63/datafilter/internal/filter/classify"
	"github.com/msto63/datafilter/internal/filter/journal"
	"github.com/msto63/datafilter/internal/filter/service"
	"github.com/msto63/datafilter/pkg/core/config"
	"github.com/msto63/datafilter/pkg/core/logging"
)

const fallbackMessage = "Provided path is not a directory. Current folder will be used."

// rootFlags holds the values of the root command's flags
type rootFlags struct {
	cfgFile    string
	verbose    bool
	appendMode bool
	shortStats bool
	fullStats  bool
	prefix     string
	outputDir  string
	strict     bool
	logLevel   string
	logFormat  string
	journal    bool
}

// Execute runs the datafilter command line
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the root command with its subcommands
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "datafilter [flags] file...",
		Short: "Sort mixed text files into integers, floats and strings",
		Long: `datafilter reads text files line by line and sorts every line into
one of three output files:

  integers.txt - lines starting with a whole number
  floats.txt   - lines starting with a decimal number
  strings.txt  - everything else

Output files are written to the output directory with an optional prefix.
Use "-" as a file name to read standard input.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, flags, args)
		},
	}

	f := rootCmd.Flags()
	f.BoolVarP(&flags.appendMode, "append", "a", false, "Append to existing output files instead of overwriting them")
	f.BoolVarP(&flags.shortStats, "short", "s", false, "Print short statistics (counts)")
	f.BoolVarP(&flags.fullStats, "full", "f", false, "Print full statistics (min, max, sum, average)")
	f.StringVarP(&flags.prefix, "prefix", "p", "", "Prefix for output file names")
	f.StringVarP(&flags.outputDir, "output", "o", "", "Output directory (default: current directory)")
	f.BoolVar(&flags.strict, "strict", false, "Treat a line as numeric only if it holds a single number")
	f.BoolVar(&flags.journal, "journal", false, "Record the run in the run journal")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.cfgFile, "config", "", "Config file (default: ./configs/datafilter.toml)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format (text, json, logfmt)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newHistoryCmd(flags))

	return rootCmd
}

func runFilter(cmd *cobra.Command, flags *rootFlags, args []string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	mergeFlags(cmd, flags, cfg)

	if !logging.ValidLevel(cfg.Logging.Level) {
		return mdwerror.Newf("unknown log level %q", cfg.Logging.Level).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("cmd.runFilter")
	}

	policy, err := classify.ParsePolicy(cfg.Filter.Policy)
	if err != nil {
		return mdwerror.Wrap(err, "invalid filter policy").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("cmd.runFilter")
	}

	logger := newLogger(cmd, cfg).WithCorrelationID(uuid.NewString())

	if len(args) == 0 {
		return mdwerror.New("You have not provided files to filter.").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.runFilter")
	}

	opts, warnings := buildOptions(cfg, policy, args, logger)

	svc := service.New(service.Config{
		Logger: logger,
		Output: cmd.OutOrStdout(),
		Stdin:  cmd.InOrStdin(),
	})
	result, err := svc.Run(opts)
	if err != nil {
		return fmt.Errorf("failed to print statistics: %w", err)
	}
	warnings = append(warnings, result.Errors...)

	if cfg.Journal.Enabled {
		recordRun(cmd.Context(), cfg, opts, result, len(warnings), logger)
	}

	if flags.verbose {
		fmt.Fprintln(cmd.ErrOrStderr(), renderSummary(opts, result, len(warnings)))
	}
	return nil
}

// loadConfig reads the --config file, or the file found by the environment
func loadConfig(flags *rootFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.cfgFile != "" {
		config.LoadDotEnv()
		if cfg, err = config.Load(flags.cfgFile); err == nil {
			cfg.ApplyEnv()
		}
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to load configuration").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("cmd.loadConfig")
	}
	return cfg, nil
}

// mergeFlags applies explicitly set flags on top of the configuration
func mergeFlags(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) {
	changed := func(name string) bool {
		return cmd.Flags().Changed(name)
	}

	if changed("output") {
		cfg.Output.Dir = flags.outputDir
	}
	if changed("prefix") {
		cfg.Output.Prefix = flags.prefix
	}
	if flags.appendMode {
		cfg.Output.Append = true
	}
	if flags.shortStats {
		cfg.Stats.Short = true
	}
	if flags.fullStats {
		cfg.Stats.Full = true
	}
	if flags.strict {
		cfg.Filter.Policy = classify.PolicyWholeLine.String()
	}
	if flags.journal {
		cfg.Journal.Enabled = true
	}
	if changed("log-format") {
		cfg.Logging.Format = flags.logFormat
	}
	switch {
	case changed("log-level"):
		cfg.Logging.Level = flags.logLevel
	case flags.verbose:
		cfg.Logging.Level = "debug"
	}
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *mdwlog.Logger {
	lc := logging.DefaultLoggerConfig("datafilter")
	lc.Level = cfg.Logging.Level
	lc.Format = cfg.Logging.Format
	lc.Output = cmd.ErrOrStderr()
	return logging.NewLogger(lc)
}

// buildOptions validates the configuration into service options. An output
// directory that is not a directory falls back to the current directory.
func buildOptions(cfg *config.Config, policy classify.Policy, files []string, logger *mdwlog.Logger) (service.Options, []error) {
	var warnings []error

	dir := cfg.Output.Dir
	if dir != "" && !filex.IsDir(dir) {
		err := mdwerror.New(fallbackMessage).
			WithCode(mdwerror.CodeConfigurationFallback).
			WithOperation("cmd.buildOptions").
			WithDetail("path", dir)
		logger.LogError(err)
		warnings = append(warnings, err)
		dir = ""
	}

	return service.Options{
		Files:      files,
		OutputDir:  dir,
		Prefix:     cfg.Output.Prefix,
		Append:     cfg.Output.Append,
		ShortStats: cfg.Stats.Short,
		FullStats:  cfg.Stats.Full,
		Policy:     policy,
	}, warnings
}

// recordRun stores the run in the journal. Journal failures are logged and
// never fail the run.
func recordRun(ctx context.Context, cfg *config.Config, opts service.Options, result *service.Result, warnings int, logger *mdwlog.Logger) {
	store, err := journal.NewSQLiteStore(journal.SQLiteConfig{Path: cfg.Journal.Path})
	if err != nil {
		logger.WarnWithErr("Run journal unavailable", err, mdwlog.String("path", cfg.Journal.Path))
		return
	}
	defer store.Close()

	run := &journal.RunRecord{
		StartedAt: time.Now().Add(-result.Duration),
		Duration:  result.Duration,
		Files:     opts.Files,
		OutputDir: opts.OutputDir,
		Prefix:    opts.Prefix,
		Mode:      opts.Mode().String(),
		Integers:  len(result.Collections.Integers),
		Floats:    len(result.Collections.Floats),
		Strings:   len(result.Collections.Strings),
		Warnings:  warnings,
	}
	if err := store.Record(ctx, run); err != nil {
		logger.WarnWithErr("Failed to record run", err)
		return
	}
	logger.Debug("Run recorded", mdwlog.String("run_id", run.ID))

	if n, err := store.Prune(ctx, cfg.Journal.Retention.Duration); err != nil {
		logger.WarnWithErr("Failed to prune run journal", err)
	} else if n > 0 {
		logger.Debug("Pruned run journal", mdwlog.Field("removed", n))
	}
}
