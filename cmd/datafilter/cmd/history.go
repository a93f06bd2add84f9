package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/datafilter/foundation/core/error"
	"github.com/msto63/datafilter/foundation/utils/filex"
	"github.com/msto63/datafilter/internal/filter/journal"
)

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	var (
		limit int
		prune bool
	)

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs from the run journal",
		Long: `Lists the most recent runs recorded with --journal or
journal.enabled = true, newest first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			if !filex.IsFile(cfg.Journal.Path) {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
				return nil
			}

			store, err := journal.NewSQLiteStore(journal.SQLiteConfig{Path: cfg.Journal.Path})
			if err != nil {
				return mdwerror.Wrap(err, "failed to open run journal").
					WithCode(mdwerror.CodeReadFailure).
					WithDetail("path", cfg.Journal.Path)
			}
			defer store.Close()

			ctx := cmd.Context()
			if prune {
				n, err := store.Prune(ctx, cfg.Journal.Retention.Duration)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d runs older than %s.\n", n, cfg.Journal.Retention.Duration)
			}

			runs, err := store.Recent(ctx, limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHistory(runs))
			return nil
		},
	}

	historyCmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of runs to show (0 = all)")
	historyCmd.Flags().BoolVar(&prune, "prune", false, "Remove runs older than the journal retention first")

	return historyCmd
}
