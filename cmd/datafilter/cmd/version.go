package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/datafilter/pkg/core/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "datafilter v%s\n", version.Application)
			fmt.Fprintf(out, "  Git Commit:    %s\n", version.Commit)
			fmt.Fprintf(out, "  Build Date:    %s\n", version.BuildDate)
			fmt.Fprintf(out, "  Output Format: v%s\n", version.ComponentVersion("output"))
			fmt.Fprintf(out, "  Go Version:    %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:       %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
