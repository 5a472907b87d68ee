package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/chronos/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		return render(cmd, info, func(w io.Writer) {
			fmt.Fprintf(w, "chronos %s (engine %s)\n", info.CLI, info.Engine)
			fmt.Fprintf(w, "  commit: %s\n  built:  %s\n  go:     %s\n", info.Commit, info.BuildDate, info.GoVersion)
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
