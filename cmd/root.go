package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger is shared by all subcommands. It is set by Execute before the
// command tree runs.
var logger *zap.Logger

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "modcatalog",
	Short: "modcatalog builds a catalog of mods from a structured mod pack",
	Long: heredoc.Doc(`
		modcatalog scans a directory of mod folders, reads each mod's
		modinfo.json descriptor, and appends a combined catalog document
		(all_modinfo.yaml) summarizing every mod in the pack.

		It can also archive each mod folder into a <folder>.zip for
		distribution.
	`),
	SilenceUsage: true,
}

// Execute wires the provided logger into the command tree and runs the root
// command.
func Execute(log *zap.Logger) error {
	logger = log
	return rootCmd.Execute()
}
