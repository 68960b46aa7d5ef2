package cmd

import (
	"fmt"

	"modcatalog/pkg/archive"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// archiveCmd zips each mod folder in the pack root.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive each mod folder into a <folder>.zip in the pack root",
	Long: heredoc.Doc(`
		Create a compressed archive for every immediate child folder of the
		pack root. Each archive is named <folder>.zip, placed in the pack
		root, and contains the folder's contents with paths relative to the
		folder itself.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		var arguments archive.Arguments
		var err error
		if arguments.Root, err = flags.GetString("dir"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if arguments.MaxWorkers, err = flags.GetInt("workers"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		return archive.Execute(arguments, logger)
	},
}

func init() {
	archiveCmd.Flags().StringP("dir", "d", ".", "Pack root directory containing the mod folders")
	archiveCmd.Flags().IntP("workers", "w", 0, "Number of concurrent workers (0 = number of CPUs)")

	rootCmd.AddCommand(archiveCmd)
}
