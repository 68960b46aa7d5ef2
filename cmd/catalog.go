package cmd

import (
	"fmt"

	"modcatalog/pkg/catalog"
	"modcatalog/pkg/logging"
	"modcatalog/pkg/version"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// catalogCmd scans the mod pack root and appends the combined catalog
// document to the output file.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Scan mod folders and append their metadata to the catalog file",
	Long: heredoc.Doc(`
		Scan every immediate child folder of the pack root for a modinfo.json
		descriptor, render one catalog fragment per folder with a qualifying
		entry, and append the combined document to the output file in the
		pack root.

		Folders without a descriptor are skipped silently. Folders with a
		malformed descriptor are logged and skipped; they never abort the
		run.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		arguments := catalog.DefaultArguments()
		var err error
		if arguments.Root, err = flags.GetString("dir"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if arguments.OutputName, err = flags.GetString("output"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if arguments.DownloadBaseURL, err = flags.GetString("download-base"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if arguments.HomepageURL, err = flags.GetString("homepage"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if arguments.Validate, err = flags.GetBool("validate"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		verbose, err := flags.GetBool("verbose")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		log := logger
		if verbose {
			if log, err = logging.Setup(true, "modcatalog", version.Version); err != nil {
				return fmt.Errorf("failed to enable verbose logging: %w", err)
			}
		}

		return catalog.Execute(arguments, log)
	},
}

func init() {
	defaults := catalog.DefaultArguments()

	catalogCmd.Flags().StringP("dir", "d", defaults.Root, "Pack root directory to scan")
	catalogCmd.Flags().StringP("output", "o", defaults.OutputName, "Catalog file name, created in the pack root")
	catalogCmd.Flags().String("download-base", defaults.DownloadBaseURL, "Base URL for constructed download links")
	catalogCmd.Flags().String("homepage", defaults.HomepageURL, "Homepage URL recorded for every mod")
	catalogCmd.Flags().Bool("validate", false, "Re-parse the emitted document as YAML and warn if invalid")
	catalogCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(catalogCmd)
}
