package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docguard/core"
	"docguard/database"
	"docguard/logger"
)

var (
	validateLang         string
	validateRecord       bool
	validateAllowMissing string
)

var validateCmd = &cobra.Command{
	Use:   "validate <original> <documented>",
	Short: "Check that a documented file preserves every comment of the original",
	Long: `Compares the documented (annotated) file against the original and fails
if any original comment is no longer present verbatim.

Exit codes:
  0  all original comments preserved
  1  one or more comments missing
  2  malformed input (unterminated block comment) or unreadable file`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		originalPath, documentedPath := args[0], args[1]

		opts := core.ValidateOptions{Lang: validateLang}
		if validateAllowMissing != "" {
			allowed, err := core.LoadAllowMissing(validateAllowMissing)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				logger.CloseLogFiles()
				os.Exit(core.ExitMalformed)
			}
			opts.AllowMissing = allowed
		}

		report, err := core.ValidateFiles(originalPath, documentedPath, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			logger.CloseLogFiles()
			os.Exit(core.ExitMalformed)
		}

		fmt.Print(core.FormatReport(report))

		if validateRecord {
			run, err := database.CreateRun(originalPath, documentedPath, report)
			if err != nil {
				logger.Error("Failed to record validation run: %v", err)
			} else {
				fmt.Printf("recorded as run %s\n", run.ID)
			}
		}

		if code := core.ExitCodeFor(report); code != core.ExitPass {
			logger.CloseLogFiles()
			os.Exit(code)
		}
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateLang, "lang", "l", "", "language name (default: detect from the original file's extension)")
	validateCmd.Flags().BoolVar(&validateRecord, "record", false, "record this run in the history database")
	validateCmd.Flags().StringVar(&validateAllowMissing, "allow-missing", "", "JSON file listing exact comment texts approved for removal")
	rootCmd.AddCommand(validateCmd)
}
