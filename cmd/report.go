package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docguard/core"
	"docguard/database"
	"docguard/logger"
)

var reportHTMLPath string

var reportCmd = &cobra.Command{
	Use:   "report <run-id>",
	Short: "Render a recorded run as markdown, optionally as an HTML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := database.GetRunByID(args[0])
		if err != nil {
			return err
		}

		if reportHTMLPath == "" {
			fmt.Print(core.RenderRunMarkdown(run))
			return nil
		}

		page, err := core.RenderRunHTML(run)
		if err != nil {
			return err
		}
		if err := os.WriteFile(reportHTMLPath, page, 0640); err != nil {
			return fmt.Errorf("writing HTML report to %s: %w", reportHTMLPath, err)
		}
		logger.Info("Wrote HTML report for run %s to %s", run.ID, reportHTMLPath)
		fmt.Printf("wrote %s\n", reportHTMLPath)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportHTMLPath, "html", "", "write a standalone HTML report to this path instead of printing markdown")
	rootCmd.AddCommand(reportCmd)
}
