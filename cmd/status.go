package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"docguard/core"
)

var statusCmd = &cobra.Command{
	Use:   "status [dir]",
	Short: "Summarize documentation coverage of a source tree",
	Long: `Walks a source tree and reports, per recognized language, how many lines
are covered by comments. Defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		entries, err := core.ScanTree(root)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No files with a recognized language found.")
			return nil
		}

		var totalFiles, totalLines, totalCommentLines, totalMalformed int
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "LANGUAGE\tFILES\tLINES\tCOMMENT LINES\tCOVERAGE\tMALFORMED")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.1f%%\t%d\n",
				e.Language, e.Files, e.TotalLines, e.CommentLines, e.Coverage()*100, e.Malformed)
			totalFiles += e.Files
			totalLines += e.TotalLines
			totalCommentLines += e.CommentLines
			totalMalformed += e.Malformed
		}
		coverage := 0.0
		if totalLines > 0 {
			coverage = float64(totalCommentLines) / float64(totalLines) * 100
		}
		fmt.Fprintf(w, "total\t%d\t%d\t%d\t%.1f%%\t%d\n", totalFiles, totalLines, totalCommentLines, coverage, totalMalformed)
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
