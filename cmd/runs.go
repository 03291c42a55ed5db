package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"docguard/core"
	"docguard/database"
)

var runsListLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect recorded validation runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded validation runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		runs, total, err := database.GetRunsPaginated(runsListLimit, 0)
		if err != nil {
			return fmt.Errorf("listing runs: %w", err)
		}
		if total == 0 {
			fmt.Println("No validation runs recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tORIGINAL\tLANG\tVERDICT\tPRESERVED\tADDED\tMISSING")
		for _, run := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
				run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"),
				run.OriginalPath, run.Report.Language, run.Report.Verdict,
				run.Report.Preserved, run.Report.Added, run.Report.MissingCount)
		}
		w.Flush()
		fmt.Printf("showing %d of %d runs\n", len(runs), total)
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one run including its missing-comment list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := database.GetRunByID(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("run:        %s\n", run.ID)
		fmt.Printf("date:       %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("original:   %s\n", run.OriginalPath)
		fmt.Printf("documented: %s\n", run.DocumentedPath)
		fmt.Printf("language:   %s\n", run.Report.Language)
		fmt.Print(core.FormatReport(run.Report))
		return nil
	},
}

func init() {
	runsListCmd.Flags().IntVar(&runsListLimit, "limit", 20, "maximum number of runs to show")
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}
