package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"docguard/config"
	"docguard/core"
	"docguard/database"
	"docguard/logger"
	"docguard/models"
)

var (
	batchWorkers int
	batchRecord  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.json>",
	Short: "Validate every file pair listed in a JSON manifest",
	Long: `Runs the preservation check for every pair in the manifest, in parallel.
The manifest is a JSON document with a top-level "pairs" array:

  {"pairs": [{"original": "a.c", "documented": "a_documented.c", "lang": "c"}]}

Exit codes: 2 if any pair was malformed/unreadable, else 1 if any pair
failed, else 0.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manifestPath := args[0]
		data, err := os.ReadFile(manifestPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading manifest %s: %v\n", manifestPath, err)
			logger.CloseLogFiles()
			os.Exit(core.ExitMalformed)
		}

		pairs, err := core.ParseManifest(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			logger.CloseLogFiles()
			os.Exit(core.ExitMalformed)
		}

		workers := batchWorkers
		if workers <= 0 {
			workers = config.AppConfig.Validation.Workers
		}
		logger.Info("Running batch of %d pairs with %d workers", len(pairs), workers)
		results := core.RunBatch(pairs, workers)

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ORIGINAL\tDOCUMENTED\tVERDICT\tPRESERVED\tADDED\tMISSING")
		for _, res := range results {
			if res.Err != nil {
				fmt.Fprintf(w, "%s\t%s\tERROR: %v\t-\t-\t-\n", res.Pair.Original, res.Pair.Documented, res.Err)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
				res.Pair.Original, res.Pair.Documented, res.Report.Verdict,
				res.Report.Preserved, res.Report.Added, res.Report.MissingCount)
		}
		w.Flush()

		if batchRecord {
			for _, res := range results {
				if res.Err != nil {
					continue
				}
				if _, err := database.CreateRun(res.Pair.Original, res.Pair.Documented, res.Report); err != nil {
					logger.Error("Failed to record batch run for %s: %v", res.Pair.Original, err)
				}
			}
		}

		passed := 0
		for _, res := range results {
			if res.Err == nil && res.Report.Verdict == models.VerdictPass {
				passed++
			}
		}
		fmt.Printf("%d/%d pairs passed\n", passed, len(results))

		if code := core.BatchExitCode(results); code != core.ExitPass {
			logger.CloseLogFiles()
			os.Exit(code)
		}
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "number of concurrent validations (default: validation.workers from config)")
	batchCmd.Flags().BoolVar(&batchRecord, "record", true, "record each pair's run in the history database")
	rootCmd.AddCommand(batchCmd)
}
