package core

import (
	"fmt"
	"sync"

	"github.com/tidwall/gjson"

	"docguard/logger"
	"docguard/models"
)

// BatchPair is one original/documented file pair from a batch manifest.
type BatchPair struct {
	Original   string
	Documented string
	Lang       string
}

// BatchResult couples a pair with its outcome. Err is set for unreadable or
// malformed inputs; Report is valid otherwise.
type BatchResult struct {
	Pair   BatchPair
	Report models.ValidationReport
	Err    error
}

// ParseManifest reads a batch manifest: a JSON document with a top-level
// "pairs" array of {original, documented, lang?} objects.
func ParseManifest(data []byte) ([]BatchPair, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("manifest is not valid JSON")
	}
	pairsResult := gjson.GetBytes(data, "pairs")
	if !pairsResult.Exists() || !pairsResult.IsArray() {
		return nil, fmt.Errorf("manifest has no top-level \"pairs\" array")
	}

	var pairs []BatchPair
	for i, entry := range pairsResult.Array() {
		pair := BatchPair{
			Original:   entry.Get("original").String(),
			Documented: entry.Get("documented").String(),
			Lang:       entry.Get("lang").String(),
		}
		if pair.Original == "" || pair.Documented == "" {
			return nil, fmt.Errorf("manifest pair %d: both \"original\" and \"documented\" are required", i)
		}
		pairs = append(pairs, pair)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("manifest \"pairs\" array is empty")
	}
	return pairs, nil
}

// RunBatch validates every pair with a fixed-size worker pool. Each pair is a
// pure function of its two input files, so pairs need no coordination; the
// result slice preserves manifest order.
func RunBatch(pairs []BatchPair, workers int) []BatchResult {
	if workers <= 0 {
		workers = 4
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}

	results := make([]BatchResult, len(pairs))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				pair := pairs[idx]
				report, err := ValidateFiles(pair.Original, pair.Documented, ValidateOptions{Lang: pair.Lang})
				if err != nil {
					logger.RunError("Batch pair %s -> %s: %v", pair.Original, pair.Documented, err)
				}
				results[idx] = BatchResult{Pair: pair, Report: report, Err: err}
			}
		}()
	}
	for i := range pairs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// BatchExitCode folds per-pair outcomes into one process exit code. Any
// malformed/unreadable pair wins over any plain FAIL.
func BatchExitCode(results []BatchResult) int {
	code := ExitPass
	for _, res := range results {
		if res.Err != nil {
			return ExitMalformed
		}
		if res.Report.Verdict != models.VerdictPass {
			code = ExitFail
		}
	}
	return code
}
