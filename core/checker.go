package core

import (
	"sort"
	"strings"

	"docguard/models"
)

// CheckPreservation compares the original comment multiset against the
// documented file. A comment appearing N times in the original must occur at
// least N times in the documented FULL TEXT, not merely in its extracted
// comment set, so reformatting around a comment cannot produce a false FAIL.
// The returned report is PASS iff the missing list is empty.
func CheckPreservation(orig, doc []models.CommentToken, docText string) models.ValidationReport {
	// Original occurrences grouped by exact text, first-seen order.
	occurrences := make(map[string][]int, len(orig))
	var order []string
	for _, t := range orig {
		if _, seen := occurrences[t.Text]; !seen {
			order = append(order, t.Text)
		}
		occurrences[t.Text] = append(occurrences[t.Text], t.Line)
	}

	var missing []models.MissingComment
	for _, text := range order {
		lines := occurrences[text]
		found := strings.Count(docText, text)
		if found >= len(lines) {
			continue
		}
		// The first `found` original occurrences are considered satisfied;
		// the remainder are reported with their original line numbers.
		for _, ln := range lines[found:] {
			missing = append(missing, models.MissingComment{Line: ln, Text: text})
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].Line != missing[j].Line {
			return missing[i].Line < missing[j].Line
		}
		return missing[i].Text < missing[j].Text
	})

	// Added = documented comments beyond the original multiplicity.
	remaining := make(map[string]int, len(occurrences))
	for _, t := range orig {
		remaining[t.Text]++
	}
	added := 0
	for _, t := range doc {
		if remaining[t.Text] > 0 {
			remaining[t.Text]--
		} else {
			added++
		}
	}

	report := models.ValidationReport{
		Verdict:            models.VerdictPass,
		OriginalComments:   len(orig),
		DocumentedComments: len(doc),
		Preserved:          len(orig) - len(missing),
		Added:              added,
		MissingCount:       len(missing),
		Missing:            missing,
	}
	if len(missing) > 0 {
		report.Verdict = models.VerdictFail
	}
	return report
}

// WaiveMissing removes operator-approved comment texts from the missing list
// and recomputes the verdict. Waived entries are counted, never hidden.
func WaiveMissing(report models.ValidationReport, allowed []string) models.ValidationReport {
	if len(allowed) == 0 || len(report.Missing) == 0 {
		return report
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, text := range allowed {
		allowedSet[text] = struct{}{}
	}

	var kept []models.MissingComment
	for _, m := range report.Missing {
		if _, ok := allowedSet[m.Text]; ok {
			report.Waived++
			continue
		}
		kept = append(kept, m)
	}
	report.Missing = kept
	report.MissingCount = len(kept)
	if len(kept) == 0 {
		report.Verdict = models.VerdictPass
	} else {
		report.Verdict = models.VerdictFail
	}
	return report
}
