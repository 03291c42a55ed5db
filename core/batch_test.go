package core

import (
	"fmt"
	"testing"

	"docguard/models"
)

func TestParseManifest(t *testing.T) {
	manifest := `{
		"pairs": [
			{"original": "a.c", "documented": "a_doc.c"},
			{"original": "b.sh", "documented": "b_doc.sh", "lang": "shell"}
		]
	}`
	pairs, err := ParseManifest([]byte(manifest))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Original != "a.c" || pairs[0].Documented != "a_doc.c" || pairs[0].Lang != "" {
		t.Errorf("unexpected first pair: %+v", pairs[0])
	}
	if pairs[1].Lang != "shell" {
		t.Errorf("expected lang shell, got %q", pairs[1].Lang)
	}
}

func TestParseManifest_Rejections(t *testing.T) {
	cases := []struct {
		name     string
		manifest string
	}{
		{"invalid JSON", `{"pairs": [`},
		{"no pairs key", `{"files": []}`},
		{"empty pairs", `{"pairs": []}`},
		{"missing documented", `{"pairs": [{"original": "a.c"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseManifest([]byte(tc.manifest)); err == nil {
				t.Errorf("expected error for %s", tc.name)
			}
		})
	}
}

func TestRunBatch_IndependentPairsPreserveOrder(t *testing.T) {
	dir := t.TempDir()
	const n = 10
	var pairs []BatchPair
	for i := 0; i < n; i++ {
		content := fmt.Sprintf("// comment %d\n", i)
		orig := writeTempFile(t, dir, fmt.Sprintf("orig%d.c", i), content)
		var doc string
		if i%2 == 0 {
			doc = writeTempFile(t, dir, fmt.Sprintf("doc%d.c", i), content+"// extra\n")
		} else {
			doc = writeTempFile(t, dir, fmt.Sprintf("doc%d.c", i), "// replaced\n")
		}
		pairs = append(pairs, BatchPair{Original: orig, Documented: doc})
	}

	results := RunBatch(pairs, 3)
	if len(results) != n {
		t.Fatalf("expected %d results, got %d", n, len(results))
	}
	for i, res := range results {
		if res.Err != nil {
			t.Fatalf("pair %d: unexpected error: %v", i, res.Err)
		}
		if res.Pair.Original != pairs[i].Original {
			t.Fatalf("result %d out of order: got %s", i, res.Pair.Original)
		}
		wantVerdict := models.VerdictPass
		if i%2 == 1 {
			wantVerdict = models.VerdictFail
		}
		if res.Report.Verdict != wantVerdict {
			t.Errorf("pair %d: expected %s, got %s", i, wantVerdict, res.Report.Verdict)
		}
	}

	if code := BatchExitCode(results); code != ExitFail {
		t.Errorf("expected exit code %d, got %d", ExitFail, code)
	}
}

func TestBatchExitCode_MalformedWinsOverFail(t *testing.T) {
	results := []BatchResult{
		{Report: models.ValidationReport{Verdict: models.VerdictFail}},
		{Err: &MalformedInputError{Line: 3, Reason: "unterminated block comment"}},
		{Report: models.ValidationReport{Verdict: models.VerdictPass}},
	}
	if code := BatchExitCode(results); code != ExitMalformed {
		t.Errorf("expected %d, got %d", ExitMalformed, code)
	}

	allPass := []BatchResult{
		{Report: models.ValidationReport{Verdict: models.VerdictPass}},
	}
	if code := BatchExitCode(allPass); code != ExitPass {
		t.Errorf("expected %d, got %d", ExitPass, code)
	}
}
