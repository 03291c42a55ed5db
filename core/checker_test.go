package core

import (
	"reflect"
	"strings"
	"testing"

	"docguard/models"
)

func extractOrFail(t *testing.T, text string) []models.CommentToken {
	t.Helper()
	tokens, err := ExtractComments(text, mustSyntax(t, "c"))
	if err != nil {
		t.Fatalf("unexpected extraction error: %v", err)
	}
	return tokens
}

func TestCheckPreservation_IdentityPasses(t *testing.T) {
	src := "/* init buffer */\nint x; // check bounds\n"
	tokens := extractOrFail(t, src)

	report := CheckPreservation(tokens, tokens, src)
	if report.Verdict != models.VerdictPass {
		t.Fatalf("expected PASS, got %s (%+v)", report.Verdict, report)
	}
	if report.MissingCount != 0 || report.Added != 0 {
		t.Errorf("expected 0 missing and 0 added, got %d missing, %d added", report.MissingCount, report.Added)
	}
	if report.Preserved != 2 {
		t.Errorf("expected 2 preserved, got %d", report.Preserved)
	}
}

func TestCheckPreservation_SupersetPassesWithAddedCount(t *testing.T) {
	orig := "/* init buffer */\nint x; // check bounds\n"
	doc := "/* file overview */\n" +
		"/* init buffer */\n" +
		"// allocates eight bytes\n" +
		"int x; // check bounds\n" +
		"// returns zero on success\n"

	report := CheckPreservation(extractOrFail(t, orig), extractOrFail(t, doc), doc)
	if report.Verdict != models.VerdictPass {
		t.Fatalf("expected PASS, got %s (%+v)", report.Verdict, report)
	}
	if report.Preserved != 2 || report.Added != 3 || report.MissingCount != 0 {
		t.Errorf("expected 2 preserved, 3 added, 0 missing; got %d, %d, %d",
			report.Preserved, report.Added, report.MissingCount)
	}
}

func TestCheckPreservation_DroppedCommentFailsWithLineNumber(t *testing.T) {
	orig := "/* init buffer */\nint x; // check bounds\n"
	doc := "/* init buffer */\nint x;\n"

	report := CheckPreservation(extractOrFail(t, orig), extractOrFail(t, doc), doc)
	if report.Verdict != models.VerdictFail {
		t.Fatalf("expected FAIL, got %s", report.Verdict)
	}
	want := []models.MissingComment{{Line: 2, Text: "// check bounds"}}
	if !reflect.DeepEqual(report.Missing, want) {
		t.Errorf("expected missing %+v, got %+v", want, report.Missing)
	}
	if report.Preserved != 1 {
		t.Errorf("expected 1 preserved, got %d", report.Preserved)
	}
}

func TestCheckPreservation_MultiplicityRequiresDuplicates(t *testing.T) {
	const n = 4
	orig := strings.Repeat("// twice-told tale\n", n)
	doc := strings.Repeat("// twice-told tale\n", n-1)

	report := CheckPreservation(extractOrFail(t, orig), extractOrFail(t, doc), doc)
	if report.Verdict != models.VerdictFail {
		t.Fatalf("expected FAIL, got %s", report.Verdict)
	}
	if report.MissingCount != 1 {
		t.Fatalf("expected exactly 1 missing occurrence, got %d: %+v", report.MissingCount, report.Missing)
	}
	// The unsatisfied occurrence is the last one.
	if report.Missing[0].Line != n {
		t.Errorf("expected missing occurrence at line %d, got %d", n, report.Missing[0].Line)
	}
}

func TestCheckPreservation_MatchesFullTextNotExtractedComments(t *testing.T) {
	// The original comment survives inside a larger documented comment. The
	// check is "does the exact string still occur", not "is it still a
	// standalone comment".
	orig := "/* init buffer */\n"
	doc := "/* overview: /* init buffer */ int x;\n"

	origTokens := extractOrFail(t, orig)
	docTokens := extractOrFail(t, doc)
	report := CheckPreservation(origTokens, docTokens, doc)
	if report.Verdict != models.VerdictPass {
		t.Errorf("expected PASS via full-text match, got %s (%+v)", report.Verdict, report)
	}
}

func TestCheckPreservation_Idempotent(t *testing.T) {
	orig := "/* a */\n// b\n// b\n"
	doc := "/* a */\n"
	origTokens := extractOrFail(t, orig)
	docTokens := extractOrFail(t, doc)

	first := CheckPreservation(origTokens, docTokens, doc)
	second := CheckPreservation(origTokens, docTokens, doc)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical reports, got %+v vs %+v", first, second)
	}
}

func TestCheckPreservation_EmptyOriginalPasses(t *testing.T) {
	doc := "// brand new\n"
	report := CheckPreservation(nil, extractOrFail(t, doc), doc)
	if report.Verdict != models.VerdictPass {
		t.Fatalf("expected PASS for empty original, got %s", report.Verdict)
	}
	if report.Added != 1 {
		t.Errorf("expected 1 added, got %d", report.Added)
	}
}

func TestWaiveMissing_ApprovedTextIsWaived(t *testing.T) {
	orig := "// keep me\n// drop me\n"
	doc := "// keep me\n"
	report := CheckPreservation(extractOrFail(t, orig), extractOrFail(t, doc), doc)
	if report.Verdict != models.VerdictFail {
		t.Fatalf("expected FAIL before waiver, got %s", report.Verdict)
	}

	waived := WaiveMissing(report, []string{"// drop me"})
	if waived.Verdict != models.VerdictPass {
		t.Errorf("expected PASS after waiver, got %s", waived.Verdict)
	}
	if waived.Waived != 1 || waived.MissingCount != 0 {
		t.Errorf("expected 1 waived and 0 missing, got %d waived, %d missing", waived.Waived, waived.MissingCount)
	}
}

func TestWaiveMissing_UnrelatedTextStillFails(t *testing.T) {
	orig := "// keep me\n// drop me\n"
	doc := "\n"
	report := CheckPreservation(extractOrFail(t, orig), extractOrFail(t, doc), doc)

	waived := WaiveMissing(report, []string{"// drop me"})
	if waived.Verdict != models.VerdictFail {
		t.Errorf("expected FAIL, got %s", waived.Verdict)
	}
	if waived.MissingCount != 1 || waived.Missing[0].Text != "// keep me" {
		t.Errorf("expected only %q missing, got %+v", "// keep me", waived.Missing)
	}
}
