package core

import (
	"os"
	"path/filepath"
	"testing"

	"docguard/models"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestValidateFiles_PassScenario(t *testing.T) {
	dir := t.TempDir()
	orig := writeTempFile(t, dir, "orig.c",
		"/* init buffer */\nint x; // check bounds\n")
	doc := writeTempFile(t, dir, "doc.c",
		"/* file overview */\n/* init buffer */\n// allocates eight bytes\nint x; // check bounds\n// returns zero\n")

	report, err := ValidateFiles(orig, doc, ValidateOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Verdict != models.VerdictPass {
		t.Fatalf("expected PASS, got %s (%+v)", report.Verdict, report)
	}
	if report.Preserved != 2 || report.Added != 3 || report.MissingCount != 0 {
		t.Errorf("expected 2 preserved, 3 added, 0 missing; got %d, %d, %d",
			report.Preserved, report.Added, report.MissingCount)
	}
	if report.Language != "c" {
		t.Errorf("expected language detected as c, got %q", report.Language)
	}
	if ExitCodeFor(report) != ExitPass {
		t.Errorf("expected exit code %d, got %d", ExitPass, ExitCodeFor(report))
	}
}

func TestValidateFiles_FailScenario(t *testing.T) {
	dir := t.TempDir()
	orig := writeTempFile(t, dir, "orig.c", "/* init buffer */\nint x; // check bounds\n")
	doc := writeTempFile(t, dir, "doc.c", "/* init buffer */\nint x;\n")

	report, err := ValidateFiles(orig, doc, ValidateOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Verdict != models.VerdictFail {
		t.Fatalf("expected FAIL, got %s", report.Verdict)
	}
	if len(report.Missing) != 1 || report.Missing[0].Text != "// check bounds" || report.Missing[0].Line != 2 {
		t.Errorf("unexpected missing list: %+v", report.Missing)
	}
	if ExitCodeFor(report) != ExitFail {
		t.Errorf("expected exit code %d, got %d", ExitFail, ExitCodeFor(report))
	}
}

func TestValidateFiles_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	orig := writeTempFile(t, dir, "orig.c", "// x\n")

	_, err := ValidateFiles(orig, filepath.Join(dir, "nope.c"), ValidateOptions{})
	if err == nil {
		t.Fatal("expected error for missing documented file")
	}
	if IsMalformedInput(err) {
		t.Errorf("a missing file is not malformed input: %v", err)
	}
}

func TestValidateFiles_MalformedDocumentedFile(t *testing.T) {
	dir := t.TempDir()
	orig := writeTempFile(t, dir, "orig.c", "// x\n")
	doc := writeTempFile(t, dir, "doc.c", "// x\n/* unclosed\n")

	_, err := ValidateFiles(orig, doc, ValidateOptions{})
	if err == nil {
		t.Fatal("expected malformed input error")
	}
	if !IsMalformedInput(err) {
		t.Fatalf("expected MalformedInputError, got %T: %v", err, err)
	}
}

func TestValidateFiles_UnknownLanguageRejected(t *testing.T) {
	dir := t.TempDir()
	orig := writeTempFile(t, dir, "orig.c", "// x\n")

	_, err := ValidateFiles(orig, orig, ValidateOptions{Lang: "fortran77"})
	if err == nil {
		t.Fatal("expected error for unknown language")
	}
}

func TestLoadAllowMissing(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "allow.json", `["// drop me", "/* stale */"]`)

	texts, err := LoadAllowMissing(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(texts) != 2 || texts[0] != "// drop me" || texts[1] != "/* stale */" {
		t.Errorf("unexpected texts: %#v", texts)
	}
}

func TestLoadAllowMissing_RejectsNonArray(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "allow.json", `{"texts": []}`)

	if _, err := LoadAllowMissing(path); err == nil {
		t.Fatal("expected error for non-array JSON")
	}
}
