package core

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"docguard/models"
)

// Process exit codes. Malformed input is reported distinctly from a FAIL so
// operators can tell "a comment was dropped" from "the input could not be
// parsed".
const (
	ExitPass      = 0
	ExitFail      = 1
	ExitMalformed = 2
)

// ExitCodeFor maps a report verdict to the process exit code.
func ExitCodeFor(report models.ValidationReport) int {
	if report.Verdict == models.VerdictPass {
		return ExitPass
	}
	return ExitFail
}

// IsMalformedInput reports whether err is a scanner MalformedInputError
// rather than a filesystem failure. Both exit 2, but messages differ.
func IsMalformedInput(err error) bool {
	var malformed *MalformedInputError
	return errors.As(err, &malformed)
}

// FormatReport renders a report as the CLI's human-readable summary. The
// missing list is never truncated; truncation would hide the magnitude of
// loss.
func FormatReport(report models.ValidationReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "original comments:   %d\n", report.OriginalComments)
	fmt.Fprintf(&b, "documented comments: %d\n", report.DocumentedComments)
	fmt.Fprintf(&b, "%d preserved, %d added, %d missing\n", report.Preserved, report.Added, report.MissingCount)
	if report.Waived > 0 {
		fmt.Fprintf(&b, "%d missing comment(s) waived by operator override\n", report.Waived)
	}
	if len(report.Missing) > 0 {
		b.WriteString("missing comments:\n")
		for _, m := range report.Missing {
			fmt.Fprintf(&b, "  line %d: %s\n", m.Line, m.Text)
		}
	}
	b.WriteString(report.Verdict + "\n")
	return b.String()
}

// RenderRunMarkdown renders a stored run as a markdown report.
func RenderRunMarkdown(run models.ValidationRun) string {
	r := run.Report
	var b strings.Builder
	fmt.Fprintf(&b, "# Validation run %s\n\n", run.ID)
	fmt.Fprintf(&b, "- **Date:** %s\n", run.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- **Original:** `%s`\n", run.OriginalPath)
	fmt.Fprintf(&b, "- **Documented:** `%s`\n", run.DocumentedPath)
	fmt.Fprintf(&b, "- **Language:** %s\n", r.Language)
	fmt.Fprintf(&b, "- **Verdict:** %s\n\n", r.Verdict)
	b.WriteString("| Original | Documented | Preserved | Added | Missing |\n")
	b.WriteString("|---:|---:|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d | %d |\n", r.OriginalComments, r.DocumentedComments, r.Preserved, r.Added, r.MissingCount)
	if r.Waived > 0 {
		fmt.Fprintf(&b, "\n%d missing comment(s) waived by operator override.\n", r.Waived)
	}
	if len(r.Missing) > 0 {
		b.WriteString("\n## Missing comments\n\n")
		for _, m := range r.Missing {
			fmt.Fprintf(&b, "- line %d:\n\n```\n%s\n```\n", m.Line, m.Text)
		}
	}
	return b.String()
}

const htmlReportHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>docguard validation report</title>
<style>
body { font-family: sans-serif; max-width: 60em; margin: 2em auto; padding: 0 1em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 0.3em 0.8em; }
pre { background: #f4f4f4; padding: 0.6em; overflow-x: auto; }
</style>
</head>
<body>
`

const htmlReportFooter = `</body>
</html>
`

// RenderRunHTML converts the markdown report into a standalone HTML page.
func RenderRunHTML(run models.ValidationRun) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var body bytes.Buffer
	if err := md.Convert([]byte(RenderRunMarkdown(run)), &body); err != nil {
		return nil, fmt.Errorf("converting run %s report to HTML: %w", run.ID, err)
	}
	var page bytes.Buffer
	page.WriteString(htmlReportHeader)
	page.Write(body.Bytes())
	page.WriteString(htmlReportFooter)
	return page.Bytes(), nil
}
