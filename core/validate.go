package core

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"docguard/logger"
	"docguard/models"
)

// ValidateOptions tunes a single file-pair validation.
type ValidateOptions struct {
	// Lang forces a language by name; empty means detect from the original
	// file's extension, falling back to C syntax.
	Lang string
	// AllowMissing lists exact comment texts the operator has approved for
	// removal (tiered comments). Strict preservation otherwise.
	AllowMissing []string
}

// ValidateFiles reads both files, extracts their comments and checks
// preservation. File read failures and malformed comments are returned as
// errors; a FAIL verdict is not an error.
func ValidateFiles(originalPath, documentedPath string, opts ValidateOptions) (models.ValidationReport, error) {
	var report models.ValidationReport

	syn, err := resolveSyntax(opts.Lang, originalPath)
	if err != nil {
		return report, err
	}

	origText, err := readInput(originalPath)
	if err != nil {
		return report, err
	}
	docText, err := readInput(documentedPath)
	if err != nil {
		return report, err
	}

	origTokens, err := ExtractComments(origText, syn)
	if err != nil {
		return report, tagMalformed(err, originalPath)
	}
	docTokens, err := ExtractComments(docText, syn)
	if err != nil {
		return report, tagMalformed(err, documentedPath)
	}

	report = CheckPreservation(origTokens, docTokens, docText)
	report = WaiveMissing(report, opts.AllowMissing)
	report.Language = syn.Name

	logger.RunInfo("Validated %s against %s (%s): %s, %d preserved, %d added, %d missing",
		originalPath, documentedPath, syn.Name, report.Verdict, report.Preserved, report.Added, len(report.Missing))
	return report, nil
}

func resolveSyntax(lang, path string) (Syntax, error) {
	if lang != "" {
		syn, ok := SyntaxByName(lang)
		if !ok {
			return Syntax{}, fmt.Errorf("unknown language %q (known: %v)", lang, SyntaxNames())
		}
		return syn, nil
	}
	if syn, ok := SyntaxForPath(path); ok {
		return syn, nil
	}
	logger.Warn("No language registered for %s, falling back to C comment syntax", path)
	syn, _ := SyntaxByName("c")
	return syn, nil
}

func readInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file %s: %w", path, err)
	}
	return string(data), nil
}

func tagMalformed(err error, path string) error {
	if m, ok := err.(*MalformedInputError); ok {
		m.Path = path
		return m
	}
	return err
}

// LoadAllowMissing reads an operator override file: a JSON array of exact
// comment texts that may be absent from the documented file.
func LoadAllowMissing(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading allow-missing file %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("allow-missing file %s is not valid JSON", path)
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("allow-missing file %s must be a JSON array of strings", path)
	}
	var texts []string
	for _, entry := range parsed.Array() {
		if entry.Type != gjson.String {
			return nil, fmt.Errorf("allow-missing file %s: entry %s is not a string", path, entry.Raw)
		}
		texts = append(texts, entry.String())
	}
	return texts, nil
}
