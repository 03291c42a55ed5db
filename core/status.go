package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"docguard/logger"
	"docguard/models"
)

// StatusEntry is the documentation-coverage summary for one language within
// a scanned tree.
type StatusEntry struct {
	Language     string
	Files        int
	TotalLines   int
	CommentLines int
	Malformed    int // files the scanner could not parse to completion
}

// Coverage is the fraction of lines touched by at least one comment.
func (e StatusEntry) Coverage() float64 {
	if e.TotalLines == 0 {
		return 0
	}
	return float64(e.CommentLines) / float64(e.TotalLines)
}

// ScanTree walks a source tree and accumulates per-language coverage for
// every file whose extension maps to a registered language. Hidden
// directories are skipped. Unreadable files are logged and skipped.
func ScanTree(root string) ([]StatusEntry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("status scan root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("status scan root %s is not a directory", root)
	}

	byLanguage := make(map[string]*StatusEntry)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		syn, ok := SyntaxForPath(path)
		if !ok {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			logger.Warn("Status scan: skipping unreadable file %s: %v", path, readErr)
			return nil
		}
		text := string(data)

		entry := byLanguage[syn.Name]
		if entry == nil {
			entry = &StatusEntry{Language: syn.Name}
			byLanguage[syn.Name] = entry
		}
		entry.Files++
		entry.TotalLines += countLines(text)

		tokens, extractErr := ExtractComments(text, syn)
		if extractErr != nil {
			logger.Warn("Status scan: %s: %v", path, extractErr)
			entry.Malformed++
			return nil
		}
		entry.CommentLines += commentLineCount(tokens)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	entries := make([]StatusEntry, 0, len(byLanguage))
	for _, entry := range byLanguage {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Language < entries[j].Language })
	return entries, nil
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	lines := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		lines++
	}
	return lines
}

// commentLineCount counts distinct lines covered by any comment; a line
// holding two comments counts once.
func commentLineCount(tokens []models.CommentToken) int {
	covered := make(map[int]struct{})
	for _, t := range tokens {
		span := strings.Count(t.Text, "\n") + 1
		for ln := t.Line; ln < t.Line+span; ln++ {
			covered[ln] = struct{}{}
		}
	}
	return len(covered)
}
