package models

import "time"

// Verdicts for a validation run.
const (
	VerdictPass = "PASS"
	VerdictFail = "FAIL"
)

// MissingComment is an original comment with no remaining occurrence in the
// documented file.
type MissingComment struct {
	Line int    `json:"line"` // line of the occurrence in the original file
	Text string `json:"text"`
}

// ValidationReport is the immutable outcome of comparing one original file
// against its documented counterpart.
type ValidationReport struct {
	Verdict            string           `json:"verdict"`
	Language           string           `json:"language"`
	OriginalComments   int              `json:"original_comments"`
	DocumentedComments int              `json:"documented_comments"`
	Preserved          int              `json:"preserved"`
	Added              int              `json:"added"`
	Waived             int              `json:"waived,omitempty"` // missing comments excused by operator override
	MissingCount       int              `json:"missing_count"`
	// Missing is the full multiset difference. Populated on every fresh
	// validation; list queries over stored runs carry only MissingCount.
	Missing []MissingComment `json:"missing,omitempty"`
}

// ValidationRun is a recorded validation with its identifying metadata.
type ValidationRun struct {
	ID             string           `json:"id"`
	CreatedAt      time.Time        `json:"created_at"`
	OriginalPath   string           `json:"original_path"`
	DocumentedPath string           `json:"documented_path"`
	Report         ValidationReport `json:"report"`
}
