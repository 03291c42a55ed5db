package models

// ValidateRequest is the POST /api/validate body: inline file contents to
// check without touching the filesystem.
type ValidateRequest struct {
	OriginalContent   string `json:"original_content"`
	DocumentedContent string `json:"documented_content"`
	Language          string `json:"language" example:"c"`
	Record            bool   `json:"record,omitempty"` // persist the run to history
	Label             string `json:"label,omitempty"`  // stored as the path columns for inline runs
}
