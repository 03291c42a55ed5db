package models

// ErrorResponse is a generic error response structure for API
type ErrorResponse struct {
	Message string `json:"message" example:"Error message describing the issue"`
	// Code int `json:"code,omitempty" example:"4002"` // Optional internal error code
}

// PaginatedRunsResponse wraps a page of validation runs.
type PaginatedRunsResponse struct {
	Page         int             `json:"page"`
	Limit        int             `json:"limit"`
	TotalRecords int64           `json:"total_records"`
	Runs         []ValidationRun `json:"runs"`
}
