package handlers

import (
	"encoding/json"
	"net/http"

	"docguard/core"
	"docguard/database"
	"docguard/logger"
	"docguard/models"
)

// validateHandler runs a preservation check over inline file contents. The
// documented file is compared against the original; with "record": true the
// result is stored in run history and returned with its run id.
func validateHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("validateHandler: Error decoding request body: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	if req.OriginalContent == "" {
		respondError(w, http.StatusBadRequest, "original_content is required")
		return
	}
	if req.Language == "" {
		respondError(w, http.StatusBadRequest, "language is required for inline validation")
		return
	}
	syn, ok := core.SyntaxByName(req.Language)
	if !ok {
		respondError(w, http.StatusBadRequest, "Unknown language: "+req.Language)
		return
	}

	origTokens, err := core.ExtractComments(req.OriginalContent, syn)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "Original content: "+err.Error())
		return
	}
	docTokens, err := core.ExtractComments(req.DocumentedContent, syn)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "Documented content: "+err.Error())
		return
	}

	report := core.CheckPreservation(origTokens, docTokens, req.DocumentedContent)
	report.Language = syn.Name
	logger.RunInfo("API validation (%s): %s, %d preserved, %d added, %d missing",
		syn.Name, report.Verdict, report.Preserved, report.Added, report.MissingCount)

	if !req.Record {
		respondJSON(w, http.StatusOK, models.ValidationRun{Report: report})
		return
	}

	label := req.Label
	if label == "" {
		label = "(inline)"
	}
	run, err := database.CreateRun(label, label, report)
	if err != nil {
		logger.Error("validateHandler: Error recording run: %v", err)
		respondError(w, http.StatusInternalServerError, "Validation succeeded but recording the run failed")
		return
	}
	respondJSON(w, http.StatusCreated, run)
}
