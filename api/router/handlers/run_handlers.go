package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"docguard/database"
	"docguard/logger"
	"docguard/models"
)

const (
	defaultRunsPageLimit = 50
	maxRunsPageLimit     = 500
)

// getRuns lists recorded validation runs, newest first, paginated via
// ?page= and ?limit= query parameters.
func getRuns(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if n, err := strconv.Atoi(pageStr); err == nil && n > 0 {
			page = n
		}
	}
	limit := defaultRunsPageLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= maxRunsPageLimit {
			limit = n
		}
	}

	runs, total, err := database.GetRunsPaginated(limit, (page-1)*limit)
	if err != nil {
		logger.Error("getRuns: Error querying runs: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, models.PaginatedRunsResponse{
		Page:         page,
		Limit:        limit,
		TotalRecords: total,
		Runs:         runs,
	})
	logger.Info("Fetched %d runs (page %d)", len(runs), page)
}

// GetRunByIDChiHandler fetches one run with its full missing-comment list.
func GetRunByIDChiHandler(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	run, err := database.GetRunByID(runID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			respondError(w, http.StatusNotFound, "Run "+runID+" not found")
		} else {
			logger.Error("GetRunByIDChiHandler: Error querying run %s: %v", runID, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	respondJSON(w, http.StatusOK, run)
}
