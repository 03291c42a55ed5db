package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"docguard/version"
)

func RegisterVersionRoutes(r chi.Router) {
	r.Get("/version", GetVersionHandler)
}

// GetVersionHandler returns the application version.
func GetVersionHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"version": version.AppVersion})
}
