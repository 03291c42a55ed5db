package handlers

import (
	"github.com/go-chi/chi/v5"
)

func RegisterRunRoutes(r chi.Router) {
	r.Get("/runs", getRuns)
	r.Get("/runs/{runID}", GetRunByIDChiHandler)
}
