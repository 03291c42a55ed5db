package handlers

import (
	"github.com/go-chi/chi/v5"
)

func RegisterValidateRoutes(r chi.Router) {
	r.Post("/validate", validateHandler)
}
