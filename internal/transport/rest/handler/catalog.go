package handler

import (
	"net/http"

	"overlysocial/internal/model"
)

// CatalogHandler serves the fixed question catalog.
type CatalogHandler struct {
	questions []model.Question
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(questions []model.Question) *CatalogHandler {
	return &CatalogHandler{questions: questions}
}

// List handles GET /v1/questions
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": h.questions,
	})
}
