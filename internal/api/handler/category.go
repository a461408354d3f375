package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/marufsabili148/lombaku/internal/api/response"
	"github.com/marufsabili148/lombaku/internal/model"
	"github.com/marufsabili148/lombaku/internal/remote"
	"github.com/marufsabili148/lombaku/internal/services/directory"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	directoryService *directory.Service
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(directoryService *directory.Service) *CategoryHandler {
	return &CategoryHandler{
		directoryService: directoryService,
	}
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.directoryService.ListCategories(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CategoriesFromModel(categories))
}

// Get handles GET /api/v1/categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.CategoryID(mux.Vars(r)["id"])

	category, err := h.directoryService.GetCategory(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CategoryFromModel(*category))
}

// Competitions handles GET /api/v1/categories/{id}/competitions
func (h *CategoryHandler) Competitions(w http.ResponseWriter, r *http.Request) {
	id := model.CategoryID(mux.Vars(r)["id"])

	// 404 for unknown categories rather than an empty list
	if _, err := h.directoryService.GetCategory(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	competitions, err := h.directoryService.ListCompetitions(r.Context(), remote.CompetitionFilter{CategoryID: id})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CompetitionsFromModel(competitions))
}
