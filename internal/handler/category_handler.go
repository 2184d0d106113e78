package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-intranet-app/internal/logger"
	"go-intranet-app/internal/middleware"
	"go-intranet-app/internal/service"
)

// CategoryHandler holds the dependencies for the category handlers.
type CategoryHandler struct {
	categories *service.CategoryService
	log        logger.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(cs *service.CategoryService, log logger.Logger) *CategoryHandler {
	return &CategoryHandler{categories: cs, log: log}
}

// listHandler returns all categories, or the direct children of one parent
// when ?parent_id= is given.
func (h *CategoryHandler) listHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if parentID := r.URL.Query().Get("parent_id"); parentID != "" {
		children, err := h.categories.Subcategories(r.Context(), parentID)
		if err != nil {
			return appError(err, "Failed to list subcategories")
		}
		return writeJSON(w, http.StatusOK, children)
	}

	categories, err := h.categories.List(r.Context())
	if err != nil {
		return appError(err, "Failed to list categories")
	}
	return writeJSON(w, http.StatusOK, categories)
}

// getHandler returns one category by slug, with its resolved ancestor path.
func (h *CategoryHandler) getHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	slug := chi.URLParam(r, "slug")

	category, err := h.categories.GetBySlug(r.Context(), slug)
	if err != nil {
		return appError(err, "Failed to load category")
	}
	if category == nil {
		return &middleware.AppError{Message: "Not found", Code: http.StatusNotFound}
	}

	path, err := h.categories.ResolvePath(r.Context(), category.ID)
	if err != nil {
		return appError(err, "Failed to resolve category path")
	}

	return writeJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"path":     path,
	})
}

type createCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ParentID    *string `json:"parent_id"`
	ParentSlug  string  `json:"parent_slug"`
}

func (h *CategoryHandler) createHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var req createCategoryRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		return appErr
	}

	category, err := h.categories.Create(r.Context(), req.Name, req.Description, req.ParentID, req.ParentSlug)
	if err != nil {
		return appError(err, "Failed to create category")
	}
	return writeJSON(w, http.StatusCreated, category)
}

type updateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (h *CategoryHandler) updateHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id := chi.URLParam(r, "id")

	var req updateCategoryRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		return appErr
	}

	if err := h.categories.Update(r.Context(), id, req.Name, req.Description); err != nil {
		return appError(err, "Failed to update category")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *CategoryHandler) deleteHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id := chi.URLParam(r, "id")

	if err := h.categories.Delete(r.Context(), id); err != nil {
		return appError(err, "Failed to delete category")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
