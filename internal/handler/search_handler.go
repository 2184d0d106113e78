package handler

import (
	"net/http"

	"go-intranet-app/internal/logger"
	"go-intranet-app/internal/middleware"
	"go-intranet-app/internal/service"
)

// SearchHandler holds the dependencies for the search handler.
type SearchHandler struct {
	search *service.SearchService
	log    logger.Logger
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(ss *service.SearchService, log logger.Logger) *SearchHandler {
	return &SearchHandler{search: ss, log: log}
}

// searchHandler runs ?q= across documents, top-level categories and the
// process map.
func (h *SearchHandler) searchHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	results, err := h.search.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		return appError(err, "Search failed")
	}
	return writeJSON(w, http.StatusOK, results)
}
