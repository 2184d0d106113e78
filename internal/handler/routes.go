package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"go-intranet-app/internal/logger"
	"go-intranet-app/internal/middleware"
)

// Handlers groups the route handlers wired into the router.
type Handlers struct {
	Categories *CategoryHandler
	Documents  *DocumentHandler
	Search     *SearchHandler
	Site       *SiteHandler
	Auth       *AuthHandler
}

// NewRouter creates and configures a new chi router.
func NewRouter(h Handlers, log logger.Logger, sessionMiddleware, authzMiddleware func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()

	// A good base middleware stack
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(sessionMiddleware)
	r.Use(authzMiddleware)

	wrap := middleware.Error(log)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/categories", wrap(h.Categories.listHandler))
		r.Method(http.MethodGet, "/categories/{slug}", wrap(h.Categories.getHandler))
		r.Method(http.MethodPost, "/categories", wrap(h.Categories.createHandler))
		r.Method(http.MethodPut, "/categories/{id}", wrap(h.Categories.updateHandler))
		r.Method(http.MethodDelete, "/categories/{id}", wrap(h.Categories.deleteHandler))

		r.Method(http.MethodGet, "/documents", wrap(h.Documents.listHandler))
		r.Method(http.MethodPost, "/documents", wrap(h.Documents.createHandler))
		r.Method(http.MethodPost, "/documents/batch", wrap(h.Documents.batchHandler))
		r.Method(http.MethodPut, "/documents/{id}/move", wrap(h.Documents.moveHandler))
		r.Method(http.MethodPut, "/documents/{id}/title", wrap(h.Documents.renameHandler))
		r.Method(http.MethodDelete, "/documents/{id}", wrap(h.Documents.deleteHandler))

		r.Method(http.MethodGet, "/search", wrap(h.Search.searchHandler))
		r.Method(http.MethodGet, "/quick-links", wrap(h.Site.quickLinksHandler))
		r.Method(http.MethodGet, "/site-settings", wrap(h.Site.settingsHandler))
		r.Method(http.MethodPut, "/site-settings", wrap(h.Site.setSettingHandler))
		r.Method(http.MethodGet, "/processes", wrap(h.Site.processesHandler))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Method(http.MethodPost, "/register", wrap(h.Auth.registerHandler))
		r.Method(http.MethodPost, "/login", wrap(h.Auth.loginHandler))
		r.Method(http.MethodPost, "/logout", wrap(h.Auth.logoutHandler))
		r.Method(http.MethodGet, "/me", wrap(h.Auth.meHandler))
	})

	return r
}
