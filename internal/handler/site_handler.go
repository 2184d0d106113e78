package handler

import (
	"net/http"

	"go-intranet-app/internal/logger"
	"go-intranet-app/internal/middleware"
	"go-intranet-app/internal/service"
)

// SiteHandler holds the dependencies for quick links, site settings and the
// process map.
type SiteHandler struct {
	site *service.SiteService
	log  logger.Logger
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(ss *service.SiteService, log logger.Logger) *SiteHandler {
	return &SiteHandler{site: ss, log: log}
}

func (h *SiteHandler) quickLinksHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	links, err := h.site.QuickLinks(r.Context())
	if err != nil {
		return appError(err, "Failed to list quick links")
	}
	return writeJSON(w, http.StatusOK, links)
}

func (h *SiteHandler) settingsHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	settings, err := h.site.Settings(r.Context())
	if err != nil {
		return appError(err, "Failed to load site settings")
	}
	return writeJSON(w, http.StatusOK, settings)
}

type setSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (h *SiteHandler) setSettingHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var req setSettingRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		return appErr
	}

	if err := h.site.SetSetting(r.Context(), req.Key, req.Value); err != nil {
		return appError(err, "Failed to save setting")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// processesHandler serves the fixed process map.
func (h *SiteHandler) processesHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	return writeJSON(w, http.StatusOK, service.ProcessCatalog())
}
