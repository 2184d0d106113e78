package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"go-intranet-app/internal/logger"
	"go-intranet-app/internal/middleware"
	"go-intranet-app/internal/service"
)

// maxUploadBytes bounds the parsed size of a multipart upload request.
const maxUploadBytes = 64 << 20

// DocumentHandler holds the dependencies for the document handlers.
type DocumentHandler struct {
	documents *service.DocumentService
	log       logger.Logger
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(ds *service.DocumentService, log logger.Logger) *DocumentHandler {
	return &DocumentHandler{documents: ds, log: log}
}

// listHandler returns documents newest first. ?category_id= filters to one
// category; ?recent=N returns the N most recent across all categories.
func (h *DocumentHandler) listHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if recent := r.URL.Query().Get("recent"); recent != "" {
		limit, err := strconv.Atoi(recent)
		if err != nil || limit <= 0 {
			return &middleware.AppError{Message: "Invalid recent limit", Code: http.StatusBadRequest}
		}
		documents, err := h.documents.Recent(r.Context(), limit)
		if err != nil {
			return appError(err, "Failed to list recent documents")
		}
		return writeJSON(w, http.StatusOK, documents)
	}

	var categoryID *string
	if id := r.URL.Query().Get("category_id"); id != "" {
		categoryID = &id
	}
	documents, err := h.documents.List(r.Context(), categoryID)
	if err != nil {
		return appError(err, "Failed to list documents")
	}
	return writeJSON(w, http.StatusOK, documents)
}

type createLinkRequest struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description *string `json:"description"`
	CategoryID  *string `json:"category_id"`
	IsPublic    bool    `json:"is_public"`
}

// createHandler accepts either a multipart file upload or a JSON body
// describing an external link.
func (h *DocumentHandler) createHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req createLinkRequest
		if appErr := decodeJSON(r, &req); appErr != nil {
			return appErr
		}
		document, err := h.documents.CreateLink(r.Context(), req.Title, req.URL, req.Description, req.CategoryID, req.IsPublic)
		if err != nil {
			return appError(err, "Failed to create link")
		}
		return writeJSON(w, http.StatusCreated, document)
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return &middleware.AppError{Err: err, Message: "Invalid upload", Code: http.StatusBadRequest}
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return &middleware.AppError{Err: err, Message: "Missing file", Code: http.StatusBadRequest}
	}
	defer file.Close()

	in := service.UploadInput{
		File:     file,
		Size:     header.Size,
		Filename: header.Filename,
		Title:    r.FormValue("title"),
		IsPublic: r.FormValue("is_public") != "false",
	}
	if desc := r.FormValue("description"); desc != "" {
		in.Description = &desc
	}
	if id := r.FormValue("category_id"); id != "" {
		in.CategoryID = &id
	}

	document, err := h.documents.Upload(r.Context(), in)
	if err != nil {
		return appError(err, "Failed to upload document")
	}
	return writeJSON(w, http.StatusCreated, document)
}

// batchHandler handles the drag-and-drop path: several files upserted into
// one category, matched by storage path.
func (h *DocumentHandler) batchHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return &middleware.AppError{Err: err, Message: "Invalid upload", Code: http.StatusBadRequest}
	}
	categorySlug := r.FormValue("category_slug")
	categoryID := r.FormValue("category_id")
	if categorySlug == "" || categoryID == "" {
		return &middleware.AppError{Message: "Missing category", Code: http.StatusBadRequest}
	}

	var files []service.BatchFile
	for _, header := range r.MultipartForm.File["files"] {
		f, err := header.Open()
		if err != nil {
			return &middleware.AppError{Err: err, Message: "Unreadable file in upload", Code: http.StatusBadRequest}
		}
		defer f.Close()
		files = append(files, service.BatchFile{Name: header.Filename, Content: f, Size: header.Size})
	}
	if len(files) == 0 {
		return &middleware.AppError{Message: "No files in upload", Code: http.StatusBadRequest}
	}

	documents, err := h.documents.UploadOrReplace(r.Context(), files, categorySlug, categoryID)
	if err != nil {
		return appError(err, "Failed to upload documents")
	}
	return writeJSON(w, http.StatusCreated, documents)
}

type moveDocumentRequest struct {
	CategoryID *string `json:"category_id"`
}

func (h *DocumentHandler) moveHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id := chi.URLParam(r, "id")

	var req moveDocumentRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		return appErr
	}

	if err := h.documents.Move(r.Context(), id, req.CategoryID); err != nil {
		return appError(err, "Failed to move document")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type renameDocumentRequest struct {
	Title string `json:"title"`
}

func (h *DocumentHandler) renameHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id := chi.URLParam(r, "id")

	var req renameDocumentRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		return appErr
	}

	if err := h.documents.Rename(r.Context(), id, req.Title); err != nil {
		return appError(err, "Failed to rename document")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// deleteHandler deletes a document record and best-effort removes its
// storage object; an object that could not be removed is reported as a
// warning in the response, never as a failure.
func (h *DocumentHandler) deleteHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id := chi.URLParam(r, "id")

	document, err := h.documents.Get(r.Context(), id)
	if err != nil {
		return appError(err, "Failed to load document")
	}

	result, err := h.documents.Delete(r.Context(), id, document.StoragePath)
	if err != nil {
		return appError(err, "Failed to delete document")
	}

	body := map[string]interface{}{"deleted": true}
	if result.StorageWarning != nil {
		body["warning"] = result.StorageWarning.Error()
	}
	return writeJSON(w, http.StatusOK, body)
}
