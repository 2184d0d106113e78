package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-intranet-app/internal/cache"
	"go-intranet-app/internal/service"
)

func TestAppErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"validation", fmt.Errorf("%w: name empty", service.ErrValidation), http.StatusBadRequest, ""},
		{"not found", service.ErrNotFound, http.StatusNotFound, "Not found"},
		{"category has documents", service.ErrCategoryNotEmpty, http.StatusConflict, msgCategoryHasDocuments},
		{"category has subfolders", service.ErrCategoryHasChildren, http.StatusConflict, msgCategoryHasSubcategories},
		{"storage down", fmt.Errorf("%w: bucket", service.ErrStorage), http.StatusBadGateway, "Storage unavailable"},
		{"backend timeout", fmt.Errorf("%w: query", cache.ErrTimeout), http.StatusGatewayTimeout, "Backend timeout"},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := appError(tt.err, "fallback")
			if appErr.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", appErr.Code, tt.wantCode)
			}
			if tt.wantMsg != "" && appErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", appErr.Message, tt.wantMsg)
			}
		})
	}
}
