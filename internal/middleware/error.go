package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go-intranet-app/internal/logger"
)

// AppError represents a handler failure carrying the HTTP status and the
// message to surface to the client.
type AppError struct {
	Err     error
	Message string
	Code    int
}

// AppHandler is a handler function that returns an AppError instead of
// writing error responses itself.
type AppHandler func(http.ResponseWriter, *http.Request) *AppError

// Error converts handler errors and panics into JSON error responses.
func Error(log logger.Logger) func(AppHandler) http.Handler {
	return func(next AppHandler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("%v", rec)
					}
					log.Error(err, "Panic recovered")
					writeError(w, http.StatusInternalServerError, "Internal Server Error")
				}
			}()

			if err := next(w, r); err != nil {
				log.Error(err.Err, err.Message)
				writeError(w, err.Code, err.Message)
			}
		})
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
