// Package handlers provides HTTP response utilities for JSON endpoints.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/lunch-web/pkg/middleware"
)

// RespondJSON writes a JSON response with the given status code and data.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs err with the request id and writes {"error": "<message>"}.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, err error) {
	logger.Error("handler error",
		"error", err,
		"status", status,
		"path", r.URL.Path,
		"request_id", middleware.GetRequestID(r.Context()),
	)
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}
