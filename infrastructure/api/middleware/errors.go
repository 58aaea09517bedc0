package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/holocron-dev/holocron/infrastructure/swapi"
	"github.com/holocron-dev/holocron/internal/database"
)

// ErrAuthentication is the sentinel for authentication failures.
var ErrAuthentication = errors.New("authentication failed")

// AuthenticationError indicates the request could not be authenticated.
type AuthenticationError struct {
	reason string
}

// NewAuthenticationError creates a new AuthenticationError.
func NewAuthenticationError(reason string) *AuthenticationError {
	return &AuthenticationError{reason: reason}
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.reason)
}

func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

// ErrorResponse is the error body for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError writes a JSON error response with a status derived from the
// error type: upstream misses map to 404, upstream outages to 502,
// authentication failures to 401, and anything else to 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := http.StatusInternalServerError

	var authErr *AuthenticationError
	switch {
	case errors.As(err, &authErr):
		status = http.StatusUnauthorized
	case errors.Is(err, swapi.ErrNotFound), errors.Is(err, database.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, swapi.ErrUnavailable):
		status = http.StatusBadGateway
	}

	if logger != nil {
		logger.Error("request error",
			"request_id", middleware.GetReqID(r.Context()),
			"status", status,
			"error", err.Error(),
			"path", r.URL.Path,
		)
	}

	WriteJSON(w, status, ErrorResponse{Error: err.Error()})
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
