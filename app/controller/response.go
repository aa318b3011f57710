package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"campaign-studio/app/middleware"
	"campaign-studio/models"
	"campaign-studio/repository"
	"campaign-studio/service"
)

// maxJSONBody caps request bodies decoded by decodeJSON
const maxJSONBody = 1 << 20

// writeJSON encodes v with the given status
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}

// writeError writes a JSON {"error": message} body
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v, rejecting unknown fields
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// writeServiceError maps repository and service errors to HTTP statuses.
// Unknown errors are logged and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	var invalid validationError
	switch {
	case errors.As(err, &invalid):
		log.Printf("❌ %s: validation failed: %v", op, err)
		writeError(w, http.StatusBadRequest, invalid.Error())
	case errors.Is(err, repository.ErrOrganizationNotFound),
		errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrPersonaNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		log.Printf("❌ %s: not found: %v", op, err)
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, repository.ErrUserAlreadyExists):
		log.Printf("❌ %s: conflict: %v", op, err)
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidSession),
		errors.Is(err, service.ErrExpiredSession):
		log.Printf("❌ %s: unauthorized: %v", op, err)
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrInvalidSignUp),
		errors.Is(err, service.ErrBriefRequired),
		errors.Is(err, service.ErrNoProducts),
		errors.Is(err, service.ErrUnknownProduct),
		errors.Is(err, service.ErrUnknownPersona),
		errors.Is(err, service.ErrInvalidImage),
		errors.Is(err, repository.ErrInvalidReference),
		errors.Is(err, repository.ErrConstraintViolation):
		log.Printf("❌ %s: bad request: %v", op, err)
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAIUnavailable):
		log.Printf("⚠️  %s: %v", op, err)
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		log.Printf("❌ %s: %v", op, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// currentUser returns the user attached by the auth middleware, writing a 401 when there is none
func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	return user, true
}

// pathID parses the {name} path segment as a UUID, writing a 400 when it is malformed
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		log.Printf("❌ Invalid %s %q in %s", name, r.PathValue(name), r.URL.Path)
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
