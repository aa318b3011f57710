package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"campaign-studio/models"
	"campaign-studio/service"
)

type contextKey int

const sessionContextKey contextKey = iota

// SessionFromContext returns the session attached by RequireAPI or RequirePage, or nil
func SessionFromContext(ctx context.Context) *models.SessionResponse {
	session, _ := ctx.Value(sessionContextKey).(*models.SessionResponse)
	return session
}

// UserFromContext returns the signed-in user, or nil
func UserFromContext(ctx context.Context) *models.User {
	if session := SessionFromContext(ctx); session != nil {
		return session.User
	}
	return nil
}

// WithSession attaches a session to ctx
func WithSession(ctx context.Context, session *models.SessionResponse) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// TokenFromRequest reads the session token from the auth cookie, falling back to a Bearer header
func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(service.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// Authenticator resolves session tokens into users for protected routes
type Authenticator struct {
	auth service.AuthServiceInterface
}

// NewAuthenticator creates a new Authenticator
func NewAuthenticator(auth service.AuthServiceInterface) *Authenticator {
	return &Authenticator{auth: auth}
}

// RequireAPI rejects requests without a valid session with a JSON 401
func (a *Authenticator) RequireAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := a.auth.Session(r.Context(), TokenFromRequest(r))
		if err != nil {
			log.Printf("❌ RequireAPI: %s %s: %v", r.Method, r.URL.Path, err)
			status := http.StatusUnauthorized
			message := "Authentication required"
			if !isSessionError(err) {
				status = http.StatusInternalServerError
				message = "Failed to load session"
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]string{"error": message})
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// RequirePage redirects visitors without a valid session to the landing page.
// The error_code query parameter tells the page whether the session expired or was never valid.
func (a *Authenticator) RequirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := a.auth.Session(r.Context(), TokenFromRequest(r))
		if err != nil {
			code := "invalid"
			if errors.Is(err, service.ErrExpiredSession) {
				code = "expired"
			}
			log.Printf("⚠️  RequirePage: redirecting %s to landing (%s): %v", r.URL.Path, code, err)
			http.Redirect(w, r, "/?error_code="+code, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

func isSessionError(err error) bool {
	return errors.Is(err, service.ErrInvalidSession) || errors.Is(err, service.ErrExpiredSession)
}
