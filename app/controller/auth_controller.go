package controller

import (
	"crypto/rand"
	"errors"
	"log"
	"net/http"
	"time"

	"campaign-studio/app/middleware"
	"campaign-studio/models"
	"campaign-studio/service"
)

const oauthStateCookieName = "oauth-state"

// AuthController handles sign up, sign in, sign out and session endpoints
type AuthController struct {
	auth   service.AuthServiceInterface
	google service.OAuthProvider
	secure bool
	now    func() time.Time
}

// NewAuthController creates a new AuthController.
// google may be nil when Google sign-in is not configured; secure marks cookies Secure.
func NewAuthController(auth service.AuthServiceInterface, google service.OAuthProvider, secure bool) *AuthController {
	return &AuthController{
		auth:   auth,
		google: google,
		secure: secure,
		now:    time.Now,
	}
}

// SignUp handles POST /api/auth/signup
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SignUp: Received %s request to %s", r.Method, r.URL.Path)

	var req models.SignUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Printf("❌ SignUp: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := c.auth.SignUp(r.Context(), req)
	if err != nil {
		writeServiceError(w, "SignUp", err)
		return
	}

	c.setSessionCookie(w, session)
	log.Printf("✅ SignUp: Registered user %s", session.User.ID)
	writeJSON(w, http.StatusCreated, session)
}

// SignIn handles POST /api/auth/signin
func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SignIn: Received %s request to %s", r.Method, r.URL.Path)

	var req models.SignInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Printf("❌ SignIn: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := c.auth.SignIn(r.Context(), req)
	if err != nil {
		writeServiceError(w, "SignIn", err)
		return
	}

	c.setSessionCookie(w, session)
	log.Printf("✅ SignIn: User %s signed in", session.User.ID)
	writeJSON(w, http.StatusOK, session)
}

// SignOut handles POST /api/auth/signout. Signing out without a session is not an error.
func (c *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SignOut: Received %s request to %s", r.Method, r.URL.Path)

	c.clearCookie(w, service.SessionCookieName)
	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /api/auth/session.
// A missing, malformed or expired token yields {"session": null} rather than an error.
func (c *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromRequest(r)
	if token == "" {
		writeJSON(w, http.StatusOK, map[string]any{"session": nil})
		return
	}

	session, err := c.auth.Session(r.Context(), token)
	if err != nil {
		if isSessionError(err) {
			log.Printf("⚠️  Session: %v", err)
			writeJSON(w, http.StatusOK, map[string]any{"session": nil})
			return
		}
		writeServiceError(w, "Session", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"session": session})
}

// GoogleLogin handles GET /auth/google/login
func (c *AuthController) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if c.google == nil {
		log.Printf("❌ GoogleLogin: Google sign-in is not configured")
		writeError(w, http.StatusServiceUnavailable, "Google sign-in is not configured")
		return
	}

	state := rand.Text()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookieName,
		Value:    state,
		Path:     "/auth/google",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   300, // enough time for the OAuth round trip
	})

	http.Redirect(w, r, c.google.AuthCodeURL(state), http.StatusFound)
}

// GoogleCallback handles GET /auth/google/callback
func (c *AuthController) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GoogleCallback: OAuth callback received")

	if c.google == nil {
		writeError(w, http.StatusServiceUnavailable, "Google sign-in is not configured")
		return
	}

	state := r.FormValue("state")
	code := r.FormValue("code")
	if state == "" || code == "" {
		log.Printf("❌ GoogleCallback: missing state or code")
		http.Redirect(w, r, "/?error_code=oauth", http.StatusFound)
		return
	}

	cookie, err := r.Cookie(oauthStateCookieName)
	if err != nil || cookie.Value != state {
		log.Printf("❌ GoogleCallback: state mismatch")
		http.Redirect(w, r, "/?error_code=oauth", http.StatusFound)
		return
	}
	c.clearCookieAt(w, oauthStateCookieName, "/auth/google")

	user, err := c.google.Authenticate(r.Context(), code)
	if err != nil {
		log.Printf("❌ GoogleCallback: authentication failed: %v", err)
		http.Redirect(w, r, "/?error_code=oauth", http.StatusFound)
		return
	}

	session, err := c.auth.SignInOAuth(r.Context(), user)
	if err != nil {
		log.Printf("❌ GoogleCallback: failed to open session for %s: %v", user.Email, err)
		http.Redirect(w, r, "/?error_code=oauth", http.StatusFound)
		return
	}

	c.setSessionCookie(w, session)
	log.Printf("✅ GoogleCallback: User %s signed in with Google", session.User.ID)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (c *AuthController) setSessionCookie(w http.ResponseWriter, session *models.SessionResponse) {
	maxAge := int(session.ExpiresAt.Sub(c.now()).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}
	http.SetCookie(w, &http.Cookie{
		Name:     service.SessionCookieName,
		Value:    session.AccessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func (c *AuthController) clearCookie(w http.ResponseWriter, name string) {
	c.clearCookieAt(w, name, "/")
}

func (c *AuthController) clearCookieAt(w http.ResponseWriter, name string, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func isSessionError(err error) bool {
	return errors.Is(err, service.ErrInvalidSession) || errors.Is(err, service.ErrExpiredSession)
}
