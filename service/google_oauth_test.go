package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"campaign-studio/models"
)

func newFakeGoogle(t *testing.T, info map[string]any) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at-123","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(info)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestGoogle(t *testing.T, srv *httptest.Server) *GoogleOAuth {
	t.Helper()
	g, err := NewGoogleOAuth("client", "secret", "http://localhost:8080/auth/google/callback")
	require.NoError(t, err)
	g.config.Endpoint = oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"}
	g.userInfoURL = srv.URL + "/userinfo"
	return g
}

func TestNewGoogleOAuth_requiresSettings(t *testing.T) {
	_, err := NewGoogleOAuth("", "secret", "http://cb")
	require.Error(t, err)
}

func TestGoogleOAuth_AuthCodeURL(t *testing.T) {
	g, err := NewGoogleOAuth("client", "secret", "http://localhost:8080/auth/google/callback")
	require.NoError(t, err)

	u, err := url.Parse(g.AuthCodeURL("state-1"))
	require.NoError(t, err)
	require.Equal(t, "accounts.google.com", u.Host)
	require.Equal(t, "state-1", u.Query().Get("state"))
	require.Equal(t, "client", u.Query().Get("client_id"))
	require.Contains(t, u.Query().Get("scope"), "email")
}

func TestGoogleOAuth_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("verified account", func(t *testing.T) {
		srv := newFakeGoogle(t, map[string]any{
			"sub": "1", "email": "ana@example.com", "email_verified": true, "name": "Ana", "picture": "https://img/ana",
		})
		g := newTestGoogle(t, srv)

		user, err := g.Authenticate(ctx, "good-code")
		require.NoError(t, err)
		require.Equal(t, "ana@example.com", user.Email)
		require.Equal(t, "Ana", user.FullName)
		require.Equal(t, "https://img/ana", user.AvatarURL)
		require.Equal(t, models.ProviderGoogle, user.Provider)
	})

	t.Run("unverified email", func(t *testing.T) {
		srv := newFakeGoogle(t, map[string]any{"sub": "1", "email": "ana@example.com", "email_verified": false})
		g := newTestGoogle(t, srv)

		_, err := g.Authenticate(ctx, "good-code")
		require.Error(t, err)
	})

	t.Run("bad code", func(t *testing.T) {
		srv := newFakeGoogle(t, map[string]any{})
		g := newTestGoogle(t, srv)

		_, err := g.Authenticate(ctx, "bad-code")
		require.Error(t, err)
	})
}
