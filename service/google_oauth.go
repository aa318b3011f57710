package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"campaign-studio/models"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

// OAuthProvider is the contract the auth controller uses for third party sign in
type OAuthProvider interface {
	AuthCodeURL(state string) string
	Authenticate(ctx context.Context, code string) (*models.User, error)
}

// GoogleOAuth runs the Google authorization-code flow
type GoogleOAuth struct {
	config      *oauth2.Config
	userInfoURL string
}

// NewGoogleOAuth creates a GoogleOAuth; client id, secret and callback URL are required
func NewGoogleOAuth(clientID, clientSecret, callbackURL string) (*GoogleOAuth, error) {
	if clientID == "" || clientSecret == "" || callbackURL == "" {
		return nil, fmt.Errorf("client ID, client secret, and callback URL are required")
	}

	return &GoogleOAuth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
	}, nil
}

// Ensure GoogleOAuth implements OAuthProvider
var _ OAuthProvider = (*GoogleOAuth)(nil)

// AuthCodeURL returns the Google consent page URL for state
func (g *GoogleOAuth) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// Authenticate exchanges the callback code and returns the Google account as an unsaved user
func (g *GoogleOAuth) Authenticate(ctx context.Context, code string) (*models.User, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	info, err := g.getUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}

	if info.Email == "" {
		return nil, fmt.Errorf("google account has no email address")
	}
	if !info.EmailVerified {
		return nil, fmt.Errorf("google email %s is not verified", info.Email)
	}

	return &models.User{
		Email:     info.Email,
		FullName:  info.Name,
		AvatarURL: info.Picture,
		Provider:  models.ProviderGoogle,
	}, nil
}

type googleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func (g *GoogleOAuth) getUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := g.config.Client(ctx, token)
	resp, err := client.Get(g.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo returned HTTP %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	return &info, nil
}
