package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"campaign-studio/models"
	"campaign-studio/repository"
)

// Password length bounds accepted at sign up; bcrypt rejects passwords over 72 bytes
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

var (
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidSignUp      = errors.New("invalid sign up")
)

// AuthServiceInterface defines the contract for dashboard authentication
type AuthServiceInterface interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.SessionResponse, error)
	SignIn(ctx context.Context, req models.SignInRequest) (*models.SessionResponse, error)
	SignInOAuth(ctx context.Context, user *models.User) (*models.SessionResponse, error)
	Session(ctx context.Context, token string) (*models.SessionResponse, error)
}

// AuthService handles email/password and OAuth sign in on top of the user repository
type AuthService struct {
	users      repository.UserRepositoryInterface
	sessions   *SessionManager
	bcryptCost int
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepositoryInterface, sessions *SessionManager) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Ensure AuthService implements AuthServiceInterface
var _ AuthServiceInterface = (*AuthService)(nil)

// SignUp registers an email/password account and opens a session for it
func (s *AuthService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalidSignUp)
	}
	if len(req.Password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidSignUp, MinPasswordLength)
	}
	if len(req.Password) > MaxPasswordLength {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidSignUp, MaxPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hash),
		Provider:     models.ProviderEmail,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	log.Printf("✅ SignUp: registered %s", user.Email)
	return s.openSession(user)
}

// SignIn checks an email/password pair. Unknown emails and wrong passwords return the same error.
func (s *AuthService) SignIn(ctx context.Context, req models.SignInRequest) (*models.SessionResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("⚠️  SignIn: unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		log.Printf("⚠️  SignIn: account %s has no password (provider=%s)", user.ID, user.Provider)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("⚠️  SignIn: wrong password for %s", user.ID)
		return nil, ErrInvalidCredentials
	}

	return s.openSession(user)
}

// SignInOAuth stores or refreshes an account returned by an OAuth provider and opens a session
func (s *AuthService) SignInOAuth(ctx context.Context, user *models.User) (*models.SessionResponse, error) {
	saved, err := s.users.UpsertOAuthUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.openSession(saved)
}

// Session resolves a session token to its user and expiry. The token itself is not echoed back.
func (s *AuthService) Session(ctx context.Context, token string) (*models.SessionResponse, error) {
	claims, err := s.sessions.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	return &models.SessionResponse{
		User:      user,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}

func (s *AuthService) openSession(user *models.User) (*models.SessionResponse, error) {
	token, expiresAt, err := s.sessions.Issue(user)
	if err != nil {
		return nil, err
	}
	return &models.SessionResponse{
		User:        user,
		AccessToken: token,
		ExpiresAt:   expiresAt.UTC().Truncate(time.Second),
	}, nil
}
