package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"campaign-studio/models"
)

// SessionCookieName is the cookie that caches the signed session token
const SessionCookieName = "auth-token"

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrExpiredSession = errors.New("session expired")
)

// SessionClaims are the JWT claims of a dashboard session
type SessionClaims struct {
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	jwt.RegisteredClaims
}

// SessionManager issues and validates HS256 session tokens
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionManager creates a SessionManager; secret must be at least 32 bytes
func NewSessionManager(secret []byte, ttl time.Duration) (*SessionManager, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("session secret must be at least 32 bytes")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session TTL must be greater than 0")
	}
	return &SessionManager{secret: secret, ttl: ttl, now: time.Now}, nil
}

// Issue signs a session token for user and returns it with its expiry
func (m *SessionManager) Issue(user *models.User) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, expiresAt, nil
}

// Parse validates a session token and returns its claims.
// Returns ErrExpiredSession for expired tokens and ErrInvalidSession for anything else.
func (m *SessionManager) Parse(token string) (*SessionClaims, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredSession
		}
		return nil, ErrInvalidSession
	}

	if !parsed.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidSession
	}

	return claims, nil
}
