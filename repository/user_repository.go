package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"campaign-studio/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

const userColumns = `id, email, full_name, COALESCE(password_hash, ''), provider, avatar_url, created_at`

// Create inserts a new user. Email is stored lower-cased.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.Must(uuid.NewV7())
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	query := `
		INSERT INTO users (id, email, full_name, password_hash, provider, avatar_url, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NOW())
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.FullName, user.PasswordHash, user.Provider, user.AvatarURL,
	).Scan(&user.CreatedAt)
	if err != nil {
		log.Printf("❌ Error creating user %s: %v", user.Email, err)
		return mapPostgresError(fmt.Errorf("failed to create user: %w", err))
	}

	log.Printf("✓ Created user: id=%s, provider=%s", user.ID, user.Provider)
	return nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmail retrieves a user by email, ignoring case
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, strings.ToLower(strings.TrimSpace(email)))
}

// UpsertOAuthUser creates the user or refreshes the profile fields of an existing account.
// Existing password hashes are kept so an email account can also sign in with Google.
func (r *UserRepository) UpsertOAuthUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.Must(uuid.NewV7())
	}

	query := `
		INSERT INTO users (id, email, full_name, provider, avatar_url, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (email)
		DO UPDATE SET
			full_name = CASE WHEN EXCLUDED.full_name <> '' THEN EXCLUDED.full_name ELSE users.full_name END,
			avatar_url = EXCLUDED.avatar_url
		RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.ID, strings.ToLower(strings.TrimSpace(user.Email)), user.FullName, user.Provider, user.AvatarURL,
	))
	if err != nil {
		log.Printf("❌ Error upserting oauth user %s: %v", user.Email, err)
		return nil, mapPostgresError(fmt.Errorf("failed to upsert user: %w", err))
	}

	log.Printf("✓ Upserted oauth user: id=%s", saved.ID)
	return saved, nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.PasswordHash,
		&user.Provider,
		&user.AvatarURL,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
