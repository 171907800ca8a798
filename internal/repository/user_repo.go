package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"contactbook/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (username, name, password_hash, token, token_expired_at) VALUES (?, ?, ?, NULL, NULL)`

	selectUserByUsernameSQL = `SELECT username, name, password_hash, token, token_expired_at FROM users WHERE username = ?`
	selectUserByTokenSQL    = `SELECT username, name, password_hash, token, token_expired_at FROM users WHERE token = ?`

	updateUserProfileSQL = `UPDATE users SET name = ?, password_hash = ? WHERE username = ?`
	setUserTokenSQL      = `UPDATE users SET token = ?, token_expired_at = ? WHERE username = ?`
	clearUserTokenSQL    = `UPDATE users SET token = NULL, token_expired_at = NULL WHERE username = ?`
)

// Create inserts a new user row with no active session.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if _, err := r.db.ExecContext(ctx, insertUserSQL, u.Username, u.Name, u.PasswordHash); err != nil {
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := r.scanUser(r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return u, nil
}

// GetByToken fetches the user holding the given session token.
// Returns (nil, nil) if no user holds it.
func (r *UserRepository) GetByToken(ctx context.Context, token string) (*models.User, error) {
	u, err := r.scanUser(r.db.QueryRowContext(ctx, selectUserByTokenSQL, token))
	if err != nil {
		return nil, fmt.Errorf("select user by token: %w", err)
	}
	return u, nil
}

// UpdateProfile overwrites the display name and password hash.
func (r *UserRepository) UpdateProfile(ctx context.Context, username, name, passwordHash string) error {
	if _, err := r.db.ExecContext(ctx, updateUserProfileSQL, name, passwordHash, username); err != nil {
		return fmt.Errorf("update profile for user %q: %w", username, err)
	}
	return nil
}

// SetToken stores a freshly issued session token and its expiry (epoch millis).
func (r *UserRepository) SetToken(ctx context.Context, username, token string, expiredAt int64) error {
	if _, err := r.db.ExecContext(ctx, setUserTokenSQL, token, expiredAt, username); err != nil {
		return fmt.Errorf("set token for user %q: %w", username, err)
	}
	return nil
}

// ClearToken drops the session. Clearing an already empty session is a no-op.
func (r *UserRepository) ClearToken(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, clearUserTokenSQL, username); err != nil {
		return fmt.Errorf("clear token for user %q: %w", username, err)
	}
	return nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var (
		u         models.User
		token     sql.NullString
		expiredAt sql.NullInt64
	)
	err := row.Scan(&u.Username, &u.Name, &u.PasswordHash, &token, &expiredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if token.Valid {
		u.Token = &token.String
	}
	if expiredAt.Valid {
		u.TokenExpiredAt = &expiredAt.Int64
	}
	return &u, nil
}
