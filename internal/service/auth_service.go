package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"contactbook/internal/models"
	"contactbook/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an issued session stays valid.
const tokenTTL = 30 * 24 * time.Hour

// tokenBytes of CSPRNG output per session token (256 bits, hex-encoded).
const tokenBytes = 32

// maxPasswordLen is the bcrypt input limit; anything longer must be rejected
// at validation time, never inside GenerateFromPassword.
const maxPasswordLen = 72

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

// TokenResult is the login payload: the opaque token and its expiry in epoch
// milliseconds.
type TokenResult struct {
	Token     string `json:"token"`
	ExpiredAt int64  `json:"expiredAt"`
}

// AuthService handles registration and the session lifecycle.
type AuthService struct {
	users repository.Users
}

func NewAuthService(users repository.Users) *AuthService {
	return &AuthService{users: users}
}

var _ Authorization = (*AuthService)(nil)

// Register validates the payload, rejects duplicate usernames and stores the
// bcrypt hash of the password.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	if err := validateStruct(req); err != nil {
		return err
	}

	existing, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return err
	}
	return s.users.Create(ctx, &models.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
	})
}

// Login verifies the credentials and issues a fresh session token valid for
// tokenTTL. Unknown username and wrong password fail identically so the
// response never reveals whether the account exists.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (TokenResult, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validateStruct(req); err != nil {
		return TokenResult{}, err
	}

	u, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return TokenResult{}, err
	}
	if u == nil {
		return TokenResult{}, ErrUnauthorized
	}
	if err := verifyPassword(u.PasswordHash, req.Password); err != nil {
		return TokenResult{}, ErrUnauthorized
	}

	token, err := newSessionToken()
	if err != nil {
		return TokenResult{}, err
	}
	expiredAt := time.Now().Add(tokenTTL).UnixMilli()
	if err := s.users.SetToken(ctx, u.Username, token, expiredAt); err != nil {
		return TokenResult{}, err
	}
	return TokenResult{Token: token, ExpiredAt: expiredAt}, nil
}

// Logout clears the stored session. A user with no active session is a no-op.
func (s *AuthService) Logout(ctx context.Context, user *models.User) error {
	if user.Token == nil {
		return nil
	}
	return s.users.ClearToken(ctx, user.Username)
}

// Authenticate resolves a presented token to its user. Missing token, unknown
// token and a stored expiry strictly before now all yield ErrUnauthorized;
// callers cannot distinguish the cases.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrUnauthorized
	}
	u, err := s.users.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if u == nil || u.TokenExpiredAt == nil {
		return nil, ErrUnauthorized
	}
	if *u.TokenExpiredAt < time.Now().UnixMilli() {
		return nil, ErrUnauthorized
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: opaque session token from the CSPRNG
func newSessionToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
