package service

import (
	"context"

	"contactbook/internal/models"
	"contactbook/internal/repository"
)

// Authorization covers the whole session lifecycle: registration, credential
// exchange, token validation and teardown.
type Authorization interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, req LoginRequest) (TokenResult, error)
	Logout(ctx context.Context, user *models.User) error
	// Authenticate resolves a presented token to its user, rejecting missing,
	// unknown and expired tokens with the same ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// Users exposes the authenticated user's own profile.
type Users interface {
	Get(user *models.User) UserView
	Update(ctx context.Context, user *models.User, req UpdateUserRequest) (UserView, error)
}

// Contacts is the owner-scoped contact collection. Every operation takes the
// authenticated user explicitly; a contact id outside that owner's set is a
// not-found, never a permission error.
type Contacts interface {
	Create(ctx context.Context, user *models.User, req ContactRequest) (ContactView, error)
	Get(ctx context.Context, user *models.User, id string) (ContactView, error)
	Update(ctx context.Context, user *models.User, id string, req ContactRequest) (ContactView, error)
	Delete(ctx context.Context, user *models.User, id string) error
	Search(ctx context.Context, user *models.User, f SearchFilter) (SearchResult, error)
}

// Addresses is the contact-scoped address sub-collection.
type Addresses interface {
	Create(ctx context.Context, user *models.User, contactID string, req AddressRequest) (AddressView, error)
	Get(ctx context.Context, user *models.User, contactID, addressID string) (AddressView, error)
	Update(ctx context.Context, user *models.User, contactID, addressID string, req AddressRequest) (AddressView, error)
	Delete(ctx context.Context, user *models.User, contactID, addressID string) error
	List(ctx context.Context, user *models.User, contactID string) ([]AddressView, error)
}

type Service struct {
	Authorization
	Users
	Contacts
	Addresses
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users),
		Users:         NewUserService(repos.Users),
		Contacts:      NewContactService(repos.Contacts),
		Addresses:     NewAddressService(repos.Contacts, repos.Addresses),
	}
}
