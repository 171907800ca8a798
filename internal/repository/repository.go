package repository

import (
	"context"
	"database/sql"

	"contactbook/internal/models"
)

type Users interface {
	Create(ctx context.Context, u *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByToken(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, username, name, passwordHash string) error
	SetToken(ctx context.Context, username, token string, expiredAt int64) error
	ClearToken(ctx context.Context, username string) error
}

// ContactQuery carries the optional search filters plus the page window.
// Empty strings mean "no filter"; Username is always applied.
type ContactQuery struct {
	Username string
	Name     string
	Email    string
	Phone    string
	Limit    int
	Offset   int
}

type Contacts interface {
	Create(ctx context.Context, c *models.Contact) error
	GetByID(ctx context.Context, username, id string) (*models.Contact, error)
	Update(ctx context.Context, c *models.Contact) error
	Delete(ctx context.Context, username, id string) error
	// Search returns the requested page and the total number of matching rows.
	Search(ctx context.Context, q ContactQuery) ([]models.Contact, int64, error)
}

type Addresses interface {
	Create(ctx context.Context, a *models.Address) error
	GetByID(ctx context.Context, contactID, id string) (*models.Address, error)
	Update(ctx context.Context, a *models.Address) error
	Delete(ctx context.Context, contactID, id string) error
	ListByContact(ctx context.Context, contactID string) ([]models.Address, error)
}

type Repository struct {
	Users     Users
	Contacts  Contacts
	Addresses Addresses
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:     NewUserRepository(db),
		Contacts:  NewContactRepository(db),
		Addresses: NewAddressRepository(db),
	}
}
