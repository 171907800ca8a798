package service

import (
	"context"

	"contactbook/internal/models"
	"contactbook/internal/repository"
)

// ---- Repository mocks (func-field style) ----

type mockUsersRepo struct {
	CreateFn        func(u *models.User) error
	GetByUsernameFn func(username string) (*models.User, error)
	GetByTokenFn    func(token string) (*models.User, error)
	UpdateProfileFn func(username, name, passwordHash string) error
	SetTokenFn      func(username, token string, expiredAt int64) error
	ClearTokenFn    func(username string) error

	created       []*models.User
	setTokenCalls []struct {
		username  string
		token     string
		expiredAt int64
	}
	clearTokenCalls    []string
	getByUsernameCalls []string
	profileCalls       []struct {
		username string
		name     string
		hash     string
	}
}

var _ repository.Users = (*mockUsersRepo)(nil)

func (m *mockUsersRepo) Create(_ context.Context, u *models.User) error {
	m.created = append(m.created, u)
	if m.CreateFn != nil {
		return m.CreateFn(u)
	}
	return nil
}

func (m *mockUsersRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.getByUsernameCalls = append(m.getByUsernameCalls, username)
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(username)
	}
	return nil, nil
}

func (m *mockUsersRepo) GetByToken(_ context.Context, token string) (*models.User, error) {
	if m.GetByTokenFn != nil {
		return m.GetByTokenFn(token)
	}
	return nil, nil
}

func (m *mockUsersRepo) UpdateProfile(_ context.Context, username, name, passwordHash string) error {
	m.profileCalls = append(m.profileCalls, struct {
		username string
		name     string
		hash     string
	}{username, name, passwordHash})
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(username, name, passwordHash)
	}
	return nil
}

func (m *mockUsersRepo) SetToken(_ context.Context, username, token string, expiredAt int64) error {
	m.setTokenCalls = append(m.setTokenCalls, struct {
		username  string
		token     string
		expiredAt int64
	}{username, token, expiredAt})
	if m.SetTokenFn != nil {
		return m.SetTokenFn(username, token, expiredAt)
	}
	return nil
}

func (m *mockUsersRepo) ClearToken(_ context.Context, username string) error {
	m.clearTokenCalls = append(m.clearTokenCalls, username)
	if m.ClearTokenFn != nil {
		return m.ClearTokenFn(username)
	}
	return nil
}

type mockContactsRepo struct {
	CreateFn  func(c *models.Contact) error
	GetByIDFn func(username, id string) (*models.Contact, error)
	UpdateFn  func(c *models.Contact) error
	DeleteFn  func(username, id string) error
	SearchFn  func(q repository.ContactQuery) ([]models.Contact, int64, error)

	created     []*models.Contact
	updated     []*models.Contact
	deleteCalls []string
	lastQuery   repository.ContactQuery
	searchCalls int
}

var _ repository.Contacts = (*mockContactsRepo)(nil)

func (m *mockContactsRepo) Create(_ context.Context, c *models.Contact) error {
	m.created = append(m.created, c)
	if m.CreateFn != nil {
		return m.CreateFn(c)
	}
	return nil
}

func (m *mockContactsRepo) GetByID(_ context.Context, username, id string) (*models.Contact, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(username, id)
	}
	return nil, nil
}

func (m *mockContactsRepo) Update(_ context.Context, c *models.Contact) error {
	m.updated = append(m.updated, c)
	if m.UpdateFn != nil {
		return m.UpdateFn(c)
	}
	return nil
}

func (m *mockContactsRepo) Delete(_ context.Context, username, id string) error {
	m.deleteCalls = append(m.deleteCalls, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(username, id)
	}
	return nil
}

func (m *mockContactsRepo) Search(_ context.Context, q repository.ContactQuery) ([]models.Contact, int64, error) {
	m.searchCalls++
	m.lastQuery = q
	if m.SearchFn != nil {
		return m.SearchFn(q)
	}
	return nil, 0, nil
}

type mockAddressesRepo struct {
	CreateFn        func(a *models.Address) error
	GetByIDFn       func(contactID, id string) (*models.Address, error)
	UpdateFn        func(a *models.Address) error
	DeleteFn        func(contactID, id string) error
	ListByContactFn func(contactID string) ([]models.Address, error)

	created     []*models.Address
	updated     []*models.Address
	deleteCalls []string
}

var _ repository.Addresses = (*mockAddressesRepo)(nil)

func (m *mockAddressesRepo) Create(_ context.Context, a *models.Address) error {
	m.created = append(m.created, a)
	if m.CreateFn != nil {
		return m.CreateFn(a)
	}
	return nil
}

func (m *mockAddressesRepo) GetByID(_ context.Context, contactID, id string) (*models.Address, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(contactID, id)
	}
	return nil, nil
}

func (m *mockAddressesRepo) Update(_ context.Context, a *models.Address) error {
	m.updated = append(m.updated, a)
	if m.UpdateFn != nil {
		return m.UpdateFn(a)
	}
	return nil
}

func (m *mockAddressesRepo) Delete(_ context.Context, contactID, id string) error {
	m.deleteCalls = append(m.deleteCalls, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(contactID, id)
	}
	return nil
}

func (m *mockAddressesRepo) ListByContact(_ context.Context, contactID string) ([]models.Address, error) {
	if m.ListByContactFn != nil {
		return m.ListByContactFn(contactID)
	}
	return nil, nil
}
