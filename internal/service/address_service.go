package service

import (
	"context"
	"strings"

	"contactbook/internal/models"
	"contactbook/internal/repository"

	"github.com/google/uuid"
)

type AddressRequest struct {
	Street     string `json:"street" validate:"omitempty,max=200"`
	City       string `json:"city" validate:"omitempty,max=100"`
	Province   string `json:"province" validate:"omitempty,max=100"`
	Country    string `json:"country" validate:"omitempty,max=100"`
	PostalCode string `json:"postalCode" validate:"omitempty,max=10"`
}

type AddressView struct {
	ID         string `json:"id"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// AddressService manages the address sub-collection of a contact. Every call
// resolves the contact under the requesting owner first, so cross-user ids
// surface as contact-not-found.
type AddressService struct {
	contacts  repository.Contacts
	addresses repository.Addresses
}

func NewAddressService(contacts repository.Contacts, addresses repository.Addresses) *AddressService {
	return &AddressService{contacts: contacts, addresses: addresses}
}

var _ Addresses = (*AddressService)(nil)

func (s *AddressService) Create(ctx context.Context, user *models.User, contactID string, req AddressRequest) (AddressView, error) {
	req = normalizeAddressRequest(req)
	if err := validateStruct(req); err != nil {
		return AddressView{}, err
	}
	c, err := s.ownedContact(ctx, user, contactID)
	if err != nil {
		return AddressView{}, err
	}

	a := &models.Address{
		ID:         uuid.NewString(),
		ContactID:  c.ID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	if err := s.addresses.Create(ctx, a); err != nil {
		return AddressView{}, err
	}
	return toAddressView(a), nil
}

func (s *AddressService) Get(ctx context.Context, user *models.User, contactID, addressID string) (AddressView, error) {
	c, err := s.ownedContact(ctx, user, contactID)
	if err != nil {
		return AddressView{}, err
	}
	a, err := s.ownedAddress(ctx, c.ID, addressID)
	if err != nil {
		return AddressView{}, err
	}
	return toAddressView(a), nil
}

func (s *AddressService) Update(ctx context.Context, user *models.User, contactID, addressID string, req AddressRequest) (AddressView, error) {
	req = normalizeAddressRequest(req)
	if err := validateStruct(req); err != nil {
		return AddressView{}, err
	}
	c, err := s.ownedContact(ctx, user, contactID)
	if err != nil {
		return AddressView{}, err
	}
	a, err := s.ownedAddress(ctx, c.ID, addressID)
	if err != nil {
		return AddressView{}, err
	}

	a.Street = req.Street
	a.City = req.City
	a.Province = req.Province
	a.Country = req.Country
	a.PostalCode = req.PostalCode
	if err := s.addresses.Update(ctx, a); err != nil {
		return AddressView{}, err
	}
	return toAddressView(a), nil
}

func (s *AddressService) Delete(ctx context.Context, user *models.User, contactID, addressID string) error {
	c, err := s.ownedContact(ctx, user, contactID)
	if err != nil {
		return err
	}
	if _, err := s.ownedAddress(ctx, c.ID, addressID); err != nil {
		return err
	}
	return s.addresses.Delete(ctx, c.ID, addressID)
}

func (s *AddressService) List(ctx context.Context, user *models.User, contactID string) ([]AddressView, error) {
	c, err := s.ownedContact(ctx, user, contactID)
	if err != nil {
		return nil, err
	}
	items, err := s.addresses.ListByContact(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	views := make([]AddressView, 0, len(items))
	for i := range items {
		views = append(views, toAddressView(&items[i]))
	}
	return views, nil
}

func (s *AddressService) ownedContact(ctx context.Context, user *models.User, contactID string) (*models.Contact, error) {
	c, err := s.contacts.GetByID(ctx, user.Username, contactID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrContactNotFound
	}
	return c, nil
}

func (s *AddressService) ownedAddress(ctx context.Context, contactID, addressID string) (*models.Address, error) {
	a, err := s.addresses.GetByID(ctx, contactID, addressID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAddressNotFound
	}
	return a, nil
}

func normalizeAddressRequest(req AddressRequest) AddressRequest {
	req.Street = strings.TrimSpace(req.Street)
	req.City = strings.TrimSpace(req.City)
	req.Province = strings.TrimSpace(req.Province)
	req.Country = strings.TrimSpace(req.Country)
	req.PostalCode = strings.TrimSpace(req.PostalCode)
	return req
}

func toAddressView(a *models.Address) AddressView {
	return AddressView{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}
