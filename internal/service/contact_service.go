package service

import (
	"context"
	"strings"

	"contactbook/internal/models"
	"contactbook/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 10
)

type ContactRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=200"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

type ContactView struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// SearchFilter carries the optional substring filters and the page window.
type SearchFilter struct {
	Name  string
	Email string
	Phone string
	Page  int // 0-based
	Size  int
}

// SearchResult is one page of matches plus metadata computed from the full
// filtered set, not the page.
type SearchResult struct {
	Items         []ContactView
	Page          int
	Size          int
	TotalPages    int
	TotalElements int64
}

type ContactService struct {
	contacts repository.Contacts
}

func NewContactService(contacts repository.Contacts) *ContactService {
	return &ContactService{contacts: contacts}
}

var _ Contacts = (*ContactService)(nil)

func (s *ContactService) Create(ctx context.Context, user *models.User, req ContactRequest) (ContactView, error) {
	req = normalizeContactRequest(req)
	if err := validateStruct(req); err != nil {
		return ContactView{}, err
	}

	c := &models.Contact{
		ID:        uuid.NewString(),
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return ContactView{}, err
	}
	return toContactView(c), nil
}

func (s *ContactService) Get(ctx context.Context, user *models.User, id string) (ContactView, error) {
	c, err := s.ownedContact(ctx, user, id)
	if err != nil {
		return ContactView{}, err
	}
	return toContactView(c), nil
}

// Update is all-or-nothing: a validation failure leaves the stored row as it
// was before the request.
func (s *ContactService) Update(ctx context.Context, user *models.User, id string, req ContactRequest) (ContactView, error) {
	req = normalizeContactRequest(req)
	if err := validateStruct(req); err != nil {
		return ContactView{}, err
	}

	c, err := s.ownedContact(ctx, user, id)
	if err != nil {
		return ContactView{}, err
	}
	c.FirstName = req.FirstName
	c.LastName = req.LastName
	c.Email = req.Email
	c.Phone = req.Phone
	if err := s.contacts.Update(ctx, c); err != nil {
		return ContactView{}, err
	}
	return toContactView(c), nil
}

func (s *ContactService) Delete(ctx context.Context, user *models.User, id string) error {
	if _, err := s.ownedContact(ctx, user, id); err != nil {
		return err
	}
	return s.contacts.Delete(ctx, user.Username, id)
}

// Search pages through the owner's contacts under the optional filters. A page
// past the last one comes back empty with metadata still computed from the full
// match count.
func (s *ContactService) Search(ctx context.Context, user *models.User, f SearchFilter) (SearchResult, error) {
	f = normalizeSearchFilter(f)

	items, total, err := s.contacts.Search(ctx, repository.ContactQuery{
		Username: user.Username,
		Name:     f.Name,
		Email:    f.Email,
		Phone:    f.Phone,
		Limit:    f.Size,
		Offset:   f.Page * f.Size,
	})
	if err != nil {
		return SearchResult{}, err
	}

	views := make([]ContactView, 0, len(items))
	for i := range items {
		views = append(views, toContactView(&items[i]))
	}
	return SearchResult{
		Items:         views,
		Page:          f.Page,
		Size:          f.Size,
		TotalPages:    totalPages(total, f.Size),
		TotalElements: total,
	}, nil
}

// ownedContact resolves id under the requesting owner. A contact that exists
// for someone else is reported exactly like one that does not exist.
func (s *ContactService) ownedContact(ctx context.Context, user *models.User, id string) (*models.Contact, error) {
	c, err := s.contacts.GetByID(ctx, user.Username, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrContactNotFound
	}
	return c, nil
}

func normalizeContactRequest(req ContactRequest) ContactRequest {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	return req
}

func normalizeSearchFilter(f SearchFilter) SearchFilter {
	if f.Page < 0 {
		f.Page = 0
	}
	if f.Size < 1 {
		f.Size = defaultPageSize
	}
	return f
}

func totalPages(total int64, size int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

func toContactView(c *models.Contact) ContactView {
	return ContactView{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}
