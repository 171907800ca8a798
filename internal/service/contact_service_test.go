package service

import (
	"context"
	"errors"
	"testing"

	"contactbook/internal/models"
	"contactbook/internal/repository"

	"github.com/google/uuid"
)

func testUser() *models.User {
	return &models.User{Username: "alice", Name: "Alice"}
}

func TestContactService_Create(t *testing.T) {
	repo := &mockContactsRepo{}
	svc := NewContactService(repo)

	view, err := svc.Create(context.Background(), testUser(), ContactRequest{
		FirstName: "  John ", LastName: "Doe", Email: "john@example.com", Phone: "123",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(repo.created))
	}
	stored := repo.created[0]
	if stored.Username != "alice" {
		t.Fatalf("contact must be owned by the caller, got %q", stored.Username)
	}
	if stored.FirstName != "John" {
		t.Fatalf("first name must be trimmed, got %q", stored.FirstName)
	}
	if _, err := uuid.Parse(stored.ID); err != nil {
		t.Fatalf("generated id is not a uuid: %q", stored.ID)
	}
	if view.ID != stored.ID || view.FirstName != "John" || view.Email != "john@example.com" {
		t.Fatalf("view differs from stored row: %+v", view)
	}
}

func TestContactService_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  ContactRequest
	}{
		{"blank first name", ContactRequest{FirstName: "   "}},
		{"bad email", ContactRequest{FirstName: "John", Email: "not-an-email"}},
		{"phone too long", ContactRequest{FirstName: "John", Phone: "123456789012345678901"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockContactsRepo{}
			svc := NewContactService(repo)

			_, err := svc.Create(context.Background(), testUser(), tt.req)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if len(repo.created) != 0 {
				t.Fatalf("validation failure must not reach the store")
			}
		})
	}
}

func TestContactService_Get(t *testing.T) {
	repo := &mockContactsRepo{
		GetByIDFn: func(username, id string) (*models.Contact, error) {
			if username == "alice" && id == "c1" {
				return &models.Contact{ID: "c1", Username: "alice", FirstName: "John"}, nil
			}
			return nil, nil
		},
	}
	svc := NewContactService(repo)

	view, err := svc.Get(context.Background(), testUser(), "c1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if view.ID != "c1" || view.FirstName != "John" {
		t.Fatalf("unexpected view: %+v", view)
	}

	// Another owner's contact id reads as missing, not forbidden.
	_, err = svc.Get(context.Background(), &models.User{Username: "mallory"}, "c1")
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound for foreign owner, got %v", err)
	}
}

func TestContactService_Update(t *testing.T) {
	existing := &models.Contact{ID: "c1", Username: "alice", FirstName: "John", Phone: "111"}
	repo := &mockContactsRepo{
		GetByIDFn: func(username, id string) (*models.Contact, error) {
			if username == "alice" && id == "c1" {
				c := *existing
				return &c, nil
			}
			return nil, nil
		},
	}
	svc := NewContactService(repo)

	view, err := svc.Update(context.Background(), testUser(), "c1", ContactRequest{
		FirstName: "Jane", LastName: "Doe",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected 1 Update call, got %d", len(repo.updated))
	}
	u := repo.updated[0]
	if u.FirstName != "Jane" || u.LastName != "Doe" || u.Phone != "" {
		t.Fatalf("update must replace all mutable fields: %+v", u)
	}
	if view.FirstName != "Jane" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestContactService_Update_ValidationLeavesRowUntouched(t *testing.T) {
	repo := &mockContactsRepo{
		GetByIDFn: func(username, id string) (*models.Contact, error) {
			return &models.Contact{ID: id, Username: username, FirstName: "John"}, nil
		},
	}
	svc := NewContactService(repo)

	_, err := svc.Update(context.Background(), testUser(), "c1", ContactRequest{FirstName: " "})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Fatalf("failed validation must not write to the store")
	}
}

func TestContactService_Update_NotFound(t *testing.T) {
	repo := &mockContactsRepo{}
	svc := NewContactService(repo)

	_, err := svc.Update(context.Background(), testUser(), "ghost", ContactRequest{FirstName: "X"})
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestContactService_Delete(t *testing.T) {
	repo := &mockContactsRepo{
		GetByIDFn: func(username, id string) (*models.Contact, error) {
			if id == "c1" {
				return &models.Contact{ID: "c1", Username: username, FirstName: "John"}, nil
			}
			return nil, nil
		},
	}
	svc := NewContactService(repo)

	if err := svc.Delete(context.Background(), testUser(), "c1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.deleteCalls) != 1 || repo.deleteCalls[0] != "c1" {
		t.Fatalf("expected Delete(c1), got %v", repo.deleteCalls)
	}

	err := svc.Delete(context.Background(), testUser(), "ghost")
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestContactService_Search_PassesFiltersAndWindow(t *testing.T) {
	repo := &mockContactsRepo{
		SearchFn: func(q repository.ContactQuery) ([]models.Contact, int64, error) {
			return []models.Contact{
				{ID: "c1", Username: q.Username, FirstName: "Jane", LastName: "Doe"},
			}, 25, nil
		},
	}
	svc := NewContactService(repo)

	result, err := svc.Search(context.Background(), testUser(), SearchFilter{
		Name: "doe", Email: "ex", Phone: "12", Page: 2, Size: 10,
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	q := repo.lastQuery
	if q.Username != "alice" || q.Name != "doe" || q.Email != "ex" || q.Phone != "12" {
		t.Fatalf("unexpected query: %+v", q)
	}
	if q.Limit != 10 || q.Offset != 20 {
		t.Fatalf("unexpected window: limit=%d offset=%d", q.Limit, q.Offset)
	}

	if result.Page != 2 || result.Size != 10 {
		t.Fatalf("unexpected page meta: %+v", result)
	}
	if result.TotalElements != 25 || result.TotalPages != 3 {
		t.Fatalf("metadata must come from the full match count: %+v", result)
	}
	if len(result.Items) != 1 || result.Items[0].ID != "c1" {
		t.Fatalf("unexpected items: %+v", result.Items)
	}
}

func TestContactService_Search_Normalization(t *testing.T) {
	tests := []struct {
		name               string
		filter             SearchFilter
		wantPage, wantSize int
	}{
		{"defaults", SearchFilter{}, 0, 10},
		{"negative page", SearchFilter{Page: -3, Size: 5}, 0, 5},
		{"zero size", SearchFilter{Page: 1, Size: 0}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockContactsRepo{}
			svc := NewContactService(repo)

			result, err := svc.Search(context.Background(), testUser(), tt.filter)
			if err != nil {
				t.Fatalf("Search returned error: %v", err)
			}
			if result.Page != tt.wantPage || result.Size != tt.wantSize {
				t.Fatalf("got page=%d size=%d, want page=%d size=%d",
					result.Page, result.Size, tt.wantPage, tt.wantSize)
			}
			if repo.lastQuery.Offset != tt.wantPage*tt.wantSize {
				t.Fatalf("offset %d does not match page window", repo.lastQuery.Offset)
			}
		})
	}
}

func TestContactService_Search_PagePastEnd(t *testing.T) {
	repo := &mockContactsRepo{
		SearchFn: func(q repository.ContactQuery) ([]models.Contact, int64, error) {
			return nil, 7, nil // window beyond the data: no rows, 7 total
		},
	}
	svc := NewContactService(repo)

	result, err := svc.Search(context.Background(), testUser(), SearchFilter{Page: 5, Size: 10})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(result.Items) != 0 {
		t.Fatalf("expected empty page, got %+v", result.Items)
	}
	if result.TotalElements != 7 || result.TotalPages != 1 {
		t.Fatalf("metadata must stay correct past the end: %+v", result)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{3, 1, 3},
	}
	for _, tt := range tests {
		if got := totalPages(tt.total, tt.size); got != tt.want {
			t.Fatalf("totalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}
