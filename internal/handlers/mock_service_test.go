package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"contactbook/internal/models"
	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerErr error
	loginResult service.TokenResult
	loginErr    error
	logoutErr   error
	authUser    *models.User
	authErr     error

	lastRegister  service.RegisterRequest
	lastLogin     service.LoginRequest
	lastAuthToken string
	logoutCalls   int
}

var _ service.Authorization = (*mockAuth)(nil)

func (m *mockAuth) Register(_ context.Context, req service.RegisterRequest) error {
	m.lastRegister = req
	return m.registerErr
}

func (m *mockAuth) Login(_ context.Context, req service.LoginRequest) (service.TokenResult, error) {
	m.lastLogin = req
	return m.loginResult, m.loginErr
}

func (m *mockAuth) Logout(_ context.Context, _ *models.User) error {
	m.logoutCalls++
	return m.logoutErr
}

func (m *mockAuth) Authenticate(_ context.Context, token string) (*models.User, error) {
	m.lastAuthToken = token
	if m.authErr != nil {
		return nil, m.authErr
	}
	return m.authUser, nil
}

type mockUsers struct {
	updateView service.UserView
	updateErr  error

	lastUpdate  service.UpdateUserRequest
	updateCalls int
}

var _ service.Users = (*mockUsers)(nil)

func (m *mockUsers) Get(user *models.User) service.UserView {
	return service.UserView{Username: user.Username, Name: user.Name}
}

func (m *mockUsers) Update(_ context.Context, _ *models.User, req service.UpdateUserRequest) (service.UserView, error) {
	m.updateCalls++
	m.lastUpdate = req
	return m.updateView, m.updateErr
}

type mockContacts struct {
	createView service.ContactView
	createErr  error
	getView    service.ContactView
	getErr     error
	updateView service.ContactView
	updateErr  error
	deleteErr  error
	searchRes  service.SearchResult
	searchErr  error

	lastCreate service.ContactRequest
	lastUpdate service.ContactRequest
	lastID     string
	lastFilter service.SearchFilter
}

var _ service.Contacts = (*mockContacts)(nil)

func (m *mockContacts) Create(_ context.Context, _ *models.User, req service.ContactRequest) (service.ContactView, error) {
	m.lastCreate = req
	return m.createView, m.createErr
}

func (m *mockContacts) Get(_ context.Context, _ *models.User, id string) (service.ContactView, error) {
	m.lastID = id
	return m.getView, m.getErr
}

func (m *mockContacts) Update(_ context.Context, _ *models.User, id string, req service.ContactRequest) (service.ContactView, error) {
	m.lastID = id
	m.lastUpdate = req
	return m.updateView, m.updateErr
}

func (m *mockContacts) Delete(_ context.Context, _ *models.User, id string) error {
	m.lastID = id
	return m.deleteErr
}

func (m *mockContacts) Search(_ context.Context, _ *models.User, f service.SearchFilter) (service.SearchResult, error) {
	m.lastFilter = f
	return m.searchRes, m.searchErr
}

type mockAddresses struct {
	view      service.AddressView
	list      []service.AddressView
	err       error
	deleteErr error

	lastContactID string
	lastAddressID string
	lastRequest   service.AddressRequest
}

var _ service.Addresses = (*mockAddresses)(nil)

func (m *mockAddresses) Create(_ context.Context, _ *models.User, contactID string, req service.AddressRequest) (service.AddressView, error) {
	m.lastContactID = contactID
	m.lastRequest = req
	return m.view, m.err
}

func (m *mockAddresses) Get(_ context.Context, _ *models.User, contactID, addressID string) (service.AddressView, error) {
	m.lastContactID = contactID
	m.lastAddressID = addressID
	return m.view, m.err
}

func (m *mockAddresses) Update(_ context.Context, _ *models.User, contactID, addressID string, req service.AddressRequest) (service.AddressView, error) {
	m.lastContactID = contactID
	m.lastAddressID = addressID
	m.lastRequest = req
	return m.view, m.err
}

func (m *mockAddresses) Delete(_ context.Context, _ *models.User, contactID, addressID string) error {
	m.lastContactID = contactID
	m.lastAddressID = addressID
	return m.deleteErr
}

func (m *mockAddresses) List(_ context.Context, _ *models.User, contactID string) ([]service.AddressView, error) {
	m.lastContactID = contactID
	return m.list, m.err
}

// ---- Shared Test Helpers ----

func authedUser() *models.User {
	return &models.User{Username: "alice", Name: "Alice"}
}

// validAuth is a middleware pass-through for the fixed test user.
func validAuth() *mockAuth {
	return &mockAuth{authUser: authedUser()}
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func doRequest(r *gin.Engine, method, path, token string, body *string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(*body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(apiTokenHeader, token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
