package service

import (
	"context"
	"strings"

	"contactbook/internal/models"
	"contactbook/internal/repository"
)

type UserView struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// UpdateUserRequest has patch semantics: nil fields stay untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password" validate:"omitempty,min=1,max=72"`
}

type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

var _ Users = (*UserService)(nil)

func (s *UserService) Get(user *models.User) UserView {
	return UserView{Username: user.Username, Name: user.Name}
}

// Update applies the present fields after validation and returns the new view.
func (s *UserService) Update(ctx context.Context, user *models.User, req UpdateUserRequest) (UserView, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		// omitempty skips a present-but-empty value, so blank is caught here
		if trimmed == "" {
			return UserView{}, validationError("name must not be blank")
		}
		req.Name = &trimmed
	}
	if err := validateStruct(req); err != nil {
		return UserView{}, err
	}

	name := user.Name
	hash := user.PasswordHash
	if req.Name != nil {
		name = *req.Name
	}
	if req.Password != nil {
		h, err := hashPassword(*req.Password)
		if err != nil {
			return UserView{}, err
		}
		hash = h
	}

	if err := s.users.UpdateProfile(ctx, user.Username, name, hash); err != nil {
		return UserView{}, err
	}
	return UserView{Username: user.Username, Name: name}, nil
}
