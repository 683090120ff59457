package theralink

import (
	"context"
	"fmt"
	"net/url"

	"github.com/theralink/client-go/internal/api"
)

// UsersService manages practitioner and administrator accounts.
type UsersService struct {
	client *Client
	api    *api.Client
}

// CreateUserParams are the fields accepted when creating a user.
type CreateUserParams struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role,omitempty"`
}

// UpdateUserParams are the fields accepted when updating a user.
// Nil fields are left unchanged.
type UpdateUserParams struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Role      *string `json:"role,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// List returns a page of users.
func (s *UsersService) List(ctx context.Context, opts ListOptions) ([]User, *Page, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, nil, err
	}

	var users []User
	page, err := s.api.Do(ctx, api.Request{
		Method: "GET",
		Path:   "/users",
		Query:  opts.query(),
	}, &users)
	if err != nil {
		return nil, nil, err
	}
	return users, page, nil
}

// Get returns a single user by ID.
func (s *UsersService) Get(ctx context.Context, id string) (*User, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var user User
	_, err := s.api.Do(ctx, api.Request{
		Method: "GET",
		Path:   fmt.Sprintf("/users/%s", url.PathEscape(id)),
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a new user.
func (s *UsersService) Create(ctx context.Context, params CreateUserParams) (*User, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var user User
	_, err := s.api.Do(ctx, api.Request{
		Method: "POST",
		Path:   "/users",
		Body:   params,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies a partial update to a user.
func (s *UsersService) Update(ctx context.Context, id string, params UpdateUserParams) (*User, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var user User
	_, err := s.api.Do(ctx, api.Request{
		Method: "PATCH",
		Path:   fmt.Sprintf("/users/%s", url.PathEscape(id)),
		Body:   params,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user.
func (s *UsersService) Delete(ctx context.Context, id string) error {
	if err := s.client.checkClosed(); err != nil {
		return err
	}

	_, err := s.api.Do(ctx, api.Request{
		Method: "DELETE",
		Path:   fmt.Sprintf("/users/%s", url.PathEscape(id)),
	}, nil)
	return err
}
