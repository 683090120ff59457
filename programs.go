package theralink

import (
	"context"
	"fmt"
	"net/url"

	"github.com/theralink/client-go/internal/api"
)

// ProgramsService manages rehabilitation exercise programs.
type ProgramsService struct {
	client *Client
	api    *api.Client
}

// CreateProgramParams are the fields accepted when creating a program.
type CreateProgramParams struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ClientID    string     `json:"clientId,omitempty"`
	Exercises   []Exercise `json:"exercises,omitempty"`
	StartDate   string     `json:"startDate,omitempty"`
	EndDate     string     `json:"endDate,omitempty"`
}

// UpdateProgramParams are the fields accepted when updating a program.
// Nil fields are left unchanged.
type UpdateProgramParams struct {
	Name        *string     `json:"name,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *string     `json:"status,omitempty"`
	Exercises   *[]Exercise `json:"exercises,omitempty"`
	StartDate   *string     `json:"startDate,omitempty"`
	EndDate     *string     `json:"endDate,omitempty"`
}

type assignRequest struct {
	ClientID string `json:"clientId"`
}

// List returns a page of programs.
func (s *ProgramsService) List(ctx context.Context, opts ListOptions) ([]Program, *Page, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, nil, err
	}

	var programs []Program
	page, err := s.api.Do(ctx, api.Request{
		Method: "GET",
		Path:   "/programs",
		Query:  opts.query(),
	}, &programs)
	if err != nil {
		return nil, nil, err
	}
	return programs, page, nil
}

// Get returns a single program by ID.
func (s *ProgramsService) Get(ctx context.Context, id string) (*Program, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var program Program
	_, err := s.api.Do(ctx, api.Request{
		Method: "GET",
		Path:   fmt.Sprintf("/programs/%s", url.PathEscape(id)),
	}, &program)
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// Create creates a new program.
func (s *ProgramsService) Create(ctx context.Context, params CreateProgramParams) (*Program, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var program Program
	_, err := s.api.Do(ctx, api.Request{
		Method: "POST",
		Path:   "/programs",
		Body:   params,
	}, &program)
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// Update applies a partial update to a program.
func (s *ProgramsService) Update(ctx context.Context, id string, params UpdateProgramParams) (*Program, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var program Program
	_, err := s.api.Do(ctx, api.Request{
		Method: "PATCH",
		Path:   fmt.Sprintf("/programs/%s", url.PathEscape(id)),
		Body:   params,
	}, &program)
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// Delete removes a program.
func (s *ProgramsService) Delete(ctx context.Context, id string) error {
	if err := s.client.checkClosed(); err != nil {
		return err
	}

	_, err := s.api.Do(ctx, api.Request{
		Method: "DELETE",
		Path:   fmt.Sprintf("/programs/%s", url.PathEscape(id)),
	}, nil)
	return err
}

// Assign assigns a program to a client.
func (s *ProgramsService) Assign(ctx context.Context, programID, clientID string) (*Program, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var program Program
	_, err := s.api.Do(ctx, api.Request{
		Method: "POST",
		Path:   fmt.Sprintf("/programs/%s/assign", url.PathEscape(programID)),
		Body:   assignRequest{ClientID: clientID},
	}, &program)
	if err != nil {
		return nil, err
	}
	return &program, nil
}
