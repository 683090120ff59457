package theralink

import (
	"context"
	"fmt"
	"net/url"

	"github.com/theralink/client-go/internal/api"
)

// ClientsService manages client (patient) records.
type ClientsService struct {
	client *Client
	api    *api.Client
}

// CreateClientParams are the fields accepted when creating a client record.
type CreateClientParams struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email,omitempty"`
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	Diagnosis      string `json:"diagnosis,omitempty"`
	Notes          string `json:"notes,omitempty"`
	PractitionerID string `json:"practitionerId,omitempty"`
}

// UpdateClientParams are the fields accepted when updating a client record.
// Nil fields are left unchanged.
type UpdateClientParams struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Diagnosis   *string `json:"diagnosis,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// List returns a page of client records.
func (s *ClientsService) List(ctx context.Context, opts ListOptions) ([]ClientRecord, *Page, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, nil, err
	}

	var records []ClientRecord
	page, err := s.api.Do(ctx, api.Request{
		Method: "GET",
		Path:   "/clients",
		Query:  opts.query(),
	}, &records)
	if err != nil {
		return nil, nil, err
	}
	return records, page, nil
}

// Get returns a single client record by ID.
func (s *ClientsService) Get(ctx context.Context, id string) (*ClientRecord, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var record ClientRecord
	_, err := s.api.Do(ctx, api.Request{
		Method: "GET",
		Path:   fmt.Sprintf("/clients/%s", url.PathEscape(id)),
	}, &record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Create creates a new client record.
func (s *ClientsService) Create(ctx context.Context, params CreateClientParams) (*ClientRecord, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var record ClientRecord
	_, err := s.api.Do(ctx, api.Request{
		Method: "POST",
		Path:   "/clients",
		Body:   params,
	}, &record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Update applies a partial update to a client record.
func (s *ClientsService) Update(ctx context.Context, id string, params UpdateClientParams) (*ClientRecord, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var record ClientRecord
	_, err := s.api.Do(ctx, api.Request{
		Method: "PATCH",
		Path:   fmt.Sprintf("/clients/%s", url.PathEscape(id)),
		Body:   params,
	}, &record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes a client record.
func (s *ClientsService) Delete(ctx context.Context, id string) error {
	if err := s.client.checkClosed(); err != nil {
		return err
	}

	_, err := s.api.Do(ctx, api.Request{
		Method: "DELETE",
		Path:   fmt.Sprintf("/clients/%s", url.PathEscape(id)),
	}, nil)
	return err
}

// Programs returns the programs assigned to a client.
func (s *ClientsService) Programs(ctx context.Context, clientID string) ([]Program, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var programs []Program
	_, err := s.api.Do(ctx, api.Request{
		Method: "GET",
		Path:   fmt.Sprintf("/clients/%s/programs", url.PathEscape(clientID)),
	}, &programs)
	if err != nil {
		return nil, err
	}
	return programs, nil
}
