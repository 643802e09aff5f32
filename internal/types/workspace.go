package types

import "github.com/go-playground/validator/v10"

// CompanyList is a named collection of catalog company IDs built by the
// analyst. Lists are identified by name.
type CompanyList struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Companies   []string `json:"companies"`
	CreatedAt   string   `json:"createdAt"`
}

// SavedSearch captures a reusable catalog query.
type SavedSearch struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Q       string `json:"q"`
	Sector  string `json:"sector"`
	Stage   string `json:"stage"`
	SavedAt string `json:"savedAt"`
}

// Note is a free-text annotation attached to a company.
type Note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}

// CreateListRequest is the request body for creating a company list.
type CreateListRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Description string `json:"description"`
}

// Validate validates the CreateListRequest using the validator.
func (r *CreateListRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CreateSavedSearchRequest is the request body for saving a search.
type CreateSavedSearchRequest struct {
	Name   string `json:"name" validate:"required,min=1"`
	Q      string `json:"q"`
	Sector string `json:"sector"`
	Stage  string `json:"stage"`
}

// Validate validates the CreateSavedSearchRequest using the validator.
func (r *CreateSavedSearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CreateNoteRequest is the request body for adding a note to a company.
type CreateNoteRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// Validate validates the CreateNoteRequest using the validator.
func (r *CreateNoteRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
