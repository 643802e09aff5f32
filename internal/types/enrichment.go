package types

import "github.com/go-playground/validator/v10"

// Source records the provenance of one page that contributed to an
// enrichment: the URL that was fetched and the batch timestamp of the
// enrichment call that used it (RFC3339).
type Source struct {
	URL       string `json:"url"`
	FetchedAt string `json:"fetchedAt"`
}

// EnrichmentResult is the structured intelligence extracted for a company.
// Every field is always present: absent model output is normalized to the
// zero value, never to null.
type EnrichmentResult struct {
	Summary    string   `json:"summary"`
	WhatTheyDo []string `json:"whatTheyDo"`
	Keywords   []string `json:"keywords"`
	Signals    []string `json:"signals"`
	Sources    []Source `json:"sources"`
}

// EnrichRequest is the request body for the enrichment endpoint.
type EnrichRequest struct {
	URL         string `json:"url" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
}

// Validate validates the EnrichRequest using the validator.
func (r *EnrichRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
