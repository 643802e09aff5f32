package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     EnrichRequest
		wantErr bool
	}{
		{"valid", EnrichRequest{URL: "https://acme.dev", CompanyName: "Acme"}, false},
		{"missing url", EnrichRequest{CompanyName: "Acme"}, true},
		{"missing name", EnrichRequest{URL: "https://acme.dev"}, true},
		{"both missing", EnrichRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnrichmentResult_EmptySlicesMarshalAsArrays(t *testing.T) {
	result := EnrichmentResult{
		Summary:    "s",
		WhatTheyDo: []string{},
		Keywords:   []string{},
		Signals:    []string{},
		Sources:    []Source{},
	}

	out, err := json.Marshal(result)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"summary": "s", "whatTheyDo": [], "keywords": [], "signals": [], "sources": []}`,
		string(out))
}

func TestCreateNoteRequest_Validate(t *testing.T) {
	assert.Error(t, (&CreateNoteRequest{}).Validate())
	assert.NoError(t, (&CreateNoteRequest{Text: "watch this one"}).Validate())
}

func TestCreateListRequest_Validate(t *testing.T) {
	assert.Error(t, (&CreateListRequest{Description: "no name"}).Validate())
	assert.NoError(t, (&CreateListRequest{Name: "Pipeline"}).Validate())
}
