package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/vc-scout/internal/enrich"
	"github.com/jonathan/vc-scout/internal/llm"
	"github.com/jonathan/vc-scout/internal/types"
)

// handleEnrich runs the enrichment pipeline for an arbitrary URL and company
// name. The caller receives either a complete result or a single error
// object, never a mix.
func (s *Server) handleEnrich(w http.ResponseWriter, r *http.Request) {
	var req types.EnrichRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing url or companyName")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing url or companyName")
		return
	}

	result, err := s.enricher.Enrich(r.Context(), req.URL, req.CompanyName)
	if err != nil {
		s.enrichErrorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetEnrichment returns the cached enrichment for a catalog company.
func (s *Server) handleGetEnrichment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if s.catalog.Get(id) == nil {
		s.errorResponse(w, http.StatusNotFound, "Company not found")
		return
	}

	result, ok := s.workspace.CachedEnrichment(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "No enrichment cached for company")
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleEnrichCompany enriches a catalog company and caches the result.
// A cached result is returned as-is unless ?refresh=true.
func (s *Server) handleEnrichCompany(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	company := s.catalog.Get(id)
	if company == nil {
		s.errorResponse(w, http.StatusNotFound, "Company not found")
		return
	}

	if r.URL.Query().Get("refresh") != "true" {
		if cached, ok := s.workspace.CachedEnrichment(id); ok {
			s.jsonResponse(w, http.StatusOK, cached)
			return
		}
	}

	result, err := s.enricher.Enrich(r.Context(), company.Website, company.Name)
	if err != nil {
		s.enrichErrorResponse(w, err)
		return
	}

	if err := s.workspace.CacheEnrichment(id, result); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to cache enrichment: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// enrichErrorResponse maps pipeline failures to the fixed error vocabulary of
// the enrichment endpoint.
func (s *Server) enrichErrorResponse(w http.ResponseWriter, err error) {
	var inputErr *enrich.InputError
	if errors.As(err, &inputErr) {
		s.errorResponse(w, http.StatusBadRequest, inputErr.Message)
		return
	}

	var cfgErr *llm.ConfigError
	if errors.As(err, &cfgErr) {
		s.errorResponse(w, http.StatusInternalServerError, cfgErr.Message)
		return
	}

	var upstreamErr *llm.UpstreamError
	if errors.As(err, &upstreamErr) {
		s.errorResponse(w, http.StatusInternalServerError, upstreamErr.Error())
		return
	}

	var decodeErr *enrich.DecodeError
	if errors.As(err, &decodeErr) {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to parse AI response")
		return
	}

	s.errorResponse(w, http.StatusInternalServerError, "Request failed: "+err.Error())
}
