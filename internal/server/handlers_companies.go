package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/vc-scout/internal/catalog"
)

// parseQueryInt parses an integer query parameter with default and max values.
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// handleListCompanies searches the catalog with filtering, sorting, and
// pagination.
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	q := catalog.Query{
		Q:       r.URL.Query().Get("q"),
		Sector:  r.URL.Query().Get("sector"),
		Stage:   r.URL.Query().Get("stage"),
		Sort:    r.URL.Query().Get("sort"),
		Dir:     r.URL.Query().Get("dir"),
		Page:    parseQueryInt(r, "page", 1, 0),
		PerPage: parseQueryInt(r, "per_page", catalog.DefaultPerPage, 100),
	}

	s.jsonResponse(w, http.StatusOK, s.catalog.Search(q))
}

// handleGetCompany retrieves a catalog company by ID.
func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	company := s.catalog.Get(id)
	if company == nil {
		s.errorResponse(w, http.StatusNotFound, "Company not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, company)
}

// handleCatalogMeta returns the facet values used by search filters.
func (s *Server) handleCatalogMeta(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"sectors": s.catalog.Sectors(),
		"stages":  s.catalog.Stages(),
		"total":   s.catalog.Len(),
	})
}
