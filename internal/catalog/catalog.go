// Package catalog provides the static, read-only company dataset backing the
// research dashboard. The dataset is embedded at compile time; the catalog is
// never written to at runtime.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jonathan/vc-scout/internal/types"
)

//go:embed companies.json
var companiesJSON []byte

// Catalog holds the in-memory company dataset with an index by ID.
type Catalog struct {
	companies []types.Company
	byID      map[string]*types.Company
}

// Load parses the embedded dataset. It fails only if the embedded JSON is
// malformed, which indicates a build problem rather than a runtime condition.
func Load() (*Catalog, error) {
	var companies []types.Company
	if err := json.Unmarshal(companiesJSON, &companies); err != nil {
		return nil, fmt.Errorf("failed to parse embedded company dataset: %w", err)
	}

	c := &Catalog{
		companies: companies,
		byID:      make(map[string]*types.Company, len(companies)),
	}
	for i := range c.companies {
		c.byID[c.companies[i].ID] = &c.companies[i]
	}
	return c, nil
}

// MustLoad parses the embedded dataset, panicking on failure. Use at process
// start where a malformed dataset should abort immediately.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// List returns all companies in dataset order.
func (c *Catalog) List() []types.Company {
	return c.companies
}

// Get returns the company with the given ID, or nil if not found.
func (c *Catalog) Get(id string) *types.Company {
	return c.byID[id]
}

// Len returns the number of companies in the catalog.
func (c *Catalog) Len() int {
	return len(c.companies)
}

// Sectors returns the distinct sectors in first-seen order.
func (c *Catalog) Sectors() []string {
	return c.distinct(func(co *types.Company) string { return co.Sector })
}

// Stages returns the distinct funding stages in first-seen order.
func (c *Catalog) Stages() []string {
	return c.distinct(func(co *types.Company) string { return co.Stage })
}

func (c *Catalog) distinct(field func(*types.Company) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for i := range c.companies {
		v := field(&c.companies[i])
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}
