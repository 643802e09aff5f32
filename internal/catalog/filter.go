package catalog

import (
	"sort"
	"strings"

	"github.com/jonathan/vc-scout/internal/types"
)

// DefaultPerPage is the page size used when the query does not specify one.
const DefaultPerPage = 8

// Sort keys accepted by Query.
const (
	SortName    = "name"
	SortSector  = "sector"
	SortStage   = "stage"
	SortFounded = "founded"
	SortScore   = "score"
)

// Query describes a catalog search: a free-text term, exact-match facet
// filters, a sort order, and pagination.
type Query struct {
	Q       string
	Sector  string
	Stage   string
	Sort    string
	Dir     string // "asc" or "desc"
	Page    int    // 1-based
	PerPage int
}

// Result is one page of a catalog search.
type Result struct {
	Companies []types.Company `json:"companies"`
	Total     int             `json:"total"`
	Page      int             `json:"page"`
	Pages     int             `json:"pages"`
}

// Search filters, sorts, and paginates the catalog. The free-text term
// matches name, sector, tags, and description case-insensitively; sector and
// stage are exact filters. Unknown sort keys fall back to score.
func (c *Catalog) Search(q Query) Result {
	q = q.normalized()

	matched := make([]types.Company, 0, len(c.companies))
	term := strings.ToLower(q.Q)
	for _, co := range c.companies {
		if term != "" && !matchesTerm(&co, term) {
			continue
		}
		if q.Sector != "" && co.Sector != q.Sector {
			continue
		}
		if q.Stage != "" && co.Stage != q.Stage {
			continue
		}
		matched = append(matched, co)
	}

	sortCompanies(matched, q.Sort, q.Dir)

	total := len(matched)
	pages := (total + q.PerPage - 1) / q.PerPage
	if pages == 0 {
		pages = 1
	}
	if q.Page > pages {
		q.Page = pages
	}

	start := (q.Page - 1) * q.PerPage
	end := start + q.PerPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Companies: matched[start:end],
		Total:     total,
		Page:      q.Page,
		Pages:     pages,
	}
}

func (q Query) normalized() Query {
	switch q.Sort {
	case SortName, SortSector, SortStage, SortFounded, SortScore:
	default:
		q.Sort = SortScore
	}
	if q.Dir != "asc" {
		q.Dir = "desc"
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	return q
}

func matchesTerm(co *types.Company, term string) bool {
	if strings.Contains(strings.ToLower(co.Name), term) ||
		strings.Contains(strings.ToLower(co.Sector), term) ||
		strings.Contains(strings.ToLower(co.Description), term) {
		return true
	}
	for _, tag := range co.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func sortCompanies(companies []types.Company, key, dir string) {
	less := func(a, b *types.Company) bool {
		switch key {
		case SortName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortSector:
			return strings.ToLower(a.Sector) < strings.ToLower(b.Sector)
		case SortStage:
			return strings.ToLower(a.Stage) < strings.ToLower(b.Stage)
		case SortFounded:
			return a.Founded < b.Founded
		default: // score
			return a.Score < b.Score
		}
	}

	sort.SliceStable(companies, func(i, j int) bool {
		if dir == "asc" {
			return less(&companies[i], &companies[j])
		}
		return less(&companies[j], &companies[i])
	})
}
