package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/vc-scout/internal/types"
)

// Well-known workspace keys.
const (
	KeyLists         = "lists"
	KeySavedSearches = "savedSearches"
	KeyBookmarks     = "savedCompanies"
)

// NotesKey returns the workspace key holding the notes for a company.
func NotesKey(companyID string) string {
	return "notes-" + companyID
}

// EnrichmentKey returns the workspace key caching a company's enrichment.
func EnrichmentKey(companyID string) string {
	return "enrich-" + companyID
}

// ErrListExists indicates a list with the same name already exists.
type ErrListExists struct {
	Name string
}

func (e *ErrListExists) Error() string {
	return fmt.Sprintf("list already exists: %s", e.Name)
}

// ErrListNotFound indicates the named list does not exist.
type ErrListNotFound struct {
	Name string
}

func (e *ErrListNotFound) Error() string {
	return fmt.Sprintf("list not found: %s", e.Name)
}

// Workspace layers typed analyst records over the generic store. Mutations
// are read-modify-write sequences, serialized by a single mutex.
type Workspace struct {
	mu    sync.Mutex
	store Store
}

// NewWorkspace creates a workspace over the given store.
func NewWorkspace(s Store) *Workspace {
	return &Workspace{store: s}
}

// Raw exposes the underlying blob store.
func (w *Workspace) Raw() Store {
	return w.store
}

// Lists returns all company lists.
func (w *Workspace) Lists() []types.CompanyList {
	lists := []types.CompanyList{}
	_, _ = w.store.Get(KeyLists, &lists)
	return lists
}

// CreateList creates a new, empty company list. List names are unique.
func (w *Workspace) CreateList(name, description string) (types.CompanyList, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	lists := w.Lists()
	for _, l := range lists {
		if l.Name == name {
			return types.CompanyList{}, &ErrListExists{Name: name}
		}
	}

	list := types.CompanyList{
		Name:        name,
		Description: description,
		Companies:   []string{},
		CreatedAt:   now(),
	}
	lists = append(lists, list)
	return list, w.store.Set(KeyLists, lists)
}

// DeleteList removes the named list.
func (w *Workspace) DeleteList(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	lists := w.Lists()
	kept := lists[:0]
	found := false
	for _, l := range lists {
		if l.Name == name {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return &ErrListNotFound{Name: name}
	}
	return w.store.Set(KeyLists, kept)
}

// AddToList adds a company to the named list. Adding a company that is
// already present is a no-op.
func (w *Workspace) AddToList(listName, companyID string) error {
	return w.updateList(listName, func(l *types.CompanyList) {
		for _, id := range l.Companies {
			if id == companyID {
				return
			}
		}
		l.Companies = append(l.Companies, companyID)
	})
}

// RemoveFromList removes a company from the named list.
func (w *Workspace) RemoveFromList(listName, companyID string) error {
	return w.updateList(listName, func(l *types.CompanyList) {
		kept := l.Companies[:0]
		for _, id := range l.Companies {
			if id != companyID {
				kept = append(kept, id)
			}
		}
		l.Companies = kept
	})
}

func (w *Workspace) updateList(listName string, apply func(*types.CompanyList)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	lists := w.Lists()
	for i := range lists {
		if lists[i].Name == listName {
			apply(&lists[i])
			return w.store.Set(KeyLists, lists)
		}
	}
	return &ErrListNotFound{Name: listName}
}

// SavedSearches returns all saved searches.
func (w *Workspace) SavedSearches() []types.SavedSearch {
	searches := []types.SavedSearch{}
	_, _ = w.store.Get(KeySavedSearches, &searches)
	return searches
}

// CreateSavedSearch saves a reusable catalog query and returns it with a
// generated ID.
func (w *Workspace) CreateSavedSearch(req types.CreateSavedSearchRequest) (types.SavedSearch, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	search := types.SavedSearch{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Q:       req.Q,
		Sector:  req.Sector,
		Stage:   req.Stage,
		SavedAt: now(),
	}
	searches := append(w.SavedSearches(), search)
	return search, w.store.Set(KeySavedSearches, searches)
}

// DeleteSavedSearch removes a saved search by ID. Returns false if absent.
func (w *Workspace) DeleteSavedSearch(id string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	searches := w.SavedSearches()
	kept := searches[:0]
	found := false
	for _, s := range searches {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return false, nil
	}
	return true, w.store.Set(KeySavedSearches, kept)
}

// Bookmarks returns the bookmarked company IDs.
func (w *Workspace) Bookmarks() []string {
	ids := []string{}
	_, _ = w.store.Get(KeyBookmarks, &ids)
	return ids
}

// ToggleBookmark bookmarks a company, or removes the bookmark if already
// present. It reports whether the company is bookmarked afterwards.
func (w *Workspace) ToggleBookmark(companyID string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ids := w.Bookmarks()
	kept := ids[:0]
	removed := false
	for _, id := range ids {
		if id == companyID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if !removed {
		kept = append(kept, companyID)
	}
	return !removed, w.store.Set(KeyBookmarks, kept)
}

// Notes returns a company's notes, most recent first.
func (w *Workspace) Notes(companyID string) []types.Note {
	notes := []types.Note{}
	_, _ = w.store.Get(NotesKey(companyID), &notes)
	return notes
}

// AddNote prepends a note to a company's notes and returns it with a
// generated ID.
func (w *Workspace) AddNote(companyID, text string) (types.Note, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	note := types.Note{
		ID:   uuid.NewString(),
		Text: text,
		Date: now(),
	}
	notes := append([]types.Note{note}, w.Notes(companyID)...)
	return note, w.store.Set(NotesKey(companyID), notes)
}

// DeleteNote removes a note by ID. Returns false if absent.
func (w *Workspace) DeleteNote(companyID, noteID string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	notes := w.Notes(companyID)
	kept := notes[:0]
	found := false
	for _, n := range notes {
		if n.ID == noteID {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return false, nil
	}
	return true, w.store.Set(NotesKey(companyID), kept)
}

// CachedEnrichment returns the cached enrichment result for a company, if any.
func (w *Workspace) CachedEnrichment(companyID string) (*types.EnrichmentResult, bool) {
	var result types.EnrichmentResult
	ok, err := w.store.Get(EnrichmentKey(companyID), &result)
	if !ok || err != nil {
		return nil, false
	}
	return &result, true
}

// CacheEnrichment stores an enrichment result for later display.
func (w *Workspace) CacheEnrichment(companyID string, result *types.EnrichmentResult) error {
	return w.store.Set(EnrichmentKey(companyID), result)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
