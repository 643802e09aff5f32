package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/vc-scout/internal/store"
	"github.com/jonathan/vc-scout/internal/types"
)

// maxWorkspaceBlob bounds a single raw workspace value.
const maxWorkspaceBlob = 1 << 20 // 1 MiB

// handleWorkspaceKeys lists all workspace keys.
func (s *Server) handleWorkspaceKeys(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"keys": s.workspace.Raw().Keys(),
	})
}

// handleWorkspaceGet returns the raw blob stored under a key.
func (s *Server) handleWorkspaceGet(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	blob, ok := s.workspace.Raw().GetRaw(key)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Key not found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob)
}

// handleWorkspaceSet stores a raw JSON blob under a key.
func (s *Server) handleWorkspaceSet(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	blob, err := io.ReadAll(io.LimitReader(r.Body, maxWorkspaceBlob+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if len(blob) > maxWorkspaceBlob {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "Value too large")
		return
	}
	if err := s.workspace.Raw().SetRaw(key, blob); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Value must be valid JSON")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"key": key})
}

// handleWorkspaceDelete removes a workspace key.
func (s *Server) handleWorkspaceDelete(w http.ResponseWriter, r *http.Request) {
	s.workspace.Raw().Delete(r.PathValue("key"))
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleListLists returns all company lists.
func (s *Server) handleListLists(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"lists": s.workspace.Lists(),
	})
}

// handleCreateList creates a new company list.
func (s *Server) handleCreateList(w http.ResponseWriter, r *http.Request) {
	var req types.CreateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "List name is required")
		return
	}

	list, err := s.workspace.CreateList(req.Name, req.Description)
	if err != nil {
		var existsErr *store.ErrListExists
		if errors.As(err, &existsErr) {
			s.errorResponse(w, http.StatusConflict, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, list)
}

// handleDeleteList removes a company list.
func (s *Server) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	if err := s.workspace.DeleteList(r.PathValue("name")); err != nil {
		s.listErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleAddToList adds a catalog company to a list.
func (s *Server) handleAddToList(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if s.catalog.Get(id) == nil {
		s.errorResponse(w, http.StatusNotFound, "Company not found")
		return
	}
	if err := s.workspace.AddToList(r.PathValue("name"), id); err != nil {
		s.listErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "added"})
}

// handleRemoveFromList removes a company from a list.
func (s *Server) handleRemoveFromList(w http.ResponseWriter, r *http.Request) {
	if err := s.workspace.RemoveFromList(r.PathValue("name"), r.PathValue("id")); err != nil {
		s.listErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (s *Server) listErrorResponse(w http.ResponseWriter, err error) {
	var notFound *store.ErrListNotFound
	if errors.As(err, &notFound) {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.errorResponse(w, http.StatusInternalServerError, err.Error())
}

// handleListSearches returns all saved searches.
func (s *Server) handleListSearches(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"searches": s.workspace.SavedSearches(),
	})
}

// handleCreateSearch saves a reusable catalog query.
func (s *Server) handleCreateSearch(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSavedSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Search name is required")
		return
	}

	search, err := s.workspace.CreateSavedSearch(req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, search)
}

// handleDeleteSearch removes a saved search by ID.
func (s *Server) handleDeleteSearch(w http.ResponseWriter, r *http.Request) {
	found, err := s.workspace.DeleteSavedSearch(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "Saved search not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleListBookmarks returns the bookmarked company IDs.
func (s *Server) handleListBookmarks(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"companies": s.workspace.Bookmarks(),
	})
}

// handleToggleBookmark bookmarks or un-bookmarks a catalog company.
func (s *Server) handleToggleBookmark(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if s.catalog.Get(id) == nil {
		s.errorResponse(w, http.StatusNotFound, "Company not found")
		return
	}

	saved, err := s.workspace.ToggleBookmark(id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"saved": saved})
}

// handleListNotes returns a company's notes, most recent first.
func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if s.catalog.Get(id) == nil {
		s.errorResponse(w, http.StatusNotFound, "Company not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"notes": s.workspace.Notes(id),
	})
}

// handleAddNote adds a note to a company.
func (s *Server) handleAddNote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if s.catalog.Get(id) == nil {
		s.errorResponse(w, http.StatusNotFound, "Company not found")
		return
	}

	var req types.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Note text is required")
		return
	}

	note, err := s.workspace.AddNote(id, req.Text)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, note)
}

// handleDeleteNote removes a note from a company.
func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	found, err := s.workspace.DeleteNote(r.PathValue("id"), r.PathValue("note_id"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "Note not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
