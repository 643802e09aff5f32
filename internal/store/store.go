// Package store provides the analyst workspace: a generic string-keyed store
// of JSON-serialized blobs with typed records layered on top (company lists,
// saved searches, bookmarks, notes, cached enrichment results).
//
// The store is in-memory only and lives for the process lifetime. Nothing is
// written to disk or to an external service.
package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Store is a generic string-keyed store of JSON-serialized blobs.
type Store interface {
	// GetRaw returns the stored blob for key, or false if absent.
	GetRaw(key string) ([]byte, bool)
	// SetRaw stores a blob under key. The blob must be valid JSON.
	SetRaw(key string, blob []byte) error
	// Get unmarshals the blob for key into v. Returns false if absent.
	Get(key string, v any) (bool, error)
	// Set marshals v and stores it under key.
	Set(key string, v any) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string)
	// Keys returns all present keys, sorted.
	Keys() []string
}

// Memory is the in-memory Store implementation.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// GetRaw returns the stored blob for key.
func (m *Memory) GetRaw(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	blob, ok := m.data[key]
	return blob, ok
}

// SetRaw stores a blob under key after checking it is valid JSON.
func (m *Memory) SetRaw(key string, blob []byte) error {
	if !json.Valid(blob) {
		return fmt.Errorf("value for key %q is not valid JSON", key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = blob
	return nil
}

// Get unmarshals the blob for key into v.
func (m *Memory) Get(key string, v any) (bool, error) {
	blob, ok := m.GetRaw(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(blob, v); err != nil {
		return true, fmt.Errorf("failed to decode value for key %q: %w", key, err)
	}
	return true, nil
}

// Set marshals v and stores it under key.
func (m *Memory) Set(key string, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %q: %w", key, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = blob
	return nil
}

// Delete removes key.
func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

// Keys returns all present keys, sorted.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
