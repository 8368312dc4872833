package store

import (
	"context"
	"slices"
	"sync"

	"github.com/probelab/beliefnet/pkg/netio"
)

// MemStore is an in-memory Store for tests and single-process embedding.
type MemStore struct {
	mu   sync.RWMutex
	docs map[string]netio.Network
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]netio.Network)}
}

// Save inserts or replaces the document under its Name.
func (s *MemStore) Save(ctx context.Context, doc netio.Network) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.Name] = doc
	return nil
}

// Load returns the stored document or a NETWORK_NOT_FOUND error.
func (s *MemStore) Load(ctx context.Context, name string) (netio.Network, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[name]
	if !ok {
		return netio.Network{}, notFound(name)
	}
	return doc, nil
}

// List returns all stored network names in sorted order.
func (s *MemStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Delete removes the document or returns a NETWORK_NOT_FOUND error.
func (s *MemStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[name]; !ok {
		return notFound(name)
	}
	delete(s.docs, name)
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemStore) Close(ctx context.Context) error { return nil }

// Ensure MemStore implements Store.
var _ Store = (*MemStore)(nil)
