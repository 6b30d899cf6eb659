package aclcache

import (
	"context"
	"sync"

	"github.com/MarksSoftwareGmbH/cakephp-tinyauth/pkg/acl"
)

// MemoryStore is a thread-safe in-process Store holding the single compiled
// table. The table is shared by reference; callers must treat it as immutable
// once stored.
type MemoryStore struct {
	mu    sync.RWMutex
	table acl.AccessTable
	found bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get returns the stored table, or found=false if nothing is stored.
func (s *MemoryStore) Get(ctx context.Context) (acl.AccessTable, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table, s.found, nil
}

// Set replaces the stored table.
func (s *MemoryStore) Set(ctx context.Context, table acl.AccessTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
	s.found = true
	return nil
}

// Clear removes the stored table.
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = nil
	s.found = false
	return nil
}
