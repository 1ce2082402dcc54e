package cache

import (
	"context"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

var _ IdentityCache = (*MemoryIdentityCache)(nil)

// MemoryIdentityCache keeps the run state in process.
type MemoryIdentityCache struct {
	seen     mapset.Set[int64]
	mu       sync.RWMutex
	resolved map[int64]int64
}

func NewMemoryIdentityCache() *MemoryIdentityCache {
	return &MemoryIdentityCache{
		seen:     mapset.NewSet[int64](),
		resolved: make(map[int64]int64),
	}
}

func (m *MemoryIdentityCache) Seen(_ context.Context, id int64) (bool, error) {
	return m.seen.Contains(id), nil
}

func (m *MemoryIdentityCache) MarkSeen(_ context.Context, id int64) error {
	m.seen.Add(id)
	return nil
}

func (m *MemoryIdentityCache) Resolved(_ context.Context, number int64) (int64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.resolved[number]
	return id, ok, nil
}

func (m *MemoryIdentityCache) SetResolved(_ context.Context, number int64, identityID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolved[number] = identityID
	return nil
}

func (m *MemoryIdentityCache) Clear(_ context.Context) error {
	m.seen.Clear()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolved = make(map[int64]int64)
	return nil
}
