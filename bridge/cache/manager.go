package cache

import (
	"sort"

	"readarrbridge.app/bridge/model"
)

// Manager owns the named caches of the service. Each cache is flushed
// independently of the others.
type Manager struct {
	caches map[ID]*Store
}

func NewManager(stores ...*Store) *Manager {
	m := &Manager{caches: make(map[ID]*Store, len(stores))}
	for _, s := range stores {
		m.caches[s.ID()] = s
	}
	return m
}

// Get returns the cache registered under id.
func (m *Manager) Get(id ID) (*Store, bool) {
	s, ok := m.caches[id]
	return s, ok
}

// Flush empties the cache registered under id and reports whether it exists.
func (m *Manager) Flush(id ID) bool {
	s, ok := m.caches[id]
	if !ok {
		return false
	}
	s.Flush()
	return true
}

// All lists every cache ordered by id.
func (m *Manager) All() []model.CacheInfo {
	infos := make([]model.CacheInfo, 0, len(m.caches))
	for _, s := range m.caches {
		infos = append(infos, s.Info())
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}
