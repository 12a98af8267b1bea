package cache

import (
	"sync"

	"notes-api/models"
)

type Memory struct {
	mu      sync.RWMutex
	entries map[string][]models.Note
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]models.Note)}
}

func (m *Memory) Get(key string) ([]models.Note, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	notes, ok := m.entries[key]
	return notes, ok
}

func (m *Memory) Set(key string, notes []models.Note) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = notes
}

func (m *Memory) Invalidate(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}
