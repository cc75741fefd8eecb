package user

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store keeping insertion order. It backs unit
// tests and local runs without a Firestore project configured.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64
	users  map[int64]User
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[int64]User)}
}

func (m *MemoryStore) FindAll(_ context.Context) ([]User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]User, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.users[id])
	}
	return out, nil
}

func (m *MemoryStore) FindByID(_ context.Context, id int64) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrMissing
	}
	return &u, nil
}

func (m *MemoryStore) Save(_ context.Context, u *User) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved := *u
	if saved.ID == 0 {
		m.nextID++
		saved.ID = m.nextID
		m.order = append(m.order, saved.ID)
	} else if _, ok := m.users[saved.ID]; !ok {
		m.order = append(m.order, saved.ID)
	}
	m.users[saved.ID] = saved
	return &saved, nil
}

func (m *MemoryStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return ErrMissing
	}
	delete(m.users, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes all records (useful for test cleanup).
func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID = 0
	m.order = nil
	m.users = make(map[int64]User)
}

// Compile-time interface check
var _ Store = (*MemoryStore)(nil)
