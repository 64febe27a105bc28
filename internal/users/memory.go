package users

import (
	"context"
	"sync"

	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/models"
)

// MemoryRepository is a map-backed UserRepository used in unit tests and
// local runs without a database. The mutex gives it the same
// create-if-absent atomicity the Mongo repository gets from its _id index.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]models.User)}
}

func (m *MemoryRepository) Get(ctx context.Context, sub string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.store[sub]
	if !ok {
		return nil, nil
	}
	cp := u
	return &cp, nil
}

func (m *MemoryRepository) Create(ctx context.Context, sub string, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[sub]; ok {
		return ErrAlreadyExists
	}
	m.store[sub] = *u
	return nil
}
