package localstorage

import (
	"context"
	"sync"
)

// MemoryRepository хранилище в памяти процесса (тесты, driver = "memory")
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryRepository создает пустое хранилище в памяти
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]string)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.items[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (r *MemoryRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[key] = value
	return nil
}

func (r *MemoryRepository) Remove(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, key)
	return nil
}
