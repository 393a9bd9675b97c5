package item

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotFound = errors.New("item not found")
)

type Repository interface {
	List() ([]Item, error)
	GetByID(id int) (Item, error)
	ListByName(name string) ([]Item, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Item
}

func NewInMemoryRepository(seed []Item) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Item, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.storage {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

// ListByName returns every item whose name matches exactly. An empty result
// is not an error; name search is allowed to come back empty.
func (r *InMemoryRepository) ListByName(name string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0)
	for _, it := range r.storage {
		if strings.EqualFold(it.Name, name) {
			out = append(out, it)
		}
	}
	return out, nil
}
