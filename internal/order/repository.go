package order

import (
	"sync"

	"github.com/pakin42/ecommerce-backend/internal/item"
)

type Repository interface {
	Create(ord Order) (Order, error)
	// ListByUserID returns all persisted orders for a user in store order;
	// callers must not assume chronological ordering.
	ListByUserID(userID int) ([]Order, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ord.ID = r.nextID
	r.nextID++
	// store a copy of the item slice so the snapshot cannot be mutated
	// through the caller's reference
	items := make([]item.Item, len(ord.Items))
	copy(items, ord.Items)
	ord.Items = items
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) ListByUserID(userID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.UserID == userID {
			items := make([]item.Item, len(ord.Items))
			copy(items, ord.Items)
			ord.Items = items
			out = append(out, ord)
		}
	}
	return out, nil
}
