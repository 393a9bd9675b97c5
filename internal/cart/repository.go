package cart

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/pakin42/ecommerce-backend/internal/item"
)

var (
	ErrNotFound = errors.New("cart not found")
)

type Repository interface {
	GetByUserID(userID int) (Cart, error)
	Save(c Cart) (Cart, error)
	// CreateForUser provisions an empty cart; called once per account at
	// creation time. Also satisfies user.CartCreator.
	CreateForUser(userID int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	carts  map[int]Cart
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		carts:  make(map[int]Cart),
		nextID: 1,
	}
}

func (r *InMemoryRepository) CreateForUser(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := Cart{
		ID:     r.nextID,
		UserID: userID,
		Items:  []item.Item{},
		Total:  decimal.Zero,
	}
	r.nextID++
	r.carts[userID] = c
	return nil
}

func (r *InMemoryRepository) GetByUserID(userID int) (Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.carts[userID]
	if !ok {
		return Cart{}, ErrNotFound
	}
	// copy the item slice so callers cannot mutate the stored cart
	items := make([]item.Item, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c, nil
}

func (r *InMemoryRepository) Save(c Cart) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.carts[c.UserID]
	if !ok {
		return Cart{}, ErrNotFound
	}
	c.ID = stored.ID
	items := make([]item.Item, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	r.carts[c.UserID] = c
	return c, nil
}
