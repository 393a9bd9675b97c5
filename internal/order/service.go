package order

import (
	"time"

	"github.com/pakin42/ecommerce-backend/internal/cart"
	"github.com/pakin42/ecommerce-backend/internal/item"
	"github.com/pakin42/ecommerce-backend/internal/user"
)

// Service materializes carts into immutable orders.
type Service struct {
	repo  Repository
	users user.ServiceInterface
	carts cart.ServiceInterface
}

func NewService(repo Repository, users user.ServiceInterface, carts cart.ServiceInterface) *Service {
	return &Service{repo: repo, users: users, carts: carts}
}

// Submit snapshots the user's current cart into a new order. The cart is
// read, never modified; the order gets its own copy of the item list so
// later cart mutations cannot reach it.
func (s *Service) Submit(username string) (Order, error) {
	usr, err := s.users.GetByUsername(username)
	if err != nil {
		return Order{}, err
	}

	c, err := s.carts.GetCart(username)
	if err != nil {
		return Order{}, err
	}

	items := make([]item.Item, len(c.Items))
	copy(items, c.Items)

	ord := Order{
		UserID:    usr.ID,
		Items:     items,
		Total:     c.Total,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return s.repo.Create(ord)
}

// History returns all orders the user has submitted, in store order.
func (s *Service) History(username string) ([]Order, error) {
	usr, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByUserID(usr.ID)
}
