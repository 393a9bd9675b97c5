package cart

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/pakin42/ecommerce-backend/internal/item"
	"github.com/pakin42/ecommerce-backend/internal/user"
)

var (
	ErrInvalidQuantity = errors.New("quantity must not be negative")
)

// ServiceInterface is consumed by the order package for reading carts.
type ServiceInterface interface {
	GetCart(username string) (Cart, error)
}

// Service applies add/remove mutations to a user's cart. Mutations for the
// same user are serialized through a per-username lock so concurrent
// requests cannot lose updates in the read-modify-write cycle.
type Service struct {
	repo  Repository
	users user.ServiceInterface
	items item.ServiceInterface

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(repo Repository, users user.ServiceInterface, items item.ServiceInterface) *Service {
	return &Service{
		repo:  repo,
		users: users,
		items: items,
		locks: make(map[string]*sync.Mutex),
	}
}

// AddToCart appends an item qty times to the user's cart and recomputes the
// total. qty of 0 is a legal no-op that returns the current cart.
func (s *Service) AddToCart(username string, itemID int, qty int) (Cart, error) {
	if qty < 0 {
		return Cart{}, ErrInvalidQuantity
	}

	usr, err := s.users.GetByUsername(username)
	if err != nil {
		return Cart{}, err
	}
	it, err := s.items.GetByID(itemID)
	if err != nil {
		return Cart{}, err
	}

	lock := s.lockFor(username)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.repo.GetByUserID(usr.ID)
	if err != nil {
		return Cart{}, err
	}
	if qty == 0 {
		return c, nil
	}

	for i := 0; i < qty; i++ {
		c.Items = append(c.Items, it)
	}
	c.Total = recomputeTotal(c.Items)
	return s.repo.Save(c)
}

// RemoveFromCart removes up to qty occurrences of the item from the cart.
// Removing more than present is not an error; the sequence just empties of
// that item.
func (s *Service) RemoveFromCart(username string, itemID int, qty int) (Cart, error) {
	if qty < 0 {
		return Cart{}, ErrInvalidQuantity
	}

	usr, err := s.users.GetByUsername(username)
	if err != nil {
		return Cart{}, err
	}
	if _, err := s.items.GetByID(itemID); err != nil {
		return Cart{}, err
	}

	lock := s.lockFor(username)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.repo.GetByUserID(usr.ID)
	if err != nil {
		return Cart{}, err
	}
	if qty == 0 {
		return c, nil
	}

	removed := 0
	kept := make([]item.Item, 0, len(c.Items))
	for _, li := range c.Items {
		if li.ID == itemID && removed < qty {
			removed++
			continue
		}
		kept = append(kept, li)
	}
	c.Items = kept
	c.Total = recomputeTotal(c.Items)
	return s.repo.Save(c)
}

func (s *Service) GetCart(username string) (Cart, error) {
	usr, err := s.users.GetByUsername(username)
	if err != nil {
		return Cart{}, err
	}
	return s.repo.GetByUserID(usr.ID)
}

func (s *Service) lockFor(username string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[username]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[username] = lock
	}
	return lock
}

// recomputeTotal derives the cart total from the item sequence. Every
// mutation goes through this so the cached total never drifts from the
// items it is derived from.
func recomputeTotal(items []item.Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}
	return total
}
