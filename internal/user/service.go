package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordMismatch = errors.New("password and confirmation do not match")
	ErrPasswordTooShort = errors.New("password is too short")
)

const minPasswordLength = 5

// ServiceInterface is consumed by other packages (cart, order) that need
// user lookups without depending on the concrete service.
type ServiceInterface interface {
	GetByID(id int) (User, error)
	GetByUsername(username string) (User, error)
}

// CartCreator provisions an empty cart for a newly created account. The
// cart repository satisfies this, which keeps the user package free of a
// dependency on the cart package.
type CartCreator interface {
	CreateForUser(userID int) error
}

type Service struct {
	repo  Repository
	carts CartCreator
}

func NewService(repo Repository, carts CartCreator) *Service {
	return &Service{repo: repo, carts: carts}
}

// Create validates the password pair, hashes the password, persists the
// user and provisions its cart. Validation order matters for the API
// contract: the mismatch check runs before the length check.
func (s *Service) Create(username, password, confirmPassword string) (User, error) {
	if password != confirmPassword {
		return User{}, ErrPasswordMismatch
	}
	if len(password) < minPasswordLength {
		return User{}, ErrPasswordTooShort
	}

	if _, err := s.repo.GetByUsername(username); err == nil {
		return User{}, ErrUsernameTaken
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	created, err := s.repo.Create(User{Username: username, Password: string(hashed)})
	if err != nil {
		return User{}, err
	}

	if err := s.carts.CreateForUser(created.ID); err != nil {
		return User{}, err
	}
	return created, nil
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByUsername(username string) (User, error) {
	return s.repo.GetByUsername(username)
}
