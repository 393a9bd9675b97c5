package item

// ServiceInterface is consumed by other packages (cart) that need item
// lookups without depending on the concrete service.
type ServiceInterface interface {
	List() ([]Item, error)
	GetByID(id int) (Item, error)
	ListByName(name string) ([]Item, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Item, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Item, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByName(name string) ([]Item, error) {
	return s.repo.ListByName(name)
}
