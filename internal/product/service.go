package product

// ServiceInterface is the subset of product operations other packages
// depend on (cart and order join line items against the catalog).
type ServiceInterface interface {
	List() []Product
	GetByID(id int) (Product, error)
	ListByIDs(ids []int) []Product
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByIDs(ids []int) []Product {
	return s.repo.ListByIDs(ids)
}

// Search returns the catalog entries matching f, in catalog order.
func (s *Service) Search(f Filter) []Product {
	all := s.repo.List()
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
