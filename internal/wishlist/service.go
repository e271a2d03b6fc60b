package wishlist

import "github.com/aurelia-jewels/jewelry-shop-backend/internal/product"

type Service struct {
	repo     Repository
	products product.ServiceInterface
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) GetWishlist(sessionID string) []int {
	return s.repo.Get(sessionID)
}

func (s *Service) Toggle(sessionID string, productID int) []int {
	return s.repo.Toggle(sessionID, productID)
}

// GetItems joins the wishlist against the catalog. Ids with no catalog
// match are dropped, same policy as cart aggregation.
func (s *Service) GetItems(sessionID string) []product.Product {
	return s.products.ListByIDs(s.repo.Get(sessionID))
}
