package cart

import "github.com/aurelia-jewels/jewelry-shop-backend/internal/product"

// ServiceInterface is the subset of cart operations the order package
// needs to clear a submitting session's cart.
type ServiceInterface interface {
	ClearCart(sessionID string)
}

// Service joins the per-session occurrence store with the catalog. Every
// mutation returns the updated aggregated cart, matching the storefront
// API shape.
type Service struct {
	repo     Repository
	products product.ServiceInterface
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) aggregate(occurrences []int) []LineItem {
	prods := s.products.ListByIDs(DistinctIDs(occurrences))
	return Aggregate(occurrences, prods)
}

func (s *Service) GetCart(sessionID string) []LineItem {
	return s.aggregate(s.repo.Get(sessionID))
}

func (s *Service) AddToCart(sessionID string, productID int) []LineItem {
	return s.aggregate(s.repo.Append(sessionID, productID))
}

func (s *Service) SetQuantity(sessionID string, productID int, qty int) []LineItem {
	return s.aggregate(s.repo.SetQuantity(sessionID, productID, qty))
}

func (s *Service) RemoveFromCart(sessionID string, productID int) []LineItem {
	return s.aggregate(s.repo.Remove(sessionID, productID))
}

func (s *Service) ClearCart(sessionID string) {
	s.repo.Clear(sessionID)
}
