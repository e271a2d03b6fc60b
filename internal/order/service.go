package order

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/aurelia-jewels/jewelry-shop-backend/internal/cart"
	"github.com/aurelia-jewels/jewelry-shop-backend/internal/product"
)

var (
	ErrEmptyCart        = errors.New("cart cannot be empty")
	ErrMissingPayment   = errors.New("select a payment method")
	ErrValidationFailed = errors.New("invalid customer info")
)

// FailurePolicy decides what happens when the order log rejects a write.
type FailurePolicy string

const (
	// FailStrict surfaces the error and leaves the cart intact so the
	// customer can retry.
	FailStrict FailurePolicy = "strict"
	// FailOptimistic logs the error, clears the cart and reports success
	// anyway. This matches the legacy storefront behavior; it masks real
	// failures and exists only for compatibility.
	FailOptimistic FailurePolicy = "optimistic"
)

// CreateRequest is the checkout submission. Only product ids and
// quantities are trusted from the submitted items; products and totals
// are re-derived from the live catalog.
type CreateRequest struct {
	Items         []cart.LineItem `json:"items"`
	Total         int             `json:"total"`
	CustomerInfo  CustomerInfo    `json:"customerInfo"`
	PaymentMethod string          `json:"paymentMethod"`
}

// ValidationError carries the per-field failures of a checkout form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return ErrValidationFailed.Error() }

// Service validates checkout submissions, snapshots the cart into an
// immutable order and clears the submitting session's cart.
type Service struct {
	repo     Repository
	products product.ServiceInterface
	carts    cart.ServiceInterface
	policy   FailurePolicy
}

func NewService(repo Repository, products product.ServiceInterface, carts cart.ServiceInterface, policy FailurePolicy) *Service {
	if policy == "" {
		policy = FailStrict
	}
	return &Service{repo: repo, products: products, carts: carts, policy: policy}
}

// Create runs the full submission flow for one session: validate the form,
// check the payment selection, rebuild line items and totals from the
// catalog, append to the order log, then clear that same session's cart.
func (s *Service) Create(sessionID string, req CreateRequest) (Order, error) {
	if !validPaymentMethod(req.PaymentMethod) {
		return Order{}, ErrMissingPayment
	}
	if fieldErrs := validateCustomerInfo(req.CustomerInfo); len(fieldErrs) > 0 {
		return Order{}, &ValidationError{Fields: fieldErrs}
	}

	items := s.rebuildItems(req.Items)
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}
	totals := cart.PriceOf(items)

	ord := Order{
		ID:            uuid.NewString(),
		Items:         items,
		Subtotal:      totals.Subtotal,
		Shipping:      totals.Shipping,
		Total:         totals.Total,
		CustomerInfo:  req.CustomerInfo,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	created, err := s.repo.Create(ord)
	if err != nil {
		if s.policy == FailOptimistic {
			log.Printf("warning: order %s not persisted (%v), reporting success per policy", ord.ID, err)
			s.carts.ClearCart(sessionID)
			return ord, nil
		}
		return Order{}, err
	}

	s.carts.ClearCart(sessionID)
	return created, nil
}

func (s *Service) List() []Order {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Order, error) {
	return s.repo.GetByID(id)
}

// rebuildItems re-derives the order's line items from the submitted ids
// and quantities: the occurrence list is expanded and re-aggregated
// against the live catalog, so removed products and client-side product
// payloads cannot leak into the stored order.
func (s *Service) rebuildItems(submitted []cart.LineItem) []cart.LineItem {
	occurrences := make([]int, 0, len(submitted))
	for _, it := range submitted {
		for i := 0; i < it.Quantity; i++ {
			occurrences = append(occurrences, it.ProductID)
		}
	}
	prods := s.products.ListByIDs(cart.DistinctIDs(occurrences))
	return cart.Aggregate(occurrences, prods)
}
