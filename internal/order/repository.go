package order

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("order not found")
)

// Repository is an append-only order log. Orders are never updated or
// deleted once stored.
type Repository interface {
	Create(ord Order) (Order, error)
	List() []Order
	GetByID(id string) (Order, error)
}

// InMemoryRepository keeps orders for the lifetime of the process. List
// returns orders in insertion order, which stays stable until restart.
type InMemoryRepository struct {
	mu      sync.RWMutex
	orders  []Order
	byID    map[string]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byID: make(map[string]int)}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[ord.ID] = len(r.orders)
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return r.orders[i], nil
}
