package wishlist

import "sync"

// Repository stores one wishlist (a set of product ids) per session.
// Insertion order is preserved so listings stay stable.
type Repository interface {
	Get(sessionID string) []int
	// Toggle flips membership of productID and returns the updated list.
	Toggle(sessionID string, productID int) []int
}

// InMemoryRepository keeps wishlists for the lifetime of the process.
type InMemoryRepository struct {
	mu        sync.RWMutex
	wishlists map[string][]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{wishlists: make(map[string][]int)}
}

func (r *InMemoryRepository) Get(sessionID string) []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.wishlists[sessionID]
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

func (r *InMemoryRepository) Toggle(sessionID string, productID int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.wishlists[sessionID]
	next := make([]int, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == productID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, productID)
	}
	r.wishlists[sessionID] = next

	out := make([]int, len(next))
	copy(out, next)
	return out
}
