package cart

import "sync"

// ChangeFunc is notified after a session's occurrence list is mutated.
// Subscribers replace the old polling-based re-reads: anything that wants
// to mirror cart state reacts to the mutation instead of re-checking on a
// timer.
type ChangeFunc func(sessionID string, occurrences []int)

// Repository stores one occurrence list per session. Repetition encodes
// quantity; unknown product ids are kept as-is (the aggregator filters
// them at read time).
type Repository interface {
	Get(sessionID string) []int
	Append(sessionID string, productID int) []int
	// SetQuantity replaces all occurrences of productID with exactly qty
	// copies; qty <= 0 removes the product. Other ids keep their
	// occurrences and the product keeps its first-seen position.
	SetQuantity(sessionID string, productID int, qty int) []int
	Remove(sessionID string, productID int) []int
	Clear(sessionID string)
	Subscribe(fn ChangeFunc)
}

// InMemoryRepository keeps carts for the lifetime of the process.
type InMemoryRepository struct {
	mu          sync.RWMutex
	carts       map[string][]int
	subscribers []ChangeFunc
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string][]int)}
}

func (r *InMemoryRepository) Subscribe(fn ChangeFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers = append(r.subscribers, fn)
}

func (r *InMemoryRepository) notify(sessionID string, occurrences []int) {
	for _, fn := range r.subscribers {
		fn(sessionID, occurrences)
	}
}

func (r *InMemoryRepository) Get(sessionID string) []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	occ := r.carts[sessionID]
	out := make([]int, len(occ))
	copy(out, occ)
	return out
}

func (r *InMemoryRepository) Append(sessionID string, productID int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	occ := append(r.carts[sessionID], productID)
	r.carts[sessionID] = occ

	out := make([]int, len(occ))
	copy(out, occ)
	r.notify(sessionID, out)
	return out
}

func (r *InMemoryRepository) SetQuantity(sessionID string, productID int, qty int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if qty < 0 {
		qty = 0
	}
	occ := r.carts[sessionID]
	next := make([]int, 0, len(occ)+qty)
	placed := false
	for _, id := range occ {
		if id != productID {
			next = append(next, id)
			continue
		}
		if !placed && qty > 0 {
			for i := 0; i < qty; i++ {
				next = append(next, productID)
			}
			placed = true
		}
	}
	// product was not in the cart yet; a positive qty still puts it there
	if !placed && qty > 0 {
		for i := 0; i < qty; i++ {
			next = append(next, productID)
		}
	}
	r.carts[sessionID] = next

	out := make([]int, len(next))
	copy(out, next)
	r.notify(sessionID, out)
	return out
}

func (r *InMemoryRepository) Remove(sessionID string, productID int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	occ := r.carts[sessionID]
	next := make([]int, 0, len(occ))
	for _, id := range occ {
		if id != productID {
			next = append(next, id)
		}
	}
	r.carts[sessionID] = next

	out := make([]int, len(next))
	copy(out, next)
	r.notify(sessionID, out)
	return out
}

func (r *InMemoryRepository) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	r.notify(sessionID, []int{})
}
