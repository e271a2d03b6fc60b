package cart

import "github.com/aurelia-jewels/jewelry-shop-backend/internal/product"

// LineItem is a quantity-grouped, catalog-joined cart entry.
type LineItem struct {
	ProductID int             `json:"productId"`
	Quantity  int             `json:"quantity"`
	Product   product.Product `json:"product"`
}

// Aggregate groups an occurrence list (product ids, repetition = quantity)
// into line items joined against products. Ids with no catalog match are
// dropped without error: a product removed from the catalog must not leave
// a dangling entry in anyone's persisted cart. The occurrence list itself
// is never rewritten here.
//
// Output follows first-seen order of the occurrence list.
func Aggregate(occurrences []int, products []product.Product) []LineItem {
	if len(occurrences) == 0 {
		return []LineItem{}
	}

	byID := make(map[int]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	counts := make(map[int]int, len(occurrences))
	order := make([]int, 0, len(occurrences))
	for _, id := range occurrences {
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	items := make([]LineItem, 0, len(order))
	for _, id := range order {
		p, ok := byID[id]
		if !ok {
			continue
		}
		items = append(items, LineItem{ProductID: id, Quantity: counts[id], Product: p})
	}
	return items
}

// DistinctIDs returns the distinct product ids of an occurrence list in
// first-seen order.
func DistinctIDs(occurrences []int) []int {
	seen := make(map[int]bool, len(occurrences))
	out := make([]int, 0, len(occurrences))
	for _, id := range occurrences {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
