package cart

const (
	// FreeShippingThreshold is the subtotal at or above which shipping is waived.
	FreeShippingThreshold = 499
	// FlatShippingFee applies below the threshold.
	FlatShippingFee = 50
)

// Totals is the price breakdown of a set of line items, in whole rupees.
type Totals struct {
	Subtotal int `json:"subtotal"`
	Shipping int `json:"shipping"`
	Total    int `json:"total"`
}

// PriceOf computes the totals for items. It is a total function: an empty
// item list prices to {0, FlatShippingFee, FlatShippingFee}; callers that
// treat an empty cart as unpriceable must short-circuit before calling.
func PriceOf(items []LineItem) Totals {
	subtotal := 0
	for _, it := range items {
		subtotal += it.Product.Price * it.Quantity
	}

	shipping := FlatShippingFee
	if subtotal >= FreeShippingThreshold {
		shipping = 0
	}

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}
