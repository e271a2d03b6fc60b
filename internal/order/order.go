package order

import "github.com/aurelia-jewels/jewelry-shop-backend/internal/cart"

// PaymentMethods lists the accepted checkout payment options.
var PaymentMethods = []string{"razorpay", "upi", "cod"}

// CustomerInfo is the validated shipping form captured at checkout.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// Order is an immutable record of a completed checkout. Items are a
// snapshot of the cart's line items at submission time; totals are
// computed server-side, never taken from the client.
type Order struct {
	ID            string          `json:"id"`
	Items         []cart.LineItem `json:"items"`
	Subtotal      int             `json:"subtotal"`
	Shipping      int             `json:"shipping"`
	Total         int             `json:"total"`
	CustomerInfo  CustomerInfo    `json:"customerInfo"`
	PaymentMethod string          `json:"paymentMethod"`
	CreatedAt     string          `json:"createdAt"`
}

func validPaymentMethod(m string) bool {
	for _, pm := range PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}
