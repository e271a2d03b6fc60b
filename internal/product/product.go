package product

import "strings"

// Product is an immutable catalog record. JSON tags match the storefront
// API contract consumed by the frontend pages.
type Product struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Price            int      `json:"price"`
	OldPrice         int      `json:"oldPrice"`
	Category         string   `json:"category"`
	Material         string   `json:"material"`
	Plating          string   `json:"plating"`
	Images           []string `json:"images"`
	Description      string   `json:"description"`
	CareInstructions string   `json:"careInstructions"`
	InStock          bool     `json:"inStock"`
}

// AllowedCategories contains the supported jewelry categories used across the app.
var AllowedCategories = []string{
	"Earrings",
	"Necklaces",
	"Bangles",
	"Rings",
	"Sets",
	"Chains",
}

// Filter narrows a product listing. The zero value matches everything.
type Filter struct {
	Category string
	MinPrice int
	MaxPrice int
	Material string
	Search   string
}

// Matches reports whether p passes every populated filter field.
func (f Filter) Matches(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.Material != "" && !strings.Contains(p.Material, f.Material) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			return false
		}
	}
	return true
}
