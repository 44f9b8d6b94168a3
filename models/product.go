package models

import "github.com/shopspring/decimal"

// Variation represents a named price option of a product (e.g. pizza size)
type Variation struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Product represents a catalog entry
// Pricing is either a flat Price or a non-empty list of Variations, never both
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	ImageURL      string           `json:"imageUrl,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	Variations    []Variation      `json:"variations,omitempty"`
	AdditionalIDs []string         `json:"additionalIds,omitempty"`
	CreatedAt     string           `json:"createdAt,omitempty"`
	UpdatedAt     string           `json:"updatedAt,omitempty"`
}

// HasVariations reports whether the product is priced through variations
func (p Product) HasVariations() bool {
	return len(p.Variations) > 0
}

// FindVariation returns the variation with the given name, if any
func (p Product) FindVariation(name string) (Variation, bool) {
	for _, v := range p.Variations {
		if v.Name == name {
			return v, true
		}
	}
	return Variation{}, false
}

// BasePrice returns the flat price, or zero for variation-priced products
func (p Product) BasePrice() decimal.Decimal {
	if p.Price == nil {
		return decimal.Zero
	}
	return *p.Price
}

// ProductRequest represents the request body for creating or updating a product
// Example: {"name": "Calabresa", "category": "Pizzas", "variations": [{"name": "Média", "price": "39.90"}, {"name": "Grande", "price": "49.90"}], "additionalIds": ["..."]}
// Example: {"name": "Coca-Cola 2L", "category": "Bebidas", "price": "14.00"}
type ProductRequest struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	ImageURL      string           `json:"imageUrl,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	Variations    []Variation      `json:"variations,omitempty"`
	AdditionalIDs []string         `json:"additionalIds,omitempty"`
}

// MenuCategory groups products sharing a category label
type MenuCategory struct {
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

// MenuResponse represents the public menu listing
// Example response:
// {
//   "categories": [
//     {"name": "Pizzas", "products": [{"id": "...", "name": "Calabresa", "variations": [...]}]}
//   ],
//   "additionals": [{"id": "...", "name": "Bacon", "price": "5"}]
// }
type MenuResponse struct {
	Categories  []MenuCategory `json:"categories"`
	Additionals []Additional   `json:"additionals"`
}
