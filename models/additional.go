package models

import "github.com/shopspring/decimal"

// Additional represents an add-on that products may reference by id
type Additional struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt string          `json:"createdAt,omitempty"`
}

// AdditionalRequest represents the request body for creating or updating an additional
// Example: {"name": "Borda de Catupiry", "price": "8.00"}
type AdditionalRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
