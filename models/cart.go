package models

import "github.com/shopspring/decimal"

// CuttingStyle is how a pizza is sliced
type CuttingStyle string

const (
	CuttingNormal      CuttingStyle = "normal"
	CuttingFrancesinha CuttingStyle = "francesinha"
)

// Valid reports whether the cutting style is empty or one of the known styles
func (c CuttingStyle) Valid() bool {
	return c == "" || c == CuttingNormal || c == CuttingFrancesinha
}

// HalfSnapshot is the frozen copy of a product contributing one half of a pizza
type HalfSnapshot struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CartCandidate is what gets handed to the cart on add: a product (possibly a
// composed half-and-half pseudo-product) plus the customer's selections
type CartCandidate struct {
	Product
	IsHalfAndHalf       bool          `json:"isHalfAndHalf,omitempty"`
	Half1               *HalfSnapshot `json:"half1,omitempty"`
	Half2               *HalfSnapshot `json:"half2,omitempty"`
	CuttingStyle        CuttingStyle  `json:"cuttingStyle,omitempty"`
	SelectedAdditionals []Additional  `json:"selectedAdditionals,omitempty"`
}

// CartLine represents one row of the cart. Price is the unit price resolved when
// the line was created; only Quantity changes afterwards
type CartLine struct {
	Key                 string          `json:"key"`
	ProductID           string          `json:"productId"`
	Name                string          `json:"name"`
	Description         string          `json:"description,omitempty"`
	Category            string          `json:"category,omitempty"`
	ImageURL            string          `json:"imageUrl,omitempty"`
	Price               decimal.Decimal `json:"price"`
	Quantity            int             `json:"quantity"`
	SelectedVariation   *Variation      `json:"selectedVariation,omitempty"`
	IsHalfAndHalf       bool            `json:"isHalfAndHalf,omitempty"`
	Half1               *HalfSnapshot   `json:"half1,omitempty"`
	Half2               *HalfSnapshot   `json:"half2,omitempty"`
	CuttingStyle        CuttingStyle    `json:"cuttingStyle,omitempty"`
	SelectedAdditionals []Additional    `json:"selectedAdditionals,omitempty"`
}

// LineTotal returns price × quantity
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// VariationName returns the selected variation name or an empty string
func (l CartLine) VariationName() string {
	if l.SelectedVariation == nil {
		return ""
	}
	return l.SelectedVariation.Name
}

// AddToCartRequest represents the request body for adding a selection to the cart
// Example: {"productId": "...", "variationName": "Grande", "additionalIds": ["..."], "cuttingStyle": "francesinha", "secondHalfId": "..."}
type AddToCartRequest struct {
	ProductID     string       `json:"productId"`
	VariationName string       `json:"variationName,omitempty"`
	AdditionalIDs []string     `json:"additionalIds,omitempty"`
	CuttingStyle  CuttingStyle `json:"cuttingStyle,omitempty"`
	SecondHalfID  string       `json:"secondHalfId,omitempty"`
}

// LineRequest identifies an existing cart line by its discriminators
// Example: {"productId": "...", "variationName": "Grande", "additionalsKey": "Bacon,Catupiry"}
type LineRequest struct {
	ProductID      string       `json:"productId"`
	VariationName  string       `json:"variationName,omitempty"`
	AdditionalsKey string       `json:"additionalsKey,omitempty"`
	CuttingStyle   CuttingStyle `json:"cuttingStyle,omitempty"`
}

// CartLineResponse is a cart line enriched with its line total
type CartLineResponse struct {
	CartLine
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// CartResponse represents the cart view returned to the storefront
// Example response:
// {
//   "lines": [{"key": "p1-", "productId": "p1", "name": "X", "price": "24.9", "quantity": 2, "lineTotal": "49.8"}],
//   "isOpen": true,
//   "itemCount": 2,
//   "subtotal": "49.8",
//   "deliveryFee": "0",
//   "total": "49.8",
//   "notifications": [{"severity": "success", "message": "X adicionado ao carrinho"}]
// }
type CartResponse struct {
	Lines         []CartLineResponse `json:"lines"`
	IsOpen        bool               `json:"isOpen"`
	ItemCount     int                `json:"itemCount"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	DeliveryFee   decimal.Decimal    `json:"deliveryFee"`
	Total         decimal.Decimal    `json:"total"`
	Notifications []Notification     `json:"notifications,omitempty"`
}
