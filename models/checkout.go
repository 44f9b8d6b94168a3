package models

import "github.com/shopspring/decimal"

// DeliveryOption is how the customer receives the order
type DeliveryOption string

const (
	DeliveryPickup   DeliveryOption = "pickup"
	DeliveryLocal    DeliveryOption = "local"
	DeliveryDelivery DeliveryOption = "delivery"
)

// Valid reports whether the option is one of the known delivery options
func (d DeliveryOption) Valid() bool {
	return d == DeliveryPickup || d == DeliveryLocal || d == DeliveryDelivery
}

// PaymentMethod is how the customer intends to pay
type PaymentMethod string

const (
	PaymentMoney PaymentMethod = "money"
	PaymentCard  PaymentMethod = "card"
	PaymentPix   PaymentMethod = "pix"
)

// Valid reports whether the method is one of the known payment methods
func (p PaymentMethod) Valid() bool {
	return p == PaymentMoney || p == PaymentCard || p == PaymentPix
}

// CustomerInfo holds the fields collected across the delivery and payment steps
type CustomerInfo struct {
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Change        string        `json:"change"`
	Notes         string        `json:"notes"`
}

// CheckoutState is the current position and data of the checkout wizard
type CheckoutState struct {
	ActiveStep     int            `json:"activeStep"`
	DeliveryOption DeliveryOption `json:"deliveryOption"`
	CustomerInfo   CustomerInfo   `json:"customerInfo"`
}

// DeliveryOptionRequest represents the request body for PUT /checkout/delivery
// Example: {"deliveryOption": "delivery"}
type DeliveryOptionRequest struct {
	DeliveryOption DeliveryOption `json:"deliveryOption"`
}

// GoToStepRequest represents the request body for POST /checkout/goto
// Example: {"step": 0}
type GoToStepRequest struct {
	Step int `json:"step"`
}

// CheckoutResponse represents the wizard view returned to the storefront
// Example response:
// {
//   "activeStep": 1,
//   "deliveryOption": "delivery",
//   "customerInfo": {"name": "Ana", "phone": "11999999999", "address": "Rua A, 123", "paymentMethod": "pix"},
//   "canAdvance": true,
//   "subtotal": "49.8",
//   "deliveryFee": "2",
//   "total": "51.8"
// }
type CheckoutResponse struct {
	CheckoutState
	CanAdvance    bool            `json:"canAdvance"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee"`
	Total         decimal.Decimal `json:"total"`
	Submitted     bool            `json:"submitted,omitempty"`
	RedirectURL   string          `json:"redirectUrl,omitempty"`
	Notifications []Notification  `json:"notifications,omitempty"`
}
