package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"pizzaria-storefront/checkout"
	"pizzaria-storefront/models"
)

// CheckoutController handles HTTP requests for the checkout wizard
type CheckoutController struct{}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController() *CheckoutController {
	return &CheckoutController{}
}

// GetCheckout handles GET /checkout
func (c *CheckoutController) GetCheckout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.Lock()
	defer sess.Unlock()

	writeJSON(w, http.StatusOK, checkoutResponse(sess), "GetCheckout")
}

// SetDeliveryOption handles PUT /checkout/delivery
func (c *CheckoutController) SetDeliveryOption(w http.ResponseWriter, r *http.Request) {
	var req models.DeliveryOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SetDeliveryOption: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	sess := sessionFrom(r)
	sess.Lock()
	defer sess.Unlock()

	if err := sess.Wizard.SetDeliveryOption(req.DeliveryOption); err != nil {
		log.Printf("❌ SetDeliveryOption: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, checkoutResponse(sess), "SetDeliveryOption")
}

// UpdateCustomer handles PUT /checkout/customer
func (c *CheckoutController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateCustomer: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	sess := sessionFrom(r)
	sess.Lock()
	defer sess.Unlock()

	if err := sess.Wizard.UpdateCustomerInfo(req); err != nil {
		log.Printf("❌ UpdateCustomer: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, checkoutResponse(sess), "UpdateCustomer")
}

// Next handles POST /checkout/next
// Advances one step, or submits the order from the payment step
func (c *CheckoutController) Next(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Next: Received %s request to %s", r.Method, r.URL.Path)

	sess := sessionFrom(r)
	sess.Lock()
	defer sess.Unlock()

	submission, err := sess.Wizard.Next(r.Context())
	if err != nil {
		if errors.Is(err, checkout.ErrStepBlocked) {
			writeJSON(w, http.StatusUnprocessableEntity, checkoutResponse(sess), "Next")
			return
		}
		log.Printf("❌ Next: %v", err)
		http.Error(w, fmt.Sprintf("Failed to advance checkout: %v", err), http.StatusInternalServerError)
		return
	}

	response := checkoutResponse(sess)
	if submission != nil {
		response.Submitted = true
		response.RedirectURL = submission.RedirectURL
		log.Printf("✅ Next: Order submitted for session %s", sess.ID)
	}
	writeJSON(w, http.StatusOK, response, "Next")
}

// Prev handles POST /checkout/prev
func (c *CheckoutController) Prev(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.Lock()
	defer sess.Unlock()

	sess.Wizard.Prev()
	writeJSON(w, http.StatusOK, checkoutResponse(sess), "Prev")
}

// GoTo handles POST /checkout/goto
// Only jumps back to an already visited step; other targets leave the wizard unchanged
func (c *CheckoutController) GoTo(w http.ResponseWriter, r *http.Request) {
	var req models.GoToStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ GoTo: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	sess := sessionFrom(r)
	sess.Lock()
	defer sess.Unlock()

	if _, err := sess.Wizard.GoTo(checkout.Step(req.Step)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, checkoutResponse(sess), "GoTo")
}
