package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"pizzaria-storefront/cart"
	"pizzaria-storefront/models"
	"pizzaria-storefront/repository"
	"pizzaria-storefront/service"
)

// CatalogReader resolves the products and add-ons a cart selection refers to
type CatalogReader interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ResolveAdditionals(ctx context.Context, product *models.Product, ids []string) ([]models.Additional, error)
}

// CartController handles HTTP requests for the visitor's cart
type CartController struct {
	catalog CatalogReader
	pricer  cart.HalfPricer

	// done is closed by CloseStreams to end open event streams
	done      chan struct{}
	closeOnce sync.Once
}

// NewCartController creates a new CartController
func NewCartController(catalog CatalogReader, pricer cart.HalfPricer) *CartController {
	return &CartController{catalog: catalog, pricer: pricer, done: make(chan struct{})}
}

// CloseStreams ends every open event stream. http.Server.Shutdown does not
// cancel the request context of active connections, so the server calls this
// through RegisterOnShutdown.
func (c *CartController) CloseStreams() {
	c.closeOnce.Do(func() {
		log.Printf("📡 Events: Closing open cart streams")
		close(c.done)
	})
}

// GetCart handles GET /cart
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.Lock()
	defer sess.Unlock()

	writeJSON(w, http.StatusOK, cartResponse(sess), "GetCart")
}

// AddItem handles POST /cart/items
// Resolves the selection against the catalog, validates it and adds it to the cart
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddItem: Received %s request to %s", r.Method, r.URL.Path)

	var req models.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ AddItem: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	req.ProductID = strings.TrimSpace(req.ProductID)
	if req.ProductID == "" {
		http.Error(w, "productId cannot be empty", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	candidate, variation, status, err := c.buildCandidate(ctx, &req)

	sess := sessionFrom(r)
	sess.Lock()
	defer sess.Unlock()

	if err != nil {
		log.Printf("❌ AddItem: Rejected selection for product=%s: %v", req.ProductID, err)
		sess.Notifications.Notify(models.SeverityError, selectionMessage(err))
		writeJSON(w, status, cartResponse(sess), "AddItem")
		return
	}

	line := sess.Cart.Add(candidate, variation)
	log.Printf("✅ AddItem: Line %s now has quantity=%d", line.Key, line.Quantity)
	writeJSON(w, http.StatusOK, cartResponse(sess), "AddItem")
}

// buildCandidate turns a request into a cart candidate and its selected variation.
// The returned status is the HTTP status to use when err is not nil.
func (c *CartController) buildCandidate(ctx context.Context, req *models.AddToCartRequest) (models.CartCandidate, *models.Variation, int, error) {
	product, err := c.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return models.CartCandidate{}, nil, statusFor(err), err
	}

	var secondHalf *models.Product
	if id := strings.TrimSpace(req.SecondHalfID); id != "" {
		secondHalf, err = c.catalog.GetProduct(ctx, id)
		if err != nil {
			return models.CartCandidate{}, nil, statusFor(err), err
		}
	}

	if err := cart.ValidateSelection(*product, req.VariationName, secondHalf, req.CuttingStyle); err != nil {
		return models.CartCandidate{}, nil, http.StatusBadRequest, err
	}

	additionals, err := c.catalog.ResolveAdditionals(ctx, product, req.AdditionalIDs)
	if err != nil {
		return models.CartCandidate{}, nil, statusFor(err), err
	}

	if secondHalf != nil {
		candidate, variation := cart.ComposeHalfAndHalf(*product, *secondHalf, req.VariationName, c.pricer)
		candidate.SelectedAdditionals = additionals
		candidate.CuttingStyle = req.CuttingStyle
		return candidate, variation, http.StatusOK, nil
	}

	candidate := models.CartCandidate{
		Product:             *product,
		CuttingStyle:        req.CuttingStyle,
		SelectedAdditionals: additionals,
	}
	if req.VariationName == "" {
		return candidate, nil, http.StatusOK, nil
	}
	v, _ := product.FindVariation(req.VariationName)
	return candidate, &v, http.StatusOK, nil
}

// Increment handles POST /cart/items/increment
func (c *CartController) Increment(w http.ResponseWriter, r *http.Request) {
	c.mutateLine(w, r, "Increment", func(m cartMutator, d cart.Discriminators) { m.Increment(d) })
}

// Decrement handles POST /cart/items/decrement
func (c *CartController) Decrement(w http.ResponseWriter, r *http.Request) {
	c.mutateLine(w, r, "Decrement", func(m cartMutator, d cart.Discriminators) { m.Decrement(d) })
}

// Remove handles POST /cart/items/remove
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	c.mutateLine(w, r, "Remove", func(m cartMutator, d cart.Discriminators) { m.Remove(d) })
}

type cartMutator interface {
	Increment(d cart.Discriminators)
	Decrement(d cart.Discriminators)
	Remove(d cart.Discriminators)
}

func (c *CartController) mutateLine(w http.ResponseWriter, r *http.Request, handler string, mutate func(cartMutator, cart.Discriminators)) {
	var req models.LineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ %s: Failed to decode request body: %v", handler, err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		http.Error(w, "productId cannot be empty", http.StatusBadRequest)
		return
	}

	sess := sessionFrom(r)
	sess.Lock()
	defer sess.Unlock()

	mutate(sess.Cart, cart.Discriminators{
		ProductID:      req.ProductID,
		VariationName:  req.VariationName,
		AdditionalsKey: req.AdditionalsKey,
		CuttingStyle:   req.CuttingStyle,
	})
	writeJSON(w, http.StatusOK, cartResponse(sess), handler)
}

// Clear handles DELETE /cart
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.Lock()
	defer sess.Unlock()

	sess.Cart.Clear()
	writeJSON(w, http.StatusOK, cartResponse(sess), "Clear")
}

// Toggle handles POST /cart/toggle
func (c *CartController) Toggle(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.Lock()
	defer sess.Unlock()

	sess.Cart.Toggle()
	writeJSON(w, http.StatusOK, cartResponse(sess), "Toggle")
}

// Events handles GET /cart/events
// Streams a cart snapshot as a server-sent event after every change
func (c *CartController) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	sess := sessionFrom(r)
	updates := make(chan cart.Snapshot, 8)

	sess.Lock()
	initial := sess.Cart.Snapshot()
	unsubscribe := sess.Cart.Subscribe(func(s cart.Snapshot) {
		select {
		case updates <- s:
		default:
			// Slow reader; it will catch up with the next change
		}
	})
	sess.Unlock()

	defer func() {
		sess.Lock()
		unsubscribe()
		sess.Unlock()
	}()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	log.Printf("📡 Events: Streaming cart of session %s", sess.ID)
	if err := writeEvent(w, initial); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			log.Printf("📡 Events: Client of session %s disconnected", sess.ID)
			return
		case <-c.done:
			return
		case snapshot := <-updates:
			if err := writeEvent(w, snapshot); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, snapshot cart.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("❌ Events: Error encoding snapshot: %v", err)
		return err
	}
	_, err = fmt.Fprintf(w, "event: cart\ndata: %s\n\n", data)
	return err
}

// statusFor maps catalog errors to HTTP statuses
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAdditionalNotOffered),
		errors.Is(err, service.ErrInvalidProduct),
		errors.Is(err, service.ErrInvalidAdditional):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// selectionMessage is the notification shown when a selection cannot be added
func selectionMessage(err error) string {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return "Produto não encontrado"
	case errors.Is(err, cart.ErrVariationRequired):
		return "Selecione um tamanho"
	case errors.Is(err, cart.ErrUnknownVariation):
		return "Tamanho indisponível para este produto"
	case errors.Is(err, cart.ErrHalfMismatch):
		return "Os dois sabores precisam ter o mesmo tamanho"
	case errors.Is(err, cart.ErrSameHalves):
		return "Escolha dois sabores diferentes"
	case errors.Is(err, cart.ErrInvalidCuttingStyle):
		return "Tipo de corte inválido"
	case errors.Is(err, service.ErrAdditionalNotOffered):
		return "Adicional indisponível para este produto"
	}
	return "Não foi possível adicionar o item ao carrinho"
}
