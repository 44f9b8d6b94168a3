package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"pizzaria-storefront/models"
)

// Step is a position in the checkout flow
type Step int

const (
	StepCart Step = iota
	StepDelivery
	StepPayment
)

func (s Step) String() string {
	switch s {
	case StepCart:
		return "cart"
	case StepDelivery:
		return "delivery"
	case StepPayment:
		return "payment"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

var (
	// ErrStepBlocked is returned by Next when the current step's requirements are not met
	ErrStepBlocked = errors.New("checkout step requirements not met")
	// ErrInvalidStep is returned for steps outside the flow
	ErrInvalidStep = errors.New("invalid checkout step")
	// ErrNotAtPayment is returned by Submit before the payment step is reached
	ErrNotAtPayment = errors.New("order can only be submitted from the payment step")
)

// Cart is the part of the cart the wizard reads and, on submission, clears
type Cart interface {
	IsEmpty() bool
	Lines() []models.CartLine
	Subtotal() decimal.Decimal
	DeliveryFee(option models.DeliveryOption) decimal.Decimal
	Total(option models.DeliveryOption) decimal.Decimal
	Clear()
	Toggle()
}

// Notifier receives user-facing messages
type Notifier interface {
	Notify(severity models.Severity, message string)
}

// Submission is the outcome of a submitted order
type Submission struct {
	Message     string
	RedirectURL string
}

// Wizard drives a session through cart, delivery and payment. Forward moves
// only happen through Next, which enforces each step's requirements.
// It is not safe for concurrent use; callers serialise access.
type Wizard struct {
	cart      Cart
	channel   OrderChannel
	notifier  Notifier
	storeName string

	state models.CheckoutState

	subscribers map[int]func(models.CheckoutState)
	nextSubID   int
}

// NewWizard creates a wizard positioned at the cart step
func NewWizard(cart Cart, channel OrderChannel, notifier Notifier, storeName string) *Wizard {
	return &Wizard{
		cart:        cart,
		channel:     channel,
		notifier:    notifier,
		storeName:   storeName,
		state:       initialState(),
		subscribers: make(map[int]func(models.CheckoutState)),
	}
}

func initialState() models.CheckoutState {
	return models.CheckoutState{
		ActiveStep:     int(StepCart),
		DeliveryOption: models.DeliveryPickup,
		CustomerInfo:   models.CustomerInfo{PaymentMethod: models.PaymentMoney},
	}
}

// Step returns the active step
func (w *Wizard) Step() Step {
	return Step(w.state.ActiveStep)
}

// Snapshot returns the current checkout state
func (w *Wizard) Snapshot() models.CheckoutState {
	return w.state
}

// DeliveryOption returns the selected delivery option
func (w *Wizard) DeliveryOption() models.DeliveryOption {
	return w.state.DeliveryOption
}

// CanAdvance reports whether the active step's requirements are met
func (w *Wizard) CanAdvance() bool {
	return w.blockReason() == ""
}

// blockReason returns the message explaining why the active step cannot advance,
// or an empty string when it can
func (w *Wizard) blockReason() string {
	switch w.Step() {
	case StepCart:
		if w.cart.IsEmpty() {
			return "Adicione itens ao carrinho para continuar"
		}
	case StepDelivery:
		info := w.state.CustomerInfo
		if strings.TrimSpace(info.Name) == "" || strings.TrimSpace(info.Phone) == "" {
			return "Preencha nome e telefone para continuar"
		}
		if w.state.DeliveryOption == models.DeliveryDelivery && strings.TrimSpace(info.Address) == "" {
			return "Informe o endereço de entrega"
		}
	}
	return ""
}

// Next advances one step. On the payment step it submits the order instead and
// returns the submission.
func (w *Wizard) Next(ctx context.Context) (*Submission, error) {
	if w.Step() == StepPayment {
		submission, err := w.Submit(ctx)
		if err != nil {
			return nil, err
		}
		return &submission, nil
	}

	if reason := w.blockReason(); reason != "" {
		log.Printf("⛔ Wizard: Cannot advance from %s: %s", w.Step(), reason)
		w.notify(models.SeverityError, reason)
		return nil, fmt.Errorf("%w: %s", ErrStepBlocked, reason)
	}

	w.state.ActiveStep++
	w.publish()
	return nil, nil
}

// Prev goes back one step. No-op on the first step.
func (w *Wizard) Prev() {
	if w.Step() == StepCart {
		return
	}
	w.state.ActiveStep--
	w.publish()
}

// GoTo jumps back to a strictly earlier step. Jumps to the current or a later
// step are ignored and report false.
func (w *Wizard) GoTo(step Step) (bool, error) {
	if step < StepCart || step > StepPayment {
		return false, fmt.Errorf("%w: %d", ErrInvalidStep, int(step))
	}
	if step >= w.Step() {
		return false, nil
	}
	w.state.ActiveStep = int(step)
	w.publish()
	return true, nil
}

// SetDeliveryOption selects how the order is received
func (w *Wizard) SetDeliveryOption(option models.DeliveryOption) error {
	if !option.Valid() {
		return fmt.Errorf("invalid delivery option %q", option)
	}
	w.state.DeliveryOption = option
	w.publish()
	return nil
}

// UpdateCustomerInfo replaces the customer fields
func (w *Wizard) UpdateCustomerInfo(info models.CustomerInfo) error {
	if info.PaymentMethod == "" {
		info.PaymentMethod = w.state.CustomerInfo.PaymentMethod
	}
	if !info.PaymentMethod.Valid() {
		return fmt.Errorf("invalid payment method %q", info.PaymentMethod)
	}
	w.state.CustomerInfo = info
	w.publish()
	return nil
}

// Order assembles the order from the current cart and checkout state
func (w *Wizard) Order() Order {
	option := w.state.DeliveryOption
	return Order{
		StoreName:      w.storeName,
		Lines:          w.cart.Lines(),
		Subtotal:       w.cart.Subtotal(),
		DeliveryFee:    w.cart.DeliveryFee(option),
		Total:          w.cart.Total(option),
		DeliveryOption: option,
		Customer:       w.state.CustomerInfo,
	}
}

// Submit renders the order message and hands it to the order channel. An empty
// cart sends the wizard back to the cart step with ErrStepBlocked. The cart
// is then cleared and closed whether or not the channel succeeded; there is no
// acknowledgement and no retry. The wizard returns to its initial state.
func (w *Wizard) Submit(ctx context.Context) (Submission, error) {
	if w.Step() != StepPayment {
		return Submission{}, ErrNotAtPayment
	}
	if w.cart.IsEmpty() {
		// Cart was emptied after reaching payment; nothing to order
		log.Printf("⛔ Wizard: Cart emptied at %s, returning to %s", StepPayment, StepCart)
		w.state.ActiveStep = int(StepCart)
		w.notify(models.SeverityError, "Seu carrinho está vazio")
		w.publish()
		return Submission{}, fmt.Errorf("%w: cart is empty", ErrStepBlocked)
	}

	message := RenderSummary(w.Order())
	submission := Submission{Message: message}

	redirectURL, err := w.channel.Send(ctx, EncodeURIComponent(message))
	if err != nil {
		log.Printf("❌ Wizard: Order channel failed: %v", err)
		w.notify(models.SeverityError, "Não foi possível abrir o canal de pedidos")
	} else {
		submission.RedirectURL = redirectURL
		log.Printf("✅ Wizard: Order handed off")
		w.notify(models.SeveritySuccess, "Pedido enviado")
	}

	w.cart.Clear()
	w.cart.Toggle()
	w.state = initialState()
	w.publish()
	return submission, nil
}

// Subscribe registers fn to receive the state after every change.
// The returned function cancels the subscription.
func (w *Wizard) Subscribe(fn func(models.CheckoutState)) func() {
	id := w.nextSubID
	w.nextSubID++
	w.subscribers[id] = fn
	return func() {
		delete(w.subscribers, id)
	}
}

func (w *Wizard) publish() {
	for _, fn := range w.subscribers {
		fn(w.state)
	}
}

func (w *Wizard) notify(severity models.Severity, message string) {
	if w.notifier != nil {
		w.notifier.Notify(severity, message)
	}
}
