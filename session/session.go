package session

import (
	"sync"
	"time"

	"pizzaria-storefront/cart"
	"pizzaria-storefront/checkout"
)

// Session owns the cart and checkout wizard of one storefront visitor.
// Lock must be held while touching Cart, Wizard or Notifications.
type Session struct {
	ID            string
	Cart          *cart.Aggregator
	Wizard        *checkout.Wizard
	Notifications *NotificationQueue

	mu       sync.Mutex
	lastSeen time.Time
}

// Lock serialises access to the session's cart and wizard
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Dependencies are the collaborators every session is wired with
type Dependencies struct {
	Pricer    cart.Pricer
	Channel   checkout.OrderChannel
	StoreName string
}

// New builds a session with an empty cart and a wizard at the cart step
func New(id string, deps Dependencies) *Session {
	notifications := &NotificationQueue{}
	aggregator := cart.NewAggregator(deps.Pricer, notifications)
	return &Session{
		ID:            id,
		Cart:          aggregator,
		Wizard:        checkout.NewWizard(aggregator, deps.Channel, notifications, deps.StoreName),
		Notifications: notifications,
		lastSeen:      time.Now(),
	}
}
