package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"pizzaria-storefront/models"
	"pizzaria-storefront/session"
)

// SessionCookieName is the cookie holding the storefront session id
const SessionCookieName = "storefront_session"

type sessionKey struct{}

// SessionStore resolves visitor sessions
type SessionStore interface {
	GetOrCreate(id string) (*session.Session, bool)
}

// WithSession attaches the visitor's session to the request, creating one and
// setting the cookie on first contact
func WithSession(store SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				id = cookie.Value
			}

			sess, created := store.GetOrCreate(id)
			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionFrom returns the session attached by WithSession
func sessionFrom(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(sessionKey{}).(*session.Session)
	return sess
}

// writeJSON encodes body with the given status
func writeJSON(w http.ResponseWriter, status int, body interface{}, handler string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("❌ %s: Error encoding response: %v", handler, err)
	}
}

// cartResponse builds the cart view of a locked session
func cartResponse(sess *session.Session) models.CartResponse {
	snapshot := sess.Cart.Snapshot()
	option := sess.Wizard.DeliveryOption()

	lines := make([]models.CartLineResponse, len(snapshot.Lines))
	for i, line := range snapshot.Lines {
		lines[i] = models.CartLineResponse{CartLine: line, LineTotal: line.LineTotal()}
	}

	return models.CartResponse{
		Lines:         lines,
		IsOpen:        snapshot.IsOpen,
		ItemCount:     snapshot.ItemCount,
		Subtotal:      snapshot.Subtotal,
		DeliveryFee:   sess.Cart.DeliveryFee(option),
		Total:         sess.Cart.Total(option),
		Notifications: sess.Notifications.Drain(),
	}
}

// checkoutResponse builds the wizard view of a locked session
func checkoutResponse(sess *session.Session) models.CheckoutResponse {
	option := sess.Wizard.DeliveryOption()
	return models.CheckoutResponse{
		CheckoutState: sess.Wizard.Snapshot(),
		CanAdvance:    sess.Wizard.CanAdvance(),
		Subtotal:      sess.Cart.Subtotal(),
		DeliveryFee:   sess.Cart.DeliveryFee(option),
		Total:         sess.Cart.Total(option),
		Notifications: sess.Notifications.Drain(),
	}
}
