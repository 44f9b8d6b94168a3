package checkout

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode"
)

// OrderChannel hands an encoded order message to the restaurant and returns the
// link the customer's browser should open. Delivery is never confirmed.
type OrderChannel interface {
	Send(ctx context.Context, encodedMessage string) (string, error)
}

// WhatsAppChannel builds wa.me deep links to the restaurant's number
type WhatsAppChannel struct {
	phone string
}

// NewWhatsAppChannel creates a channel for the given phone number.
// Anything that is not a digit is stripped, so "+55 (11) 99999-0000" works.
func NewWhatsAppChannel(phone string) (*WhatsAppChannel, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return nil, fmt.Errorf("whatsapp number is required")
	}
	return &WhatsAppChannel{phone: digits}, nil
}

// Ensure WhatsAppChannel implements OrderChannel
var _ OrderChannel = (*WhatsAppChannel)(nil)

// Send returns the wa.me link carrying the message
func (c *WhatsAppChannel) Send(ctx context.Context, encodedMessage string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	link := fmt.Sprintf("https://wa.me/%s?text=%s", c.phone, encodedMessage)
	log.Printf("📤 WhatsAppChannel: Order link built for %s (%d bytes)", c.phone, len(link))
	return link, nil
}
