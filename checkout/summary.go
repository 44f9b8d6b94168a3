package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"pizzaria-storefront/cart"
	"pizzaria-storefront/models"
	"pizzaria-storefront/utils"
)

// Order is everything the order message is rendered from
type Order struct {
	StoreName      string
	Lines          []models.CartLine
	Subtotal       decimal.Decimal
	DeliveryFee    decimal.Decimal
	Total          decimal.Decimal
	DeliveryOption models.DeliveryOption
	Customer       models.CustomerInfo
}

// RenderSummary renders the plain-text order message sent to the restaurant.
// Asterisks are WhatsApp bold markers.
func RenderSummary(order Order) string {
	var b strings.Builder

	header := "*Novo Pedido*"
	if order.StoreName != "" {
		header = fmt.Sprintf("*Novo Pedido - %s*", order.StoreName)
	}
	b.WriteString(header + "\n\n")

	b.WriteString("*Itens:*\n")
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "%dx %s - %s\n", line.Quantity, line.Name, utils.FormatBRL(line.LineTotal()))
		if line.SelectedVariation != nil {
			fmt.Fprintf(&b, "   Tamanho: %s\n", line.SelectedVariation.Name)
		}
		if len(line.SelectedAdditionals) > 0 {
			fmt.Fprintf(&b, "   Adicionais: %s\n", strings.ReplaceAll(cart.AdditionalsKey(line.SelectedAdditionals), ",", ", "))
		}
		if line.CuttingStyle != "" {
			fmt.Fprintf(&b, "   Corte: %s\n", utils.MapCuttingStyleToLabel(line.CuttingStyle))
		}
	}

	fmt.Fprintf(&b, "\n*Subtotal:* %s\n", utils.FormatBRL(order.Subtotal))
	if order.DeliveryOption == models.DeliveryDelivery {
		fmt.Fprintf(&b, "*Taxa de Entrega:* %s\n", utils.FormatBRL(order.DeliveryFee))
	}
	fmt.Fprintf(&b, "*Total: %s*\n", utils.FormatBRL(order.Total))

	fmt.Fprintf(&b, "\n*Forma de Entrega:* %s\n", utils.MapDeliveryOptionToLabel(order.DeliveryOption))

	b.WriteString("\n*Cliente:*\n")
	fmt.Fprintf(&b, "Nome: %s\n", order.Customer.Name)
	fmt.Fprintf(&b, "Telefone: %s\n", order.Customer.Phone)
	if order.DeliveryOption == models.DeliveryDelivery {
		fmt.Fprintf(&b, "Endereço: %s\n", order.Customer.Address)
	}

	fmt.Fprintf(&b, "\n*Forma de Pagamento:* %s\n", utils.MapPaymentMethodToLabel(order.Customer.PaymentMethod))
	if order.Customer.PaymentMethod == models.PaymentMoney && strings.TrimSpace(order.Customer.Change) != "" {
		fmt.Fprintf(&b, "Troco para: %s\n", strings.TrimSpace(order.Customer.Change))
	}
	if notes := strings.TrimSpace(order.Customer.Notes); notes != "" {
		fmt.Fprintf(&b, "*Observações:* %s\n", notes)
	}

	return b.String()
}

// uriComponentUnescaper restores the characters encodeURIComponent leaves
// alone but url.QueryEscape escapes, and writes spaces as %20
var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s for use as a single query value.
// Letters, digits and -_.!~*'() are left as is.
func EncodeURIComponent(s string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(s))
}
