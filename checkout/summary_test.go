package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pizzaria-storefront/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func xOrder(option models.DeliveryOption, customer models.CustomerInfo) Order {
	fee := decimal.Zero
	if option == models.DeliveryDelivery {
		fee = dec("2.00")
	}
	return Order{
		Lines:          []models.CartLine{{ProductID: "x", Name: "X", Price: dec("24.90"), Quantity: 2}},
		Subtotal:       dec("49.80"),
		DeliveryFee:    fee,
		Total:          dec("49.80").Add(fee),
		DeliveryOption: option,
		Customer:       customer,
	}
}

func TestSummaryPickup(t *testing.T) {
	summary := RenderSummary(xOrder(models.DeliveryPickup, models.CustomerInfo{
		Name:          "Ana",
		Phone:         "11999990000",
		Address:       "Rua A, 123",
		PaymentMethod: models.PaymentPix,
	}))

	assert.Contains(t, summary, "*Novo Pedido*")
	assert.Contains(t, summary, "2x X - R$ 49,80")
	assert.Contains(t, summary, "*Subtotal:* R$ 49,80")
	assert.Contains(t, summary, "Total: R$ 49,80")
	assert.NotContains(t, summary, "Taxa de Entrega")
	assert.NotContains(t, summary, "Endereço")
	assert.Contains(t, summary, "*Forma de Entrega:* Retirar no local")
	assert.Contains(t, summary, "*Forma de Pagamento:* PIX")
	assert.NotContains(t, summary, "Troco")
	assert.NotContains(t, summary, "Observações")
}

func TestSummaryDelivery(t *testing.T) {
	summary := RenderSummary(xOrder(models.DeliveryDelivery, models.CustomerInfo{
		Name:          "Ana",
		Phone:         "11999990000",
		Address:       "Rua A, 123",
		PaymentMethod: models.PaymentMoney,
		Change:        "100",
		Notes:         "Sem cebola",
	}))

	assert.Contains(t, summary, "*Taxa de Entrega:* R$ 2,00")
	assert.Contains(t, summary, "Total: R$ 51,80")
	assert.Contains(t, summary, "Endereço: Rua A, 123")
	assert.Contains(t, summary, "*Forma de Entrega:* Entrega")
	assert.Contains(t, summary, "*Forma de Pagamento:* Dinheiro")
	assert.Contains(t, summary, "Troco para: 100")
	assert.Contains(t, summary, "*Observações:* Sem cebola")
}

func TestSummaryChangeOnlyForMoney(t *testing.T) {
	summary := RenderSummary(xOrder(models.DeliveryLocal, models.CustomerInfo{
		Name:          "Ana",
		Phone:         "11",
		PaymentMethod: models.PaymentCard,
		Change:        "50",
	}))

	assert.NotContains(t, summary, "Troco")
	assert.Contains(t, summary, "*Forma de Entrega:* Consumir no local")
	assert.Contains(t, summary, "*Forma de Pagamento:* Cartão")
}

func TestSummaryLineDetails(t *testing.T) {
	order := xOrder(models.DeliveryPickup, models.CustomerInfo{Name: "Ana", Phone: "11", PaymentMethod: models.PaymentPix})
	order.StoreName = "Pizzaria Bella"
	order.Lines = []models.CartLine{{
		ProductID:           "p1",
		Name:                "Calabresa",
		Price:               dec("49.90"),
		Quantity:            1,
		SelectedVariation:   &models.Variation{Name: "Grande", Price: dec("49.90")},
		SelectedAdditionals: []models.Additional{{Name: "Catupiry"}, {Name: "Bacon"}},
		CuttingStyle:        models.CuttingFrancesinha,
	}}

	summary := RenderSummary(order)

	assert.Contains(t, summary, "*Novo Pedido - Pizzaria Bella*")
	assert.Contains(t, summary, "1x Calabresa - R$ 49,90")
	assert.Contains(t, summary, "   Tamanho: Grande")
	assert.Contains(t, summary, "   Adicionais: Bacon, Catupiry")
	assert.Contains(t, summary, "   Corte: Francesinha")
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "Total%3A%20R%24%2049%2C80", EncodeURIComponent("Total: R$ 49,80"))
	assert.Equal(t, "a%2Bb%0A", EncodeURIComponent("a+b\n"))
	assert.Equal(t, "*Total%3A*%20(x)%20it's!~", EncodeURIComponent("*Total:* (x) it's!~"))
	assert.Equal(t, "-_.!~*'()", EncodeURIComponent("-_.!~*'()"))
}
