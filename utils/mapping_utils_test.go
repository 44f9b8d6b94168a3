package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pizzaria-storefront/models"
)

func TestLabels(t *testing.T) {
	assert.Equal(t, "Entrega", MapDeliveryOptionToLabel(models.DeliveryDelivery))
	assert.Equal(t, "Retirar no local", MapDeliveryOptionToLabel(models.DeliveryPickup))
	assert.Equal(t, "Consumir no local", MapDeliveryOptionToLabel(models.DeliveryLocal))
	assert.Equal(t, "Dinheiro", MapPaymentMethodToLabel(models.PaymentMoney))
	assert.Equal(t, "Cartão", MapPaymentMethodToLabel(models.PaymentCard))
	assert.Equal(t, "PIX", MapPaymentMethodToLabel(models.PaymentPix))
	assert.Equal(t, "Francesinha", MapCuttingStyleToLabel(models.CuttingFrancesinha))
}

func TestParseOptions(t *testing.T) {
	assert.Equal(t, models.DeliveryDelivery, ParseDeliveryOption(" Entrega "))
	assert.Equal(t, models.DeliveryPickup, ParseDeliveryOption("pickup"))
	assert.Equal(t, models.DeliveryOption(""), ParseDeliveryOption("drone"))
	assert.Equal(t, models.PaymentCard, ParsePaymentMethod("Cartão"))
	assert.Equal(t, models.PaymentMethod(""), ParsePaymentMethod("boleto"))
}

func TestCapitalizeWords(t *testing.T) {
	assert.Equal(t, "Pizzas Doces", CapitalizeWords("pizzas  DOCES"))
	assert.Equal(t, "Ébano", CapitalizeWords("ébano"))
	assert.Equal(t, "", CapitalizeWords(""))
}
