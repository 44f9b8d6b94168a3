package utils

import (
	"strings"

	"pizzaria-storefront/models"
)

// MapDeliveryOptionToLabel maps a delivery option to the label shown in the order message
func MapDeliveryOptionToLabel(option models.DeliveryOption) string {
	labels := map[models.DeliveryOption]string{
		models.DeliveryPickup:   "Retirar no local",
		models.DeliveryLocal:    "Consumir no local",
		models.DeliveryDelivery: "Entrega",
	}

	if label, exists := labels[option]; exists {
		return label
	}
	return string(option)
}

// MapPaymentMethodToLabel maps a payment method to the label shown in the order message
func MapPaymentMethodToLabel(method models.PaymentMethod) string {
	labels := map[models.PaymentMethod]string{
		models.PaymentMoney: "Dinheiro",
		models.PaymentCard:  "Cartão",
		models.PaymentPix:   "PIX",
	}

	if label, exists := labels[method]; exists {
		return label
	}
	return string(method)
}

// MapCuttingStyleToLabel maps a cutting style to its display name
func MapCuttingStyleToLabel(style models.CuttingStyle) string {
	switch style {
	case models.CuttingNormal:
		return "Normal"
	case models.CuttingFrancesinha:
		return "Francesinha"
	}
	return string(style)
}

// ParseDeliveryOption normalizes user input (codes or Portuguese labels) to a delivery option
// Input is normalized to lowercase before mapping
// Returns empty string when nothing matches
func ParseDeliveryOption(value string) models.DeliveryOption {
	valueLower := strings.ToLower(strings.TrimSpace(value))

	optionMap := map[string]models.DeliveryOption{
		"pickup":            models.DeliveryPickup,
		"retirada":          models.DeliveryPickup,
		"retirar no local":  models.DeliveryPickup,
		"local":             models.DeliveryLocal,
		"consumir no local": models.DeliveryLocal,
		"delivery":          models.DeliveryDelivery,
		"entrega":           models.DeliveryDelivery,
	}

	if option, exists := optionMap[valueLower]; exists {
		return option
	}
	return ""
}

// ParsePaymentMethod normalizes user input (codes or Portuguese labels) to a payment method
// Returns empty string when nothing matches
func ParsePaymentMethod(value string) models.PaymentMethod {
	valueLower := strings.ToLower(strings.TrimSpace(value))

	methodMap := map[string]models.PaymentMethod{
		"money":    models.PaymentMoney,
		"dinheiro": models.PaymentMoney,
		"card":     models.PaymentCard,
		"cartão":   models.PaymentCard,
		"cartao":   models.PaymentCard,
		"pix":      models.PaymentPix,
	}

	if method, exists := methodMap[valueLower]; exists {
		return method
	}
	return ""
}

// CapitalizeWords capitalizes the first letter of each word
func CapitalizeWords(s string) string {
	if s == "" {
		return s
	}
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		if len(runes) > 0 {
			words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
		}
	}
	return strings.Join(words, " ")
}
