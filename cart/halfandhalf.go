package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pizzaria-storefront/models"
)

// HalfPricer combines the prices of two pizza halves
type HalfPricer interface {
	HalfAndHalfPrice(first, second decimal.Decimal) decimal.Decimal
}

// ComposeHalfAndHalf builds the pseudo-product for a pizza made of two halves.
// When a variation is chosen both halves are priced at that variation and the
// combined variation carries the combined price.
func ComposeHalfAndHalf(first, second models.Product, variationName string, pricer HalfPricer) (models.CartCandidate, *models.Variation) {
	half1 := halfSnapshot(first, variationName)
	half2 := halfSnapshot(second, variationName)
	price := pricer.HalfAndHalfPrice(half1.Price, half2.Price)

	candidate := models.CartCandidate{
		Product: models.Product{
			ID:          HalfPrefix + first.ID + "-" + second.ID,
			Name:        fmt.Sprintf("Meia %s / Meia %s", first.Name, second.Name),
			Description: first.Description,
			Category:    first.Category,
			ImageURL:    first.ImageURL,
			Price:       &price,
		},
		IsHalfAndHalf: true,
		Half1:         &half1,
		Half2:         &half2,
	}

	if variationName == "" {
		return candidate, nil
	}
	return candidate, &models.Variation{Name: variationName, Price: price}
}

func halfSnapshot(p models.Product, variationName string) models.HalfSnapshot {
	price := p.BasePrice()
	if v, ok := p.FindVariation(variationName); ok {
		price = v.Price
	}
	return models.HalfSnapshot{ID: p.ID, Name: p.Name, Price: price}
}
