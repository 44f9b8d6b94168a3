package cart

import (
	"errors"
	"fmt"

	"pizzaria-storefront/models"
)

var (
	ErrVariationRequired   = errors.New("a variation must be selected")
	ErrUnknownVariation    = errors.New("unknown variation")
	ErrHalfMismatch        = errors.New("both halves must offer the selected variation")
	ErrSameHalves          = errors.New("half-and-half needs two different products")
	ErrInvalidCuttingStyle = errors.New("invalid cutting style")
)

// ValidateSelection checks that a selection is complete before it is added to
// the cart. secondHalf is nil for a whole product.
func ValidateSelection(product models.Product, variationName string, secondHalf *models.Product, style models.CuttingStyle) error {
	if !style.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidCuttingStyle, style)
	}

	if product.HasVariations() {
		if variationName == "" {
			return ErrVariationRequired
		}
		if _, ok := product.FindVariation(variationName); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownVariation, variationName)
		}
	} else if variationName != "" {
		return fmt.Errorf("%w: %s", ErrUnknownVariation, variationName)
	}

	if secondHalf == nil {
		return nil
	}
	if secondHalf.ID == product.ID {
		return ErrSameHalves
	}
	if product.HasVariations() != secondHalf.HasVariations() {
		return ErrHalfMismatch
	}
	if variationName != "" {
		if _, ok := secondHalf.FindVariation(variationName); !ok {
			return fmt.Errorf("%w: %s", ErrHalfMismatch, variationName)
		}
	}
	return nil
}
