package cart

import (
	"sort"
	"strings"

	"pizzaria-storefront/models"
)

// HalfPrefix marks the id of a composed half-and-half pseudo-product
const HalfPrefix = "half-"

const noVariation = "no-var"

// AdditionalsKey returns the add-on names sorted and joined by commas, so the
// order in which add-ons were picked does not matter
func AdditionalsKey(additionals []models.Additional) string {
	names := make([]string, 0, len(additionals))
	for _, a := range additionals {
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// ComputeIdentityKey derives the composite key deciding whether two add-to-cart
// calls are the same purchasable selection. Rules, first match wins:
//
//	half-and-half: half-{half1.id}-{half2.id}-{variation|no-var}-{additionals}
//	variation:     {productId}-{variation}-{additionals}
//	otherwise:     {productId}-{additionals}
//
// A cutting style, when set, is appended as -{style}.
func ComputeIdentityKey(line models.CartLine) string {
	additionals := AdditionalsKey(line.SelectedAdditionals)

	var key string
	switch {
	case line.IsHalfAndHalf && line.Half1 != nil && line.Half2 != nil:
		variation := line.VariationName()
		if variation == "" {
			variation = noVariation
		}
		key = HalfPrefix + line.Half1.ID + "-" + line.Half2.ID + "-" + variation + "-" + additionals
	case line.SelectedVariation != nil:
		key = line.ProductID + "-" + line.SelectedVariation.Name + "-" + additionals
	default:
		key = line.ProductID + "-" + additionals
	}

	return withCuttingStyle(key, line.CuttingStyle)
}

// KeyFromDiscriminators rebuilds the same key from the values a client holds
// for an existing line. Half-and-half lines are addressed by their pseudo-product
// id (half-{id1}-{id2}).
func KeyFromDiscriminators(productID, variationName, additionalsKey string, style models.CuttingStyle) string {
	var key string
	switch {
	case strings.HasPrefix(productID, HalfPrefix):
		if variationName == "" {
			variationName = noVariation
		}
		key = productID + "-" + variationName + "-" + additionalsKey
	case variationName != "":
		key = productID + "-" + variationName + "-" + additionalsKey
	default:
		key = productID + "-" + additionalsKey
	}
	return withCuttingStyle(key, style)
}

func withCuttingStyle(key string, style models.CuttingStyle) string {
	if style == "" {
		return key
	}
	return key + "-" + string(style)
}
