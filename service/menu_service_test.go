package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzaria-storefront/models"
)

func TestRenderMenuHTML(t *testing.T) {
	ctx := context.Background()
	bacon := models.Additional{ID: "a1", Name: "Bacon", Price: decimal.RequireFromString("5")}
	catalog := NewCatalogService(newFakeProductRepo(), newFakeAdditionalRepo(bacon), nil)

	_, err := catalog.CreateProduct(ctx, &models.ProductRequest{Name: "Coca", Category: "Bebidas", Price: price("14")})
	require.NoError(t, err)
	_, err = catalog.CreateProduct(ctx, &models.ProductRequest{Name: "Calabresa", Category: "Pizzas", Variations: []models.Variation{
		{Name: "Grande", Price: decimal.RequireFromString("49.90")},
	}})
	require.NoError(t, err)

	html, err := NewMenuService(catalog, "Pizzaria Bella", "").RenderMenuHTML(ctx)
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Pizzaria Bella</h1>")
	assert.Contains(t, html, "<h2>Bebidas</h2>")
	assert.Contains(t, html, "R$ 14,00")
	assert.Contains(t, html, "Grande: R$ 49,90")
	assert.Contains(t, html, "Bacon - R$ 5,00")
}
