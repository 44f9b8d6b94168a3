package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pizzaria-storefront/models"
)

func TestComputeIdentityKey(t *testing.T) {
	bacon := models.Additional{Name: "Bacon"}
	catupiry := models.Additional{Name: "Catupiry"}
	grande := &models.Variation{Name: "Grande"}

	tests := []struct {
		name string
		line models.CartLine
		want string
	}{
		{
			name: "flat product without add-ons",
			line: models.CartLine{ProductID: "p1"},
			want: "p1-",
		},
		{
			name: "flat product add-ons are sorted",
			line: models.CartLine{ProductID: "p1", SelectedAdditionals: []models.Additional{catupiry, bacon}},
			want: "p1-Bacon,Catupiry",
		},
		{
			name: "variation",
			line: models.CartLine{ProductID: "p1", SelectedVariation: grande, SelectedAdditionals: []models.Additional{bacon}},
			want: "p1-Grande-Bacon",
		},
		{
			name: "half-and-half without variation",
			line: models.CartLine{
				ProductID:     "half-a-b",
				IsHalfAndHalf: true,
				Half1:         &models.HalfSnapshot{ID: "a"},
				Half2:         &models.HalfSnapshot{ID: "b"},
			},
			want: "half-a-b-no-var-",
		},
		{
			name: "half-and-half wins over variation",
			line: models.CartLine{
				ProductID:           "half-a-b",
				IsHalfAndHalf:       true,
				Half1:               &models.HalfSnapshot{ID: "a"},
				Half2:               &models.HalfSnapshot{ID: "b"},
				SelectedVariation:   grande,
				SelectedAdditionals: []models.Additional{catupiry, bacon},
			},
			want: "half-a-b-Grande-Bacon,Catupiry",
		},
		{
			name: "cutting style suffix",
			line: models.CartLine{ProductID: "p1", SelectedVariation: grande, CuttingStyle: models.CuttingFrancesinha},
			want: "p1-Grande--francesinha",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeIdentityKey(tt.line))
		})
	}
}

func TestKeyFromDiscriminatorsMatchesComputedKey(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: "p1"},
		{ProductID: "p1", SelectedAdditionals: []models.Additional{{Name: "Ovo"}, {Name: "Bacon"}}},
		{ProductID: "p1", SelectedVariation: &models.Variation{Name: "Média"}, CuttingStyle: models.CuttingNormal},
		{
			ProductID:     "half-a-b",
			IsHalfAndHalf: true,
			Half1:         &models.HalfSnapshot{ID: "a"},
			Half2:         &models.HalfSnapshot{ID: "b"},
		},
	}

	for _, line := range lines {
		d := Discriminators{
			ProductID:      line.ProductID,
			VariationName:  line.VariationName(),
			AdditionalsKey: AdditionalsKey(line.SelectedAdditionals),
			CuttingStyle:   line.CuttingStyle,
		}
		assert.Equal(t, ComputeIdentityKey(line), d.Key())
	}
}
