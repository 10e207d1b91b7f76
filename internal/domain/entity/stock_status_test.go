package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/buildstock-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// Clasificación con ambos umbrales definidos (min=10, max=100).
func TestClassifyStock_UmbralesCompletos(t *testing.T) {
	min := dec("10")
	max := decPtr("100")

	cases := []struct {
		name  string
		total string
		want  string
	}{
		{"por debajo del mínimo", "5", entity.StockStatusLow},
		{"exactamente el mínimo", "10", entity.StockStatusLow},
		{"entre umbrales", "50", entity.StockStatusNormal},
		{"justo bajo el máximo", "99.99", entity.StockStatusNormal},
		{"exactamente el máximo", "100", entity.StockStatusHigh},
		{"por encima del máximo", "150", entity.StockStatusHigh},
		{"total negativo", "-3", entity.StockStatusLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.ClassifyStock(dec(tc.total), min, max))
		})
	}
}

// Sin máximo definido nunca se clasifica como high.
func TestClassifyStock_SinMaximo(t *testing.T) {
	min := dec("10")

	assert.Equal(t, entity.StockStatusLow, entity.ClassifyStock(dec("10"), min, nil))
	assert.Equal(t, entity.StockStatusNormal, entity.ClassifyStock(dec("50"), min, nil))
	assert.Equal(t, entity.StockStatusNormal, entity.ClassifyStock(dec("1000000"), min, nil))
}

// Con umbrales mal configurados (min por encima de max) gana low.
func TestClassifyStock_MinPorEncimaDeMax(t *testing.T) {
	got := entity.ClassifyStock(dec("50"), dec("80"), decPtr("40"))
	assert.Equal(t, entity.StockStatusLow, got)
}

// Material recién creado: total 0 y min 0 → low (0 <= 0).
func TestClassifyStock_MaterialNuevo(t *testing.T) {
	got := entity.ClassifyStock(decimal.Zero, decimal.Zero, nil)
	assert.Equal(t, entity.StockStatusLow, got)
}
