package mrp_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eb-pro/procurement-api/internal/domain/entity"
	"github.com/eb-pro/procurement-api/internal/domain/mrp"
)

func item(sku string, stock, safety int, cost float64) entity.Item {
	return entity.Item{
		SKU:         sku,
		Stock:       stock,
		SafetyStock: safety,
		Cost:        decimal.NewFromFloat(cost),
	}
}

func TestCompute_InvarianteFaltante(t *testing.T) {
	cases := []struct {
		name       string
		stock      int
		safety     int
		wantShort  bool
		wantQty    int
	}{
		{"stock bajo scorta", 12, 20, true, 8},
		{"stock sobre scorta", 500, 200, false, 0},
		{"stock igual a scorta no es faltante", 40, 40, false, 0},
		{"stock cero", 0, 10, true, 10},
		{"scorta cero", 5, 0, false, 0},
		{"ambos cero", 0, 0, false, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results := mrp.Compute([]entity.Item{item("X", tc.stock, tc.safety, 10)})
			require.Len(t, results, 1)
			r := results[0]
			assert.Equal(t, tc.wantShort, r.IsShortage)
			assert.Equal(t, tc.wantQty, r.QtyToOrder)
			wantCost := decimal.NewFromInt(int64(tc.wantQty)).Mul(decimal.NewFromInt(10))
			assert.True(t, wantCost.Equal(r.EstimatedCost),
				"costo estimado: esperado %s, obtenido %s", wantCost, r.EstimatedCost)
		})
	}
}

// Escenario completo de 5 artículos: faltantes solo el 1° y el 3°.
func TestCompute_EscenarioInventario(t *testing.T) {
	items := []entity.Item{
		item("HYD-VAL-001", 12, 20, 150),
		item("STL-PLT-5MM", 500, 200, 45),
		item("ELC-PLC-X2", 5, 10, 800),
		item("PNT-YEL-RAL", 50, 40, 20),
		item("WLD-ROD-X1", 1000, 500, 0.5),
	}

	results := mrp.Compute(items)
	require.Len(t, results, 5)

	// Orden de entrada preservado
	for i := range items {
		assert.Equal(t, items[i].SKU, results[i].Item.SKU)
	}

	assert.True(t, results[0].IsShortage)
	assert.Equal(t, 8, results[0].QtyToOrder)
	assert.True(t, decimal.NewFromInt(8*150).Equal(results[0].EstimatedCost))

	assert.True(t, results[2].IsShortage)
	assert.Equal(t, 5, results[2].QtyToOrder)
	assert.True(t, decimal.NewFromInt(5*800).Equal(results[2].EstimatedCost))

	for _, i := range []int{1, 3, 4} {
		assert.False(t, results[i].IsShortage, "artículo %d no debe ser faltante", i)
		assert.Equal(t, 0, results[i].QtyToOrder)
		assert.True(t, results[i].EstimatedCost.IsZero())
	}
}

func TestCompute_SinCopiaNiEstado(t *testing.T) {
	assert.Empty(t, mrp.Compute(nil))
	assert.Empty(t, mrp.Compute([]entity.Item{}))
}
