// Package mrp implementa el cálculo determinista de faltantes (Material
// Requirements Planning) sobre el set completo de artículos.
//
// La condición de faltante es una propiedad global: exige visibilidad del
// inventario entero, nunca de una página. El caller debe invocar Compute
// con el fetch completo y paginar el RESULTADO para la vista; paginar la
// entrada corrompe silenciosamente la detección de faltantes de cualquier
// artículo fuera de la página visible.
package mrp

import (
	"github.com/shopspring/decimal"

	"github.com/eb-pro/procurement-api/internal/domain/entity"
)

// Result resultado MRP derivado por artículo. Nunca se persiste; se
// recalcula en cada petición.
type Result struct {
	Item          entity.Item
	IsShortage    bool
	QtyToOrder    int
	EstimatedCost decimal.Decimal
}

// Compute calcula el estado de faltante y la cantidad/costo de reorden por
// artículo, preservando el orden de entrada. Función pura: sin estado ni I/O.
//
// Reglas:
//   - faltante ⇔ stock < scorta de seguridad (desigualdad estricta:
//     stock == scorta NO es faltante)
//   - cantidad a ordenar = max(0, scorta − stock)
//   - costo estimado = cantidad × costo unitario, sin redondeo (el redondeo
//     monetario es un asunto de presentación)
func Compute(items []entity.Item) []Result {
	results := make([]Result, 0, len(items))
	for _, item := range items {
		qty := 0
		if item.Stock < item.SafetyStock {
			qty = item.SafetyStock - item.Stock
		}
		results = append(results, Result{
			Item:          item,
			IsShortage:    qty > 0,
			QtyToOrder:    qty,
			EstimatedCost: item.Cost.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	return results
}
