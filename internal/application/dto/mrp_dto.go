package dto

import "github.com/shopspring/decimal"

// MRPRowResponse resultado MRP de un artículo; derivado, nunca persistido.
type MRPRowResponse struct {
	Item          ItemResponse    `json:"item"`
	IsShortage    bool            `json:"is_shortage"`
	QtyToOrder    int             `json:"qty_to_order"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
}

// MRPListResponse página de resultados MRP. Total cuenta el set COMPLETO de
// artículos evaluados, no solo la página visible.
type MRPListResponse struct {
	Data []MRPRowResponse `json:"data"`
	Meta PageMeta         `json:"meta"`
}
