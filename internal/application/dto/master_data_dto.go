package dto

import "github.com/shopspring/decimal"

// ── Artículos ─────────────────────────────────────────────────────────────────

// SaveItemRequest cuerpo de creación/actualización de un artículo. RowIndex
// solo viene en updates (lo entregó un listado paginado previo).
type SaveItemRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Stock        int             `json:"stock"`
	SafetyStock  int             `json:"safety_stock"`
	Cost         decimal.Decimal `json:"cost"`
	SupplierID   string          `json:"supplier_id"`
	LeadTimeDays int             `json:"lead_time_days"`
	RowIndex     int             `json:"row_index,omitempty"`
}

// ItemResponse artículo serializado para la UI.
type ItemResponse struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Stock        int             `json:"stock"`
	SafetyStock  int             `json:"safety_stock"`
	Cost         decimal.Decimal `json:"cost"`
	SupplierID   string          `json:"supplier_id"`
	LeadTimeDays int             `json:"lead_time_days"`
	RowIndex     int             `json:"row_index,omitempty"`
}

// ItemListResponse página de artículos.
type ItemListResponse struct {
	Data []ItemResponse `json:"data"`
	Meta PageMeta       `json:"meta"`
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// SaveSupplierRequest cuerpo de creación/actualización de proveedor. ID
// vacío en creación = lo asigna el servidor.
type SaveSupplierRequest struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Rating       decimal.Decimal `json:"rating"`
	Email        string          `json:"email"`
	PaymentTerms string          `json:"payment_terms"`
	RowIndex     int             `json:"row_index,omitempty"`
}

// SupplierResponse proveedor serializado.
type SupplierResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Rating       decimal.Decimal `json:"rating"`
	Email        string          `json:"email"`
	PaymentTerms string          `json:"payment_terms"`
	RowIndex     int             `json:"row_index,omitempty"`
}

// SupplierListResponse página de proveedores.
type SupplierListResponse struct {
	Data []SupplierResponse `json:"data"`
	Meta PageMeta           `json:"meta"`
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// SaveCustomerRequest cuerpo de creación/actualización de cliente.
type SaveCustomerRequest struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	VATNumber    string `json:"vat_number"`
	Address      string `json:"address"`
	Region       string `json:"region"`
	PaymentTerms string `json:"payment_terms"`
	RowIndex     int    `json:"row_index,omitempty"`
}

// CustomerResponse cliente serializado.
type CustomerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	VATNumber    string `json:"vat_number"`
	Address      string `json:"address"`
	Region       string `json:"region"`
	PaymentTerms string `json:"payment_terms"`
	RowIndex     int    `json:"row_index,omitempty"`
}

// CustomerListResponse página de clientes.
type CustomerListResponse struct {
	Data []CustomerResponse `json:"data"`
	Meta PageMeta           `json:"meta"`
}
