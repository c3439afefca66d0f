package dto

import "github.com/shopspring/decimal"

// SaveOrderRequest encabezado de orden de compra a crear/actualizar. ID
// vacío en creación = número PO asignado por el servidor.
type SaveOrderRequest struct {
	ID               string          `json:"id"`
	Date             string          `json:"date"`
	SupplierID       string          `json:"supplier_id"`
	SupplierName     string          `json:"supplier_name"`
	Status           string          `json:"status"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	ExpectedDelivery string          `json:"expected_delivery,omitempty"`
	TrackingCode     string          `json:"tracking_code,omitempty"`
	RowIndex         int             `json:"row_index,omitempty"`
}

// OrderResponse orden de compra serializada.
type OrderResponse struct {
	ID               string          `json:"id"`
	Date             string          `json:"date"`
	SupplierID       string          `json:"supplier_id"`
	SupplierName     string          `json:"supplier_name"`
	Status           string          `json:"status"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	ExpectedDelivery string          `json:"expected_delivery,omitempty"`
	TrackingCode     string          `json:"tracking_code,omitempty"`
	RowIndex         int             `json:"row_index,omitempty"`
}

// OrderListResponse página de órdenes de compra.
type OrderListResponse struct {
	Data []OrderResponse `json:"data"`
	Meta PageMeta        `json:"meta"`
}

// LogisticsEventResponse evento logístico serializado.
type LogisticsEventResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	ReferenceID string `json:"reference_id"`
	Date        string `json:"date"`
	Courier     string `json:"courier,omitempty"`
	Tracking    string `json:"tracking,omitempty"`
	Status      string `json:"status"`
	ItemsCount  int    `json:"items_count"`
}

// LogisticsListResponse página de eventos logísticos.
type LogisticsListResponse struct {
	Data []LogisticsEventResponse `json:"data"`
	Meta PageMeta                 `json:"meta"`
}

// ProfileResponse datos fiscales/bancarios de la empresa.
type ProfileResponse struct {
	CompanyName string `json:"company_name"`
	VATNumber   string `json:"vat_number"`
	TaxID       string `json:"tax_id"`
	Address     string `json:"address"`
	City        string `json:"city"`
	ZipCode     string `json:"zip_code"`
	Province    string `json:"province"`
	Country     string `json:"country"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	BankName    string `json:"bank_name"`
	IBAN        string `json:"iban"`
	SWIFT       string `json:"swift"`
}
