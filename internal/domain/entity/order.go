package entity

import "github.com/shopspring/decimal"

// OrderStatus estados del ciclo de vida de una orden de compra.
type OrderStatus string

const (
	OrderDraft     OrderStatus = "DRAFT"
	OrderSent      OrderStatus = "SENT"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderReceived  OrderStatus = "RECEIVED"
	OrderPartial   OrderStatus = "PARTIAL"
	OrderCancelled OrderStatus = "CANCELLED"
)

// PurchaseOrderLine línea de detalle de una orden de compra.
// Las líneas no se persisten en la hoja Ordini (solo el encabezado);
// se conservan para las órdenes semilla y para el render del PDF.
type PurchaseOrderLine struct {
	SKU         string
	Description string
	Qty         int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// PurchaseOrder encabezado de orden de compra (hoja Ordini).
type PurchaseOrder struct {
	ID               string // número PO, ej. PO-2023-1001
	Date             string // ISO yyyy-mm-dd
	SupplierID       string
	SupplierName     string // desnormalizado para la UI
	Status           OrderStatus
	TotalAmount      decimal.Decimal
	ExpectedDelivery string
	TrackingCode     string
	Lines            []PurchaseOrderLine
	RowIndex         int
}

// LogisticsEvent evento logístico (entradas/salidas de mercancía).
type LogisticsEvent struct {
	ID          string
	Type        string // INBOUND | OUTBOUND
	ReferenceID string // PO o pedido de venta
	Date        string
	Courier     string
	Tracking    string
	Status      string // TRANSIT | DELIVERED | EXCEPTION
	ItemsCount  int
}

// CompanyProfile datos fiscales y bancarios de la empresa (vista admin).
type CompanyProfile struct {
	CompanyName string
	VATNumber   string
	TaxID       string
	Address     string
	City        string
	ZipCode     string
	Province    string
	Country     string
	Email       string
	Phone       string
	Website     string
	BankName    string
	IBAN        string
	SWIFT       string
}
