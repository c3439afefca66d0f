package sheets

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eb-pro/procurement-api/internal/domain/entity"
)

// Códecs posicionales fila⇄registro, un layout fijo de columnas por entidad.
// La decodificación tolera filas cortas (las hojas suelen omitir columnas
// finales): numéricos → 0, strings → "". La codificación emite siempre la
// fila completa en el orden canónico; campos desconocidos se descartan.

// Nombres de hoja y última columna por entidad.
const (
	SheetItems     = "Articoli"
	SheetSuppliers = "Fornitori"
	SheetCustomers = "Clienti"
	SheetOrders    = "Ordini"

	lastColItems     = "H"
	lastColSuppliers = "E"
	lastColCustomers = "G"
	lastColOrders    = "H"
)

// ── Celdas ────────────────────────────────────────────────────────────────────

func cellStr(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellInt(row []string, i int) int {
	s := cellStr(row, i)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// valores no enteros ("12.0", basura): intentar como decimal truncado
		if d, derr := decimal.NewFromString(s); derr == nil {
			return int(d.IntPart())
		}
		return 0
	}
	return n
}

func cellDecimal(row []string, i int) decimal.Decimal {
	s := cellStr(row, i)
	if s == "" {
		return decimal.Zero
	}
	// Las hojas italianas pueden traer coma decimal.
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ── Items: SKU(A) Name(B) Category(C) Stock(D) SafetyStock(E) Cost(F)
//          SupplierID(G) LeadTimeDays(H) ───────────────────────────────────────

func decodeItem(row []string, rowIndex int) entity.Item {
	return entity.Item{
		SKU:          cellStr(row, 0),
		Name:         cellStr(row, 1),
		Category:     entity.Category(cellStr(row, 2)),
		Stock:        cellInt(row, 3),
		SafetyStock:  cellInt(row, 4),
		Cost:         cellDecimal(row, 5),
		SupplierID:   cellStr(row, 6),
		LeadTimeDays: cellInt(row, 7),
		RowIndex:     rowIndex,
	}
}

func encodeItem(it *entity.Item) []any {
	return []any{
		it.SKU, it.Name, string(it.Category),
		it.Stock, it.SafetyStock, it.Cost.String(),
		it.SupplierID, it.LeadTimeDays,
	}
}

// ── Suppliers: ID(A) Name(B) Rating(C) Email(D) PaymentTerms(E) ───────────────

func decodeSupplier(row []string, rowIndex int) entity.Supplier {
	return entity.Supplier{
		ID:           cellStr(row, 0),
		Name:         cellStr(row, 1),
		Rating:       cellDecimal(row, 2),
		Email:        cellStr(row, 3),
		PaymentTerms: cellStr(row, 4),
		RowIndex:     rowIndex,
	}
}

func encodeSupplier(s *entity.Supplier) []any {
	return []any{s.ID, s.Name, s.Rating.String(), s.Email, s.PaymentTerms}
}

// ── Customers: ID(A) Name(B) Email(C) VAT(D) Address(E) Region(F)
//              PaymentTerms(G) ────────────────────────────────────────────────

func decodeCustomer(row []string, rowIndex int) entity.Customer {
	return entity.Customer{
		ID:           cellStr(row, 0),
		Name:         cellStr(row, 1),
		Email:        cellStr(row, 2),
		VATNumber:    cellStr(row, 3),
		Address:      cellStr(row, 4),
		Region:       cellStr(row, 5),
		PaymentTerms: cellStr(row, 6),
		RowIndex:     rowIndex,
	}
}

func encodeCustomer(c *entity.Customer) []any {
	return []any{c.ID, c.Name, c.Email, c.VATNumber, c.Address, c.Region, c.PaymentTerms}
}

// ── Orders: ID(A) Date(B) SupplierID(C) SupplierName(D) Status(E)
//           TotalAmount(F) ExpectedDelivery(G) TrackingCode(H) ────────────────
// Solo el encabezado de la orden vive en la hoja; las líneas no se persisten.

func decodeOrder(row []string, rowIndex int) entity.PurchaseOrder {
	return entity.PurchaseOrder{
		ID:               cellStr(row, 0),
		Date:             cellStr(row, 1),
		SupplierID:       cellStr(row, 2),
		SupplierName:     cellStr(row, 3),
		Status:           entity.OrderStatus(cellStr(row, 4)),
		TotalAmount:      cellDecimal(row, 5),
		ExpectedDelivery: cellStr(row, 6),
		TrackingCode:     cellStr(row, 7),
		RowIndex:         rowIndex,
	}
}

func encodeOrder(o *entity.PurchaseOrder) []any {
	return []any{
		o.ID, o.Date, o.SupplierID, o.SupplierName, string(o.Status),
		o.TotalAmount.String(), o.ExpectedDelivery, o.TrackingCode,
	}
}
