package entity

import "github.com/shopspring/decimal"

// Category clasifica los artículos por área productiva de la planta.
type Category string

const (
	CategoryIdraulica   Category = "Idraulica"
	CategoryCarpenteria Category = "Carpenteria"
	CategoryElettronica Category = "Elettronica"
	CategoryVerniciatura Category = "Verniciatura"
	CategorySaldatura   Category = "Saldatura"
	CategoryGenerico    Category = "Generico"
)

// Valid reporta si la categoría pertenece al conjunto conocido.
func (c Category) Valid() bool {
	switch c {
	case CategoryIdraulica, CategoryCarpenteria, CategoryElettronica,
		CategoryVerniciatura, CategorySaldatura, CategoryGenerico:
		return true
	}
	return false
}

// Item representa un artículo del inventario (hoja Articoli).
//
// RowIndex es la coordenada 1-based de la fila en la hoja. Vale 0 cuando el
// registro no proviene de una lectura por rango (búsqueda, registro nuevo);
// en ese caso el registro es de solo lectura hasta un refetch paginado.
// Las posiciones de fila pueden desplazarse si alguien edita la hoja por
// fuera del sistema; no hay token de concurrencia por fila.
type Item struct {
	SKU          string
	Name         string
	Category     Category
	Stock        int
	SafetyStock  int
	Cost         decimal.Decimal // costo unitario
	SupplierID   string          // referencia débil a Supplier.ID
	LeadTimeDays int
	RowIndex     int
}

// Supplier representa un proveedor calificado (hoja Fornitori).
type Supplier struct {
	ID           string
	Name         string
	Rating       decimal.Decimal // 1.0 – 5.0
	Email        string
	PaymentTerms string
	RowIndex     int
}

// Customer representa un cliente (hoja Clienti).
type Customer struct {
	ID           string
	Name         string
	Email        string
	VATNumber    string // Partita IVA
	Address      string
	Region       string
	PaymentTerms string
	RowIndex     int
}
