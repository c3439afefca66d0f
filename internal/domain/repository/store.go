package repository

import (
	"context"

	"github.com/eb-pro/procurement-api/internal/domain/entity"
)

// PageRequest parámetros de una lectura paginada. Inmutable por fetch.
type PageRequest struct {
	Page     int    // 1-based
	PageSize int    // fijo por vista
	Search   string // vacío = modo paginado por rango
}

// PageResult página de resultados en orden de almacenamiento.
//
// Con Search vacío, Total refleja el conteo de la columna clave de la hoja
// (exacto en el diseño corregido; el caller no debe asumir más que una cota).
// Con Search no vacío, Total es exactamente el conteo filtrado sin paginar.
type PageResult[T any] struct {
	Data  []T
	Total int
}

// ItemStore puerto de persistencia de artículos sobre la hoja de cálculo.
type ItemStore interface {
	List(ctx context.Context, req PageRequest) (PageResult[entity.Item], error)
	Create(ctx context.Context, item *entity.Item) error
	Update(ctx context.Context, item *entity.Item) error
}

// SupplierStore puerto de persistencia de proveedores.
type SupplierStore interface {
	List(ctx context.Context, req PageRequest) (PageResult[entity.Supplier], error)
	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, supplier *entity.Supplier) error
}

// CustomerStore puerto de persistencia de clientes.
type CustomerStore interface {
	List(ctx context.Context, req PageRequest) (PageResult[entity.Customer], error)
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
}

// OrderStore puerto de persistencia de órdenes de compra (solo encabezados).
type OrderStore interface {
	List(ctx context.Context, req PageRequest) (PageResult[entity.PurchaseOrder], error)
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	Update(ctx context.Context, order *entity.PurchaseOrder) error
}
