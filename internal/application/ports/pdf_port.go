package ports

import (
	"context"

	"github.com/eb-pro/procurement-api/internal/domain/entity"
)

// OrderPDFGenerator puerto de salida para la representación gráfica de una
// orden de compra. supplier puede ser nil si el proveedor ya no existe en
// la hoja; el generador debe degradar a los datos desnormalizados del
// encabezado.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.PurchaseOrder, supplier *entity.Supplier, profile *entity.CompanyProfile) ([]byte, error)
}
