package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/application/ports"
	"github.com/eb-pro/procurement-api/internal/domain"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
	"github.com/eb-pro/procurement-api/internal/domain/repository"
)

// lookupFetchSize tamaño de fetch para resoluciones por ID (orden, proveedor).
const lookupFetchSize = 1000

// OrderUseCase casos de uso de órdenes de compra: listado, alta, cambio de
// estado y exportación PDF.
type OrderUseCase struct {
	orders    repository.OrderStore
	suppliers repository.SupplierStore
	pdf       ports.OrderPDFGenerator
	profile   entity.CompanyProfile
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderStore, suppliers repository.SupplierStore, pdf ports.OrderPDFGenerator, profile entity.CompanyProfile) *OrderUseCase {
	return &OrderUseCase{orders: orders, suppliers: suppliers, pdf: pdf, profile: profile}
}

// List lista órdenes paginadas, con búsqueda por número PO o proveedor.
func (uc *OrderUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.OrderListResponse, error) {
	q.Defaults()
	res, err := uc.orders.List(ctx, repository.PageRequest{Page: q.Page, PageSize: q.PageSize, Search: q.Search})
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Data: make([]dto.OrderResponse, 0, len(res.Data)),
		Meta: dto.PageMeta{Page: q.Page, PageSize: q.PageSize, Total: res.Total},
	}
	for i := range res.Data {
		out.Data = append(out.Data, toOrderResponse(&res.Data[i]))
	}
	return out, nil
}

// Create añade una orden; sin ID se genera un número PO con el año en curso.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.SaveOrderRequest) error {
	order, err := orderFromRequest(in)
	if err != nil {
		return err
	}
	if order.ID == "" {
		order.ID = fmt.Sprintf("PO-%d-%s", time.Now().Year(), uuid.New().String()[:6])
	}
	if order.Date == "" {
		order.Date = time.Now().Format("2006-01-02")
	}
	if order.Status == "" {
		order.Status = entity.OrderDraft
	}
	return uc.orders.Create(ctx, order)
}

// Update reemplaza el encabezado de la orden (exige row_index).
func (uc *OrderUseCase) Update(ctx context.Context, in dto.SaveOrderRequest) error {
	order, err := orderFromRequest(in)
	if err != nil {
		return err
	}
	if order.ID == "" {
		return domain.ErrInvalidInput
	}
	order.RowIndex = in.RowIndex
	return uc.orders.Update(ctx, order)
}

// ExportPDF genera la representación gráfica de la orden indicada.
// La orden se resuelve por número PO vía búsqueda (las filas de búsqueda son
// de solo lectura, suficiente para el render); el proveedor igual, y puede
// faltar: el PDF degrada al nombre desnormalizado del encabezado.
func (uc *OrderUseCase) ExportPDF(ctx context.Context, orderID string) ([]byte, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	res, err := uc.orders.List(ctx, repository.PageRequest{Page: 1, PageSize: lookupFetchSize, Search: orderID})
	if err != nil {
		return nil, err
	}
	var order *entity.PurchaseOrder
	for i := range res.Data {
		if res.Data[i].ID == orderID {
			order = &res.Data[i]
			break
		}
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	var supplier *entity.Supplier
	if order.SupplierName != "" || order.SupplierID != "" {
		sres, serr := uc.suppliers.List(ctx, repository.PageRequest{Page: 1, PageSize: lookupFetchSize, Search: order.SupplierName})
		if serr == nil {
			for i := range sres.Data {
				if sres.Data[i].ID == order.SupplierID {
					supplier = &sres.Data[i]
					break
				}
			}
		}
	}

	return uc.pdf.GenerateOrderPDF(ctx, order, supplier, &uc.profile)
}

func orderFromRequest(in dto.SaveOrderRequest) (*entity.PurchaseOrder, error) {
	if in.SupplierID == "" && in.SupplierName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TotalAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	status := entity.OrderStatus(in.Status)
	switch status {
	case "", entity.OrderDraft, entity.OrderSent, entity.OrderConfirmed,
		entity.OrderShipped, entity.OrderReceived, entity.OrderPartial, entity.OrderCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}
	return &entity.PurchaseOrder{
		ID:               in.ID,
		Date:             in.Date,
		SupplierID:       in.SupplierID,
		SupplierName:     in.SupplierName,
		Status:           status,
		TotalAmount:      in.TotalAmount,
		ExpectedDelivery: in.ExpectedDelivery,
		TrackingCode:     in.TrackingCode,
	}, nil
}

func toOrderResponse(o *entity.PurchaseOrder) dto.OrderResponse {
	return dto.OrderResponse{
		ID:               o.ID,
		Date:             o.Date,
		SupplierID:       o.SupplierID,
		SupplierName:     o.SupplierName,
		Status:           string(o.Status),
		TotalAmount:      o.TotalAmount,
		ExpectedDelivery: o.ExpectedDelivery,
		TrackingCode:     o.TrackingCode,
		RowIndex:         o.RowIndex,
	}
}
