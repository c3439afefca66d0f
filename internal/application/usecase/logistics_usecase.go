package usecase

import (
	"context"
	"strings"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
)

// LogisticsUseCase listado de eventos logísticos. Los eventos son la vista
// derivada de las órdenes en tránsito más las salidas de venta; hoy se sirven
// desde el set semilla con la misma semántica de filtro y corte que el resto
// de los listados.
type LogisticsUseCase struct {
	events []entity.LogisticsEvent
}

// NewLogisticsUseCase construye el caso de uso con el set semilla.
func NewLogisticsUseCase() *LogisticsUseCase {
	return &LogisticsUseCase{events: seedLogisticsEvents()}
}

// List filtra por referencia/courier/tracking y devuelve la página pedida.
func (uc *LogisticsUseCase) List(_ context.Context, q dto.PageQuery) (*dto.LogisticsListResponse, error) {
	q.Defaults()

	filtered := uc.events
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		filtered = make([]entity.LogisticsEvent, 0, len(uc.events))
		for _, ev := range uc.events {
			if strings.Contains(strings.ToLower(ev.ReferenceID), term) ||
				strings.Contains(strings.ToLower(ev.Courier), term) ||
				strings.Contains(strings.ToLower(ev.Tracking), term) {
				filtered = append(filtered, ev)
			}
		}
	}

	start := (q.Page - 1) * q.PageSize
	end := start + q.PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	out := &dto.LogisticsListResponse{
		Data: make([]dto.LogisticsEventResponse, 0, end-start),
		Meta: dto.PageMeta{Page: q.Page, PageSize: q.PageSize, Total: len(filtered)},
	}
	for _, ev := range filtered[start:end] {
		out.Data = append(out.Data, dto.LogisticsEventResponse{
			ID:          ev.ID,
			Type:        ev.Type,
			ReferenceID: ev.ReferenceID,
			Date:        ev.Date,
			Courier:     ev.Courier,
			Tracking:    ev.Tracking,
			Status:      ev.Status,
			ItemsCount:  ev.ItemsCount,
		})
	}
	return out, nil
}

func seedLogisticsEvents() []entity.LogisticsEvent {
	return []entity.LogisticsEvent{
		{ID: "LOG-001", Type: "INBOUND", ReferenceID: "PO-2023-1001", Date: "2023-11-02", Courier: "DHL Freight", Tracking: "DHL-998877", Status: "TRANSIT", ItemsCount: 120},
		{ID: "LOG-002", Type: "INBOUND", ReferenceID: "PO-2023-1002", Date: "2023-11-05", Courier: "Bartolini", Tracking: "BRT-112233", Status: "DELIVERED", ItemsCount: 40},
		{ID: "LOG-003", Type: "OUTBOUND", ReferenceID: "ORD-CL-551", Date: "2023-11-06", Courier: "GLS", Tracking: "GLS-445566", Status: "TRANSIT", ItemsCount: 12},
		{ID: "LOG-004", Type: "INBOUND", ReferenceID: "PO-2023-1004", Date: "2023-11-08", Courier: "DSV Road", Tracking: "DSV-778899", Status: "EXCEPTION", ItemsCount: 200},
		{ID: "LOG-005", Type: "OUTBOUND", ReferenceID: "ORD-CL-552", Date: "2023-11-09", Courier: "GLS", Tracking: "GLS-990011", Status: "DELIVERED", ItemsCount: 5},
		{ID: "LOG-006", Type: "INBOUND", ReferenceID: "PO-2023-1005", Date: "2023-11-12", Courier: "DHL Freight", Tracking: "DHL-224466", Status: "TRANSIT", ItemsCount: 75},
	}
}
