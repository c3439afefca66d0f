package usecase

import (
	"context"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/domain/mrp"
	"github.com/eb-pro/procurement-api/internal/domain/repository"
)

// mrpFetchSize tamaño del fetch completo para MRP. La condición de faltante
// necesita el inventario entero, nunca una página.
const mrpFetchSize = 1000

// MRPUseCase calcula los faltantes sobre el set completo de artículos y
// pagina DESPUÉS el resultado para la vista. Invertir ese orden (paginar y
// luego calcular) corrompe la detección para todo artículo fuera de la
// página visible.
type MRPUseCase struct {
	items repository.ItemStore
}

// NewMRPUseCase construye el caso de uso.
func NewMRPUseCase(items repository.ItemStore) *MRPUseCase {
	return &MRPUseCase{items: items}
}

// List devuelve la página pedida de resultados MRP. La búsqueda restringe
// el universo de artículos evaluados (mismo filtro que el listado maestro);
// Meta.Total cuenta todos los artículos evaluados.
func (uc *MRPUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.MRPListResponse, error) {
	q.Defaults()

	// Fetch completo: página 1 con tamaño mrpFetchSize.
	res, err := uc.items.List(ctx, repository.PageRequest{Page: 1, PageSize: mrpFetchSize, Search: q.Search})
	if err != nil {
		return nil, err
	}

	results := mrp.Compute(res.Data)

	// Paginación sobre el resultado calculado.
	start := (q.Page - 1) * q.PageSize
	end := start + q.PageSize
	if start > len(results) {
		start = len(results)
	}
	if end > len(results) {
		end = len(results)
	}

	out := &dto.MRPListResponse{
		Data: make([]dto.MRPRowResponse, 0, end-start),
		Meta: dto.PageMeta{Page: q.Page, PageSize: q.PageSize, Total: len(results)},
	}
	for _, r := range results[start:end] {
		out.Data = append(out.Data, dto.MRPRowResponse{
			Item:          toItemResponse(&r.Item),
			IsShortage:    r.IsShortage,
			QtyToOrder:    r.QtyToOrder,
			EstimatedCost: r.EstimatedCost,
		})
	}
	return out, nil
}
