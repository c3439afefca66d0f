package usecase

import (
	"context"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/domain"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
	"github.com/eb-pro/procurement-api/internal/domain/repository"
)

// ItemUseCase casos de uso de artículos sobre el store de hoja de cálculo.
type ItemUseCase struct {
	store repository.ItemStore
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(store repository.ItemStore) *ItemUseCase {
	return &ItemUseCase{store: store}
}

// List lista artículos paginados, con búsqueda opcional por nombre o SKU.
func (uc *ItemUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.ItemListResponse, error) {
	q.Defaults()
	res, err := uc.store.List(ctx, repository.PageRequest{Page: q.Page, PageSize: q.PageSize, Search: q.Search})
	if err != nil {
		return nil, err
	}
	out := &dto.ItemListResponse{
		Data: make([]dto.ItemResponse, 0, len(res.Data)),
		Meta: dto.PageMeta{Page: q.Page, PageSize: q.PageSize, Total: res.Total},
	}
	for i := range res.Data {
		out.Data = append(out.Data, toItemResponse(&res.Data[i]))
	}
	return out, nil
}

// Create añade un artículo nuevo al final de la hoja.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.SaveItemRequest) error {
	item, err := itemFromRequest(in)
	if err != nil {
		return err
	}
	item.RowIndex = 0 // el backend asigna la posición
	return uc.store.Create(ctx, item)
}

// Update reemplaza la fila del artículo. Exige el row_index entregado por
// un listado paginado; el store rechaza registros sin índice.
func (uc *ItemUseCase) Update(ctx context.Context, in dto.SaveItemRequest) error {
	item, err := itemFromRequest(in)
	if err != nil {
		return err
	}
	item.RowIndex = in.RowIndex
	return uc.store.Update(ctx, item)
}

func itemFromRequest(in dto.SaveItemRequest) (*entity.Item, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.SafetyStock < 0 || in.LeadTimeDays < 0 || in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category := entity.Category(in.Category)
	if in.Category == "" {
		category = entity.CategoryGenerico
	} else if !category.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Item{
		SKU:          in.SKU,
		Name:         in.Name,
		Category:     category,
		Stock:        in.Stock,
		SafetyStock:  in.SafetyStock,
		Cost:         in.Cost,
		SupplierID:   in.SupplierID,
		LeadTimeDays: in.LeadTimeDays,
	}, nil
}

func toItemResponse(it *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		SKU:          it.SKU,
		Name:         it.Name,
		Category:     string(it.Category),
		Stock:        it.Stock,
		SafetyStock:  it.SafetyStock,
		Cost:         it.Cost,
		SupplierID:   it.SupplierID,
		LeadTimeDays: it.LeadTimeDays,
		RowIndex:     it.RowIndex,
	}
}
