package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/domain"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
	"github.com/eb-pro/procurement-api/internal/domain/repository"
)

var (
	ratingMin = decimal.NewFromInt(1)
	ratingMax = decimal.NewFromInt(5)
)

// SupplierUseCase casos de uso de proveedores.
type SupplierUseCase struct {
	store repository.SupplierStore
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(store repository.SupplierStore) *SupplierUseCase {
	return &SupplierUseCase{store: store}
}

// List lista proveedores paginados, con búsqueda opcional por nombre.
func (uc *SupplierUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.SupplierListResponse, error) {
	q.Defaults()
	res, err := uc.store.List(ctx, repository.PageRequest{Page: q.Page, PageSize: q.PageSize, Search: q.Search})
	if err != nil {
		return nil, err
	}
	out := &dto.SupplierListResponse{
		Data: make([]dto.SupplierResponse, 0, len(res.Data)),
		Meta: dto.PageMeta{Page: q.Page, PageSize: q.PageSize, Total: res.Total},
	}
	for i := range res.Data {
		out.Data = append(out.Data, toSupplierResponse(&res.Data[i]))
	}
	return out, nil
}

// Create añade un proveedor; sin ID, se asigna uno en el servidor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SaveSupplierRequest) error {
	sup, err := supplierFromRequest(in)
	if err != nil {
		return err
	}
	if sup.ID == "" {
		sup.ID = "SUP-" + uuid.New().String()[:8]
	}
	return uc.store.Create(ctx, sup)
}

// Update reemplaza la fila del proveedor (exige row_index).
func (uc *SupplierUseCase) Update(ctx context.Context, in dto.SaveSupplierRequest) error {
	sup, err := supplierFromRequest(in)
	if err != nil {
		return err
	}
	if sup.ID == "" {
		return domain.ErrInvalidInput
	}
	sup.RowIndex = in.RowIndex
	return uc.store.Update(ctx, sup)
}

func supplierFromRequest(in dto.SaveSupplierRequest) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	// rating en [1,5]; 0 se admite como "sin calificar" en filas cortas
	if !in.Rating.IsZero() && (in.Rating.LessThan(ratingMin) || in.Rating.GreaterThan(ratingMax)) {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Supplier{
		ID:           in.ID,
		Name:         in.Name,
		Rating:       in.Rating,
		Email:        in.Email,
		PaymentTerms: in.PaymentTerms,
	}, nil
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:           s.ID,
		Name:         s.Name,
		Rating:       s.Rating,
		Email:        s.Email,
		PaymentTerms: s.PaymentTerms,
		RowIndex:     s.RowIndex,
	}
}
