package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/domain"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
	"github.com/eb-pro/procurement-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	store repository.CustomerStore
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(store repository.CustomerStore) *CustomerUseCase {
	return &CustomerUseCase{store: store}
}

// List lista clientes paginados, con búsqueda opcional por nombre.
func (uc *CustomerUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.CustomerListResponse, error) {
	q.Defaults()
	res, err := uc.store.List(ctx, repository.PageRequest{Page: q.Page, PageSize: q.PageSize, Search: q.Search})
	if err != nil {
		return nil, err
	}
	out := &dto.CustomerListResponse{
		Data: make([]dto.CustomerResponse, 0, len(res.Data)),
		Meta: dto.PageMeta{Page: q.Page, PageSize: q.PageSize, Total: res.Total},
	}
	for i := range res.Data {
		out.Data = append(out.Data, toCustomerResponse(&res.Data[i]))
	}
	return out, nil
}

// Create añade un cliente; sin ID, se asigna uno en el servidor.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.SaveCustomerRequest) error {
	c, err := customerFromRequest(in)
	if err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = "CUST-" + uuid.New().String()[:8]
	}
	return uc.store.Create(ctx, c)
}

// Update reemplaza la fila del cliente (exige row_index).
func (uc *CustomerUseCase) Update(ctx context.Context, in dto.SaveCustomerRequest) error {
	c, err := customerFromRequest(in)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return domain.ErrInvalidInput
	}
	c.RowIndex = in.RowIndex
	return uc.store.Update(ctx, c)
}

func customerFromRequest(in dto.SaveCustomerRequest) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Customer{
		ID:           in.ID,
		Name:         in.Name,
		Email:        in.Email,
		VATNumber:    in.VATNumber,
		Address:      in.Address,
		Region:       in.Region,
		PaymentTerms: in.PaymentTerms,
	}, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		VATNumber:    c.VATNumber,
		Address:      c.Address,
		Region:       c.Region,
		PaymentTerms: c.PaymentTerms,
		RowIndex:     c.RowIndex,
	}
}
