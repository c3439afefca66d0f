package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/application/usecase"
	"github.com/eb-pro/procurement-api/internal/domain"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
	"github.com/eb-pro/procurement-api/internal/domain/repository"
)

// recordingItemStore captura el último registro escrito.
type recordingItemStore struct {
	fakeItemStore
	created *entity.Item
	updated *entity.Item
}

func (r *recordingItemStore) Create(_ context.Context, it *entity.Item) error {
	r.created = it
	return nil
}

func (r *recordingItemStore) Update(_ context.Context, it *entity.Item) error {
	r.updated = it
	return nil
}

func validItem() dto.SaveItemRequest {
	return dto.SaveItemRequest{
		SKU:          "HYD-VAL-001",
		Name:         "Valvola a sfera 2\"",
		Category:     "Idraulica",
		Stock:        12,
		SafetyStock:  20,
		Cost:         decimal.NewFromInt(150),
		SupplierID:   "SUP-001",
		LeadTimeDays: 14,
	}
}

func TestItemCreate_Valido(t *testing.T) {
	store := &recordingItemStore{}
	uc := usecase.NewItemUseCase(store)

	require.NoError(t, uc.Create(context.Background(), validItem()))
	require.NotNil(t, store.created)
	assert.Equal(t, "HYD-VAL-001", store.created.SKU)
	assert.Equal(t, entity.CategoryIdraulica, store.created.Category)
	assert.Zero(t, store.created.RowIndex)
}

func TestItemCreate_Validacion(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.SaveItemRequest)
	}{
		{"sin sku", func(r *dto.SaveItemRequest) { r.SKU = "" }},
		{"sin nombre", func(r *dto.SaveItemRequest) { r.Name = "" }},
		{"stock negativo", func(r *dto.SaveItemRequest) { r.Stock = -1 }},
		{"scorta negativa", func(r *dto.SaveItemRequest) { r.SafetyStock = -5 }},
		{"costo negativo", func(r *dto.SaveItemRequest) { r.Cost = decimal.NewFromInt(-10) }},
		{"lead time negativo", func(r *dto.SaveItemRequest) { r.LeadTimeDays = -3 }},
		{"categoría desconocida", func(r *dto.SaveItemRequest) { r.Category = "Astrologia" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &recordingItemStore{}
			uc := usecase.NewItemUseCase(store)

			in := validItem()
			tc.mutate(&in)

			err := uc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, store.created)
		})
	}
}

func TestItemCreate_CategoriaVaciaCaeAGenerico(t *testing.T) {
	store := &recordingItemStore{}
	uc := usecase.NewItemUseCase(store)

	in := validItem()
	in.Category = ""
	require.NoError(t, uc.Create(context.Background(), in))
	assert.Equal(t, entity.CategoryGenerico, store.created.Category)
}

func TestItemUpdate_ConservaRowIndex(t *testing.T) {
	store := &recordingItemStore{}
	uc := usecase.NewItemUseCase(store)

	in := validItem()
	in.RowIndex = 7
	require.NoError(t, uc.Update(context.Background(), in))
	require.NotNil(t, store.updated)
	assert.Equal(t, 7, store.updated.RowIndex)
}

func TestItemList_MapeaMetaYFilas(t *testing.T) {
	store := &fakeItemStore{items: buildInventory(30)}
	uc := usecase.NewItemUseCase(store)

	out, err := uc.List(context.Background(), dto.PageQuery{Page: 2, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, 30, out.Meta.Total)
	assert.Equal(t, 2, out.Meta.Page)
	require.Len(t, out.Data, 10)
	assert.Equal(t, "SKU-10", out.Data[0].SKU)
}

var _ repository.ItemStore = (*recordingItemStore)(nil)
