package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/application/usecase"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
	"github.com/eb-pro/procurement-api/internal/domain/repository"
)

// fakeItemStore sirve un inventario fijo y registra las peticiones de página
// recibidas.
type fakeItemStore struct {
	items    []entity.Item
	requests []repository.PageRequest
}

func (f *fakeItemStore) List(_ context.Context, req repository.PageRequest) (repository.PageResult[entity.Item], error) {
	f.requests = append(f.requests, req)
	start := (req.Page - 1) * req.PageSize
	end := start + req.PageSize
	if start > len(f.items) {
		start = len(f.items)
	}
	if end > len(f.items) {
		end = len(f.items)
	}
	return repository.PageResult[entity.Item]{Data: f.items[start:end], Total: len(f.items)}, nil
}

func (f *fakeItemStore) Create(context.Context, *entity.Item) error { return nil }
func (f *fakeItemStore) Update(context.Context, *entity.Item) error { return nil }

// inventario de 50 artículos donde cada tercero es faltante.
func buildInventory(n int) []entity.Item {
	items := make([]entity.Item, 0, n)
	for i := 0; i < n; i++ {
		stock, safety := 100, 50
		if i%3 == 0 {
			stock, safety = 5, 20
		}
		items = append(items, entity.Item{
			SKU:         fmt.Sprintf("SKU-%02d", i),
			Name:        fmt.Sprintf("Articolo %02d", i),
			Stock:       stock,
			SafetyStock: safety,
			Cost:        decimal.NewFromInt(10),
		})
	}
	return items
}

func TestMRPList_CalculaSobreElSetCompleto(t *testing.T) {
	store := &fakeItemStore{items: buildInventory(50)}
	uc := usecase.NewMRPUseCase(store)

	// Página 3 de 10: sin el fetch completo, los faltantes fuera de la
	// página visible se perderían.
	out, err := uc.List(context.Background(), dto.PageQuery{Page: 3, PageSize: 10})
	require.NoError(t, err)

	// Un único fetch, del inventario entero
	require.Len(t, store.requests, 1)
	assert.Equal(t, 1, store.requests[0].Page)
	assert.GreaterOrEqual(t, store.requests[0].PageSize, 50)

	// El total cuenta el set evaluado, no la página
	assert.Equal(t, 50, out.Meta.Total)
	assert.Len(t, out.Data, 10)

	// La página 3 empieza en el artículo 20; los índices múltiplos de 3
	// son faltantes con qty 15
	for i, r := range out.Data {
		idx := 20 + i
		assert.Equal(t, fmt.Sprintf("SKU-%02d", idx), r.Item.SKU)
		if idx%3 == 0 {
			assert.True(t, r.IsShortage, "SKU-%02d debe ser faltante", idx)
			assert.Equal(t, 15, r.QtyToOrder)
			assert.True(t, decimal.NewFromInt(150).Equal(r.EstimatedCost))
		} else {
			assert.False(t, r.IsShortage)
			assert.Equal(t, 0, r.QtyToOrder)
		}
	}
}

func TestMRPList_PaginaFueraDeRango(t *testing.T) {
	store := &fakeItemStore{items: buildInventory(5)}
	uc := usecase.NewMRPUseCase(store)

	out, err := uc.List(context.Background(), dto.PageQuery{Page: 4, PageSize: 20})
	require.NoError(t, err)

	assert.Empty(t, out.Data)
	assert.Equal(t, 5, out.Meta.Total)
}

func TestMRPList_PropagaLaBusqueda(t *testing.T) {
	store := &fakeItemStore{items: buildInventory(10)}
	uc := usecase.NewMRPUseCase(store)

	_, err := uc.List(context.Background(), dto.PageQuery{Page: 1, PageSize: 20, Search: "valvola"})
	require.NoError(t, err)

	require.Len(t, store.requests, 1)
	assert.Equal(t, "valvola", store.requests[0].Search)
}
