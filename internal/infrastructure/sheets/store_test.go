package sheets_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eb-pro/procurement-api/internal/domain"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
	"github.com/eb-pro/procurement-api/internal/domain/repository"
	"github.com/eb-pro/procurement-api/internal/infrastructure/sheets"
	"github.com/eb-pro/procurement-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// fakeBackend: backend de hoja en memoria que interpreta los rangos A1 que
// usa el store. Cuenta las llamadas para verificar qué NO se invoca.
// ──────────────────────────────────────────────────────────────────────────────

type fakeBackend struct {
	mu      sync.Mutex
	data    map[string][][]string // sheet -> filas de datos (fila 2 = índice 0)
	getErr  error
	writeErr error

	gets    int
	updates []string // rangos de update recibidos
	appends []string // rangos de append recibidos
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{data: map[string][][]string{}}
}

func (f *fakeBackend) Get(_ context.Context, _, _, rangeA1 string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}

	sheet, spec, ok := strings.Cut(rangeA1, "!")
	if !ok {
		return nil, fmt.Errorf("rango inválido: %s", rangeA1)
	}
	rows := f.data[sheet]

	switch {
	case spec == "A2:A": // columna clave
		keys := make([][]string, 0, len(rows))
		for _, r := range rows {
			if len(r) > 0 {
				keys = append(keys, []string{r[0]})
			} else {
				keys = append(keys, []string{})
			}
		}
		return keys, nil
	case strings.Count(spec, ":") == 1 && !hasDigit(spec[strings.Index(spec, ":")+1:]):
		// "A2:H" → rango completo
		return rows, nil
	default:
		// "A<start>:<col><end>" → ventana de página
		start, end, err := parseWindow(spec)
		if err != nil {
			return nil, err
		}
		lo, hi := start-2, end-1 // índices 0-based, hi exclusivo
		if lo >= len(rows) {
			return [][]string{}, nil
		}
		if hi > len(rows) {
			hi = len(rows)
		}
		return rows[lo:hi], nil
	}
}

func (f *fakeBackend) Update(_ context.Context, _, _, rangeA1 string, row []any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.updates = append(f.updates, rangeA1)

	sheet, spec, _ := strings.Cut(rangeA1, "!")
	rowIndex, err := strconv.Atoi(strings.TrimPrefix(spec, "A"))
	if err != nil {
		return fmt.Errorf("rango de update inválido: %s", rangeA1)
	}
	idx := rowIndex - 2
	if idx < 0 || idx >= len(f.data[sheet]) {
		return fmt.Errorf("fila %d fuera de rango", rowIndex)
	}
	f.data[sheet][idx] = toStrings(row)
	return nil
}

func (f *fakeBackend) Append(_ context.Context, _, _, rangeA1 string, row []any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.appends = append(f.appends, rangeA1)
	sheet, _, _ := strings.Cut(rangeA1, "!")
	f.data[sheet] = append(f.data[sheet], toStrings(row))
	return nil
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func parseWindow(spec string) (start, end int, err error) {
	lhs, rhs, _ := strings.Cut(spec, ":")
	start, err = strconv.Atoi(strings.TrimPrefix(lhs, "A"))
	if err != nil {
		return 0, 0, err
	}
	end, err = strconv.Atoi(strings.TrimLeft(rhs, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
	return start, end, err
}

func toStrings(row []any) []string {
	out := make([]string, 0, len(row))
	for _, v := range row {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

// itemRow construye una fila de Articoli con los campos relevantes.
func itemRow(sku, name string, stock, safety int) []string {
	return []string{sku, name, "Generico", strconv.Itoa(stock), strconv.Itoa(safety), "10", "SUP-01", "7"}
}

func newStore(t *testing.T, backend *fakeBackend, authed bool) (*sheets.Store, *sheets.Session) {
	t.Helper()
	session := sheets.NewSession()
	if authed {
		session.Activate("tok-valido", 0)
	}
	return sheets.NewStore(backend, session, "sheet-id-test", logger.Nop()), session
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura paginada
// ──────────────────────────────────────────────────────────────────────────────

func TestList_PaginadoConIndicesDeFila(t *testing.T) {
	backend := newFakeBackend()
	for i := 1; i <= 45; i++ {
		backend.data[sheets.SheetItems] = append(backend.data[sheets.SheetItems],
			itemRow(fmt.Sprintf("SKU-%02d", i), fmt.Sprintf("Articolo %02d", i), i, 0))
	}
	store, _ := newStore(t, backend, true)

	res, err := store.Items().List(context.Background(), repository.PageRequest{Page: 2, PageSize: 20})
	require.NoError(t, err)
	require.Len(t, res.Data, 20)
	assert.Equal(t, 45, res.Total, "total exacto vía conteo de columna clave")

	// La página 2 empieza en el artículo 21 y en la fila 22 de la hoja.
	assert.Equal(t, "SKU-21", res.Data[0].SKU)
	assert.Equal(t, 22, res.Data[0].RowIndex)
	assert.Equal(t, 41, res.Data[19].RowIndex)
}

func TestList_PaginaMasAllaDeLosDatos(t *testing.T) {
	backend := newFakeBackend()
	backend.data[sheets.SheetItems] = [][]string{itemRow("SKU-1", "Unico", 1, 0)}
	store, _ := newStore(t, backend, true)

	res, err := store.Items().List(context.Background(), repository.PageRequest{Page: 9, PageSize: 20})
	require.NoError(t, err)
	assert.Empty(t, res.Data, "página fuera de rango lee cero filas, sin error")
	assert.Equal(t, 1, res.Total)
}

func TestList_ErrorDeLecturaAbsorbido(t *testing.T) {
	backend := newFakeBackend()
	backend.getErr = errors.New("backend caido")
	store, _ := newStore(t, backend, true)

	res, err := store.Items().List(context.Background(), repository.PageRequest{Page: 1, PageSize: 20})
	require.NoError(t, err, "los fallos de lectura se degradan, no se propagan")
	assert.Empty(t, res.Data)
	assert.Zero(t, res.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestList_BusquedaFiltraYPagina(t *testing.T) {
	backend := newFakeBackend()
	for i := 1; i <= 30; i++ {
		name := fmt.Sprintf("Bullone M%d", i)
		if i%3 == 0 {
			name = fmt.Sprintf("Valvola V%d", i)
		}
		backend.data[sheets.SheetItems] = append(backend.data[sheets.SheetItems],
			itemRow(fmt.Sprintf("SKU-%02d", i), name, i, 0))
	}
	store, _ := newStore(t, backend, true)
	ctx := context.Background()

	// 10 "Valvola"; con pageSize 4: páginas de 4, 4 y 2. La partición es
	// exacta: sin duplicados ni omisiones, y Total == conteo filtrado.
	seen := map[string]int{}
	got := 0
	for page := 1; page <= 3; page++ {
		res, err := store.Items().List(ctx, repository.PageRequest{Page: page, PageSize: 4, Search: "valvola"})
		require.NoError(t, err)
		assert.Equal(t, 10, res.Total)
		got += len(res.Data)
		for _, it := range res.Data {
			seen[it.SKU]++
			assert.Contains(t, it.Name, "Valvola")
			assert.Zero(t, it.RowIndex, "las filas de búsqueda no llevan índice de fila")
		}
	}
	assert.Equal(t, 10, got)
	for sku, n := range seen {
		assert.Equal(t, 1, n, "SKU %s apareció en más de una página", sku)
	}
}

func TestList_BusquedaInsensibleAMayusculasYAcentos(t *testing.T) {
	backend := newFakeBackend()
	store, _ := newStore(t, backend, false) // semilla

	res, err := store.Customers().List(context.Background(),
		repository.PageRequest{Page: 1, PageSize: 20, Search: "municipalita"})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Municipalità di Milano", res.Data[0].Name)
	assert.Equal(t, 1, res.Total)
}

func TestList_BusquedaPorSKU(t *testing.T) {
	backend := newFakeBackend()
	backend.data[sheets.SheetItems] = [][]string{
		itemRow("HYD-VAL-001", "Valvola", 1, 0),
		itemRow("STL-PLT-5MM", "Piastra", 1, 0),
	}
	store, _ := newStore(t, backend, true)

	res, err := store.Items().List(context.Background(),
		repository.PageRequest{Page: 1, PageSize: 20, Search: "stl-plt"})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "STL-PLT-5MM", res.Data[0].SKU)
}

// ──────────────────────────────────────────────────────────────────────────────
// Paridad semilla/vivo
// ──────────────────────────────────────────────────────────────────────────────

func TestList_ParidadSemillaVivo(t *testing.T) {
	// El backend vivo contiene exactamente las filas semilla.
	backend := newFakeBackend()
	backend.data[sheets.SheetItems] = append([][]string{}, seedItemRows()...)

	live, _ := newStore(t, backend, true)
	mock, _ := newStore(t, newFakeBackend(), false)
	ctx := context.Background()
	req := repository.PageRequest{Page: 1, PageSize: 2}

	liveRes, err := live.Items().List(ctx, req)
	require.NoError(t, err)
	mockRes, err := mock.Items().List(ctx, req)
	require.NoError(t, err)

	require.Len(t, liveRes.Data, 2)
	require.Len(t, mockRes.Data, 2)
	for i := range liveRes.Data {
		l, m := liveRes.Data[i], mockRes.Data[i]
		assert.Equal(t, l.SKU, m.SKU)
		assert.Equal(t, l.Name, m.Name)
		assert.Equal(t, l.Stock, m.Stock)
		assert.True(t, l.Cost.Equal(m.Cost))
		// Índices de fila internamente consistentes en ambos modos.
		assert.Equal(t, i+2, l.RowIndex)
		assert.Equal(t, i+2, m.RowIndex)
	}
}

// seedItemRows réplica de las filas semilla de artículos para el backend falso.
func seedItemRows() [][]string {
	return [][]string{
		{"HYD-VAL-001", "Valvola Controllo Flusso", "Idraulica", "12", "20", "150", "SUP-01", "7"},
		{"STL-PLT-5MM", "Piastra Acciaio 5mm", "Carpenteria", "500", "200", "45", "SUP-02", "7"},
		{"ELC-PLC-X2", "Centralina PLC Veicolare", "Elettronica", "5", "10", "800", "SUP-03", "7"},
		{"PNT-YEL-RAL", "Vernice Gialla RAL1023", "Verniciatura", "50", "40", "20", "SUP-04", "7"},
		{"WLD-ROD-X1", "Elettrodi Saldatura Inox", "Saldatura", "1000", "500", "0.5", "SUP-02", "7"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escritura
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SinIndiceDeFila(t *testing.T) {
	backend := newFakeBackend()
	store, _ := newStore(t, backend, true)

	item := &entity.Item{SKU: "X", Name: "Sin indice", Cost: decimal.Zero}
	err := store.Items().Update(context.Background(), item)

	require.ErrorIs(t, err, domain.ErrMissingRowIndex)
	assert.Empty(t, backend.updates, "no debe emitirse ninguna escritura al backend")
	assert.Zero(t, backend.gets)
}

func TestUpdate_ReemplazaExactamenteUnaFila(t *testing.T) {
	backend := newFakeBackend()
	backend.data[sheets.SheetItems] = [][]string{
		itemRow("SKU-1", "Viejo", 1, 0),
		itemRow("SKU-2", "Intacto", 2, 0),
	}
	store, _ := newStore(t, backend, true)

	item := &entity.Item{
		SKU: "SKU-1", Name: "Nuevo nome", Category: entity.CategoryGenerico,
		Stock: 9, SafetyStock: 4, Cost: decimal.NewFromInt(10),
		SupplierID: "SUP-01", LeadTimeDays: 7, RowIndex: 2,
	}
	require.NoError(t, store.Items().Update(context.Background(), item))

	require.Equal(t, []string{"Articoli!A2"}, backend.updates)
	assert.Equal(t, "Nuevo nome", backend.data[sheets.SheetItems][0][1])
	assert.Equal(t, "Intacto", backend.data[sheets.SheetItems][1][1], "la fila vecina no se toca")
}

func TestUpdate_RechazoDelBackend(t *testing.T) {
	backend := newFakeBackend()
	backend.writeErr = errors.New("rango fuera de la hoja")
	store, _ := newStore(t, backend, true)

	item := &entity.Item{SKU: "X", Cost: decimal.Zero, RowIndex: 999}
	err := store.Items().Update(context.Background(), item)
	require.ErrorIs(t, err, domain.ErrWriteFailed)
}

func TestCreate_AppendSinIndice(t *testing.T) {
	backend := newFakeBackend()
	store, _ := newStore(t, backend, true)

	sup := &entity.Supplier{ID: "SUP-09", Name: "Nuovo Fornitore", Rating: decimal.NewFromFloat(4.1)}
	require.NoError(t, store.Suppliers().Create(context.Background(), sup))

	require.Equal(t, []string{"Fornitori!A:A"}, backend.appends)
	require.Len(t, backend.data[sheets.SheetSuppliers], 1)
	assert.Equal(t, "SUP-09", backend.data[sheets.SheetSuppliers][0][0])
}

func TestEscrituras_SinCredencial(t *testing.T) {
	backend := newFakeBackend()
	store, _ := newStore(t, backend, false)
	ctx := context.Background()

	err := store.Items().Create(ctx, &entity.Item{SKU: "X", Cost: decimal.Zero})
	require.ErrorIs(t, err, domain.ErrAuthenticationRequired)

	err = store.Items().Update(ctx, &entity.Item{SKU: "X", Cost: decimal.Zero, RowIndex: 2})
	require.ErrorIs(t, err, domain.ErrAuthenticationRequired)

	assert.Empty(t, backend.appends)
	assert.Empty(t, backend.updates)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_CicloDeVida(t *testing.T) {
	s := sheets.NewSession()
	assert.Equal(t, sheets.SessionUnset, s.State())
	_, ok := s.Snapshot()
	assert.False(t, ok)

	s.BeginSignIn()
	assert.Equal(t, sheets.SessionPending, s.State())
	_, ok = s.Snapshot()
	assert.False(t, ok, "durante el sign-in no hay credencial utilizable")

	s.Activate("tok", 0)
	tok, ok := s.Snapshot()
	assert.True(t, ok)
	assert.Equal(t, "tok", tok)

	s.Clear()
	_, ok = s.Snapshot()
	assert.False(t, ok)
}

func TestSession_Expiracion(t *testing.T) {
	s := sheets.NewSession()
	s.Activate("tok", -time.Millisecond) // ya vencido
	_, ok := s.Snapshot()
	assert.False(t, ok)
	assert.Equal(t, sheets.SessionExpired, s.State())
}
