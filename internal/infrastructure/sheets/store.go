// Package sheets implementa el acceso a datos maestros sobre Google Sheets:
// lecturas por rango paginadas, escaneo completo con filtro en modo
// búsqueda, escrituras por índice de fila y fallback semilla sin credencial.
// Es la única puerta de entrada al almacenamiento de entidades.
package sheets

import (
	"context"
	"fmt"

	"github.com/eb-pro/procurement-api/internal/domain"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
	"github.com/eb-pro/procurement-api/internal/domain/repository"
	"github.com/eb-pro/procurement-api/pkg/logger"
)

const defaultPageSize = 20

// Store accesor dual autenticado/no autenticado. La credencial se fotografía
// al inicio de cada operación (Session.Snapshot) y se usa durante toda la
// operación, aunque el sign-in cambie a mitad de camino.
type Store struct {
	client        RangeClient
	session       *Session
	spreadsheetID string
	log           *logger.Logger
}

// NewStore construye el accesor para una hoja de cálculo concreta.
func NewStore(client RangeClient, session *Session, spreadsheetID string, log *logger.Logger) *Store {
	return &Store{client: client, session: session, spreadsheetID: spreadsheetID, log: log}
}

// ── Esquemas por entidad ──────────────────────────────────────────────────────

// schema une layout de hoja, códec y campos buscables de una entidad.
type schema[T any] struct {
	sheet        string
	lastCol      string
	decode       func(row []string, rowIndex int) T
	encode       func(*T) []any
	rowIndex     func(*T) int
	searchFields func(*T) []string
}

var itemSchema = schema[entity.Item]{
	sheet:    SheetItems,
	lastCol:  lastColItems,
	decode:   decodeItem,
	encode:   encodeItem,
	rowIndex: func(it *entity.Item) int { return it.RowIndex },
	searchFields: func(it *entity.Item) []string {
		return []string{it.Name, it.SKU}
	},
}

var supplierSchema = schema[entity.Supplier]{
	sheet:    SheetSuppliers,
	lastCol:  lastColSuppliers,
	decode:   decodeSupplier,
	encode:   encodeSupplier,
	rowIndex: func(s *entity.Supplier) int { return s.RowIndex },
	searchFields: func(s *entity.Supplier) []string {
		return []string{s.Name}
	},
}

var customerSchema = schema[entity.Customer]{
	sheet:    SheetCustomers,
	lastCol:  lastColCustomers,
	decode:   decodeCustomer,
	encode:   encodeCustomer,
	rowIndex: func(c *entity.Customer) int { return c.RowIndex },
	searchFields: func(c *entity.Customer) []string {
		return []string{c.Name}
	},
}

var orderSchema = schema[entity.PurchaseOrder]{
	sheet:    SheetOrders,
	lastCol:  lastColOrders,
	decode:   decodeOrder,
	encode:   encodeOrder,
	rowIndex: func(o *entity.PurchaseOrder) int { return o.RowIndex },
	searchFields: func(o *entity.PurchaseOrder) []string {
		return []string{o.ID, o.SupplierName}
	},
}

// ── Vistas tipadas (puertos de repository) ────────────────────────────────────

// Items devuelve la vista tipada de artículos.
func (s *Store) Items() repository.ItemStore { return itemView{s} }

// Suppliers devuelve la vista tipada de proveedores.
func (s *Store) Suppliers() repository.SupplierStore { return supplierView{s} }

// Customers devuelve la vista tipada de clientes.
func (s *Store) Customers() repository.CustomerStore { return customerView{s} }

// Orders devuelve la vista tipada de órdenes de compra.
func (s *Store) Orders() repository.OrderStore { return orderView{s} }

type itemView struct{ s *Store }

func (v itemView) List(ctx context.Context, req repository.PageRequest) (repository.PageResult[entity.Item], error) {
	return list(ctx, v.s, itemSchema, req)
}
func (v itemView) Create(ctx context.Context, it *entity.Item) error {
	return create(ctx, v.s, itemSchema, it)
}
func (v itemView) Update(ctx context.Context, it *entity.Item) error {
	return update(ctx, v.s, itemSchema, it)
}

type supplierView struct{ s *Store }

func (v supplierView) List(ctx context.Context, req repository.PageRequest) (repository.PageResult[entity.Supplier], error) {
	return list(ctx, v.s, supplierSchema, req)
}
func (v supplierView) Create(ctx context.Context, sp *entity.Supplier) error {
	return create(ctx, v.s, supplierSchema, sp)
}
func (v supplierView) Update(ctx context.Context, sp *entity.Supplier) error {
	return update(ctx, v.s, supplierSchema, sp)
}

type customerView struct{ s *Store }

func (v customerView) List(ctx context.Context, req repository.PageRequest) (repository.PageResult[entity.Customer], error) {
	return list(ctx, v.s, customerSchema, req)
}
func (v customerView) Create(ctx context.Context, c *entity.Customer) error {
	return create(ctx, v.s, customerSchema, c)
}
func (v customerView) Update(ctx context.Context, c *entity.Customer) error {
	return update(ctx, v.s, customerSchema, c)
}

type orderView struct{ s *Store }

func (v orderView) List(ctx context.Context, req repository.PageRequest) (repository.PageResult[entity.PurchaseOrder], error) {
	return list(ctx, v.s, orderSchema, req)
}
func (v orderView) Create(ctx context.Context, o *entity.PurchaseOrder) error {
	return create(ctx, v.s, orderSchema, o)
}
func (v orderView) Update(ctx context.Context, o *entity.PurchaseOrder) error {
	return update(ctx, v.s, orderSchema, o)
}

// ── Lectura ───────────────────────────────────────────────────────────────────

// list algoritmo de lectura:
//
//  1. Search vacío: una sola lectura por rango de página; rowIndex =
//     filaInicial + offset; Total por conteo de la columna clave.
//  2. Search no vacío: lectura del rango completo, decodificación de todas
//     las filas, filtro substring insensible a mayúsculas/acentos y slicing
//     de página. Total = conteo filtrado exacto. Las filas NO llevan
//     rowIndex: un edit tras búsqueda exige refetch paginado.
//
// Los fallos de lectura del backend se absorben en página vacía con log
// (sin reintento); solo los errores de programación llegan al caller.
func list[T any](ctx context.Context, s *Store, sc schema[T], req repository.PageRequest) (repository.PageResult[T], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = defaultPageSize
	}

	token, authed := s.session.Snapshot()

	if req.Search != "" {
		return searchList(ctx, s, sc, req, token, authed)
	}

	// Modo paginado por rango.
	var rows [][]string
	startRow := pageStartRow(req.Page, req.PageSize)
	total := 0

	if !authed {
		all := seedRows(sc.sheet)
		total = len(all)
		rows = pageSlice(all, req.Page, req.PageSize)
	} else {
		var err error
		rows, err = s.client.Get(ctx, token, s.spreadsheetID, PageRange(sc.sheet, req.Page, req.PageSize, sc.lastCol))
		if err != nil {
			s.log.Warn().Err(err).Str("sheet", sc.sheet).Int("page", req.Page).
				Msg("lectura de rango fallida; página vacía")
			return repository.PageResult[T]{Data: []T{}, Total: 0}, nil
		}
		total = s.countRows(ctx, token, sc.sheet, startRow-2+len(rows))
	}

	data := make([]T, 0, len(rows))
	for i, row := range rows {
		data = append(data, sc.decode(row, startRow+i))
	}
	return repository.PageResult[T]{Data: data, Total: total}, nil
}

func searchList[T any](ctx context.Context, s *Store, sc schema[T], req repository.PageRequest, token string, authed bool) (repository.PageResult[T], error) {
	var rows [][]string
	if !authed {
		rows = seedRows(sc.sheet)
	} else {
		var err error
		rows, err = s.client.Get(ctx, token, s.spreadsheetID, FullRange(sc.sheet, sc.lastCol))
		if err != nil {
			s.log.Warn().Err(err).Str("sheet", sc.sheet).Str("search", req.Search).
				Msg("escaneo completo fallido; resultado vacío")
			return repository.PageResult[T]{Data: []T{}, Total: 0}, nil
		}
	}

	term := searchFold(req.Search)
	filtered := make([]T, 0, len(rows))
	for _, row := range rows {
		rec := sc.decode(row, 0) // sin rowIndex: solo lectura tras búsqueda
		if matchesSearch(term, sc.searchFields(&rec)...) {
			filtered = append(filtered, rec)
		}
	}

	return repository.PageResult[T]{
		Data:  pageSlice(filtered, req.Page, req.PageSize),
		Total: len(filtered),
	}, nil
}

// countRows conteo exacto de filas vía escaneo de la columna clave. Si el
// conteo falla se degrada al estimado conocido (filas vistas hasta ahora).
func (s *Store) countRows(ctx context.Context, token, sheet string, fallback int) int {
	keys, err := s.client.Get(ctx, token, s.spreadsheetID, KeyRange(sheet))
	if err != nil {
		s.log.Warn().Err(err).Str("sheet", sheet).Msg("conteo de filas fallido; usando estimado")
		return fallback
	}
	n := 0
	for _, row := range keys {
		if len(row) > 0 && row[0] != "" {
			n++
		}
	}
	return n
}

// pageSlice recorta la página 1-based de un slice ya materializado.
func pageSlice[T any](all []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(all) {
		return []T{}
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end:end]
}

// ── Escritura ─────────────────────────────────────────────────────────────────

// create añade la fila serializada completa al final del rango de la
// entidad. El cliente no conoce ni necesita un índice de fila: lo asigna el
// backend.
func create[T any](ctx context.Context, s *Store, sc schema[T], rec *T) error {
	token, authed := s.session.Snapshot()
	if !authed {
		return domain.ErrAuthenticationRequired
	}
	if err := s.client.Append(ctx, token, s.spreadsheetID, AppendRange(sc.sheet), sc.encode(rec)); err != nil {
		return fmt.Errorf("%w: append en %s: %v", domain.ErrWriteFailed, sc.sheet, err)
	}
	s.log.Info().Str("sheet", sc.sheet).Msg("fila añadida")
	return nil
}

// update reemplaza exactamente la fila rowIndex. Sin índice de fila el
// update falla ANTES de tocar el backend: nunca un no-op silencioso.
func update[T any](ctx context.Context, s *Store, sc schema[T], rec *T) error {
	rowIndex := sc.rowIndex(rec)
	if rowIndex <= 0 {
		return domain.ErrMissingRowIndex
	}
	token, authed := s.session.Snapshot()
	if !authed {
		return domain.ErrAuthenticationRequired
	}
	if err := s.client.Update(ctx, token, s.spreadsheetID, WriteRange(sc.sheet, rowIndex), sc.encode(rec)); err != nil {
		return fmt.Errorf("%w: fila %d de %s: %v", domain.ErrWriteFailed, rowIndex, sc.sheet, err)
	}
	s.log.Info().Str("sheet", sc.sheet).Int("row", rowIndex).Msg("fila actualizada")
	return nil
}
