// Package paging implementa el controlador genérico de consultas paginadas
// con búsqueda debounced, reutilizable por cualquier entidad: es el espejo
// servidor del hook de paginación de la SPA, pensado para clientes Go
// embebidos (TUIs, workers de exportación) que mantienen estado de página.
package paging

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eb-pro/procurement-api/internal/domain/repository"
)

// DefaultDebounce retardo de búsqueda medido desde la última pulsación.
const DefaultDebounce = 400 * time.Millisecond

// FetchFunc función de fetch que el controlador enlaza a su estado.
type FetchFunc[T any] func(ctx context.Context, page, pageSize int, search string) (repository.PageResult[T], error)

// Snapshot estado observable del controlador en un instante.
type Snapshot[T any] struct {
	Data     []T
	Total    int
	Page     int
	PageSize int
	Search   string
	Loading  bool
	Err      string
}

// Controller controlador de página/búsqueda sobre una FetchFunc.
//
// Contrato de concurrencia: los fetch en vuelo no se cancelan, pero gana
// siempre la resolución del último fetch emitido: cada fetch lleva un id
// monótono y su resultado solo se aplica si sigue siendo el más reciente.
// Solo puede existir un timer de búsqueda pendiente por instancia; cada
// pulsación cancela el anterior (no basta con ignorarlo: evitamos llamadas
// de red redundantes).
type Controller[T any] struct {
	fetch    FetchFunc[T]
	pageSize int
	debounce time.Duration
	ctx      context.Context

	seq atomic.Uint64 // id del último fetch emitido

	mu      sync.Mutex
	page    int
	search  string
	data    []T
	total   int
	loading bool
	errMsg  string
	timer   *time.Timer // único slot: el timer de búsqueda pendiente
}

// Option configura el controlador en construcción.
type Option[T any] func(*Controller[T])

// WithDebounce cambia el retardo de búsqueda (tests).
func WithDebounce[T any](d time.Duration) Option[T] {
	return func(c *Controller[T]) { c.debounce = d }
}

// WithContext fija el contexto base de los fetch.
func WithContext[T any](ctx context.Context) Option[T] {
	return func(c *Controller[T]) { c.ctx = ctx }
}

// New construye el controlador. pageSize queda fijo para toda la vida de la
// instancia. No emite ningún fetch hasta la primera operación.
func New[T any](fetch FetchFunc[T], pageSize int, opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		fetch:    fetch,
		pageSize: pageSize,
		debounce: DefaultDebounce,
		ctx:      context.Background(),
		page:     1,
		data:     []T{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load emite el fetch inicial en el estado actual (página 1, sin búsqueda).
func (c *Controller[T]) Load() { c.Refresh() }

// SetPage cambia de página y refetchea de inmediato con la búsqueda vigente.
func (c *Controller[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.page = page
	c.mu.Unlock()
	c.issueFetch()
}

// SetSearch actualiza el término visible de inmediato (respuesta del input)
// y programa el refetch con debounce; el refetch resetea la página a 1.
func (c *Controller[T]) SetSearch(term string) {
	c.mu.Lock()
	c.search = term
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.mu.Lock()
		c.page = 1
		c.mu.Unlock()
		c.issueFetch()
	})
	c.mu.Unlock()
}

// Refresh refetchea el estado actual sin resetear la página; para después
// de mutaciones externas (guardar un registro, sign-in).
func (c *Controller[T]) Refresh() { c.issueFetch() }

// State devuelve una foto del estado observable.
func (c *Controller[T]) State() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot[T]{
		Data:     c.data,
		Total:    c.total,
		Page:     c.page,
		PageSize: c.pageSize,
		Search:   c.search,
		Loading:  c.loading,
		Err:      c.errMsg,
	}
}

// issueFetch emite un fetch asíncrono etiquetado con el siguiente id de la
// secuencia; al resolver, el resultado se aplica solo si el id sigue siendo
// el último emitido (supresión de respuestas obsoletas).
func (c *Controller[T]) issueFetch() {
	id := c.seq.Add(1)

	c.mu.Lock()
	page, search := c.page, c.search
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	go func() {
		res, err := c.fetch(c.ctx, page, c.pageSize, search)
		c.apply(id, res, err)
	}()
}

func (c *Controller[T]) apply(id uint64, res repository.PageResult[T], err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id != c.seq.Load() {
		return // respuesta obsoleta: un fetch más nuevo ya fue emitido
	}
	c.loading = false
	if err != nil {
		// El error no se propaga ni se reintenta: estado visible y lista vacía.
		c.errMsg = err.Error()
		c.data = []T{}
		c.total = 0
		return
	}
	c.data = res.Data
	c.total = res.Total
}
