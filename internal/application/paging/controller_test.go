package paging_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eb-pro/procurement-api/internal/application/paging"
	"github.com/eb-pro/procurement-api/internal/domain/repository"
)

const testDebounce = 40 * time.Millisecond

// fetchRecorder registra cada fetch emitido y permite forzar respuestas
// lentas o fallidas por página.
type fetchRecorder struct {
	mu      sync.Mutex
	calls   []string // "page=N search=S"
	delays  map[int]time.Duration
	failAll bool
}

func (f *fetchRecorder) fetch(_ context.Context, page, pageSize int, search string) (repository.PageResult[string], error) {
	f.mu.Lock()
	f.calls = append(f.calls, fmt.Sprintf("page=%d search=%s", page, search))
	delay := f.delays[page]
	fail := f.failAll
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if fail {
		return repository.PageResult[string]{}, errors.New("backend caido")
	}

	data := make([]string, 0, pageSize)
	for i := 0; i < pageSize; i++ {
		data = append(data, fmt.Sprintf("p%d-r%d-%s", page, i, search))
	}
	return repository.PageResult[string]{Data: data, Total: 100}, nil
}

func (f *fetchRecorder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fetchRecorder) lastCall() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1]
}

func waitIdle(t *testing.T, c *paging.Controller[string]) {
	t.Helper()
	require.Eventually(t, func() bool { return !c.State().Loading },
		2*time.Second, 5*time.Millisecond)
}

func TestSetPage_RefetchInmediato(t *testing.T) {
	rec := &fetchRecorder{delays: map[int]time.Duration{}}
	c := paging.New(rec.fetch, 10, paging.WithDebounce[string](testDebounce))

	c.Load()
	waitIdle(t, c)
	require.Equal(t, 1, rec.callCount())

	c.SetPage(3)
	waitIdle(t, c)
	assert.Equal(t, 2, rec.callCount())
	assert.Equal(t, "page=3 search=", rec.lastCall())

	st := c.State()
	assert.Equal(t, 3, st.Page)
	assert.Equal(t, 100, st.Total)
	assert.Equal(t, "p3-r0-", st.Data[0])
}

// Pulsaciones "a", "ab", "abc" dentro de la ventana de debounce: exactamente
// UN fetch, con el término final y la página reseteada a 1.
func TestSetSearch_ColapsoDeDebounce(t *testing.T) {
	rec := &fetchRecorder{delays: map[int]time.Duration{}}
	c := paging.New(rec.fetch, 10, paging.WithDebounce[string](testDebounce))

	c.SetPage(4)
	waitIdle(t, c)
	require.Equal(t, 1, rec.callCount())

	c.SetSearch("a")
	time.Sleep(testDebounce / 4)
	c.SetSearch("ab")
	time.Sleep(testDebounce / 4)
	c.SetSearch("abc")

	// El término visible se actualiza de inmediato, antes del refetch.
	assert.Equal(t, "abc", c.State().Search)

	require.Eventually(t, func() bool { return rec.callCount() == 2 },
		2*time.Second, 5*time.Millisecond)
	waitIdle(t, c)

	// Ventana de gracia: ningún fetch extra de los timers cancelados.
	time.Sleep(2 * testDebounce)
	assert.Equal(t, 2, rec.callCount(), "los timers supersedidos deben cancelarse")
	assert.Equal(t, "page=1 search=abc", rec.lastCall())
	assert.Equal(t, 1, c.State().Page)
}

// Fetch de página 1 lento, página 2 emitida después pero resuelta antes:
// el estado final muestra SIEMPRE la página 2, da igual el orden de llegada.
func TestRespuestaObsoletaSuprimida(t *testing.T) {
	rec := &fetchRecorder{delays: map[int]time.Duration{1: 120 * time.Millisecond}}
	c := paging.New(rec.fetch, 10, paging.WithDebounce[string](testDebounce))

	c.SetPage(1)
	time.Sleep(10 * time.Millisecond) // página 1 en vuelo
	c.SetPage(2)

	// Esperar a que AMBAS respuestas hayan llegado.
	time.Sleep(250 * time.Millisecond)

	st := c.State()
	assert.False(t, st.Loading)
	assert.Equal(t, 2, st.Page)
	require.NotEmpty(t, st.Data)
	assert.Equal(t, "p2-r0-", st.Data[0], "la respuesta tardía de la página 1 no debe pisar a la 2")
}

func TestErrorDeFetch_EstadoVisibleSinPropagar(t *testing.T) {
	rec := &fetchRecorder{delays: map[int]time.Duration{}, failAll: true}
	c := paging.New(rec.fetch, 10, paging.WithDebounce[string](testDebounce))

	c.Load()
	waitIdle(t, c)

	st := c.State()
	assert.Equal(t, "backend caido", st.Err)
	assert.Empty(t, st.Data)
	assert.Zero(t, st.Total)

	// Sin reintento automático.
	time.Sleep(2 * testDebounce)
	assert.Equal(t, 1, rec.callCount())
}

func TestRefresh_MantieneLaPagina(t *testing.T) {
	rec := &fetchRecorder{delays: map[int]time.Duration{}}
	c := paging.New(rec.fetch, 10, paging.WithDebounce[string](testDebounce))

	c.SetPage(5)
	waitIdle(t, c)
	c.Refresh()
	waitIdle(t, c)

	assert.Equal(t, 2, rec.callCount())
	assert.Equal(t, "page=5 search=", rec.lastCall())
	assert.Equal(t, 5, c.State().Page)
}

// Controladores independientes no comparten estado ni secuencia.
func TestControladoresIndependientes(t *testing.T) {
	recA := &fetchRecorder{delays: map[int]time.Duration{}}
	recB := &fetchRecorder{delays: map[int]time.Duration{}}
	a := paging.New(recA.fetch, 5, paging.WithDebounce[string](testDebounce))
	b := paging.New(recB.fetch, 7, paging.WithDebounce[string](testDebounce))

	a.SetPage(2)
	b.SetSearch("x")
	waitIdle(t, a)
	require.Eventually(t, func() bool { return recB.callCount() == 1 },
		2*time.Second, 5*time.Millisecond)
	waitIdle(t, b)

	assert.Equal(t, "page=2 search=", recA.lastCall())
	assert.Equal(t, "page=1 search=x", recB.lastCall())
	assert.Equal(t, 5, a.State().PageSize)
	assert.Equal(t, 7, b.State().PageSize)
}
