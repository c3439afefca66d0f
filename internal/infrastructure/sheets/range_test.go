package sheets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRange_Aritmetica(t *testing.T) {
	assert.Equal(t, "Articoli!A2:H21", PageRange("Articoli", 1, 20, "H"))
	assert.Equal(t, "Articoli!A22:H41", PageRange("Articoli", 2, 20, "H"))
	assert.Equal(t, "Fornitori!A2:E2", PageRange("Fornitori", 1, 1, "E"))
	assert.Equal(t, "Clienti!A12:G16", PageRange("Clienti", 3, 5, "G"))
}

// Páginas consecutivas: nunca se solapan ni saltan filas.
func TestPageRange_PaginasContiguas(t *testing.T) {
	for _, pageSize := range []int{1, 7, 20, 100} {
		prevEnd := 1 // fila de encabezado
		for page := 1; page <= 50; page++ {
			start := (page-1)*pageSize + 2
			end := start + pageSize - 1
			assert.Equal(t, prevEnd+1, start,
				"pageSize=%d page=%d: la página debe empezar en la fila siguiente", pageSize, page)
			assert.Equal(t,
				fmt.Sprintf("X!A%d:Z%d", start, end),
				PageRange("X", page, pageSize, "Z"))
			prevEnd = end
		}
	}
}

func TestWriteRange_FilaUnica(t *testing.T) {
	assert.Equal(t, "Articoli!A7", WriteRange("Articoli", 7))
	assert.Equal(t, "Fornitori!A2", WriteRange("Fornitori", 2))
}

func TestRangosAuxiliares(t *testing.T) {
	assert.Equal(t, "Articoli!A2:H", FullRange("Articoli", "H"))
	assert.Equal(t, "Articoli!A2:A", KeyRange("Articoli"))
	assert.Equal(t, "Articoli!A:A", AppendRange("Articoli"))
}
