package sheets

import "fmt"

// Direccionamiento A1 sobre hojas con una única fila de encabezado: los
// datos empiezan en la fila 2. La aritmética es exacta y sin clamping; pedir
// una página más allá de los datos disponibles simplemente lee menos filas.

// PageRange devuelve el rango contiguo de la página 1-based indicada.
// Página 1 con tamaño 20 → "Hoja!A2:H21"; página 2 → "Hoja!A22:H41".
func PageRange(sheet string, page, pageSize int, lastCol string) string {
	startRow := (page-1)*pageSize + 2
	endRow := startRow + pageSize - 1
	return fmt.Sprintf("%s!A%d:%s%d", sheet, startRow, lastCol, endRow)
}

// WriteRange devuelve la dirección de escritura de una sola fila. rowIndex
// es la misma coordenada 1-based de la hoja, no un offset de página.
func WriteRange(sheet string, rowIndex int) string {
	return fmt.Sprintf("%s!A%d", sheet, rowIndex)
}

// FullRange devuelve el rango completo de datos de la entidad (modo búsqueda).
func FullRange(sheet, lastCol string) string {
	return fmt.Sprintf("%s!A2:%s", sheet, lastCol)
}

// KeyRange devuelve la columna clave completa, usada para el conteo exacto
// de filas en modo paginado.
func KeyRange(sheet string) string {
	return fmt.Sprintf("%s!A2:A", sheet)
}

// AppendRange devuelve el rango de append; el backend asigna la posición real.
func AppendRange(sheet string) string {
	return fmt.Sprintf("%s!A:A", sheet)
}

// pageStartRow fila de la hoja donde empieza la página (encabezado en fila 1).
func pageStartRow(page, pageSize int) int {
	return (page-1)*pageSize + 2
}
