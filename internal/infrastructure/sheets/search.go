package sheets

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// El filtro de búsqueda es substring, case-insensitive e insensible a
// acentos: los datos maestros italianos traen tildes ("Municipalità") que
// el usuario rara vez teclea.

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// searchFold normaliza un texto para comparación de búsqueda.
func searchFold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// matchesSearch reporta si alguno de los campos contiene el término.
// El término se asume ya normalizado con searchFold.
func matchesSearch(foldedTerm string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(searchFold(f), foldedTerm) {
			return true
		}
	}
	return false
}
