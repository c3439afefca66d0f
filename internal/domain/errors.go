package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrAuthenticationRequired lo devuelven las escrituras cuando no hay
	// credencial activa. Las lecturas no lo producen: caen al dataset semilla.
	ErrAuthenticationRequired = errors.New("autenticación requerida para escribir en la hoja")

	// ErrMissingRowIndex indica un update sobre un registro sin índice de fila.
	// Siempre es un bug del caller (edición en modo búsqueda sin refetch).
	ErrMissingRowIndex = errors.New("índice de fila ausente: imposible actualizar")

	// ErrRangeRead falla transitoria del backend en lectura. El store la
	// absorbe devolviendo página vacía; no hay política de reintento.
	ErrRangeRead = errors.New("lectura de rango fallida")

	// ErrWriteFailed el backend rechazó la escritura (rango fuera de límites,
	// índice obsoleto, fallo de red). Se propaga siempre al caller.
	ErrWriteFailed = errors.New("escritura en la hoja fallida")

	// ErrAIGeneration fallo del servicio de IA. El caso de uso lo recupera
	// con un resumen mínimo determinista; nunca bloquea el dashboard.
	ErrAIGeneration = errors.New("generación IA fallida")

	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)
