package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La capa HTTP los clasifica con errors.Is; los casos de uso los envuelven con
// fmt.Errorf("%w: ...") para añadir el motivo visible al usuario.
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrConflict     = errors.New("el recurso ya existe")
	ErrInternal     = errors.New("error interno")
)
