package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todos se detectan antes de
// escribir nada: un error de estos nunca deja estado parcial.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrNegativeStock     = errors.New("el ajuste dejaría el stock negativo")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
