package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado        = errors.New("recurso no encontrado")
	ErrValidacion          = errors.New("entrada inválida")
	ErrOperacionInvalida   = errors.New("operación no permitida para esta alerta")
	ErrFuenteNoDisponible  = errors.New("fuente de vencimientos no disponible")
	ErrDuplicado           = errors.New("recurso duplicado")
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	ErrNoAutorizado        = errors.New("no autorizado")
	ErrAccesoDenegado      = errors.New("acceso denegado")
)
