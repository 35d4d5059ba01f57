package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrSessionNotFound = errors.New("sesión de trabajo no encontrada")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnknownField    = errors.New("campo desconocido para el tipo de documento")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrRequestInFlight = errors.New("ya hay una petición al backend en curso")
)
