package entity

import "time"

// BuilderSession estado completo de una sesión del constructor de documentos:
// tipo activo, formulario, ítems e identidad confirmada (si la hay). Vive solo
// en memoria; no hay persistencia más allá de la sesión.
type BuilderSession struct {
	ID        string
	Type      DocumentType
	Form      DocumentForm
	Items     []LineItem
	User      *TelegramUser // nil mientras no haya confirmación del backend
	InFlight  bool          // true mientras hay un preview/generate en curso
	CreatedAt time.Time
	LastSeen  time.Time
}
