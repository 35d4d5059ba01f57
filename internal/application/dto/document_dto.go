package dto

// DocumentPayload cuerpo JSON que viaja al backend de render en preview y
// generate. Quantity, price y total son números JSON planos (el backend no
// entiende decimales entrecomillados), por eso aquí se usa float64 y no
// decimal.Decimal: la conversión ocurre en el único punto de serialización.
type DocumentPayload struct {
	Type     string            `json:"type"`
	FormData map[string]any    `json:"formData"`
	Items    []LineItemPayload `json:"items"`
	Total    float64           `json:"total"`
}

// LineItemPayload forma wire de un ítem.
type LineItemPayload struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// PreviewResponse respuesta del endpoint de preview (propio y del backend).
type PreviewResponse struct {
	PreviewHTML string `json:"preview_html"`
}
