package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Documentos-api/internal/domain/entity"
)

// SelectTypeRequest cambia el tipo de documento activo.
type SelectTypeRequest struct {
	Type string `json:"type"` // pricelist | invoice | contract
}

// SetFieldRequest asigna un campo del formulario. Value es string para todos
// los campos de texto y bool para vatIncluded.
type SetFieldRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// UpdateItemRequest edita un campo de un ítem. Cantidad y precio llegan como
// texto tal cual los escribió la persona y se validan en el dominio.
type UpdateItemRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// LineItemResponse un ítem con su total de línea derivado.
type LineItemResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// BuilderStateResponse estado completo de la sesión para pintar la pantalla.
type BuilderStateResponse struct {
	SessionID     string               `json:"session_id"`
	Type          string               `json:"type"`
	FormData      map[string]any       `json:"formData"`
	Items         []LineItemResponse   `json:"items"`
	Total         decimal.Decimal      `json:"total"`
	Authenticated bool                 `json:"authenticated"`
	User          *entity.TelegramUser `json:"user,omitempty"`
}

// ToLineItemResponse convierte la entidad al DTO de respuesta.
func ToLineItemResponse(it entity.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Unit:        it.Unit,
		Quantity:    it.Quantity,
		Price:       it.Price,
		Category:    it.Category,
		LineTotal:   it.LineTotal(),
	}
}
