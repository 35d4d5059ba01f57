package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Documentos-api/internal/application/documents"
	"github.com/jhoicas/Documentos-api/internal/application/dto"
	"github.com/jhoicas/Documentos-api/internal/domain"
)

// DocumentHandler previsualización y generación contra el backend de render.
type DocumentHandler struct {
	uc *documents.UseCase
}

// NewDocumentHandler construye el handler de documentos.
func NewDocumentHandler(uc *documents.UseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Preview godoc
// @Summary      Previsualizar el documento de la sesión
// @Tags         documents
// @Produce      json
// @Success      200  {object}  dto.PreviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/documents/preview [post]
func (h *DocumentHandler) Preview(c *fiber.Ctx) error {
	html, err := h.uc.Preview(c.Context(), GetSessionID(c))
	if err != nil {
		return documentError(c, err)
	}
	return c.JSON(dto.PreviewResponse{PreviewHTML: html})
}

// Generate godoc
// @Summary      Generar y descargar el documento de la sesión
// @Tags         documents
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/documents/generate [post]
func (h *DocumentHandler) Generate(c *fiber.Ctx) error {
	doc, err := h.uc.Generate(c.Context(), GetSessionID(c))
	if err != nil {
		return documentError(c, err)
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, doc.Filename))
	return c.Send(doc.Data)
}

// documentError mapea la taxonomía de fallos a respuestas HTTP. Los mensajes
// del backend viajan textuales; no hay reintento ni distinción entre fallos
// transitorios y permanentes: cada fallo es terminal para esa petición.
func documentError(c *fiber.Ctx, err error) error {
	var gw *documents.GatewayError
	if errors.As(err, &gw) {
		switch gw.Kind {
		case documents.KindConnection:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "CONNECTION_ERROR", Message: "error de conexión: " + gw.Message})
		case documents.KindBackend:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_ERROR", Message: gw.Message})
		case documents.KindMalformed:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UNEXPECTED_RESPONSE", Message: gw.Message})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_HTTP", Message: gw.Message})
		}
	}
	switch {
	case errors.Is(err, domain.ErrRequestInFlight):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REQUEST_IN_FLIGHT", Message: "ya hay una petición en curso para esta sesión"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión expiró, recargue la página"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
