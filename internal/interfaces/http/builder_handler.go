package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Documentos-api/internal/application/builder"
	"github.com/jhoicas/Documentos-api/internal/application/dto"
	"github.com/jhoicas/Documentos-api/internal/domain"
)

// BuilderHandler maneja el estado de la sesión: tipo, formulario e ítems.
type BuilderHandler struct {
	uc *builder.UseCase
}

// NewBuilderHandler construye el handler del constructor.
func NewBuilderHandler(uc *builder.UseCase) *BuilderHandler {
	return &BuilderHandler{uc: uc}
}

// State godoc
// @Summary      Estado completo de la sesión
// @Tags         builder
// @Produce      json
// @Success      200  {object}  dto.BuilderStateResponse
// @Router       /api/builder/state [get]
func (h *BuilderHandler) State(c *fiber.Ctx) error {
	state, err := h.uc.GetState(GetSessionID(c))
	if err != nil {
		return builderError(c, err)
	}
	return c.JSON(state)
}

// SelectType godoc
// @Summary      Cambiar el tipo de documento activo
// @Tags         builder
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectTypeRequest  true  "pricelist | invoice | contract"
// @Success      200   {object}  dto.BuilderStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/builder/type [put]
func (h *BuilderHandler) SelectType(c *fiber.Ctx) error {
	var in dto.SelectTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SelectType(GetSessionID(c), in.Type); err != nil {
		return builderError(c, err)
	}
	return h.State(c)
}

// SetField godoc
// @Summary      Asignar un campo del formulario
// @Tags         builder
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetFieldRequest  true  "field, value"
// @Success      200   {object}  dto.BuilderStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/builder/fields [put]
func (h *BuilderHandler) SetField(c *fiber.Ctx) error {
	var in dto.SetFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetField(GetSessionID(c), in); err != nil {
		return builderError(c, err)
	}
	return h.State(c)
}

// AddItem godoc
// @Summary      Agregar un ítem con valores por defecto
// @Tags         builder
// @Produce      json
// @Success      201  {object}  dto.LineItemResponse
// @Router       /api/builder/items [post]
func (h *BuilderHandler) AddItem(c *fiber.Ctx) error {
	item, err := h.uc.AddItem(GetSessionID(c))
	if err != nil {
		return builderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateItem godoc
// @Summary      Editar un campo de un ítem
// @Tags         builder
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "id del ítem"
// @Param        body  body  dto.UpdateItemRequest  true  "field, value"
// @Success      200   {object}  dto.BuilderStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/builder/items/{id} [patch]
func (h *BuilderHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de ítem inválido"})
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateItem(GetSessionID(c), id, in); err != nil {
		return builderError(c, err)
	}
	return h.State(c)
}

// RemoveItem godoc
// @Summary      Eliminar un ítem (no-op si es el último)
// @Tags         builder
// @Produce      json
// @Param        id  path  int  true  "id del ítem"
// @Success      200  {object}  dto.BuilderStateResponse
// @Router       /api/builder/items/{id} [delete]
func (h *BuilderHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de ítem inválido"})
	}
	if err := h.uc.RemoveItem(GetSessionID(c), id); err != nil {
		return builderError(c, err)
	}
	return h.State(c)
}

// builderError mapea errores del caso de uso a respuestas HTTP.
func builderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownField), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión expiró, recargue la página"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
