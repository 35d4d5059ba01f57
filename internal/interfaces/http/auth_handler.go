package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	authapp "github.com/jhoicas/Documentos-api/internal/application/auth"
	"github.com/jhoicas/Documentos-api/internal/application/dto"
	"github.com/jhoicas/Documentos-api/internal/domain"
)

// AuthHandler estado de identidad: check-auth, login vía Telegram y logout.
// Toda la verdad vive en el backend de auth; aquí solo se reenvía y se adopta
// lo confirmado.
type AuthHandler struct {
	uc *authapp.UseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *authapp.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// CheckAuth godoc
// @Summary      Estado de autenticación de la sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.AuthStatusResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/auth/check-auth [get]
func (h *AuthHandler) CheckAuth(c *fiber.Ctx) error {
	status, err := h.uc.Status(c.Context(), GetSessionID(c))
	if err != nil {
		return authError(c, err)
	}
	return c.JSON(status)
}

// Login godoc
// @Summary      Login con la aserción del widget de Telegram
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.LoginResponse
// @Failure      401  {object}  dto.LoginResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/auth/telegram/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	assertion := c.Body()
	if len(assertion) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "faltan los datos de autorización"})
	}
	resp, err := h.uc.Login(c.Context(), GetSessionID(c), assertion)
	if err != nil {
		return authError(c, err)
	}
	if !resp.Success {
		return c.Status(fiber.StatusUnauthorized).JSON(resp)
	}
	return c.JSON(resp)
}

// Logout godoc
// @Summary      Cerrar sesión y reiniciar el estado local
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.LogoutResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	resp, err := h.uc.Logout(c.Context(), GetSessionID(c))
	if err != nil {
		return authError(c, err)
	}
	return c.JSON(resp)
}

func authError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión expiró, recargue la página"})
	default:
		// Fallos de transporte o respuestas inválidas del backend de auth.
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AUTH_BACKEND", Message: err.Error()})
	}
}
