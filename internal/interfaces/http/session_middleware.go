package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Documentos-api/internal/application/builder"
	"github.com/jhoicas/Documentos-api/internal/application/dto"
	"github.com/jhoicas/Documentos-api/pkg/token"
)

// Local key para el id de sesión en Fiber.
const LocalSessionID = "session_id"

// SessionConfig parámetros de la cookie de sesión del constructor.
type SessionConfig struct {
	Secret     string
	CookieName string
	Issuer     string
	TTLMinutes int
}

// SessionMiddleware garantiza que toda petición bajo /api lleve una sesión
// viva: si la cookie falta, no valida o apunta a una sesión expirada, se crea
// una sesión nueva en el momento y se emite la cookie firmada. El id queda en
// c.Locals para los handlers.
func SessionMiddleware(cfg SessionConfig, uc *builder.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cookie := c.Cookies(cfg.CookieName); cookie != "" {
			if sid, err := token.Parse(cfg.Secret, cookie); err == nil {
				if _, err := uc.GetState(sid); err == nil {
					c.Locals(LocalSessionID, sid)
					return c.Next()
				}
			}
		}

		s, err := uc.StartSession()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo crear la sesión"})
		}
		signed, err := token.Generate(cfg.Secret, s.ID, cfg.Issuer, cfg.TTLMinutes)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo firmar la sesión"})
		}
		c.Cookie(&fiber.Cookie{
			Name:     cfg.CookieName,
			Value:    signed,
			Expires:  time.Now().Add(time.Duration(cfg.TTLMinutes) * time.Minute),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(LocalSessionID, s.ID)
		return c.Next()
	}
}

// GetSessionID devuelve el id de sesión del contexto (después del middleware).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
