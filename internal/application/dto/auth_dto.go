package dto

import "github.com/jhoicas/Documentos-api/internal/domain/entity"

// AuthStatusResponse estado de autenticación reportado hacia la pantalla.
// Misma forma que el check-auth del backend.
type AuthStatusResponse struct {
	Authenticated bool                 `json:"authenticated"`
	User          *entity.TelegramUser `json:"user,omitempty"`
}

// LoginResponse respuesta del login vía Telegram.
type LoginResponse struct {
	Success bool                 `json:"success"`
	User    *entity.TelegramUser `json:"user,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// LogoutResponse respuesta del logout.
type LogoutResponse struct {
	Success bool `json:"success"`
}
