package auth

import (
	"context"

	"github.com/jhoicas/Documentos-api/internal/application/dto"
)

// Gateway puerto hacia el backend externo de autenticación. Las credenciales
// (cookie de sesión del backend) viajan por el jar asociado al sessionID, así
// que check-auth/login/logout de la misma sesión comparten cookies.
//
// assertion es el JSON crudo que entrega el widget de Telegram; la forma la
// define el proveedor y se reenvía opaca, sin reinterpretarla.
type Gateway interface {
	CheckAuth(ctx context.Context, sessionID string) (*dto.AuthStatusResponse, error)
	Login(ctx context.Context, sessionID string, assertion []byte) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) (*dto.LogoutResponse, error)
}
