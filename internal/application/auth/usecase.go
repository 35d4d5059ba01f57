package auth

import (
	"context"

	"github.com/jhoicas/Documentos-api/internal/application/dto"
	"github.com/jhoicas/Documentos-api/internal/domain/document"
	"github.com/jhoicas/Documentos-api/internal/domain/entity"
	"github.com/jhoicas/Documentos-api/internal/domain/repository"
)

// UseCase estado de identidad de la sesión. Regla única de esta capa: jamás
// se adopta una identidad sin confirmación del backend. La máquina de estados
// es Loading → {Unauthenticated, Authenticated}; solo el logout explícito
// regresa a Unauthenticated (no hay detección local de expiración).
type UseCase struct {
	sessions repository.SessionRepository
	gateway  Gateway
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(sessions repository.SessionRepository, gateway Gateway) *UseCase {
	return &UseCase{sessions: sessions, gateway: gateway}
}

// Status consulta check-auth en el backend y sincroniza la identidad local
// con lo que el backend confirme.
func (uc *UseCase) Status(ctx context.Context, sessionID string) (*dto.AuthStatusResponse, error) {
	status, err := uc.gateway.CheckAuth(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Update(sessionID, func(s *entity.BuilderSession) error {
		if status.Authenticated && status.User != nil {
			s.User = status.User
		} else {
			s.User = nil
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return status, nil
}

// Login reenvía la aserción del widget al backend. La identidad se adopta
// únicamente con success:true y usuario presente; cualquier otra respuesta se
// devuelve tal cual para mostrarse.
func (uc *UseCase) Login(ctx context.Context, sessionID string, assertion []byte) (*dto.LoginResponse, error) {
	resp, err := uc.gateway.Login(ctx, sessionID, assertion)
	if err != nil {
		return nil, err
	}
	if resp.Success && resp.User != nil {
		if err := uc.sessions.Update(sessionID, func(s *entity.BuilderSession) error {
			s.User = resp.User
			return nil
		}); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// Logout cierra la sesión en el backend y, si este confirma, reinicia el
// estado local completo como lo haría una recarga de página: formulario,
// ítems e identidad vuelven a sus valores iniciales.
func (uc *UseCase) Logout(ctx context.Context, sessionID string) (*dto.LogoutResponse, error) {
	resp, err := uc.gateway.Logout(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if resp.Success {
		if err := uc.sessions.Update(sessionID, func(s *entity.BuilderSession) error {
			s.Type = entity.TypePricelist
			s.Form = entity.NewDocumentForm()
			s.Items = document.NewSeedItems()
			s.User = nil
			return nil
		}); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
