package documents

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Documentos-api/internal/application/builder"
	"github.com/jhoicas/Documentos-api/internal/domain"
	"github.com/jhoicas/Documentos-api/internal/domain/entity"
	"github.com/jhoicas/Documentos-api/internal/domain/repository"
)

// GeneratedDocument resultado de Generate listo para descargar.
type GeneratedDocument struct {
	Data        []byte
	ContentType string
	Filename    string
}

// UseCase previsualización y generación de documentos contra el backend de
// render. Una sesión solo puede tener una petición en vuelo: el segundo clic
// recibe domain.ErrRequestInFlight en lugar de duplicar la petición.
type UseCase struct {
	builder  *builder.UseCase
	sessions repository.SessionRepository
	renderer Renderer
}

// NewUseCase construye el caso de uso de documentos.
func NewUseCase(b *builder.UseCase, sessions repository.SessionRepository, renderer Renderer) *UseCase {
	return &UseCase{builder: b, sessions: sessions, renderer: renderer}
}

// Preview arma el payload de la sesión y pide el HTML de previsualización.
func (uc *UseCase) Preview(ctx context.Context, sessionID string) (string, error) {
	payload, err := uc.builder.BuildPayload(sessionID)
	if err != nil {
		return "", err
	}
	if err := uc.acquire(sessionID); err != nil {
		return "", err
	}
	defer uc.release(sessionID)

	return uc.renderer.Preview(ctx, *payload)
}

// Generate arma el payload, pide el artefacto binario y le asigna el nombre de
// descarga document_<tipo>_<timestamp>.pdf con el timestamp del momento de la
// respuesta.
func (uc *UseCase) Generate(ctx context.Context, sessionID string) (*GeneratedDocument, error) {
	payload, err := uc.builder.BuildPayload(sessionID)
	if err != nil {
		return nil, err
	}
	if err := uc.acquire(sessionID); err != nil {
		return nil, err
	}
	defer uc.release(sessionID)

	doc, err := uc.renderer.Generate(ctx, *payload)
	if err != nil {
		return nil, err
	}
	return &GeneratedDocument{
		Data:        doc.Data,
		ContentType: doc.ContentType,
		Filename:    fmt.Sprintf("document_%s_%d.pdf", payload.Type, time.Now().UnixMilli()),
	}, nil
}

// acquire marca la sesión con una petición en vuelo; falla si ya había una.
func (uc *UseCase) acquire(sessionID string) error {
	return uc.sessions.Update(sessionID, func(s *entity.BuilderSession) error {
		if s.InFlight {
			return domain.ErrRequestInFlight
		}
		s.InFlight = true
		return nil
	})
}

func (uc *UseCase) release(sessionID string) {
	_ = uc.sessions.Update(sessionID, func(s *entity.BuilderSession) error {
		s.InFlight = false
		return nil
	})
}
