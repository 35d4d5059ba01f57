package builder

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Documentos-api/internal/application/dto"
	"github.com/jhoicas/Documentos-api/internal/domain"
	"github.com/jhoicas/Documentos-api/internal/domain/document"
	"github.com/jhoicas/Documentos-api/internal/domain/entity"
	"github.com/jhoicas/Documentos-api/internal/domain/repository"
)

// UseCase operaciones de la sesión del constructor: tipo activo, campos del
// formulario e ítems. Toda mutación pasa por el repositorio de sesiones, que
// garantiza exclusión por sesión.
type UseCase struct {
	sessions repository.SessionRepository
}

// NewUseCase construye el caso de uso del constructor.
func NewUseCase(sessions repository.SessionRepository) *UseCase {
	return &UseCase{sessions: sessions}
}

// StartSession crea una sesión nueva: tipo pricelist, formulario con valores
// por defecto y un único ítem semilla.
func (uc *UseCase) StartSession() (*entity.BuilderSession, error) {
	now := time.Now()
	s := &entity.BuilderSession{
		ID:        uuid.New().String(),
		Type:      entity.TypePricelist,
		Form:      entity.NewDocumentForm(),
		Items:     document.NewSeedItems(),
		CreatedAt: now,
		LastSeen:  now,
	}
	if err := uc.sessions.Create(s); err != nil {
		return nil, fmt.Errorf("builder: crear sesión: %w", err)
	}
	return s, nil
}

// GetState devuelve el estado completo de la sesión para pintar la pantalla.
func (uc *UseCase) GetState(sessionID string) (*dto.BuilderStateResponse, error) {
	s, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return toStateResponse(s), nil
}

// SelectType cambia el tipo de documento activo. No toca ningún valor del
// formulario: las secciones de otras variantes se conservan tal cual.
func (uc *UseCase) SelectType(sessionID, docType string) error {
	t := entity.DocumentType(docType)
	if !entity.IsValidDocumentType(t) {
		return fmt.Errorf("%w: tipo de documento %q", domain.ErrInvalidInput, docType)
	}
	return uc.sessions.Update(sessionID, func(s *entity.BuilderSession) error {
		s.Type = t
		return nil
	})
}

// SetField asigna un campo del formulario según el tipo activo.
func (uc *UseCase) SetField(sessionID string, in dto.SetFieldRequest) error {
	if in.Field == "" {
		return fmt.Errorf("%w: field requerido", domain.ErrInvalidInput)
	}
	return uc.sessions.Update(sessionID, func(s *entity.BuilderSession) error {
		return document.SetField(&s.Form, s.Type, in.Field, in.Value)
	})
}

// AddItem agrega un ítem con valores por defecto e id fresco.
func (uc *UseCase) AddItem(sessionID string) (dto.LineItemResponse, error) {
	var created entity.LineItem
	err := uc.sessions.Update(sessionID, func(s *entity.BuilderSession) error {
		s.Items, created = document.AppendItem(s.Items)
		return nil
	})
	if err != nil {
		return dto.LineItemResponse{}, err
	}
	return dto.ToLineItemResponse(created), nil
}

// RemoveItem elimina el ítem indicado. Silencioso cuando el id no existe o es
// el último ítem: el contrato de la tienda es no fallar y no vaciarse nunca.
func (uc *UseCase) RemoveItem(sessionID string, itemID int) error {
	return uc.sessions.Update(sessionID, func(s *entity.BuilderSession) error {
		s.Items = document.RemoveItem(s.Items, itemID)
		return nil
	})
}

// UpdateItem edita un campo de un ítem. Id inexistente es no-op silencioso;
// valores numéricos inválidos se rechazan con error de validación.
func (uc *UseCase) UpdateItem(sessionID string, itemID int, in dto.UpdateItemRequest) error {
	return uc.sessions.Update(sessionID, func(s *entity.BuilderSession) error {
		_, err := document.UpdateItem(s.Items, itemID, in.Field, in.Value)
		return err
	})
}

// ResetSession vuelve la sesión al estado inicial (equivalente a recargar la
// página): tipo pricelist, formulario por defecto, ítem semilla, sin identidad.
func (uc *UseCase) ResetSession(sessionID string) error {
	return uc.sessions.Update(sessionID, func(s *entity.BuilderSession) error {
		s.Type = entity.TypePricelist
		s.Form = entity.NewDocumentForm()
		s.Items = document.NewSeedItems()
		s.User = nil
		return nil
	})
}

// BuildPayload valida los campos obligatorios del tipo activo y arma el cuerpo
// que viaja al backend de render.
func (uc *UseCase) BuildPayload(sessionID string) (*dto.DocumentPayload, error) {
	s, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := document.ValidateForSubmit(s.Type, s.Form); err != nil {
		return nil, err
	}

	items := make([]dto.LineItemPayload, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.LineItemPayload{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Unit:        it.Unit,
			Quantity:    it.Quantity.InexactFloat64(),
			Price:       it.Price.InexactFloat64(),
			Category:    it.Category,
		})
	}
	return &dto.DocumentPayload{
		Type:     string(s.Type),
		FormData: document.WireFormData(s.Type, s.Form),
		Items:    items,
		Total:    document.Total(s.Items).InexactFloat64(),
	}, nil
}

func toStateResponse(s *entity.BuilderSession) *dto.BuilderStateResponse {
	items := make([]dto.LineItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.ToLineItemResponse(it))
	}
	return &dto.BuilderStateResponse{
		SessionID:     s.ID,
		Type:          string(s.Type),
		FormData:      document.WireFormData(s.Type, s.Form),
		Items:         items,
		Total:         document.Total(s.Items),
		Authenticated: s.User != nil,
		User:          s.User,
	}
}
