package repository

import "github.com/jhoicas/Documentos-api/internal/domain/entity"

// SessionRepository acceso al estado de las sesiones del constructor.
// Las implementaciones devuelven copias en Get y ejecutan Update de forma
// atómica respecto a otras mutaciones de la misma sesión.
type SessionRepository interface {
	Create(s *entity.BuilderSession) error
	// Get devuelve domain.ErrSessionNotFound si la sesión no existe o expiró.
	Get(id string) (*entity.BuilderSession, error)
	// Update carga la sesión, aplica fn bajo exclusión y persiste el resultado.
	// Si fn retorna error la sesión queda como estaba.
	Update(id string, fn func(s *entity.BuilderSession) error) error
	Delete(id string) error
}
