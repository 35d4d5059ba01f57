package memstore

import (
	"sync"
	"time"

	"github.com/jhoicas/Documentos-api/internal/domain"
	"github.com/jhoicas/Documentos-api/internal/domain/entity"
	"github.com/jhoicas/Documentos-api/internal/domain/repository"
)

// Verificar en tiempo de compilación que SessionRepository implementa el puerto.
var _ repository.SessionRepository = (*SessionRepository)(nil)

// SessionRepository repositorio de sesiones en memoria. El estado no debe
// sobrevivir a la sesión de trabajo, así que no hay base de datos: un mapa
// bajo mutex con barrido de expiración por inactividad.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*entity.BuilderSession
	ttl      time.Duration
}

// NewSessionRepository construye el repositorio. ttl <= 0 desactiva la expiración.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*entity.BuilderSession),
		ttl:      ttl,
	}
}

// StartSweeper barre sesiones expiradas cada interval hasta que stop se cierre.
func (r *SessionRepository) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	if r.ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.sweep(time.Now())
			case <-stop:
				return
			}
		}
	}()
}

func (r *SessionRepository) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		if now.Sub(s.LastSeen) > r.ttl {
			delete(r.sessions, id)
		}
	}
}

// Create registra la sesión. Sobrescribir un id existente no es un caso
// esperado (los ids son UUID) pero tampoco es un error.
func (r *SessionRepository) Create(s *entity.BuilderSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := cloneSession(s)
	r.sessions[s.ID] = cp
	return nil
}

// Get devuelve una copia de la sesión y refresca LastSeen.
func (r *SessionRepository) Get(id string) (*entity.BuilderSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	s.LastSeen = time.Now()
	return cloneSession(s), nil
}

// Update aplica fn bajo el lock del repositorio: las mutaciones de una misma
// sesión nunca se entrelazan (mismo papel que el runner transaccional de un
// repositorio con base de datos). Si fn falla, la sesión queda intacta.
func (r *SessionRepository) Update(id string, fn func(s *entity.BuilderSession) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	work := cloneSession(s)
	if err := fn(work); err != nil {
		return err
	}
	work.LastSeen = time.Now()
	r.sessions[id] = work
	return nil
}

// Delete elimina la sesión; borrar una inexistente no es error.
func (r *SessionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// cloneSession copia profunda: los ítems y la identidad no se comparten entre
// el mapa y los llamadores.
func cloneSession(s *entity.BuilderSession) *entity.BuilderSession {
	cp := *s
	cp.Items = append([]entity.LineItem(nil), s.Items...)
	if s.User != nil {
		u := *s.User
		cp.User = &u
	}
	return &cp
}
