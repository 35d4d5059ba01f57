package memstore_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Documentos-api/internal/domain"
	"github.com/jhoicas/Documentos-api/internal/domain/document"
	"github.com/jhoicas/Documentos-api/internal/domain/entity"
	"github.com/jhoicas/Documentos-api/internal/infrastructure/memstore"
)

func newSession(id string) *entity.BuilderSession {
	now := time.Now()
	return &entity.BuilderSession{
		ID:        id,
		Type:      entity.TypePricelist,
		Form:      entity.NewDocumentForm(),
		Items:     document.NewSeedItems(),
		CreatedAt: now,
		LastSeen:  now,
	}
}

func TestGet_SesionInexistente(t *testing.T) {
	repo := memstore.NewSessionRepository(time.Hour)
	_, err := repo.Get("no-existe")
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
}

// Get devuelve una copia: mutar lo devuelto no toca lo almacenado.
func TestGet_DevuelveCopiaAislada(t *testing.T) {
	repo := memstore.NewSessionRepository(time.Hour)
	require.NoError(t, repo.Create(newSession("s1")))

	got, err := repo.Get("s1")
	require.NoError(t, err)
	got.Items[0].Name = "mutación externa"
	got.Type = entity.TypeContract

	fresh, err := repo.Get("s1")
	require.NoError(t, err)
	assert.Empty(t, fresh.Items[0].Name)
	assert.Equal(t, entity.TypePricelist, fresh.Type)
}

func TestUpdate_PersisteLaMutacion(t *testing.T) {
	repo := memstore.NewSessionRepository(time.Hour)
	require.NoError(t, repo.Create(newSession("s1")))

	err := repo.Update("s1", func(s *entity.BuilderSession) error {
		s.Items[0].Quantity = decimal.NewFromInt(7)
		return nil
	})
	require.NoError(t, err)

	got, err := repo.Get("s1")
	require.NoError(t, err)
	assert.True(t, got.Items[0].Quantity.Equal(decimal.NewFromInt(7)))
}

// Si fn falla, la sesión queda exactamente como estaba.
func TestUpdate_FalloDejaLaSesionIntacta(t *testing.T) {
	repo := memstore.NewSessionRepository(time.Hour)
	require.NoError(t, repo.Create(newSession("s1")))

	err := repo.Update("s1", func(s *entity.BuilderSession) error {
		s.Items[0].Name = "a medio camino"
		return errors.New("algo falló")
	})
	require.Error(t, err)

	got, err := repo.Get("s1")
	require.NoError(t, err)
	assert.Empty(t, got.Items[0].Name, "una mutación fallida no debe persistir parcialmente")
}

func TestUpdate_SesionInexistente(t *testing.T) {
	repo := memstore.NewSessionRepository(time.Hour)
	err := repo.Update("no-existe", func(*entity.BuilderSession) error { return nil })
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
}

func TestDelete_Idempotente(t *testing.T) {
	repo := memstore.NewSessionRepository(time.Hour)
	require.NoError(t, repo.Create(newSession("s1")))
	require.NoError(t, repo.Delete("s1"))
	require.NoError(t, repo.Delete("s1"))

	_, err := repo.Get("s1")
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
}

// El barrido elimina solo las sesiones inactivas más allá del TTL.
func TestSweeper_ExpiraPorInactividad(t *testing.T) {
	repo := memstore.NewSessionRepository(50 * time.Millisecond)
	stop := make(chan struct{})
	defer close(stop)
	repo.StartSweeper(10*time.Millisecond, stop)

	require.NoError(t, repo.Create(newSession("vieja")))
	require.NoError(t, repo.Create(newSession("activa")))

	// Sondear sin refrescar LastSeen: un Update cuyo fn falla no toca la sesión.
	errProbe := errors.New("sonda")
	exists := func(id string) bool {
		err := repo.Update(id, func(*entity.BuilderSession) error { return errProbe })
		return !errors.Is(err, domain.ErrSessionNotFound)
	}

	// Mantener viva una de las dos; la otra debe expirar.
	deadline := time.Now().Add(500 * time.Millisecond)
	expired := false
	for time.Now().Before(deadline) {
		_, err := repo.Get("activa")
		require.NoError(t, err, "la sesión activa nunca debe expirar")
		if !exists("vieja") {
			expired = true
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.True(t, expired, "la sesión inactiva debe expirar tras el TTL")
}
