package builder_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Documentos-api/internal/application/builder"
	"github.com/jhoicas/Documentos-api/internal/application/dto"
	"github.com/jhoicas/Documentos-api/internal/domain"
	"github.com/jhoicas/Documentos-api/internal/infrastructure/memstore"
)

func newBuilderUC(t *testing.T) (*builder.UseCase, string) {
	t.Helper()
	repo := memstore.NewSessionRepository(time.Hour)
	uc := builder.NewUseCase(repo)
	s, err := uc.StartSession()
	require.NoError(t, err)
	return uc, s.ID
}

func TestStartSession_EstadoInicial(t *testing.T) {
	uc, id := newBuilderUC(t)

	state, err := uc.GetState(id)
	require.NoError(t, err)
	assert.Equal(t, "pricelist", state.Type)
	assert.Equal(t, "RUB", state.FormData["currency"])
	assert.Equal(t, true, state.FormData["vatIncluded"])
	require.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.Items[0].ID)
	assert.True(t, state.Total.IsZero())
	assert.False(t, state.Authenticated)
}

func TestGetState_SesionInexistente(t *testing.T) {
	uc, _ := newBuilderUC(t)
	_, err := uc.GetState("no-existe")
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
}

func TestSelectType_ConservaCamposDeOtrasVariantes(t *testing.T) {
	uc, id := newBuilderUC(t)

	require.NoError(t, uc.SelectType(id, "invoice"))
	require.NoError(t, uc.SetField(id, dto.SetFieldRequest{Field: "invoiceNumber", Value: "001"}))

	// Ir a contrato y volver: el número de factura sigue ahí.
	require.NoError(t, uc.SelectType(id, "contract"))
	require.NoError(t, uc.SelectType(id, "invoice"))

	state, err := uc.GetState(id)
	require.NoError(t, err)
	assert.Equal(t, "001", state.FormData["invoiceNumber"])
}

func TestSelectType_TipoInvalido(t *testing.T) {
	uc, id := newBuilderUC(t)
	err := uc.SelectType(id, "receipt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSetField_CampoDesconocidoNoMuta(t *testing.T) {
	uc, id := newBuilderUC(t)
	err := uc.SetField(id, dto.SetFieldRequest{Field: "supplierInn", Value: "123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownField),
		"supplierInn no pertenece al tipo pricelist")
}

func TestAddItem_ApareceEnElEstado(t *testing.T) {
	uc, id := newBuilderUC(t)

	created, err := uc.AddItem(id)
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	state, err := uc.GetState(id)
	require.NoError(t, err)
	assert.Len(t, state.Items, 2)
}

func TestUpdateItem_TotalDerivado(t *testing.T) {
	uc, id := newBuilderUC(t)

	require.NoError(t, uc.UpdateItem(id, 1, dto.UpdateItemRequest{Field: "quantity", Value: "3"}))
	require.NoError(t, uc.UpdateItem(id, 1, dto.UpdateItemRequest{Field: "price", Value: "50"}))

	state, err := uc.GetState(id)
	require.NoError(t, err)
	assert.Equal(t, "150", state.Total.String())
	assert.Equal(t, "150", state.Items[0].LineTotal.String())
}

func TestUpdateItem_ValorInvalidoNoMuta(t *testing.T) {
	uc, id := newBuilderUC(t)
	require.NoError(t, uc.UpdateItem(id, 1, dto.UpdateItemRequest{Field: "quantity", Value: "5"}))

	err := uc.UpdateItem(id, 1, dto.UpdateItemRequest{Field: "quantity", Value: "cinco"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	state, err := uc.GetState(id)
	require.NoError(t, err)
	assert.Equal(t, "5", state.Items[0].Quantity.String(),
		"el rechazo no debe tocar el valor almacenado")
}

func TestRemoveItem_UltimoEsNoOpSilencioso(t *testing.T) {
	uc, id := newBuilderUC(t)

	require.NoError(t, uc.RemoveItem(id, 1))

	state, err := uc.GetState(id)
	require.NoError(t, err)
	assert.Len(t, state.Items, 1, "la tienda de ítems nunca queda vacía")
}

func TestResetSession_VuelveAlInicio(t *testing.T) {
	uc, id := newBuilderUC(t)
	require.NoError(t, uc.SelectType(id, "contract"))
	require.NoError(t, uc.SetField(id, dto.SetFieldRequest{Field: "companyName", Value: "Acme"}))
	_, err := uc.AddItem(id)
	require.NoError(t, err)

	require.NoError(t, uc.ResetSession(id))

	state, err := uc.GetState(id)
	require.NoError(t, err)
	assert.Equal(t, "pricelist", state.Type)
	assert.Empty(t, state.FormData["companyName"])
	assert.Len(t, state.Items, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildPayload
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildPayload_ValidaObligatorios(t *testing.T) {
	uc, id := newBuilderUC(t)

	_, err := uc.BuildPayload(id)
	require.Error(t, err, "pricelist sin companyName no debe enviarse")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestBuildPayload_FormaDelCuerpo(t *testing.T) {
	uc, id := newBuilderUC(t)
	require.NoError(t, uc.SetField(id, dto.SetFieldRequest{Field: "companyName", Value: "Acme"}))
	require.NoError(t, uc.UpdateItem(id, 1, dto.UpdateItemRequest{Field: "name", Value: "Consultoría"}))
	require.NoError(t, uc.UpdateItem(id, 1, dto.UpdateItemRequest{Field: "quantity", Value: "2"}))
	require.NoError(t, uc.UpdateItem(id, 1, dto.UpdateItemRequest{Field: "price", Value: "99.5"}))

	payload, err := uc.BuildPayload(id)
	require.NoError(t, err)

	assert.Equal(t, "pricelist", payload.Type)
	assert.Equal(t, "Acme", payload.FormData["companyName"])
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "Consultoría", payload.Items[0].Name)
	assert.InDelta(t, 2.0, payload.Items[0].Quantity, 1e-9)
	assert.InDelta(t, 99.5, payload.Items[0].Price, 1e-9)
	assert.InDelta(t, 199.0, payload.Total, 1e-9)

	// Campos de otras variantes no viajan.
	_, leaked := payload.FormData["supplierInn"]
	assert.False(t, leaked)
}
