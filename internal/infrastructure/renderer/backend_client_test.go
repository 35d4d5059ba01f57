package renderer_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Documentos-api/internal/application/documents"
	"github.com/jhoicas/Documentos-api/internal/application/dto"
	"github.com/jhoicas/Documentos-api/internal/infrastructure/renderer"
)

func testPayload() dto.DocumentPayload {
	return dto.DocumentPayload{
		Type:     "pricelist",
		FormData: map[string]any{"companyName": "Acme", "currency": "RUB", "vatIncluded": true},
		Items: []dto.LineItemPayload{
			{ID: 1, Name: "Consultoría", Unit: "hour", Quantity: 2, Price: 100},
		},
		Total: 200,
	}
}

func gatewayKind(t *testing.T, err error) documents.GatewayErrorKind {
	t.Helper()
	var ge *documents.GatewayError
	require.True(t, errors.As(err, &ge), "se espera un GatewayError, llegó %v", err)
	return ge.Kind
}

func gatewayMessage(t *testing.T, err error) string {
	t.Helper()
	var ge *documents.GatewayError
	require.True(t, errors.As(err, &ge))
	return ge.Message
}

// ──────────────────────────────────────────────────────────────────────────────
// Preview
// ──────────────────────────────────────────────────────────────────────────────

func TestPreview_CaminoFeliz(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/documents/preview", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload dto.DocumentPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "pricelist", payload.Type)
		assert.Equal(t, "Acme", payload.FormData["companyName"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"preview_html": "<p>Acme</p>"})
	}))
	defer srv.Close()

	client := renderer.NewBackendClient(srv.URL)
	html, err := client.Preview(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, "<p>Acme</p>", html)
}

// 200 con campo error en lugar del HTML: el mensaje del backend viaja literal.
func TestPreview_ErrorDeAplicacionCon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid company name"})
	}))
	defer srv.Close()

	client := renderer.NewBackendClient(srv.URL)
	_, err := client.Preview(context.Background(), testPayload())
	require.Error(t, err)
	assert.Equal(t, documents.KindBackend, gatewayKind(t, err))
	assert.Equal(t, "invalid company name", gatewayMessage(t, err))
}

func TestPreview_RespuestaNoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>proxy intermedio</html>"))
	}))
	defer srv.Close()

	client := renderer.NewBackendClient(srv.URL)
	_, err := client.Preview(context.Background(), testPayload())
	require.Error(t, err)
	assert.Equal(t, documents.KindMalformed, gatewayKind(t, err))
}

// preview_html ausente no es error: equivale a previsualización vacía.
func TestPreview_HTMLAusenteEsVacio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	client := renderer.NewBackendClient(srv.URL)
	html, err := client.Preview(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Empty(t, html)
}

func TestPreview_ConexionRechazada(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // cerrar ya: toda conexión será rechazada

	client := renderer.NewBackendClient(srv.URL)
	_, err := client.Preview(context.Background(), testPayload())
	require.Error(t, err)
	assert.Equal(t, documents.KindConnection, gatewayKind(t, err))
	assert.NotEmpty(t, gatewayMessage(t, err), "el texto del error de red se conserva para mostrarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Generate
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_DevuelvePDF(t *testing.T) {
	pdf := []byte("%PDF-1.4 contenido de prueba")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/documents/generate", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	}))
	defer srv.Close()

	client := renderer.NewBackendClient(srv.URL)
	doc, err := client.Generate(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, pdf, doc.Data)
	assert.Equal(t, "application/pdf", doc.ContentType)
}

// 200 con JSON de error en lugar del binario: error de aplicación, no descarga.
func TestGenerate_ErrorDeAplicacionCon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid company name"})
	}))
	defer srv.Close()

	client := renderer.NewBackendClient(srv.URL)
	_, err := client.Generate(context.Background(), testPayload())
	require.Error(t, err)
	assert.Equal(t, documents.KindBackend, gatewayKind(t, err))
	assert.Equal(t, "invalid company name", gatewayMessage(t, err))
}

func TestGenerate_ContentTypeInesperadoSinError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("esto no es un documento"))
	}))
	defer srv.Close()

	client := renderer.NewBackendClient(srv.URL)
	_, err := client.Generate(context.Background(), testPayload())
	require.Error(t, err)
	assert.Equal(t, documents.KindMalformed, gatewayKind(t, err))
}

// Fallo HTTP con JSON de error: el mensaje del backend gana al status.
func TestGenerate_FalloHTTPConJSONDeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unsupported document type"})
	}))
	defer srv.Close()

	client := renderer.NewBackendClient(srv.URL)
	_, err := client.Generate(context.Background(), testPayload())
	require.Error(t, err)
	assert.Equal(t, documents.KindBackend, gatewayKind(t, err))
	assert.Equal(t, "unsupported document type", gatewayMessage(t, err))
}

// Fallo HTTP sin cuerpo parseable: se reporta el status crudo.
func TestGenerate_FalloHTTPSinCuerpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("Bad Gateway"))
	}))
	defer srv.Close()

	client := renderer.NewBackendClient(srv.URL)
	_, err := client.Generate(context.Background(), testPayload())
	require.Error(t, err)
	assert.Equal(t, documents.KindHTTP, gatewayKind(t, err))
	assert.Contains(t, gatewayMessage(t, err), "502")
}
