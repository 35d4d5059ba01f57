package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jhoicas/Documentos-api/internal/application/documents"
	"github.com/jhoicas/Documentos-api/internal/application/dto"
)

// Verificar en tiempo de compilación que BackendClient implementa Renderer.
var _ documents.Renderer = (*BackendClient)(nil)

const (
	previewPath  = "/api/documents/preview"
	generatePath = "/api/documents/generate"

	// Límite de lectura de cuerpos: los HTML de preview y los JSON de error
	// son pequeños; el PDF puede pesar más.
	maxPreviewBody  = 4 << 20
	maxDocumentBody = 64 << 20
)

// BackendClient gateway HTTP hacia el backend de render. Cada llamada es una
// petición fresca: sin reintentos, sin caché, sin clave de idempotencia y sin
// timeout propio (se confía en el comportamiento por defecto de la plataforma).
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBackendClient construye el gateway. baseURL viene de configuración.
func NewBackendClient(baseURL string) *BackendClient {
	return &BackendClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// errorBody forma mínima de los errores JSON del backend: {"error": "..."}.
type errorBody struct {
	Error string `json:"error"`
}

// previewBody respuesta del endpoint de preview. El backend puede devolver
// 200 con un campo error en lugar del HTML.
type previewBody struct {
	PreviewHTML string `json:"preview_html"`
	Error       string `json:"error"`
}

// Preview envía el payload y devuelve el HTML de previsualización.
// Campo preview_html ausente equivale a cadena vacía (no es error).
func (c *BackendClient) Preview(ctx context.Context, payload dto.DocumentPayload) (string, error) {
	resp, err := c.post(ctx, previewPath, payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxPreviewBody))
	if err != nil {
		return "", &documents.GatewayError{Kind: documents.KindConnection, Message: "leer respuesta del backend", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", failureError(resp, raw)
	}

	var body previewBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", &documents.GatewayError{Kind: documents.KindMalformed, Message: "respuesta del backend no es JSON válido", Err: err}
	}
	if body.Error != "" {
		return "", &documents.GatewayError{Kind: documents.KindBackend, Message: body.Error}
	}
	return body.PreviewHTML, nil
}

// Generate envía el payload y devuelve el artefacto binario. Una respuesta
// 2xx sin content-type de documento se trata como error de aplicación: se
// intenta extraer el JSON de error y, si tampoco hay, se reporta formato
// inesperado.
func (c *BackendClient) Generate(ctx context.Context, payload dto.DocumentPayload) (*documents.RenderedDocument, error) {
	resp, err := c.post(ctx, generatePath, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBody))
	if err != nil {
		return nil, &documents.GatewayError{Kind: documents.KindConnection, Message: "leer respuesta del backend", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, failureError(resp, raw)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/pdf") {
		var body errorBody
		if jsonErr := json.Unmarshal(raw, &body); jsonErr == nil && body.Error != "" {
			return nil, &documents.GatewayError{Kind: documents.KindBackend, Message: body.Error}
		}
		return nil, &documents.GatewayError{Kind: documents.KindMalformed, Message: "formato de respuesta inesperado"}
	}
	return &documents.RenderedDocument{Data: raw, ContentType: contentType}, nil
}

func (c *BackendClient) post(ctx context.Context, path string, payload dto.DocumentPayload) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &documents.GatewayError{Kind: documents.KindMalformed, Message: "serializar payload", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, &documents.GatewayError{Kind: documents.KindConnection, Message: "crear petición HTTP", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// El texto del error subyacente se conserva para mostrarse.
		return nil, &documents.GatewayError{Kind: documents.KindConnection, Message: err.Error(), Err: err}
	}
	return resp, nil
}

// failureError clasifica una respuesta no-2xx: JSON de error del backend si
// lo hay, status crudo si no.
func failureError(resp *http.Response, raw []byte) *documents.GatewayError {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return &documents.GatewayError{Kind: documents.KindBackend, Message: body.Error}
	}
	return &documents.GatewayError{Kind: documents.KindHTTP, Message: resp.Status}
}
