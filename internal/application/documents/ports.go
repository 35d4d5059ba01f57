package documents

import (
	"context"
	"fmt"

	"github.com/jhoicas/Documentos-api/internal/application/dto"
)

// RenderedDocument artefacto binario devuelto por el backend de render.
type RenderedDocument struct {
	Data        []byte
	ContentType string
}

// Renderer puerto hacia el backend externo de render. Las implementaciones no
// reintentan, no cachean y no imponen timeout propio: cada clic es una
// petición fresca y todo fallo es terminal para esa petición.
type Renderer interface {
	// Preview devuelve el HTML de previsualización del documento.
	Preview(ctx context.Context, payload dto.DocumentPayload) (string, error)
	// Generate devuelve el artefacto binario (PDF) del documento.
	Generate(ctx context.Context, payload dto.DocumentPayload) (*RenderedDocument, error)
}

// GatewayErrorKind taxonomía de fallos del gateway.
type GatewayErrorKind string

const (
	// KindConnection fallo de red: conexión rechazada, DNS, timeout de plataforma.
	KindConnection GatewayErrorKind = "connection"
	// KindBackend error de aplicación reportado por el backend (campo error del JSON).
	KindBackend GatewayErrorKind = "backend"
	// KindMalformed respuesta 2xx con forma inesperada (content-type o cuerpo).
	KindMalformed GatewayErrorKind = "malformed"
	// KindHTTP fallo HTTP sin cuerpo JSON parseable: se reporta el status crudo.
	KindHTTP GatewayErrorKind = "http"
)

// GatewayError error tipado del gateway; Message se muestra tal cual.
type GatewayError struct {
	Kind    GatewayErrorKind
	Message string
	Err     error // causa subyacente, si existe
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway (%s): %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("gateway (%s): %s", e.Kind, e.Message)
}

func (e *GatewayError) Unwrap() error { return e.Err }
