package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"

	authapp "github.com/jhoicas/Documentos-api/internal/application/auth"
	"github.com/jhoicas/Documentos-api/internal/application/dto"
)

// Verificar en tiempo de compilación que AuthClient implementa el puerto.
var _ authapp.Gateway = (*AuthClient)(nil)

const (
	checkAuthPath = "/api/auth/check-auth"
	loginPath     = "/api/auth/telegram/login"
	logoutPath    = "/api/auth/logout"

	maxAuthBody = 1 << 20
)

// AuthClient cliente del backend de autenticación. El backend usa cookie de
// sesión, así que cada sesión del constructor tiene su propio cookie jar: el
// equivalente de credentials:include del navegador, sin mezclar identidades
// entre sesiones.
type AuthClient struct {
	baseURL string

	mu   sync.Mutex
	jars map[string]*cookiejar.Jar
}

// NewAuthClient construye el cliente. baseURL viene de configuración.
func NewAuthClient(baseURL string) *AuthClient {
	return &AuthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		jars:    make(map[string]*cookiejar.Jar),
	}
}

// CheckAuth consulta el estado de autenticación de la sesión.
func (c *AuthClient) CheckAuth(ctx context.Context, sessionID string) (*dto.AuthStatusResponse, error) {
	raw, _, err := c.do(ctx, sessionID, http.MethodGet, checkAuthPath, nil)
	if err != nil {
		return nil, err
	}
	var out dto.AuthStatusResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("auth: respuesta de check-auth inválida: %w", err)
	}
	return &out, nil
}

// Login reenvía la aserción del widget tal cual llegó. Un rechazo del backend
// (success:false o HTTP de fallo con JSON de error) no es un error de
// transporte: se devuelve como respuesta para que el mensaje se muestre.
func (c *AuthClient) Login(ctx context.Context, sessionID string, assertion []byte) (*dto.LoginResponse, error) {
	raw, status, err := c.do(ctx, sessionID, http.MethodPost, loginPath, assertion)
	if err != nil {
		return nil, err
	}
	var out dto.LoginResponse
	if jsonErr := json.Unmarshal(raw, &out); jsonErr != nil {
		if status < 200 || status > 299 {
			return nil, fmt.Errorf("auth: login falló con HTTP %d", status)
		}
		return nil, fmt.Errorf("auth: respuesta de login inválida: %w", jsonErr)
	}
	if out.Error == "" && (status < 200 || status > 299) && !out.Success {
		out.Error = fmt.Sprintf("HTTP %d", status)
	}
	return &out, nil
}

// Logout cierra la sesión en el backend.
func (c *AuthClient) Logout(ctx context.Context, sessionID string) (*dto.LogoutResponse, error) {
	raw, _, err := c.do(ctx, sessionID, http.MethodPost, logoutPath, nil)
	if err != nil {
		return nil, err
	}
	var out dto.LogoutResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("auth: respuesta de logout inválida: %w", err)
	}
	if out.Success {
		// El backend ya invalidó su cookie; el jar no sirve más.
		c.Forget(sessionID)
	}
	return &out, nil
}

// do ejecuta la petición con el jar de la sesión y devuelve cuerpo y status.
func (c *AuthClient) do(ctx context.Context, sessionID, method, path string, body []byte) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("auth: crear petición: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Jar: c.jarFor(sessionID)}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("auth: error de conexión: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxAuthBody))
	if err != nil {
		return nil, 0, fmt.Errorf("auth: leer respuesta: %w", err)
	}
	return raw, resp.StatusCode, nil
}

func (c *AuthClient) jarFor(sessionID string) *cookiejar.Jar {
	c.mu.Lock()
	defer c.mu.Unlock()
	if jar, ok := c.jars[sessionID]; ok {
		return jar
	}
	jar, _ := cookiejar.New(nil) // el constructor con opciones nil no falla
	c.jars[sessionID] = jar
	return jar
}

// Forget descarta el jar de una sesión (al expirar o reiniciarse la sesión).
func (c *AuthClient) Forget(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.jars, sessionID)
}
