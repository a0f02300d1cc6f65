package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoelHidalgo58/myapp-inv2/internal/config"
	"github.com/JoelHidalgo58/myapp-inv2/internal/notify"
	"github.com/JoelHidalgo58/myapp-inv2/internal/repository"
	"github.com/JoelHidalgo58/myapp-inv2/internal/state"
	"github.com/JoelHidalgo58/myapp-inv2/internal/store"

	"github.com/gin-gonic/gin"
)

func testEngine(t *testing.T) (*gin.Engine, *state.Controller) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:               0,
		Env:                "development",
		DataDir:            t.TempDir(),
		PDFStoragePath:     t.TempDir(),
		JWTSecret:          "secreto-de-prueba",
		JWTExpirationHours: 1,
		AdminUsername:      "admin",
		AdminPassword:      "admin123",
	}

	st := store.NewFileStore(cfg.DataDir, zerolog.Nop())
	ctrl := state.NewController(
		repository.NewUsuarioRepository(st, zerolog.Nop()),
		repository.NewProductoRepository(st, zerolog.Nop()),
		repository.NewVentaRepository(st, zerolog.Nop()),
		repository.NewHistorialRepository(st, zerolog.Nop()),
		notify.NewLogNotificador(zerolog.Nop()),
		state.NewPersister(zerolog.Nop()),
		zerolog.Nop(),
	)
	require.NoError(t, ctrl.Cargar(context.Background(), cfg.AdminUsername, cfg.AdminPassword))
	t.Cleanup(ctrl.Cerrar)

	return New(cfg, ctrl, zerolog.Nop()), ctrl
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestHealth(t *testing.T) {
	r, _ := testEngine(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginYAccesoProtegido(t *testing.T) {
	r, _ := testEngine(t)

	w := doJSON(t, r, http.MethodGet, "/v1/productos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "no token, no access")

	w = doJSON(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{"username": "admin", "password": "mal"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := login(t, r, "admin", "admin123")
	w = doJSON(t, r, http.MethodGet, "/v1/productos", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutInvalidaToken(t *testing.T) {
	r, _ := testEngine(t)
	token := login(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodPost, "/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/productos", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code,
		"a JWT without a live session behind it is rejected")
}

func TestFlujoProductoVenta(t *testing.T) {
	r, _ := testEngine(t)
	token := login(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodPost, "/v1/productos", token, gin.H{
		"nombre": "Mouse", "cantidad": 20, "precio": "5.50", "categoria": "Periféricos",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/v1/usuarios", token, gin.H{
		"nombre": "Carlos", "username": "carlos", "password": "clave", "rol": "VIP",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/v1/ventas", token, gin.H{
		"cliente_username": "carlos",
		"items":            []gin.H{{"producto_nombre": "Mouse", "cantidad": 4}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var ventas struct {
		Data []struct {
			ProductoNombre string `json:"producto_nombre"`
			Cantidad       int    `json:"cantidad"`
			Total          string `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ventas))
	require.Len(t, ventas.Data, 1)
	assert.Equal(t, "Mouse", ventas.Data[0].ProductoNombre)
	assert.Equal(t, "22", ventas.Data[0].Total)

	w = doJSON(t, r, http.MethodGet, "/v1/productos", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cantidad":16`)
}

func TestVentaRechazaClienteNoCliente(t *testing.T) {
	r, _ := testEngine(t)
	token := login(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodPost, "/v1/ventas", token, gin.H{
		"cliente_username": "admin",
		"items":            []gin.H{{"producto_nombre": "Mouse", "cantidad": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "staff accounts cannot be sale clients")
}

func TestRolInsuficiente(t *testing.T) {
	r, _ := testEngine(t)
	adminToken := login(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodPost, "/v1/usuarios", adminToken, gin.H{
		"nombre": "Vera", "username": "vera", "password": "clave", "rol": "Vendedor",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The single-session model: vera's login takes the session over.
	veraToken := login(t, r, "vera", "clave")

	w = doJSON(t, r, http.MethodPost, "/v1/usuarios", veraToken, gin.H{
		"nombre": "X", "username": "x", "password": "x", "rol": "Regular",
	})
	assert.Equal(t, http.StatusForbidden, w.Code, "user management is admin-only")

	w = doJSON(t, r, http.MethodGet, "/v1/productos", adminToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code,
		"the displaced admin token no longer maps to the active session")
}

func TestValidacionDeRequests(t *testing.T) {
	r, _ := testEngine(t)
	token := login(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodPost, "/v1/productos", token, gin.H{
		"nombre": "", "cantidad": 1, "precio": "1",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, http.MethodPost, "/v1/usuarios", token, gin.H{
		"nombre": "X", "username": "x", "password": "x", "rol": "Gerente",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "roles outside the allow-list are rejected")
}

func TestReporteInventarioDescarga(t *testing.T) {
	r, _ := testEngine(t)
	token := login(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodGet, "/v1/reportes/inventario", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.Bytes()
	require.Greater(t, len(body), 4)
	assert.Equal(t, "%PDF", string(body[:4]))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Reporte_Inventario_")
}

func TestFacturaSinCompras(t *testing.T) {
	r, _ := testEngine(t)
	token := login(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodPost, "/v1/usuarios", token, gin.H{
		"nombre": "Carlos", "username": "carlos", "password": "clave", "rol": "Regular",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/v1/reportes/factura", token, gin.H{
		"cliente_username": "carlos", "fecha": "2026-01-15",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
