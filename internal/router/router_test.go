package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"restogestion/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newOfflineEngine builds the engine over a handle that never connects. Only
// requests rejected before reaching the store can be exercised.
func newOfflineEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(postgres.Open("postgres://u:p@127.0.0.1:1/none?sslmode=disable"), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	cfg := &config.Config{
		JWTSecret:               "test-secret",
		JWTExpirationHours:      1,
		BcryptCost:              4,
		RateLimitPerMinute:      1000,
		LoginRateLimitPerMinute: 2,
	}
	return New(cfg, db, nil)
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRutasProtegidas_SinToken(t *testing.T) {
	r := newOfflineEngine(t)

	paths := []string{
		"/usuarios", "/usuarios/1", "/ventas", "/gastos", "/facturas", "/proveedores",
		"/margen", "/restaurantes", "/private",
	}
	for _, p := range paths {
		for _, prefix := range []string{"", "/api"} {
			w := serve(r, http.MethodGet, prefix+p, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code, prefix+p)
		}
	}
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPut, "/cambiar-password", `{}`).Code)
}

func TestRutas_GastosSinDelete(t *testing.T) {
	r := newOfflineEngine(t)

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodDelete, "/gastos/1", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodDelete, "/ventas/1", "").Code)
}

func TestLogin_ValidaYLimita(t *testing.T) {
	r := newOfflineEngine(t)

	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPost, "/login", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPost, "/api/login", `{}`).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/login", `{}`).Code)
}

func TestHealth_SinBaseDeDatos(t *testing.T) {
	r := newOfflineEngine(t)

	w := serve(r, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
