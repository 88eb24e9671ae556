package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func signToken(t *testing.T, method jwt.SigningMethod, key any, subject string, dur time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(dur)),
	}
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func ginTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	whoami := func(c *gin.Context) {
		id, ok := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "auth": ok})
	}
	r.GET("/protected", JWTAuth(testSecret), whoami)
	r.GET("/optional", OptionalJWTAuth(testSecret), whoami)
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_SinToken(t *testing.T) {
	w := get(ginTestRouter(), "/protected", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"msg": "Autenticacion requerida"}`, w.Body.String())
}

func TestJWTAuth_TokenValido(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "7", time.Hour)

	w := get(ginTestRouter(), "/protected", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id": 7, "auth": true}`, w.Body.String())
}

func TestJWTAuth_TokensRechazados(t *testing.T) {
	cases := map[string]string{
		"expirado":       signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "7", -time.Minute),
		"otra firma":     signToken(t, jwt.SigningMethodHS256, []byte("otro-secreto"), "7", time.Hour),
		"sin subject":    signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "", time.Hour),
		"subject no int": signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "ana", time.Hour),
		"alg none":       signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, "7", time.Hour),
		"basura":         "no.es.jwt",
	}
	r := ginTestRouter()
	for name, token := range cases {
		w := get(r, "/protected", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
		assert.JSONEq(t, `{"msg": "Token invalido o expirado"}`, w.Body.String(), name)
	}
}

func TestOptionalJWTAuth(t *testing.T) {
	r := ginTestRouter()

	w := get(r, "/optional", "")
	assert.JSONEq(t, `{"user_id": 0, "auth": false}`, w.Body.String())

	w = get(r, "/optional", "no.es.jwt")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id": 0, "auth": false}`, w.Body.String())

	w = get(r, "/optional", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "3", time.Hour))
	assert.JSONEq(t, `{"user_id": 3, "auth": true}`, w.Body.String())
}
