package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"restogestion/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const UserIDKey = "user_id"

// JWTAuth validates the Bearer token on every protected route. The token's
// subject is the user id; it is stored under UserIDKey.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}

		id, err := parseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}

		c.Set(UserIDKey, id)
		c.Next()
	}
}

// OptionalJWTAuth resolves the caller when a valid token is present and lets
// the request through anonymously otherwise.
func OptionalJWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if id, err := parseToken(strings.TrimPrefix(header, "Bearer "), secret); err == nil {
				c.Set(UserIDKey, id)
			}
		}
		c.Next()
	}
}

func parseToken(tokenStr, secret string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, jwt.ErrTokenInvalidClaims
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 0)
	if err != nil || id == 0 {
		return 0, jwt.ErrTokenInvalidSubject
	}
	return uint(id), nil
}

// GetUserID returns the caller resolved by JWTAuth or OptionalJWTAuth.
func GetUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
