package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/7aib/spots-backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, userID uint, username string) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runMiddleware(secret, authHeader string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuthMiddleware(secret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return c, err
}

func TestJWTAuthMiddlewareAcceptsConfiguredSecret(t *testing.T) {
	token := signToken(t, "test-secret", 42, "alice")

	c, err := runMiddleware("test-secret", "Bearer "+token)
	require.NoError(t, err)

	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	require.True(t, ok, "claims should be stored in context")
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestJWTAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", 42, "alice")

	_, err := runMiddleware("test-secret", "Bearer "+token)
	require.Error(t, err)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestJWTAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	_, err := runMiddleware("test-secret", "")
	require.Error(t, err)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
