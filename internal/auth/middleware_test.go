package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newProtectedEcho(t *testing.T, service *JWTService) *echo.Echo {
	t.Helper()
	e := echo.New()
	group := e.Group("/business", Guard(service), RequireRoles("business"))
	group.GET("/ping", func(c echo.Context) error {
		identity, ok := IdentityFromContext(c)
		assert.True(t, ok)
		return c.JSON(http.StatusOK, map[string]interface{}{
			"user_id": identity.UserID,
			"email":   identity.Email,
			"role":    identity.Role,
		})
	})
	return e
}

func doRequest(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/business/ping", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGuard_MissingToken(t *testing.T) {
	e := newProtectedEcho(t, NewJWTService("test-secret"))

	rec := doRequest(e, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization token is missing")
}

func TestGuard_InvalidToken(t *testing.T) {
	e := newProtectedEcho(t, NewJWTService("test-secret"))

	rec := doRequest(e, "Bearer not.a.token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestGuard_ExpiredToken(t *testing.T) {
	service := NewJWTService("test-secret")
	e := newProtectedEcho(t, service)

	past := time.Now().Add(-time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 7,
		Role:   "business",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
		},
	})
	signed, err := expired.SignedString(service.Secret())
	assert.NoError(t, err)

	rec := doRequest(e, "Bearer "+signed)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token expired")
}

func TestGuard_RequiresBearerScheme(t *testing.T) {
	service := NewJWTService("test-secret")
	e := newProtectedEcho(t, service)

	token, err := service.Generate(7, "anita@example.com", "business")
	assert.NoError(t, err)

	// A bare token without the scheme prefix is rejected; the same token
	// with "Bearer " in front is accepted.
	rec := doRequest(e, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(e, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoles_WrongRole(t *testing.T) {
	service := NewJWTService("test-secret")
	e := newProtectedEcho(t, service)

	token, err := service.Generate(3, "consumer@example.com", "consumer")
	assert.NoError(t, err)

	rec := doRequest(e, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access denied. This endpoint requires one of these roles: business")
}

func TestRequireRoles_AllowsMatchingRole(t *testing.T) {
	service := NewJWTService("test-secret")
	e := newProtectedEcho(t, service)

	token, err := service.Generate(7, "anita@example.com", "business")
	assert.NoError(t, err)

	rec := doRequest(e, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":7`)
	assert.Contains(t, rec.Body.String(), `"email":"anita@example.com"`)
	assert.Contains(t, rec.Body.String(), `"role":"business"`)
}

func TestRequireRoles_MultipleRoles(t *testing.T) {
	service := NewJWTService("test-secret")
	e := echo.New()
	group := e.Group("/shared", Guard(service), RequireRoles("consumer", "business"))
	group.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, role := range []string{"consumer", "business"} {
		token, err := service.Generate(1, "user@example.com", role)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/shared/ping", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "role %s should be admitted", role)
	}
}
