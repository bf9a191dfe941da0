package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"swachvillage/internal/auth"
	apperrors "swachvillage/internal/errors"
	"swachvillage/internal/model"
	"swachvillage/internal/service"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password, role string) (string, *model.User, error) {
	args := m.Called(ctx, identifier, password, role)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) Register(ctx context.Context, input service.RegisterInput) (string, *model.User, error) {
	args := m.Called(ctx, input)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func postJSON(e *echo.Echo, handler echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Login", mock.Anything, "anita@example.com", "secret123", "business").Return("signed-token", &model.User{
			ID:       7,
			FullName: "Anita Sharma",
			Email:    "anita@example.com",
			Role:     "business",
		}, nil)

		h := NewAuthHandler(mockAuth, auth.NewJWTService("test-secret"))
		rec := postJSON(newTestEcho(), h.Login, "/api/auth/login",
			`{"identifier":"anita@example.com","password":"secret123","role":"business"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
		assert.Contains(t, rec.Body.String(), `"name":"Anita Sharma"`)
		assert.NotContains(t, rec.Body.String(), "password")
		mockAuth.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		h := NewAuthHandler(new(MockAuthService), auth.NewJWTService("test-secret"))
		rec := postJSON(newTestEcho(), h.Login, "/api/auth/login",
			`{"identifier":"anita@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing required fields")
	})

	t.Run("role mismatch maps to 403", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Login", mock.Anything, "anita@example.com", "secret123", "consumer").
			Return("", nil, &apperrors.RoleMismatchError{Role: "consumer"})

		h := NewAuthHandler(mockAuth, auth.NewJWTService("test-secret"))
		rec := postJSON(newTestEcho(), h.Login, "/api/auth/login",
			`{"identifier":"anita@example.com","password":"secret123","role":"consumer"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "User is not registered as a consumer")
	})

	t.Run("invalid credentials map to 401", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Login", mock.Anything, "anita@example.com", "wrong", "business").
			Return("", nil, apperrors.ErrInvalidCredentials)

		h := NewAuthHandler(mockAuth, auth.NewJWTService("test-secret"))
		rec := postJSON(newTestEcho(), h.Login, "/api/auth/login",
			`{"identifier":"anita@example.com","password":"wrong","role":"business"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	})
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterInput) bool {
			return in.Email == "new@example.com" && in.Role == "consumer"
		})).Return("signed-token", &model.User{
			ID:       3,
			FullName: "Demo Consumer",
			Email:    "new@example.com",
			Role:     "consumer",
		}, nil)

		h := NewAuthHandler(mockAuth, auth.NewJWTService("test-secret"))
		rec := postJSON(newTestEcho(), h.Register, "/api/auth/register",
			`{"full_name":"Demo Consumer","email":"new@example.com","phone":"9876500001","password":"secret123","role":"consumer"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Registration successful")
		mockAuth.AssertExpectations(t)
	})

	t.Run("invalid role rejected by validation", func(t *testing.T) {
		h := NewAuthHandler(new(MockAuthService), auth.NewJWTService("test-secret"))
		rec := postJSON(newTestEcho(), h.Register, "/api/auth/register",
			`{"full_name":"X","email":"x@example.com","phone":"1","password":"secret123","role":"admin"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing required fields")
	})

	t.Run("duplicate email maps to 400", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Register", mock.Anything, mock.Anything).Return("", nil, apperrors.ErrEmailTaken)

		h := NewAuthHandler(mockAuth, auth.NewJWTService("test-secret"))
		rec := postJSON(newTestEcho(), h.Register, "/api/auth/register",
			`{"full_name":"X","email":"taken@example.com","phone":"1","password":"secret123","role":"consumer"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email already registered")
	})
}

func TestAuthHandler_VerifyToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	h := NewAuthHandler(new(MockAuthService), jwtService)
	e := newTestEcho()

	verify := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/verify-token", nil)
		if authorization != "" {
			req.Header.Set(echo.HeaderAuthorization, authorization)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := h.VerifyToken(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec
	}

	t.Run("valid token", func(t *testing.T) {
		token, err := jwtService.Generate(7, "anita@example.com", "business")
		assert.NoError(t, err)

		rec := verify("Bearer " + token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"valid":true`)
		assert.Contains(t, rec.Body.String(), `"email":"anita@example.com"`)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := verify("")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"valid":false`)
		assert.Contains(t, rec.Body.String(), "No token provided")
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := verify("Bearer not.a.token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"valid":false`)
		assert.Contains(t, rec.Body.String(), "Invalid token")
	})
}
