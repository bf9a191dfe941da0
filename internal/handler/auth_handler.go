package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"swachvillage/internal/auth"
	"swachvillage/internal/model"
	"swachvillage/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	jwtService  *auth.JWTService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtService:  jwtService,
	}
}

// LoginRequest represents a login request. Identifier is an email or a phone
// number; Role selects which side of the app the client is signing in to.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Role       string `json:"role" validate:"required"`
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Password     string `json:"password" validate:"required,min=6"`
	Role         string `json:"role" validate:"required,oneof=consumer business"`
	BusinessName string `json:"business_name"`
}

// UserPayload is the redacted user object embedded in auth responses.
type UserPayload struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

func newUserPayload(user *model.User) UserPayload {
	return UserPayload{
		ID:         user.ID,
		Name:       user.FullName,
		Email:      user.Email,
		Role:       user.Role,
		IsVerified: user.IsVerified,
	}
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

// RegisterResponse represents a successful registration.
type RegisterResponse struct {
	Token   string      `json:"token"`
	User    UserPayload `json:"user"`
	Message string      `json:"message"`
}

// TokenUserPayload is the claim subset returned by verify-token.
type TokenUserPayload struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// VerifyTokenResponse reports whether a presented token is valid.
type VerifyTokenResponse struct {
	Valid   bool              `json:"valid"`
	User    *TokenUserPayload `json:"user,omitempty"`
	Message string            `json:"message,omitempty"`
}

// Login godoc
// @Summary Log in with email or phone
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No data provided")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Identifier, req.Password, req.Role)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  newUserPayload(user),
	})
}

// Register godoc
// @Summary Register a consumer or business account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No data provided")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}

	token, user, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     req.Password,
		Role:         req.Role,
		BusinessName: req.BusinessName,
	})
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusCreated, RegisterResponse{
		Token:   token,
		User:    newUserPayload(user),
		Message: "Registration successful",
	})
}

// VerifyToken godoc
// @Summary Check whether a bearer token is still valid
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} VerifyTokenResponse
// @Failure 401 {object} VerifyTokenResponse
// @Router /auth/verify-token [get]
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return c.JSON(http.StatusUnauthorized, VerifyTokenResponse{
			Valid:   false,
			Message: "No token provided",
		})
	}

	claims, err := h.jwtService.Validate(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, VerifyTokenResponse{
			Valid:   false,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, VerifyTokenResponse{
		Valid: true,
		User: &TokenUserPayload{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  claims.Role,
		},
	})
}
