package auth

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const identityContextKey = "auth_identity"

// Identity is the verified caller, derived per request from a valid token.
// It lives only in the request context and is passed explicitly to handlers.
type Identity struct {
	UserID uint
	Email  string
	Role   string
}

// Guard returns the bearer-token verification middleware applied to every
// protected route group. Missing, malformed and expired tokens each get a
// distinguishing 401 message.
func Guard(svc *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  svc.Secret(),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			switch {
			case errors.Is(err, echojwt.ErrJWTMissing):
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization token is missing")
			case errors.Is(err, jwt.ErrTokenExpired):
				return echo.NewHTTPError(http.StatusUnauthorized, "Token expired")
			default:
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}
		},
	})
}

// RequireRoles enforces role membership on top of Guard and exposes the
// caller's Identity to the handler. An empty role list admits any
// authenticated caller.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}
			if len(roles) > 0 && !slices.Contains(roles, claims.Role) {
				return echo.NewHTTPError(http.StatusForbidden,
					"Access denied. This endpoint requires one of these roles: "+strings.Join(roles, ", "))
			}
			c.Set(identityContextKey, Identity{
				UserID: claims.UserID,
				Email:  claims.Email,
				Role:   claims.Role,
			})
			return next(c)
		}
	}
}

// IdentityFromContext returns the Identity placed by RequireRoles.
func IdentityFromContext(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(identityContextKey).(Identity)
	return identity, ok
}
