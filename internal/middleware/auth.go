package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"hunthub/internal/auth"
	"hunthub/internal/model"
	"hunthub/internal/repository"
)

// TokenVerifier returns the bearer-token middleware for protected routes.
// Missing, malformed, expired or badly signed tokens all fail closed with
// 401 before any handler runs; valid claims land in the request context.
func TokenVerifier(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized access")
		},
	})
}

// ClaimsFrom extracts the verified claims placed in the context by
// TokenVerifier.
func ClaimsFrom(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized access")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.Email == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized access")
	}
	return claims, nil
}

// RequireRole gates a route on an exact role match. It must run after
// TokenVerifier. A missing user record or any other role fails with 403;
// there is no role hierarchy.
func RequireRole(users repository.UserRepository, role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := ClaimsFrom(c)
			if err != nil {
				return err
			}
			user, err := users.FindByEmail(c.Request().Context(), claims.Email)
			if err != nil || user.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden access")
			}
			return next(c)
		}
	}
}

// ValidateID rejects malformed :id path parameters with 400 before any
// store lookup happens.
func ValidateID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := uuid.Parse(c.Param("id")); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
		}
		return next(c)
	}
}
