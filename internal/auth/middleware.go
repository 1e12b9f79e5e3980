package auth

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "psisite/internal/errors"
)

// ContextKey is where the middleware stores *Claims on the echo context.
const ContextKey = "admin"

var errTokenRevoked = errors.New("token revoked")

// Middleware accepts bearer access tokens that are signed by jwtService and
// not blacklisted in tokens.
func Middleware(jwtService *JWTService, tokens TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token, AccessToken)
			if err != nil {
				return nil, err
			}
			revoked, _ := tokens.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
			if revoked {
				return nil, errTokenRevoked
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "unauthorized",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// ClaimsFrom returns the authenticated admin's claims, if any.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ContextKey).(*Claims)
	return claims, ok
}
