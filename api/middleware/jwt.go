package middleware

import (
	"os"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/twisterdot/leaderboard/internal/apperrors"
	"github.com/twisterdot/leaderboard/internal/user"
)

func SetupJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(user.JwtCustomClaims)
		},
		SigningKey: []byte(os.Getenv("JWT_SECRET")),
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.Unauthenticated(err)
		},
	})
}

// AccountID returns the account identity embedded in the verified token.
// Identity fields in the request body are never trusted for attribution.
func AccountID(c echo.Context) (uint, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, apperrors.Unauthenticated(nil)
	}
	claims, ok := token.Claims.(*user.JwtCustomClaims)
	if !ok {
		return 0, apperrors.Unauthenticated(nil)
	}
	return claims.Id, nil
}
