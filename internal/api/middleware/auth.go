package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/iskate/admin-portal/internal/core/ports"
)

// Context keys set by Auth.
const (
	KeyUID      = "uid"
	KeyEmail    = "email"
	KeyUsername = "username"
	KeyTokenID  = "jti"
	KeyExpires  = "exp"
)

// Auth validates the JWT, rejects revoked sessions, and injects claims into
// context. sessions may be nil, in which case revocation is not checked.
func Auth(jwtSecret string, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			uid, _ := claims.GetSubject()
			if uid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			jti, _ := claims["jti"].(string)
			if sessions != nil && jti != "" {
				revoked, err := sessions.IsRevoked(c.Request().Context(), jti)
				if err != nil {
					return err
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "session has been signed out")
				}
			}

			var expires time.Time
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				expires = exp.Time
			}

			c.Set(KeyUID, uid)
			c.Set(KeyEmail, claims["email"])
			c.Set(KeyUsername, claims["username"])
			c.Set(KeyTokenID, jti)
			c.Set(KeyExpires, expires)

			return next(c)
		}
	}
}
