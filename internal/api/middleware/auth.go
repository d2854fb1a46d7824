package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/staffdesk/workforce-api/internal/core/domain"
)

// SessionChecker reports whether a session id still resolves to a live
// session (logout and TTL expiry both end one).
type SessionChecker interface {
	Active(ctx context.Context, sessionID string) (bool, error)
}

// AccountResolver re-resolves the token's email to a live account on every
// request, so a deleted account's token silently stops working.
type AccountResolver interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// Auth validates the JWT, checks the session allowlist, re-resolves the
// principal, and injects it into context.
func Auth(jwtSecret string, sessions SessionChecker, accounts AccountResolver) echo.MiddlewareFunc {
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

			email, _ := claims["email"].(string)
			sessionID, _ := claims["jti"].(string)
			if email == "" || sessionID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing identity claims")
			}

			ctx := c.Request().Context()
			if sessions != nil {
				active, err := sessions.Active(ctx, sessionID)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "session check failed")
				}
				if !active {
					return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
				}
			}

			account, err := accounts.FindByEmail(ctx, email)
			if err != nil {
				// Account deleted since login; the stale token is rejected.
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("email", account.Email)
			c.Set("role", account.Role)
			c.Set("session_id", sessionID)
			c.Set("account", account)

			return next(c)
		}
	}
}
