package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/workforce-api/internal/core/domain"
)

// ctxPrincipal extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both email and role
// must be non-empty (presence proves the middleware ran and resolved a live
// account).
func ctxPrincipal(c echo.Context) (email, role string, err error) {
	email, _ = c.Get("email").(string)
	role, _ = c.Get("role").(string)
	if email == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, role, nil
}

// ctxAccount returns the full resolved account for profile-style reads.
func ctxAccount(c echo.Context) (*domain.Account, error) {
	account, _ := c.Get("account").(*domain.Account)
	if account == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return account, nil
}
