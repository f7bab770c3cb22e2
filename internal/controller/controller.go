package controller

import (
	"errors"
	"strconv"

	"github.com/alimikegami/seller-dashboard/internal/identity"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/labstack/echo/v4"
)

// caller returns the identity set by the auth middleware.
func caller(e echo.Context) (identity.Identity, error) {
	id, ok := identity.FromContext(e.Request().Context())
	if !ok {
		return identity.Identity{}, errs.ErrNotLoggedIn
	}
	return id, nil
}

func pathID(e echo.Context) (int64, error) {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.ErrClient
	}
	return id, nil
}

// opaque hides whether a product exists from sellers who do not own it.
func opaque(err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return errs.ErrUnauthorized
	}
	return err
}
