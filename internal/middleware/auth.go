package middleware

import (
	"strings"

	"github.com/alimikegami/seller-dashboard/internal/identity"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/alimikegami/seller-dashboard/pkg/response"
	"github.com/alimikegami/seller-dashboard/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// IsLoggedIn validates the bearer token and stores the caller identity in
// the request context.
func IsLoggedIn(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			claims, err := utils.ParseJWTToken(strings.TrimSpace(token), jwtSecret)
			if err != nil {
				log.Ctx(c.Request().Context()).Debug().Err(err).Str("component", "IsLoggedIn").Msg("")
				return response.WriteErrorResponse(c, errs.ErrInvalidToken, nil)
			}

			ctx := identity.NewContext(c.Request().Context(), identity.Identity{
				SellerID:   claims.SellerID,
				Email:      claims.Email,
				Name:       claims.Name,
				ExternalID: claims.ExternalID,
				Role:       claims.Role,
			})
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
