package controller

import (
	"net/http"

	"github.com/alimikegami/seller-dashboard/internal/service"
	"github.com/alimikegami/seller-dashboard/pkg/response"
	"github.com/labstack/echo/v4"
)

type AuthController struct {
	service service.AuthService
}

func CreateAuthController(g *echo.Group, svc service.AuthService) {
	ac := AuthController{
		service: svc,
	}

	g.GET("/auth/google/login", ac.GoogleLogin)
	g.GET("/auth/google/callback", ac.GoogleCallback)
}

func (c *AuthController) GoogleLogin(e echo.Context) error {
	redirectURL, err := c.service.BeginGoogleLogin(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.Redirect(http.StatusFound, redirectURL)
}

func (c *AuthController) GoogleCallback(e echo.Context) error {
	resp, err := c.service.CompleteGoogleLogin(e.Request().Context(), e.QueryParam("state"), e.QueryParam("code"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
