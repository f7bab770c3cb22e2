package controller

import (
	"github.com/alimikegami/seller-dashboard/internal/dto"
	"github.com/alimikegami/seller-dashboard/internal/service"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/alimikegami/seller-dashboard/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type SellerController struct {
	service service.SellerService
}

func CreateSellerController(g *echo.Group, svc service.SellerService, isLoggedIn echo.MiddlewareFunc) {
	sc := SellerController{
		service: svc,
	}

	g.GET("/sellers/me", sc.GetProfile, isLoggedIn)
	g.PUT("/sellers/me", sc.UpdateProfile, isLoggedIn)
}

func (c *SellerController) GetProfile(e echo.Context) error {
	id, err := caller(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.GetSellerProfile(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *SellerController) UpdateProfile(e echo.Context) error {
	id, err := caller(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.SellerProfileRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateProfile").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := c.service.UpdateSellerProfile(e.Request().Context(), id, payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Profile updated", nil)
}
