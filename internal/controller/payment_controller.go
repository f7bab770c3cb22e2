package controller

import (
	"github.com/alimikegami/seller-dashboard/internal/dto"
	"github.com/alimikegami/seller-dashboard/internal/service"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/alimikegami/seller-dashboard/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type PaymentController struct {
	service service.PaymentService
}

func CreatePaymentController(g *echo.Group, svc service.PaymentService, isLoggedIn echo.MiddlewareFunc) {
	pc := PaymentController{
		service: svc,
	}

	g.GET("/payment-methods/me", pc.GetPaymentMethod, isLoggedIn)
	g.PUT("/payment-methods", pc.UpsertPaymentMethod, isLoggedIn)
}

func (c *PaymentController) GetPaymentMethod(e echo.Context) error {
	id, err := caller(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.GetPaymentMethod(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	if resp == nil {
		return response.WriteErrorResponse(e, errs.ErrNotFound, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *PaymentController) UpsertPaymentMethod(e echo.Context) error {
	id, err := caller(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.PaymentMethodRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpsertPaymentMethod").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.UpsertPaymentMethod(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Payment method saved", resp)
}
