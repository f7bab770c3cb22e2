package controller

import (
	"github.com/alimikegami/seller-dashboard/internal/service"
	"github.com/alimikegami/seller-dashboard/pkg/response"
	"github.com/labstack/echo/v4"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(g *echo.Group, svc service.OrderService, isLoggedIn echo.MiddlewareFunc) {
	oc := OrderController{
		service: svc,
	}

	g.GET("/orders", oc.GetOrders, isLoggedIn)
	g.GET("/orders/:id", oc.GetOrder, isLoggedIn)
}

func (c *OrderController) GetOrders(e echo.Context) error {
	id, err := caller(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.GetOrders(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) GetOrder(e echo.Context) error {
	id, err := caller(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	orderID, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.GetOrder(e.Request().Context(), id, orderID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
