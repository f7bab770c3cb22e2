package controller

import (
	"github.com/alimikegami/seller-dashboard/internal/dto"
	"github.com/alimikegami/seller-dashboard/internal/service"
	"github.com/alimikegami/seller-dashboard/pkg/response"
	"github.com/labstack/echo/v4"
)

type CategoryController struct {
	service service.CategoryService
}

func CreateCategoryController(g *echo.Group, svc service.CategoryService) {
	cc := CategoryController{
		service: svc,
	}

	g.GET("/categories", cc.GetCategories)
}

func (c *CategoryController) GetCategories(e echo.Context) error {
	resp, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", dto.NewCategoryResponses(resp))
}
