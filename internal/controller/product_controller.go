package controller

import (
	"github.com/alimikegami/seller-dashboard/internal/dto"
	"github.com/alimikegami/seller-dashboard/internal/service"
	pkgdto "github.com/alimikegami/seller-dashboard/pkg/dto"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/alimikegami/seller-dashboard/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(g *echo.Group, svc service.ProductService, isLoggedIn echo.MiddlewareFunc) {
	pc := ProductController{
		service: svc,
	}

	g.GET("/products", pc.GetProducts, isLoggedIn)
	g.POST("/products", pc.AddProduct, isLoggedIn)
	g.GET("/products/:id", pc.GetProduct, isLoggedIn)
	g.PUT("/products/:id", pc.UpdateProduct, isLoggedIn)
	g.DELETE("/products/:id", pc.DeleteProduct, isLoggedIn)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	id, err := caller(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetProducts").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.GetProducts(e.Request().Context(), id, filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	id, err := caller(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := payload.ValidateCreate(); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	productID, err := c.service.AddProduct(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Product created", dto.CreateProductResponse{ID: productID})
}

func (c *ProductController) GetProduct(e echo.Context) error {
	id, err := caller(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	productID, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.GetOwnedProduct(e.Request().Context(), id, productID)
	if err != nil {
		return response.WriteErrorResponse(e, opaque(err), nil)
	}

	if resp == nil {
		return response.WriteErrorResponse(e, errs.ErrUnauthorized, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	id, err := caller(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	productID, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := payload.ValidateUpdate(); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	if err := c.service.UpdateProduct(e.Request().Context(), id, productID, payload); err != nil {
		return response.WriteErrorResponse(e, opaque(err), nil)
	}

	return response.WriteSuccessResponse(e, "Product updated", nil)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	id, err := caller(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	productID, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	if err := c.service.DeleteProduct(e.Request().Context(), id, productID); err != nil {
		return response.WriteErrorResponse(e, opaque(err), nil)
	}

	return response.WriteSuccessResponse(e, "Product deleted", nil)
}
