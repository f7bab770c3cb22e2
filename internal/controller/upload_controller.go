package controller

import (
	"context"
	"io"

	"github.com/alimikegami/seller-dashboard/internal/dto"
	"github.com/alimikegami/seller-dashboard/internal/identity"
	"github.com/alimikegami/seller-dashboard/internal/service"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/alimikegami/seller-dashboard/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const uploadField = "file"

type uploadFunc func(ctx context.Context, caller identity.Identity, filename string, contentType string, size int64, r io.Reader) (dto.UploadResponse, error)

type UploadController struct {
	service service.UploadService
}

func CreateUploadController(g *echo.Group, svc service.UploadService, isLoggedIn echo.MiddlewareFunc) {
	uc := UploadController{
		service: svc,
	}

	g.POST("/uploads/products", uc.UploadProductImage, isLoggedIn)
	g.POST("/uploads/profile", uc.UploadProfileImage, isLoggedIn)
}

func (c *UploadController) UploadProductImage(e echo.Context) error {
	return c.handle(e, c.service.UploadProductImage)
}

func (c *UploadController) UploadProfileImage(e echo.Context) error {
	return c.handle(e, c.service.UploadProfileImage)
}

func (c *UploadController) handle(e echo.Context, upload uploadFunc) error {
	id, err := caller(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	fh, err := e.FormFile(uploadField)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Upload").Msg("")
		return response.WriteErrorResponse(e, errs.NewMissingFieldsError("Missing required fields", []string{uploadField}), nil)
	}

	file, err := fh.Open()
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Upload").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}
	defer file.Close()

	resp, err := upload(e.Request().Context(), id, fh.Filename, fh.Header.Get(echo.HeaderContentType), fh.Size, file)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "File uploaded", resp)
}
