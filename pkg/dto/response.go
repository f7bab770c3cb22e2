package dto

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func WriteSuccessResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "success",
		"message": message,
	})
}
