package response

import (
	"errors"
	"net/http"

	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Status = "success"
	resp.Data = data
	resp.Message = message

	return c.JSON(http.StatusOK, resp)
}

func WriteCreatedResponse(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// WriteErrorResponse writes the error envelope. Missing field lists are
// attached to the errors field when the caller passes none.
func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = err.Error()
	resp.Errors = errors

	if resp.Errors == nil {
		if fields := missingFields(err); fields != nil {
			resp.Errors = fields
		}
	}

	if statusCode == http.StatusInternalServerError && !isKnown(err) {
		resp.Message = errs.ErrInternalServer.Error()
	}

	return c.JSON(statusCode, resp)
}

func missingFields(err error) []string {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

// store failures must not leak driver messages to the client
func isKnown(err error) bool {
	return errors.Is(err, errs.ErrFetchCategories) || errors.Is(err, errs.ErrInternalServer)
}
