package middleware

import (
	"net/http"
	"time"

	"github.com/alimikegami/seller-dashboard/internal/identity"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger gives every request a logger tagged with its request id, echoing
// the id back in the response headers. The access log line is written at
// warn level for client errors and error level for server errors.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		requestID := c.Request().Header.Get(echo.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))

		if err := next(c); err != nil {
			c.Error(err)
		}

		req := c.Request()
		status := c.Response().Status

		event := accessEvent(log.Ctx(req.Context()), status).
			Str("method", req.Method).
			Str("endpoint", c.Path()).
			Str("uri", req.RequestURI).
			Str("remote_ip", c.RealIP()).
			Int("status", status).
			Int64("latency", time.Since(start).Milliseconds())

		if id, ok := identity.FromContext(req.Context()); ok {
			event = event.Int64("seller_id", id.SellerID)
		}

		event.Msg("Request processed")

		return nil
	}
}

func accessEvent(logger *zerolog.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return logger.Error()
	case status >= http.StatusBadRequest:
		return logger.Warn()
	default:
		return logger.Info()
	}
}
