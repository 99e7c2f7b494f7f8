package middleware

import (
	"bitbucket.org/Amartha/go-savings-engine/internal/common/log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderCorrelationID = "X-Correlation-ID"

// Context propagates the caller's correlation id, minting one when the
// header is absent, so every log line of the request carries it.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			correlationID := c.Request().Header.Get(HeaderCorrelationID)
			if correlationID == "" {
				correlationID = uuid.NewString()
			}

			ctx := log.SetCorrelationID(c.Request().Context(), correlationID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(HeaderCorrelationID, correlationID)

			return next(c)
		}
	}
}
