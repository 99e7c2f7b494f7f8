package middleware

import (
	"errors"
	"net/http"

	commonhttp "bitbucket.org/Amartha/go-savings-engine/internal/common/http"

	"github.com/labstack/echo/v4"
)

func (m *AppMiddleware) InternalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			secretKey := c.Request().Header.Get("X-Secret-Key")
			if secretKey == "" {
				return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, errors.New("required secret key"))
			}

			if secretKey != m.conf.SecretKey {
				return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, errors.New("invalid secret key"))
			}

			return next(c)
		}
	}
}
