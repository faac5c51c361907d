package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/utils"
)

// APIKeyHeader carries the key of internal callers such as the mileage scheduler
const APIKeyHeader = "X-API-Key"

// ValidateAPIKey guards internal endpoints. keys is a comma separated list so
// a new key can be rolled out before the old one is withdrawn. An empty list
// disables the endpoints.
func ValidateAPIKey(keys string) echo.MiddlewareFunc {
	var accepted [][]byte
	for _, k := range strings.Split(keys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			accepted = append(accepted, []byte(k))
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(accepted) == 0 {
				return utils.ErrorResponseHandler(c, http.StatusServiceUnavailable, "Internal API disabled")
			}

			presented := c.Request().Header.Get(APIKeyHeader)
			if presented == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}
			if !anyKeyMatches(accepted, []byte(presented)) {
				logger.WarnCtx(c.Request().Context(), "Rejected internal API key",
					logger.String("path", c.Path()),
					logger.String("ip", c.RealIP()))
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}
			return next(c)
		}
	}
}

// anyKeyMatches compares against every key so timing does not reveal which one matched
func anyKeyMatches(accepted [][]byte, presented []byte) bool {
	match := 0
	for _, k := range accepted {
		match |= subtle.ConstantTimeCompare(k, presented)
	}
	return match == 1
}
