package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware is the http counterpart of UnaryInterceptor.
func (a *Authenticator) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			u, ok := a.resolve(bearerToken(req.Header.Get("Authorization")), req.Header.Get("X-Admin-Key"))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if u.StakeholderID == "" && !u.IsAdmin && !a.public[req.Method+" "+c.Path()] {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
			}

			c.SetRequest(req.WithContext(WithUser(req.Context(), u)))
			return next(c)
		}
	}
}
