package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	applogger "QuoteFrame/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Recover turns a handler panic into a 500 response and an error log.
func Recover(l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				perr, ok := r.(error)
				if !ok {
					perr = fmt.Errorf("%v", r)
				}
				l.Error("http handler panic",
					applogger.String("request_id", GetRequestID(c)),
					applogger.String("path", c.Path()),
					applogger.Error(perr),
					applogger.String("stack", string(debug.Stack())),
				)
				err = c.JSON(http.StatusInternalServerError, map[string]interface{}{
					"status":  http.StatusInternalServerError,
					"message": http.StatusText(http.StatusInternalServerError),
				})
			}()
			return next(c)
		}
	}
}
