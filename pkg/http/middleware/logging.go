package middleware

import (
	"time"

	applogger "QuoteFrame/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs one line per request; 5xx responses are logged as errors.
func RequestLogging(l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let echo write the response so the status below is final
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			fields := []applogger.Field{
				applogger.String("request_id", GetRequestID(c)),
				applogger.String("method", req.Method),
				applogger.String("uri", req.RequestURI),
				applogger.String("remote", c.RealIP()),
				applogger.Int("status", status),
				applogger.Duration("duration_ms", time.Since(start)),
			}
			if status >= 500 {
				l.Error("http request failed", fields...)
			} else {
				l.Info("http request", fields...)
			}
			return nil
		}
	}
}
