package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// 1リクエスト1行。5xxはerror、4xxはwarn。
func RequestLogger(logger logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				//echoのエラーハンドラでステータスを確定させる
				c.Error(err)
			}

			req := c.Request()
			entry := logger.WithFields(logrus.Fields{
				"method":      req.Method,
				"path":        req.URL.Path,
				"status_code": c.Response().Status,
				"latency_ms":  time.Since(start).Milliseconds(),
				"remote_ip":   c.RealIP(),
			})

			status := c.Response().Status
			switch {
			case status >= 500:
				entry.Error("request completed with server error")
			case status >= 400:
				entry.Warn("request completed with client error")
			default:
				entry.Info("request completed")
			}
			return nil
		}
	}
}
