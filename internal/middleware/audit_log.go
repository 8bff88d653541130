package middleware

import (
	"bytes"
	"io"
	"strings"
	"time"

	"foodorder/internal/domain/model"
	"foodorder/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// 全リクエストを監査ログに残す。書き込み失敗はレスポンスに影響させない。
func AuditLog(sink repository.AuditLogRepository, log logrus.FieldLogger, now func() time.Time) echo.MiddlewareFunc {
	if now == nil {
		now = time.Now
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			var body string
			if req.Body != nil {
				raw, err := io.ReadAll(req.Body)
				if err != nil {
					log.WithError(err).Warn("read request body for audit failed")
				}
				//handlerが読めるように戻す
				req.Body = io.NopCloser(bytes.NewReader(raw))
				body = strings.TrimSpace(string(raw))
			}

			entry := model.AuditEntry{
				Time:          now(),
				Method:        req.Method,
				URL:           req.URL.RequestURI(),
				Authorization: req.Header.Get(echo.HeaderAuthorization),
				Body:          body,
			}
			if err := sink.Append(req.Context(), entry); err != nil {
				log.WithError(err).WithFields(logrus.Fields{
					"method": entry.Method,
					"url":    entry.URL,
				}).Error("write audit log failed")
			}

			return next(c)
		}
	}
}
