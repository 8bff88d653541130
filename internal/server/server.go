package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"foodorder/internal/config"
	"foodorder/internal/handler"
	"foodorder/internal/middleware"
	"foodorder/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// サーバーに渡す部品一式
type Deps struct {
	Config   config.Config
	Logger   logrus.FieldLogger
	Verifier middleware.TokenVerifier
	Audit    repository.AuditLogRepository

	Auth  *handler.AuthHandler
	Menu  *handler.MenuHandler
	Order *handler.OrderHandler
}

// echoを組み立てる（listenはしない）
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: d.Config.CORSOrigins,
	}))
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(middleware.AuditLog(d.Audit, d.Logger, nil))

	RegisterRoutes(e, d)
	return e
}

// ctxがキャンセルされるまで動かし、その後 graceful shutdown
func Run(ctx context.Context, e *echo.Echo, addr string, log logrus.FieldLogger) error {
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
