package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodorder/internal/config"
	"foodorder/internal/handler"
	"foodorder/internal/infra/db"
	infraRepo "foodorder/internal/infra/repository"
	"foodorder/internal/infra/token"
	"foodorder/internal/logging"
	"foodorder/internal/server"
	"foodorder/internal/usecase"
	"foodorder/internal/validator"

	"github.com/google/uuid"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info", false).WithError(err).Fatal("load config")
	}
	log := logging.New(cfg.LogLevel, cfg.IsProd())

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("connect db")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.WithError(err).Fatal("migrate db")
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	menuRepo := infraRepo.NewMenuItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)
	auditRepo := infraRepo.NewAuditLogFileRepository(cfg.AuditLogPath)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	issuer := token.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(
		userRepo,
		usecase.NewBcryptPasswordHasher(cfg.BcryptCost),
		usecase.NewBcryptPasswordVerifier(),
		issuer,
		idGen,
		clock,
		validator.NewAuthValidator(),
		log,
	)
	menuUC := usecase.NewMenuUsecase(menuRepo, idGen, log)
	orderUC := usecase.NewOrderUsecase(txm, orderRepo, idGen, clock, log)

	e := server.New(server.Deps{
		Config:   cfg,
		Logger:   log,
		Verifier: issuer,
		Audit:    auditRepo,
		Auth:     handler.NewAuthHandler(authUC),
		Menu:     handler.NewMenuHandler(menuUC),
		Order:    handler.NewOrderHandler(orderUC),
	})

	//SIGINT/SIGTERM で graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, e, cfg.Addr(), log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("bye")
}
