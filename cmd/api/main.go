package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	_ "github.com/coursecart/coursecart-api/api/swagger"
	"github.com/coursecart/coursecart-api/internal/repository"
	"github.com/coursecart/coursecart-api/internal/router"
	"github.com/coursecart/coursecart-api/internal/service"
	"github.com/coursecart/coursecart-api/pkg/config"
	"github.com/coursecart/coursecart-api/pkg/database"
	"github.com/coursecart/coursecart-api/pkg/logger"
	"github.com/coursecart/coursecart-api/pkg/payment"
)

// @title CourseCart API
// @version 1.0.0
// @description Course enrollment backend: class listings, carts, roles, payments
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	validate := validator.New()

	classRepo := repository.NewClassRepository(db)
	selectionRepo := repository.NewSelectionRepository(db)
	userRepo := repository.NewUserRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	gateway := payment.NewStripeGateway(cfg.Stripe.SecretKey)

	authSvc := service.NewAuthService(validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     "coursecart-api",
	})
	metricsSvc := service.NewMetricsService()

	userSvc := service.NewUserService(userRepo, validate, logr)
	classSvc := service.NewClassService(classRepo, validate, logr, metricsSvc, cfg.Catalog.PopularLimit)
	selectionSvc := service.NewSelectionService(selectionRepo, validate, logr)
	paymentSvc := service.NewPaymentService(paymentRepo, gateway, validate, logr)

	r := router.New(router.Deps{
		Config:   cfg,
		Logger:   logr,
		Auth:     authSvc,
		Users:    userSvc,
		Classes:  classSvc,
		Carts:    selectionSvc,
		Pays:     paymentSvc,
		Metrics:  metricsSvc,
		UserRepo: userRepo,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("shutdown incomplete", "error", err)
	}
	logr.Sugar().Infow("server stopped")
}
