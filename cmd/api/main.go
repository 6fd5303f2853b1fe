package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/storefront-service/internal/api/http"
	"github.com/spec-kit/storefront-service/internal/api/http/handlers"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/mail"
	"github.com/spec-kit/storefront-service/internal/observability"
	"github.com/spec-kit/storefront-service/internal/payment"
	"github.com/spec-kit/storefront-service/internal/persistence"
	"github.com/spec-kit/storefront-service/internal/repository"
	"github.com/spec-kit/storefront-service/internal/service"
	"github.com/spec-kit/storefront-service/internal/worker"
	"github.com/spec-kit/storefront-service/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), migrations.Files, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	adminRepo := repository.NewAdminRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	applicationRepo := repository.NewJobApplicationRepository(pool)
	bankDetailRepo := repository.NewBankDetailRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	authDeps := service.AuthDependencies{
		AdminRepo: adminRepo,
		Tokens:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL()),
		Logger:    logger,
	}
	if cfg.Auth.RevocationEnabled {
		authDeps.Revocation = repository.NewSessionRevocationRepository(redis.Client)
	}
	authService := service.NewAuthService(authDeps)

	if cfg.Auth.BootstrapEmail != "" {
		if _, err := authService.EnsureAdmin(ctx, cfg.Auth.BootstrapEmail, cfg.Auth.BootstrapPassword, cfg.Auth.BcryptCost); err != nil {
			logger.Fatal("failed to bootstrap admin", zap.Error(err))
		}
	}

	mailer := mail.New(cfg.Mail, logger)
	notifier := worker.NewNotificationWorker(mailer, logger, cfg.Mail.NotifyWorkers, cfg.Mail.NotifyQueueLength)
	notifier.Start(ctx)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, notifier, logger, cfg.Mail))

	contactRecipient := cfg.Mail.AdminTo
	if contactRecipient == "" {
		contactRecipient = cfg.Mail.From
	}

	orderService := service.NewOrderService(orderRepo, dispatcher, logger)
	applicationService := service.NewJobApplicationService(applicationRepo, dispatcher, logger)
	bankDetailService := service.NewBankDetailService(bankDetailRepo)
	contactService := service.NewContactService(mailer, contactRecipient)
	paymentService := service.NewPaymentService(service.PaymentDependencies{
		PaymentRepo: paymentRepo,
		OrderRepo:   orderRepo,
		Gateway:     payment.NewPaystackClient(cfg.Payment),
		Dispatcher:  dispatcher,
		CallbackURL: cfg.Payment.CallbackURL,
		Logger:      logger,
	})

	cookies := auth.NewSessionCookies(cfg.Auth.CookieName, cfg.App.IsProduction())
	metrics := observability.NewMetrics("storefront")
	metrics.Registry().MustRegister(persistence.NewPoolCollector("storefront", pool))

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.IsProduction(),
		ReadTimeout:           cfg.App.RequestTimeout() + 5*time.Second,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		AdminAuth:       handlers.NewAdminAuthHandler(authService, cookies),
		Contact:         handlers.NewContactHandler(contactService),
		Orders:          handlers.NewOrdersHandler(orderService),
		JobApplications: handlers.NewJobApplicationsHandler(applicationService),
		BankDetails:     handlers.NewBankDetailsHandler(bankDetailService, logger),
		Payments:        handlers.NewPaymentsHandler(paymentService),
		AuthMiddleware:  auth.NewAuthMiddleware(authService, cookies),
		Metrics:         metrics.Handler(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	notifier.Stop()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
