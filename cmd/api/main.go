package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/oams-ph/transfer-api/internal/application/auth"
	apptransfer "github.com/oams-ph/transfer-api/internal/application/transfer"
	"github.com/oams-ph/transfer-api/internal/application/usecase"
	"github.com/oams-ph/transfer-api/internal/infrastructure/postgres"
	httpRouter "github.com/oams-ph/transfer-api/internal/interfaces/http"
	"github.com/oams-ph/transfer-api/pkg/config"
	"github.com/oams-ph/transfer-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	// Org settings are stamped onto every transfer; refuse to start without them.
	if err := cfg.Org.Validate(); err != nil {
		log.Fatal().Err(err).Msg("org configuration")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	transferRepo := postgres.NewTransferRepository(pool)
	divisionRepo := postgres.NewDivisionRepository(pool)
	schoolRepo := postgres.NewSchoolRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	transferUC := apptransfer.NewWorkflowUseCase(txRunner, transferRepo, divisionRepo, userRepo, apptransfer.OrgSnapshot{
		EntityName:     cfg.Org.EntityName,
		FundClusterSEP: cfg.Org.FundClusterSEP,
		FundClusterPPE: cfg.Org.FundClusterPPE,
	})
	schoolUC := usecase.NewSchoolUseCase(schoolRepo, divisionRepo)
	divisionUC := usecase.NewDivisionUseCase(divisionRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TransferUC: transferUC,
		SchoolUC:   schoolUC,
		DivisionUC: divisionUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
