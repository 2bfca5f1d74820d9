package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kolatrade/trade-core-service/internal/app/background"
	"github.com/kolatrade/trade-core-service/internal/app/setup"
	"github.com/kolatrade/trade-core-service/internal/config"
	httpapi "github.com/kolatrade/trade-core-service/internal/delivery/http"
	"github.com/kolatrade/trade-core-service/internal/delivery/http/handlers"
	"github.com/kolatrade/trade-core-service/internal/delivery/http/middleware"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/logger"
	"github.com/kolatrade/trade-core-service/internal/infrastructure/migrate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	cfg := config.MustLoad()
	logger.Setup(cfg.LogConfig)

	deps := setup.InitializeDependencies(cfg)
	if cfg.TradeDB.MigrationsDir != "" {
		if err := migrate.RunMigrations(deps.DB, cfg.TradeDB.MigrationsDir); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	usecases := setup.InitializeUsecases(deps)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tasks := background.NewBackgroundTasks(usecases.RFQ, usecases.Account)
	tasks.StartAll(ctx)

	engine := httpapi.NewRouter(
		middleware.Auth(cfg.Auth.JWTSecret),
		handlers.NewRFQHandler(usecases.RFQ),
		handlers.NewOrderHandler(usecases.Order),
		handlers.NewEscrowHandler(usecases.Escrow),
		handlers.NewDisputeHandler(usecases.Dispute),
		handlers.NewAccountHandler(usecases.Account),
		handlers.NewAuditHandler(deps.Repositories.AuditSink),
	)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	slog.Info("starting trade core service", "addr", addr, "env", cfg.Env)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
