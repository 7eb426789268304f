package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paywrap/ezidebit-gateway/internal/application"
	"github.com/paywrap/ezidebit-gateway/internal/config"
	"github.com/paywrap/ezidebit-gateway/internal/infrastructure/ezidebit"
	"github.com/paywrap/ezidebit-gateway/internal/interfaces/rest"
	"github.com/paywrap/ezidebit-gateway/internal/interfaces/rest/handlers"
	"github.com/paywrap/ezidebit-gateway/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting ezidebit gateway",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	gatewayClient := ezidebit.NewGatewayClient(cfg.Ezidebit, logger)
	paymentService := application.NewPaymentService(gatewayClient, logger)

	h := handlers.NewHandlers(paymentService, logger)
	router := rest.NewRouter(h,
		middleware.RequestID(),
		middleware.Logging(logger),
		middleware.Recovery(logger),
	)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
