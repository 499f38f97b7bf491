package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	catalogdomain "github.com/reelmedia/reel/internal/catalog/domain"
	cataloghandler "github.com/reelmedia/reel/internal/catalog/handler"
	catalogrepo "github.com/reelmedia/reel/internal/catalog/repository"
	catalogservice "github.com/reelmedia/reel/internal/catalog/service"
	"github.com/reelmedia/reel/internal/server"
	userdomain "github.com/reelmedia/reel/internal/user/domain"
	userhandler "github.com/reelmedia/reel/internal/user/handler"
	userrepo "github.com/reelmedia/reel/internal/user/repository"
	userservice "github.com/reelmedia/reel/internal/user/service"
	"github.com/reelmedia/reel/pkg/auth"
	"github.com/reelmedia/reel/pkg/config"
	"github.com/reelmedia/reel/pkg/database"
	"github.com/reelmedia/reel/pkg/events"
	"github.com/reelmedia/reel/pkg/interfaces"
	"github.com/reelmedia/reel/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewZapLogger(cfg.Logger.Development, cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.NewGormDB(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", interfaces.Error(err))
	}

	if err := database.Migrate(db,
		&userdomain.User{},
		&catalogdomain.Movie{},
		&catalogdomain.Actor{},
		&catalogdomain.Genre{},
	); err != nil {
		log.Fatal("Failed to run migrations", interfaces.Error(err))
	}

	secret := cfg.Auth.Secret
	if secret == "" {
		secret = auth.GenerateSecret()
		log.Warn("No auth secret configured, generated an ephemeral one; tokens will not survive a restart")
	}
	tokens := auth.NewTokenManager(secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	gate := auth.NewGate(tokens, log)

	eventBus := events.NewLocalEventBus(log)
	if err := events.SubscribeAudit(eventBus, log); err != nil {
		log.Fatal("Failed to subscribe event audit", interfaces.Error(err))
	}

	authService := userservice.NewAuthService(userrepo.NewGormRepository(db), tokens, eventBus, log)
	catalogService := catalogservice.NewCatalogService(catalogrepo.NewGormRepository(db), eventBus, log)

	router := server.NewRouter(
		cfg,
		log,
		gate,
		userhandler.NewHandler(authService, log),
		cataloghandler.NewHandler(catalogService, log),
		db,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Info("HTTP server listening", interfaces.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", interfaces.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", interfaces.Error(err))
	}

	if err := eventBus.Stop(); err != nil {
		log.Error("Event bus shutdown failed", interfaces.Error(err))
	}

	log.Info("Shutdown complete")
}
