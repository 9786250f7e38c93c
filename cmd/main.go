package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/asoloviev/nutritrack/internal/api/http/router"
	"github.com/asoloviev/nutritrack/internal/cache"
	"github.com/asoloviev/nutritrack/internal/config"
	"github.com/asoloviev/nutritrack/internal/hash"
	"github.com/asoloviev/nutritrack/internal/logger"
	"github.com/asoloviev/nutritrack/internal/model"
	"github.com/asoloviev/nutritrack/internal/repository/postgres"
	"github.com/asoloviev/nutritrack/internal/server"
	"github.com/asoloviev/nutritrack/internal/service"
	"github.com/asoloviev/nutritrack/internal/token"
	"github.com/asoloviev/nutritrack/internal/upstream"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	hasher := hash.NewBcrypt()
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	foodCache, err := cache.NewFromConfig(cfg.Cache, model.FoodCacheTTL, logger)
	if err != nil {
		logger.Fatal("failed to initialize cache", "error", err)
	}
	defer foodCache.Close()

	fetcher := upstream.NewClient(cfg.Food.BaseURL, cfg.Food.Timeout)

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	foodService := service.NewFood(foodCache, fetcher, logger)

	r := router.New(authService, foodService, tokenManager, db, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
