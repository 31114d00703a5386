package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pantryio/ladle/internal/browse"
	"github.com/pantryio/ladle/internal/config"
	"github.com/pantryio/ladle/internal/pantry"
	"github.com/pantryio/ladle/internal/server"
	"github.com/pantryio/ladle/internal/version"
	"github.com/pantryio/ladle/pkg/vocab"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("ladle starting", zap.String("version", version.Short()))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	// Cold load: the recipe collection is read once and immutable afterwards.
	repo, err := pantry.Load(cfg.GetString(config.KeyDataDir), logger)
	if err != nil {
		logger.Fatal("failed to load recipe collection", zap.Error(err))
	}

	voc := vocab.New()
	engine := browse.NewEngine(repo.All())
	handler := browse.NewHandler(engine, repo, voc, cfg.PageSize(), logger)

	srv := server.New(cfg.GetString(config.KeyListenAddr), logger, server.Options{
		RateLimitRPS:   cfg.GetFloat64(config.KeyRateLimitRPS),
		RateLimitBurst: cfg.GetInt(config.KeyRateLimitBurst),
	}, handler)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("ladle ready",
		zap.String("addr", cfg.GetString(config.KeyListenAddr)),
		zap.Int("recipes", repo.Len()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("ladle stopped")
}
