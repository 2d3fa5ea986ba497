// Command seed loads the default café menu into an empty catalog.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/MikeMC777/cafe-orders/internal/config"
	"github.com/MikeMC777/cafe-orders/internal/logging"
	"github.com/MikeMC777/cafe-orders/internal/menu"
	"github.com/MikeMC777/cafe-orders/internal/storage"
)

func main() {
	cfg := config.Load()
	log, err := logging.New(logging.Options{Production: cfg.IsProduction(), Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := storage.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()
	if err := storage.Migrate(ctx, pool); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	n, err := menu.NewService(menu.NewPGRepo(pool), log).Seed(ctx, menu.DefaultMenu)
	if err != nil {
		log.Fatal("seed menu", zap.Error(err))
	}
	log.Info("seed done", zap.Int("inserted", n))
}
