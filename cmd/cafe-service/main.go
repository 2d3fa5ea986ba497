// @title        Café Orders API
// @version      1.0
// @description  Menu, ordering and fulfillment workflow for a small café.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/MikeMC777/cafe-orders/internal/config"
	"github.com/MikeMC777/cafe-orders/internal/health"
	"github.com/MikeMC777/cafe-orders/internal/httpx"
	"github.com/MikeMC777/cafe-orders/internal/logging"
	"github.com/MikeMC777/cafe-orders/internal/menu"
	"github.com/MikeMC777/cafe-orders/internal/order"
	"github.com/MikeMC777/cafe-orders/internal/storage"
	"github.com/MikeMC777/cafe-orders/internal/user"
)

const healthEvery = 15 * time.Second

func main() {
	cfg := config.Load()

	log, err := logging.New(logging.Options{
		Production: cfg.IsProduction(),
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}
	if cfg.SessionSecret == config.DevSessionSecret {
		log.Warn("SESSION_SECRET not set, using development fallback")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := storage.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()
	if err := storage.Migrate(ctx, pool); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	tokens := user.NewTokens(cfg.SessionSecret, user.SessionTTL, log)
	users := user.NewService(user.NewPGRepo(pool), tokens, user.StaffCredentials{
		Username: cfg.StaffUsername,
		Password: cfg.StaffPassword,
	}, log)
	// staff login retries this, so a failure here is not fatal
	if _, err := users.EnsureStaff(ctx); err != nil {
		log.Error("ensure staff user", zap.Error(err))
	}
	menus := menu.NewService(menu.NewPGRepo(pool), log)
	orders := order.NewService(order.NewPGRepo(pool), menus, log)

	r := newRouter(app{
		users:  users,
		menu:   menus,
		orders: orders,
		db:     pool,
		cookie: httpx.CookieOptions{
			MaxAge: int(tokens.TTL().Seconds()),
			Secure: cfg.IsProduction(),
		},
		log: log,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	hs := health.NewServer(pool, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			return fmt.Errorf("grpc listen: %w", err)
		}
		log.Info("grpc health listening", zap.String("addr", cfg.GRPCAddr))
		return hs.GRPC.Serve(lis)
	})
	g.Go(func() error {
		hs.Check(gctx)
		hs.Watch(gctx, healthEvery)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		hs.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", zap.Error(err))
	}
}
