// Command tuffpuff runs the delivery backend API.
//
//	tuffpuff [flags]          serve the HTTP API
//	tuffpuff migrate [flags]  apply the database schema and exit
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/tuffpuff/internal/auth"
	"github.com/nikolayk812/tuffpuff/internal/checkout"
	"github.com/nikolayk812/tuffpuff/internal/config"
	"github.com/nikolayk812/tuffpuff/internal/db"
	"github.com/nikolayk812/tuffpuff/internal/httpapi"
	"github.com/nikolayk812/tuffpuff/internal/metrics"
	"github.com/nikolayk812/tuffpuff/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "tuffpuff: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	migrateOnly := len(args) > 0 && args[0] == "migrate"
	if migrateOnly {
		args = args[1:]
	}

	cfg, err := config.Load(args, os.Getenv)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := newPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if migrateOnly {
		if _, err := pool.Exec(ctx, db.Schema); err != nil {
			return fmt.Errorf("pool.Exec[schema]: %w", err)
		}
		logger.InfoContext(ctx, "schema applied")
		return nil
	}

	server, err := newServer(cfg, pool, logger)
	if err != nil {
		return err
	}

	return serve(ctx, cfg, server.Router(), logger)
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts)), nil
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts)), nil
}

func newPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	poolCfg.MaxConns = cfg.Database.MaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return pool, nil
}

func newServer(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*httpapi.Server, error) {
	pricing, err := cfg.Pricing()
	if err != nil {
		return nil, err
	}

	publicKey, err := cfg.PublicKeyPEM()
	if err != nil {
		return nil, fmt.Errorf("cfg.PublicKeyPEM: %w", err)
	}

	verifier, err := auth.NewJWTVerifier(auth.JWTConfig{
		HMACSecret:      cfg.Auth.Secret,
		RSAPublicKeyPEM: publicKey,
		Issuer:          cfg.Auth.Issuer,
		Audience:        cfg.Auth.Audience,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.NewJWTVerifier: %w", err)
	}

	products := repository.NewProduct(pool)
	users := repository.NewUser(pool)

	checkoutService, err := checkout.NewService(repository.NewTxRunner(pool), products, pricing, logger)
	if err != nil {
		return nil, fmt.Errorf("checkout.NewService: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	server, err := httpapi.NewServer(httpapi.Deps{
		Checkout:       checkoutService,
		Orders:         repository.NewOrder(pool),
		Products:       products,
		Addresses:      repository.NewAddress(pool),
		Users:          users,
		Syncer:         auth.NewSyncer(users),
		Verifier:       verifier,
		Metrics:        metrics.NewServerMetrics(reg),
		Logger:         logger,
		Currency:       pricing.Currency,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})
	if err != nil {
		return nil, fmt.Errorf("httpapi.NewServer: %w", err)
	}

	return server, nil
}

// serve blocks until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, cfg *config.Config, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "http server listening", slog.String("addr", cfg.Server.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("srv.ListenAndServe: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("srv.ListenAndServe: %w", err)
	}

	return nil
}
