package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "care-portals/internal/adapters/storage/postgres"
	redisstore "care-portals/internal/adapters/storage/redis"
	"care-portals/internal/config"
	"care-portals/internal/platform/logger"
	"care-portals/internal/router"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

type serveFlags struct {
	configPath string
	port       string
	dbDSN      string
	redisAddr  string
	logLevel   string
	logFormat  string
}

func newServeCmd() *cobra.Command {
	var f serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Arranca el servidor HTTP.

Precedencia de configuración: defaults < archivo YAML (--config o CONFIG_FILE) < env < flags.
Sin --db-dsn el catálogo es in-memory; sin --redis-addr las sesiones también.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, f, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", os.Getenv("CONFIG_FILE"), "YAML config file")
	fl.StringVar(&f.port, "port", "", "listen port (PORT)")
	fl.StringVar(&f.dbDSN, "db-dsn", "", "postgres DSN for the catalog (DB_DSN)")
	fl.StringVar(&f.redisAddr, "redis-addr", "", "redis address for sessions (REDIS_ADDR)")
	fl.StringVar(&f.logLevel, "log-level", "", "debug|info|warn|error (LOG_LEVEL)")
	fl.StringVar(&f.logFormat, "log-format", "", "text|json (LOG_FORMAT)")
	return cmd
}

// applyFlags pisa la config solo con los flags que se pasaron explícitamente.
func applyFlags(cmd *cobra.Command, f serveFlags, cfg *config.Config) {
	set := func(name, val string, dst *string) {
		if cmd.Flags().Changed(name) {
			*dst = val
		}
	}
	set("port", f.port, &cfg.Port)
	set("db-dsn", f.dbDSN, &cfg.DBDSN)
	set("redis-addr", f.redisAddr, &cfg.Redis.Addr)
	set("log-level", f.logLevel, &cfg.Log.Level)
	set("log-format", f.logFormat, &cfg.Log.Format)
}

func serve(parent context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	defer func() {
		if s, ok := log.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
	}()

	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			return err
		}
		defer opened.Close()
		db = opened
	}

	var rdb goredis.UniversalClient
	if cfg.Redis.Addr != "" {
		client, err := redisstore.Open(ctx, redisstore.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer client.Close()
		rdb = client
	}

	app, err := router.New(ctx, router.Options{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  rdb,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app.Handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err})
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown", map[string]any{"error": err})
	}
	// envíos fire-and-forget pendientes
	app.Wait()
	return nil
}
