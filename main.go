package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/cache"
	"github.com/leasedesk/backend/internal/config"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init --output api

// @title			LeaseDesk
// @version		1.0
// @description	The backend for LeaseDesk, a back office for commercial real-estate leasing: inventory, tenants, leases, CAM billing, invoices and payment allocation.
// @BasePath		/
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Log format can be explicitly set.
	// Debug mode always logs human readable
	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.GinMode == gin.DebugMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create the data directory for sqlite databases
	if cfg.DBDriver == config.DriverSQLite {
		err = os.MkdirAll(filepath.Dir(cfg.DBDSN), os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	// Connect to the database. This also migrates the schema
	err = models.Connect(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The cache is optional, without Redis every form is rendered from the database
	if cfg.RedisAddr != "" {
		client, err := cache.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		defer client.Close()

		cache.Default = cache.New(client, cfg.FormCacheTTL)
		log.Info().Str("address", cfg.RedisAddr).Msg("Cache")
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(cfg, r.Group(cfg.BaseURL.Path))

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("address", cfg.ListenAddr).Msg("Listening")

		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	sqlDB, err := models.DB.DB()
	if err == nil {
		sqlDB.Close()
	}
}
