// Package server wires the document node: configuration, storage backends,
// the document service and the gRPC endpoint, with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/furball-art/furball/internal/logging"
	"github.com/furball-art/furball/internal/server/config"
	"github.com/furball-art/furball/internal/server/documents"
	"github.com/furball-art/furball/internal/storage"
	"github.com/furball-art/furball/internal/storage/backend"
	"github.com/furball-art/furball/internal/storage/s3cas"
	"github.com/furball-art/furball/internal/telemetry"

	gs "github.com/furball-art/furball/internal/server/grpc"
)

const serviceName = "docnode"

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	docs     documents.Service
	shutdown func(context.Context) error
}

// NewApp builds the node from cfg, logging JSON to stdout.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	return newApp(ctx, cfg, os.Stdout)
}

func newApp(ctx context.Context, cfg *config.Config, logOut io.Writer) (*App, error) {
	logger, err := logging.New(logOut, "json", cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	shutdown, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}

	app := &App{config: cfg, logger: logger, shutdown: shutdown}

	repo, err := app.openRepository(ctx)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	cas, err := openCAS(ctx, cfg)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("cas init error: %w", err)
	}

	app.docs = documents.NewService(repo, cas, logger)
	return app, nil
}

// openRepository picks PostgreSQL when a DSN is configured and the
// in-memory repository otherwise.
func (app *App) openRepository(ctx context.Context) (documents.Repository, error) {
	if app.config.DatabaseDSN == "" {
		app.logger.Warn(ctx, "No database DSN configured, documents are kept in memory")
		return documents.NewMemoryRepository(), nil
	}

	db, err := sql.Open("pgx", app.config.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	app.db = db

	if err := documents.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	return documents.NewPostgresRepository(db), nil
}

func openCAS(ctx context.Context, cfg *config.Config) (storage.CAS, error) {
	return backend.Open(ctx, backend.Options{
		Backend:  cfg.CASBackend,
		LocalDir: cfg.LocalCASDir,
		S3: s3cas.Options{
			Region:       cfg.S3Region,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			BaseEndpoint: cfg.S3BaseEndpoint,
			Bucket:       cfg.S3Bucket,
			Prefix:       cfg.S3Prefix,
		},
	})
}

func (app *App) Close() error {
	var errs []error
	if app.db != nil {
		errs = append(errs, app.db.Close())
	}
	if app.shutdown != nil {
		errs = append(errs, app.shutdown(context.Background()))
	}
	return errors.Join(errs...)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.docs, app.config.SecretKey,
		gs.WithTokenValidity(app.config.AccessTokenValidityDuration),
		gs.WithClockSkew(app.config.AuthClockSkew),
		gs.WithMaxMessageBytes(app.config.MaxMessageBytes),
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "cas", app.config.CASBackend)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()
	app.logger.Info(ctx, "App stopped")
}
