// Package server wires the credential service together: configuration,
// logging, the PostgreSQL store, the bootstrap administrator and the gRPC
// endpoint, and runs it until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/groupauth/internal/logging"
	"github.com/dmitrijs2005/groupauth/internal/server/config"
	"github.com/dmitrijs2005/groupauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/groupauth/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/groupauth/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	users       *services.UserService
	groups      *services.GroupService
}

// OpenDB opens the pgx-backed pool with the configured limits. It does not
// connect; the first query does.
func OpenDB(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	return db, nil
}

func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)

	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	rm := repomanager.NewPostgresRepositoryManager()

	return &App{
		config:      cfg,
		logger:      logger,
		db:          db,
		repomanager: rm,
		users:       services.NewUserService(db, rm),
		groups:      services.NewGroupService(db, rm, cfg),
	}, nil
}

// prepareStore checks connectivity, applies migrations and makes sure the
// bootstrap administrator exists.
func (app *App) prepareStore(ctx context.Context) error {
	if err := app.db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	created, err := app.users.EnsureRoot(ctx, app.config.RootUserEmail, app.config.RootUserPassword)
	if err != nil {
		return fmt.Errorf("bootstrap root user: %w", err)
	}
	if created {
		app.logger.Warn(ctx, "Created bootstrap administrator, change its password", "email", app.config.RootUserEmail)
	}
	return nil
}

// watchSignals cancels the run on SIGINT, SIGTERM or SIGQUIT.
func (app *App) watchSignals(ctx context.Context, cancel context.CancelFunc) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sigs)

	select {
	case sig := <-sigs:
		app.logger.Info(ctx, "Received signal, shutting down", "signal", sig.String())
		cancel()
	case <-ctx.Done():
	}
	return nil
}

// Run blocks until ctx is cancelled, a signal arrives or the server fails.
func (app *App) Run(ctx context.Context) error {
	defer app.db.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.logger.Info(ctx, "Starting app...")

	if err := app.prepareStore(ctx); err != nil {
		app.logger.Error(ctx, "store init failed", "error", err)
		return err
	}

	srv := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.groups, app.config.MaxWorkers)
	srv.SetShutdownTimeout(app.config.ShutdownTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.watchSignals(gctx, cancel)
	})
	g.Go(func() error {
		if err := srv.Run(gctx); err != nil {
			app.logger.Error(gctx, "gRPC server failed", "error", err)
			return err
		}
		return nil
	})

	err := g.Wait()
	app.logger.Info(context.Background(), "Stopped")
	return err
}
