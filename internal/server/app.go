// Package server initializes and runs the credential service: it wires the
// store, the hashing primitives and the HTTP endpoint together, applies
// schema migrations on startup, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/eduauth/internal/hashing"
	"github.com/dmitrijs2005/eduauth/internal/logging"
	"github.com/dmitrijs2005/eduauth/internal/server/config"
	"github.com/dmitrijs2005/eduauth/internal/server/httpapi"
	"github.com/dmitrijs2005/eduauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/eduauth/internal/server/services"
	"github.com/dmitrijs2005/eduauth/internal/server/token"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	accountService *services.AccountService
	issuer         token.Issuer
}

func NewApp(cfg *config.Config) (*App, error) {

	s := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(s)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	hasher, err := hashing.NewHasher(cfg.HashCost)
	if err != nil {
		return nil, fmt.Errorf("hasher init error: %w", err)
	}
	lookup, err := hashing.NewLookupKey([]byte(cfg.LookupKey))
	if err != nil {
		return nil, fmt.Errorf("lookup key init error: %w", err)
	}

	svc := services.NewAccountService(db, rm, hasher, lookup)
	issuer := token.NewJWTIssuer([]byte(cfg.SecretKey), cfg.TokenValidityDuration)

	return &App{
		config:         cfg,
		logger:         logger,
		db:             db,
		repomanager:    rm,
		accountService: svc,
		issuer:         issuer,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	handler := httpapi.NewHandler(app.accountService, app.issuer, app.logger)
	s := httpapi.NewServer(app.config.EndpointAddr, httpapi.NewRouter(handler), app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		app.logger.Error(ctx, "migration error", "error", err.Error())
		return
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
