// Package app wires the taskhub auth-core runtime: config, logging, storage
// selection, the session service, and the ops HTTP surface.
//
// The application REST endpoints live in a separate transport layer; what
// runs here is the core plus its operational plumbing (/healthz, /readyz,
// /metrics, the refresh-token sweeper).
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"taskhub/cmd/identity"
	"taskhub/cmd/internal/auth/session"
	"taskhub/cmd/security/password"
	"taskhub/cmd/security/token"

	"github.com/jackc/pgx/v5/pgxpool"
)

// App is the taskhub runtime: it owns the storage handles, the session
// service, and the ops HTTP server.
type App struct {
	cfg Config
	log Logger

	dbPool    *pgxpool.Pool
	dbEnabled bool

	sessions *session.Service
	sweeper  *session.Sweeper
}

// New constructs a fully wired App instance from config and logger.
func New(cfg Config, log Logger) (*App, error) {
	if log == nil {
		log = NewLogger(cfg.LogLevel)
	}

	var (
		dbPool     *pgxpool.Pool
		userStore  identity.Store
		tokenStore session.Store
	)

	if cfg.DatabaseURL == "" {
		// Dev fallback: state disappears on restart.
		log.Warn("app.store.memory", "reason", "TASKHUB_DATABASE_URL not set")
		userStore = identity.NewMemoryStore()
		tokenStore = session.NewMemoryStore()
	} else {
		pool, err := NewDBPool(context.Background(), cfg)
		if err != nil {
			return nil, fmt.Errorf("db pool: %w", err)
		}
		log.Info("app.store.postgres", "max_conns", cfg.DBMaxConns)
		dbPool = pool
		userStore = identity.NewPostgresStore(pool)
		tokenStore = session.NewPostgresStore(pool)
	}

	params, err := password.ParamsFromEnv()
	if err != nil {
		return nil, err
	}
	hasher, err := password.NewHasher(params)
	if err != nil {
		return nil, err
	}

	tokCfg, err := token.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	issuer, err := token.NewIssuer(tokCfg)
	if err != nil {
		return nil, err
	}

	sessCfg, err := session.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}

	sessions, err := session.NewService(sessCfg, userStore, tokenStore, issuer, hasher, password.DefaultPolicy())
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:       cfg,
		log:       log,
		dbPool:    dbPool,
		dbEnabled: dbPool != nil,
		sessions:  sessions,
		sweeper:   session.NewSweeper(tokenStore, log, cfg.SweepInterval),
	}, nil
}

// Sessions exposes the wired session service to the transport layer.
func (a *App) Sessions() *session.Service { return a.sessions }

// Run serves the ops HTTP surface and the sweeper until ctx is canceled,
// then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	registerHTTP(mux, a.log, a.cfg, a.dbPool, a.dbEnabled)

	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: a.cfg.ReadHeaderTimeout,
		ReadTimeout:       a.cfg.ReadTimeout,
		WriteTimeout:      a.cfg.WriteTimeout,
		IdleTimeout:       a.cfg.IdleTimeout,
		MaxHeaderBytes:    a.cfg.MaxHeaderBytes,
	}

	go a.sweeper.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("app.http.listen", "addr", a.cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info("app.shutdown.signal")
	case err := <-errCh:
		a.close()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	a.close()
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	a.log.Info("app.stopped")
	return nil
}

func (a *App) close() {
	if a.dbPool != nil {
		a.dbPool.Close()
	}
}
