package persistence

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/me-api/internal/config"
	"github.com/khoahotran/me-api/pkg/logger"
)

// Postgres holds the process-wide durable connection. A zero Postgres is a
// valid "not connected" value; every repository built on it checks Connected
// at call time.
type Postgres struct {
	pool atomic.Pointer[pgxpool.Pool]
}

func NewPostgresPool(cfg config.Config, log logger.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("do not create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	log.Info("Connect PostgreSQL successfully.")
	return pool, nil
}

// ConnectPostgres tries to establish the durable connection. Failure leaves the
// returned holder disconnected and is reported to the caller, who normally logs
// it and keeps serving from the in-memory holder.
func ConnectPostgres(cfg config.Config, log logger.Logger) (*Postgres, error) {
	pg := &Postgres{}
	if cfg.DB.DSN == "" {
		return pg, errors.New("DB_DSN is not set")
	}
	pool, err := NewPostgresPool(cfg, log)
	if err != nil {
		return pg, err
	}
	pg.pool.Store(pool)
	return pg, nil
}

// NewPostgresFromPool wraps an existing pool. Used by tests and scripts.
func NewPostgresFromPool(pool *pgxpool.Pool) *Postgres {
	pg := &Postgres{}
	pg.pool.Store(pool)
	return pg
}

func (p *Postgres) Pool() *pgxpool.Pool {
	if p == nil {
		return nil
	}
	return p.pool.Load()
}

func (p *Postgres) Connected() bool {
	return p.Pool() != nil
}

func (p *Postgres) Close() {
	if pool := p.Pool(); pool != nil {
		pool.Close()
		p.pool.Store(nil)
	}
}

// RunMigrations applies every pending migration under source (a golang-migrate
// source URL such as file://migrations).
func RunMigrations(source, dsn string, log logger.Logger) error {
	m, err := migrate.New(source, dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	version, dirty, _ := m.Version()
	log.Info("Migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
