// Package gormrepo implements the repository with gorm over PostgreSQL.
package gormrepo

import (
	"context"
	"fmt"

	"teamtodo/config"
	"teamtodo/internal/repository/postgres"

	"go.uber.org/zap"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Gorm wraps a gorm handle and configuration.
type Gorm struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	db      *gorm.DB
	cfg     config.PostgresConfig
}

// New creates a gorm-backed repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Gorm {
	return &Gorm{
		baseCtx: ctx,
		log:     log.Named("repo.gorm"),
		cfg:     cfg.Postgres,
	}
}

// OnStart opens the database, sizes its pool and applies migrations.
func (g *Gorm) OnStart(_ context.Context) error {
	db, err := gorm.Open(gormpg.Open(g.cfg.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(g.log),
	})
	if err != nil {
		return fmt.Errorf("open gorm: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("gorm sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(int(g.cfg.MaxConns))
	sqlDB.SetMaxIdleConns(int(g.cfg.MinConns))

	pingCtx, cancel := context.WithTimeout(g.baseCtx, g.cfg.QueryTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("ping: %w", err)
	}

	if err := postgres.Migrate(g.baseCtx, sqlDB, g.cfg); err != nil {
		_ = sqlDB.Close()
		return err
	}

	g.db = db
	g.log.Infow("gorm ready", "host", g.cfg.Host, "port", g.cfg.Port)
	return nil
}

// OnStop closes the underlying connection pool.
func (g *Gorm) OnStop(_ context.Context) error {
	if g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
