package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Logger интерфейс логгера мигратора
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator обёртка над goose, применяющая встроенные миграции
type Migrator struct {
	db     *sql.DB
	fsys   fs.FS
	logger Logger
}

// New создаёт мигратор поверх пула pgx. Goose работает с *sql.DB,
// поэтому соединение открывается из пула через stdlib.
func New(pool *pgxpool.Pool, fsys fs.FS, logger Logger) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}

	return &Migrator{
		db:     stdlib.OpenDBFromPool(pool),
		fsys:   fsys,
		logger: logger,
	}, nil
}

// Run применяет все pending миграции
func (m *Migrator) Run(ctx context.Context) error {
	m.logger.Info("Applying database migrations...")

	goose.SetBaseFS(m.fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return fmt.Errorf("get version: %w", err)
	}

	m.logger.Info("Migrations applied, schema version=%d", version)
	return nil
}

// Close закрывает соединение мигратора; пул управляется вызывающей стороной
func (m *Migrator) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
