package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"inkwell/internal/server/store/migrations"
)

// PostgresBackend stores snapshots in a postgres table, one jsonb document
// per collection key.
type PostgresBackend struct {
	db *sql.DB
}

func NewPostgresBackend(ctx context.Context, dsn string) (*PostgresBackend, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	b := &PostgresBackend{db: db}
	if err := b.runMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return b, nil
}

// NewPostgresBackendFromDB wraps an existing connection without running
// migrations. Tests use it with a mock database.
func NewPostgresBackendFromDB(db *sql.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (b *PostgresBackend) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, b.db, "."); err != nil {
		return err
	}
	return nil
}

func (b *PostgresBackend) Close() error {
	return b.db.Close()
}

func (b *PostgresBackend) Read(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := b.db.QueryRowContext(ctx,
		`SELECT doc FROM snapshots WHERE key = $1`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return data, nil
}

func (b *PostgresBackend) Write(ctx context.Context, key string, data []byte) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, doc, updated_at) VALUES ($1, $2, now())
         ON CONFLICT (key) DO UPDATE SET doc = excluded.doc, updated_at = now()`,
		key, data)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
