package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mbastos/acervo/internal/config"
	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/migrations"
)

// DB wraps the database/sql connection together with driver metadata so
// that repositories can translate driver-specific errors into the store
// package's sentinel errors.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection through the pgx stdlib
// driver, configures the pool, and verifies connectivity with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		driver: "pgx",
		logger: log,
	}, nil
}

// Migrate applies all embedded migrations for the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// isUniqueViolation reports whether err represents a unique-constraint
// violation for the DB's driver. The uniqueness constraint on cpf is the
// sole concurrency-sensitive invariant; the database enforces it atomically
// and this check turns the resulting error into a recoverable conflict.
func (db *DB) isUniqueViolation(err error) bool {
	switch db.driver {
	case "pgx":
		return postgresError(err) == pgerrcode.UniqueViolation
	case "sqlite3":
		return sqliteIsUniqueViolation(err)
	default:
		return false
	}
}

// postgresError extracts the PostgreSQL error code from a pgx driver error,
// or returns the empty string for any other error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
