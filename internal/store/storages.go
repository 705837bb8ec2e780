package store

import (
	"context"
	"fmt"

	"github.com/mbastos/acervo/internal/config"
	"github.com/mbastos/acervo/internal/logger"
)

// Storages aggregates every persistence backend the service layer needs.
type Storages struct {
	MemberRepository MemberRepository
	AssetStorage     AssetStorage
	Sessions         SessionStore
}

// NewStorages wires up the relational database (driver selected by
// configuration), applies pending migrations, prepares the asset storage
// areas, and connects the redis session store.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	assetStorage, err := NewFileAssetStorage(cfg.Assets, logger)
	if err != nil {
		return nil, err
	}

	sessions, err := NewRedisSessionStore(ctx, cfg.Redis, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		MemberRepository: NewMemberRepository(db, logger),
		AssetStorage:     assetStorage,
		Sessions:         sessions,
	}, nil
}
