package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fabric-bridge/internal/config"
	"github.com/MKhiriev/fabric-bridge/internal/logger"
)

// Storages bundles the repositories and the connection they share.
type Storages struct {
	SyncEventRepository SyncEventRepository

	db *DB
}

// NewStorages connects the journal database described by cfg, applies the
// migrations and builds the repositories. With an empty DSN the journal is
// disabled and a no-op repository is returned.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("journal database is not configured, sync events will not be recorded")
		return &Storages{SyncEventRepository: NewNopSyncEventRepository()}, nil
	}

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		SyncEventRepository: NewSyncEventRepository(db, log),
		db:                  db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
