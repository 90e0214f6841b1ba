package core

import (
	"context"

	"barrelman/internal/infra/persistence/memory"
	"barrelman/internal/infra/persistence/postgres"
	"barrelman/internal/infra/persistence/sqlite"
	"barrelman/pkg/domain"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// StorageDriver identifies a concrete persistent storage implementation.
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"   // in-memory only (tests / ephemeral)
	StorageSQLite   StorageDriver = "sqlite"   // embedded sqlite file
	StoragePostgres StorageDriver = "postgres" // PostgreSQL server
)

// StorageConfig selects and configures the entity store backend.
type StorageConfig struct {
	Driver      string `mapstructure:"driver"`
	SQLitePath  string `mapstructure:"sqlite_path"`
	PostgresDSN string `mapstructure:"postgres_dsn"`
}

// OpenPersistentStore selects a backend from cfg. An empty driver means
// sqlite. kinds resolves the hierarchy and decodes stored rows; a nil log
// discards store logging.
func OpenPersistentStore(ctx context.Context, cfg StorageConfig, kinds domain.KindDecoder, engine *domain.RulesEngine, log *zap.SugaredLogger) (domain.PersistentStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	driver := StorageDriver(cfg.Driver)
	if driver == "" {
		driver = StorageSQLite
	}
	opts := []memory.Option{memory.WithLogger(log)}
	switch driver {
	case StorageMemory:
		return memory.NewStore(kinds, engine, opts...), nil
	case StorageSQLite:
		s, err := sqlite.NewStore(cfg.SQLitePath, kinds, engine, opts...)
		if err != nil {
			return nil, err
		}
		s.SetLogger(log)
		return s, nil
	case StoragePostgres:
		s, err := postgres.NewStore(cfg.PostgresDSN, kinds, engine, opts...)
		if err != nil {
			return nil, err
		}
		s.SetLogger(log)
		return s, nil
	default:
		return nil, errors.Newf("unknown storage driver %q", cfg.Driver)
	}
}
