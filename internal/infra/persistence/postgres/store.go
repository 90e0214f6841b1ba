// Package postgres provides a Postgres-backed entity store that mirrors the
// in-memory semantics and writes committed rows behind them as JSONB.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"barrelman/internal/infra/persistence/memory"
	"barrelman/pkg/domain"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	"go.uber.org/zap"
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.PersistentStore = (*Store)(nil)

const (
	defaultDriver = "pgx"
	// Default DSN keeps parity with OpenPersistentStore defaults while allowing overrides via env.
	defaultDSN = "postgres://localhost/barrelman?sslmode=disable"
)

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS entities (
		id UUID PRIMARY KEY,
		kind INTEGER NOT NULL,
		row_version BIGINT NOT NULL,
		deleted BOOLEAN NOT NULL DEFAULT FALSE,
		payload JSONB NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS entities_row_version ON entities(row_version)`,
	`CREATE TABLE IF NOT EXISTS store_meta (
		key TEXT PRIMARY KEY,
		value BIGINT NOT NULL
	)`,
}

const (
	persistedKey = "persisted_version"

	selectEntities  = `SELECT id, payload FROM entities ORDER BY row_version`
	selectPersisted = `SELECT value FROM store_meta WHERE key = $1`
	upsertEntity    = `INSERT INTO entities(id, kind, row_version, deleted, payload) VALUES($1,$2,$3,$4,$5)
		ON CONFLICT(id) DO UPDATE SET kind=EXCLUDED.kind, row_version=EXCLUDED.row_version, deleted=EXCLUDED.deleted, payload=EXCLUDED.payload`
	upsertPersisted = `INSERT INTO store_meta(key, value) VALUES($1,$2) ON CONFLICT(key) DO UPDATE SET value=EXCLUDED.value`
	purgeEntities   = `DELETE FROM entities WHERE deleted AND row_version <= $1`
)

// Store persists committed rows to Postgres while reusing the in-memory
// implementation for transactions.
type Store struct {
	*memory.Store
	db        *sql.DB
	mu        sync.Mutex
	persisted uint64
	log       *zap.SugaredLogger
}

// NewStore opens a Postgres-backed store using the provided DSN (falls back to defaultDSN).
// It ensures the tables exist and hydrates the in-memory store from stored rows.
func NewStore(dsn string, kinds domain.KindDecoder, engine *domain.RulesEngine, opts ...memory.Option) (*Store, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	openMu.Lock()
	db, err := sqlOpen(defaultDriver, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, errors.Wrap(err, "ensure schema")
		}
	}
	snapshot, err := loadSnapshot(ctx, db, kinds)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	mem := memory.NewStore(kinds, engine, opts...)
	if err := mem.ImportState(snapshot); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "import entities")
	}
	return &Store{Store: mem, db: db, persisted: snapshot.Version, log: zap.NewNop().Sugar()}, nil
}

func loadSnapshot(ctx context.Context, db *sql.DB, dec domain.EntityDecoder) (memory.Snapshot, error) {
	rows, err := db.QueryContext(ctx, selectEntities)
	if err != nil {
		return memory.Snapshot{}, errors.Wrap(err, "select entities")
	}
	defer func() { _ = rows.Close() }()

	var snapshot memory.Snapshot
	for rows.Next() {
		var id string
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return memory.Snapshot{}, errors.Wrap(err, "scan entity")
		}
		e, err := dec.Decode(payload)
		if err != nil {
			return memory.Snapshot{}, errors.Wrapf(err, "decode entity %s", id)
		}
		snapshot.Entities = append(snapshot.Entities, e)
		snapshot.Version = max(snapshot.Version, e.RowVersion())
	}
	if err := rows.Err(); err != nil {
		return memory.Snapshot{}, errors.Wrap(err, "iterate entities")
	}

	var mark int64
	switch err := db.QueryRowContext(ctx, selectPersisted, persistedKey).Scan(&mark); {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return memory.Snapshot{}, errors.Wrap(err, "select persisted version")
	default:
		snapshot.Version = max(snapshot.Version, uint64(mark))
	}
	return snapshot, nil
}

// SetLogger replaces the store logger.
func (s *Store) SetLogger(log *zap.SugaredLogger) {
	if log != nil {
		s.log = log
	}
}

func (s *Store) persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var pending []*domain.Entity
	for e := range s.ChangesSince(s.persisted) {
		pending = append(pending, e)
	}
	if len(pending) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	mark := s.persisted
	for _, e := range pending {
		payload, err := json.Marshal(e)
		if err != nil {
			return errors.Wrapf(err, "encode %s", e.ID())
		}
		if _, err := tx.ExecContext(ctx, upsertEntity,
			e.ID().String(), int32(e.Kind()), int64(e.RowVersion()), e.Deleted(), payload); err != nil {
			return errors.Wrapf(err, "upsert %s", e.ID())
		}
		mark = max(mark, e.RowVersion())
	}
	if _, err := tx.ExecContext(ctx, upsertPersisted, persistedKey, int64(mark)); err != nil {
		return errors.Wrap(err, "record persisted version")
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}
	committed = true
	s.persisted = mark
	s.log.Debugw("persisted rows", "count", len(pending), "version", mark)
	return nil
}

// RunInTransaction applies the provided function within a transaction, then
// writes the committed rows to Postgres if successful.
func (s *Store) RunInTransaction(ctx context.Context, fn func(domain.Transaction) error) (domain.Result, error) {
	res, err := s.Store.RunInTransaction(ctx, fn)
	if err != nil {
		return res, err
	}
	if err := s.persist(ctx); err != nil {
		return res, domain.PersistError{Version: s.Version(), Err: err}
	}
	return res, nil
}

// Insert commits e and persists it.
func (s *Store) Insert(ctx context.Context, e *domain.Entity) error {
	_, err := s.RunInTransaction(ctx, func(tx domain.Transaction) error { return tx.Insert(e) })
	return err
}

// Update commits e's dirty fields and persists the new row.
func (s *Store) Update(ctx context.Context, e *domain.Entity, expectedVersion uint64) (uint64, error) {
	var version uint64
	_, err := s.RunInTransaction(ctx, func(tx domain.Transaction) error {
		var err error
		version, err = tx.Update(e, expectedVersion)
		return err
	})
	if err != nil && !errors.Is(err, domain.ErrNotPersisted) {
		return 0, err
	}
	return version, err
}

// Delete commits a tombstone for id and persists it.
func (s *Store) Delete(ctx context.Context, id uuid.UUID, expectedVersion uint64) error {
	_, err := s.RunInTransaction(ctx, func(tx domain.Transaction) error { return tx.Delete(id, expectedVersion) })
	return err
}

// PurgeTombstones forgets delete markers at or below through, in memory and in Postgres.
func (s *Store) PurgeTombstones(ctx context.Context, through uint64) (int, error) {
	if err := s.persist(ctx); err != nil {
		return 0, err
	}
	n, err := s.Store.PurgeTombstones(ctx, through)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.ExecContext(ctx, purgeEntities, int64(through)); err != nil {
		return n, errors.Wrap(err, "purge tombstones")
	}
	return n, nil
}

// Close closes the database handle.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// OverrideSQLOpen swaps the sqlOpen function for tests and returns a restore function.
func OverrideSQLOpen(fn func(driverName, dataSourceName string) (*sql.DB, error)) func() {
	openMu.Lock()
	defer openMu.Unlock()
	prev := sqlOpen
	sqlOpen = fn
	return func() {
		openMu.Lock()
		defer openMu.Unlock()
		sqlOpen = prev
	}
}
