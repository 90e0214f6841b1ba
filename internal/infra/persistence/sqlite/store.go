// Package sqlite provides a SQLite-backed entity store that keeps the
// in-memory table authoritative and writes committed rows behind it.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"barrelman/internal/infra/persistence/memory"
	"barrelman/pkg/domain"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.PersistentStore = (*Store)(nil)

const (
	defaultPath  = "barrelman.db"
	persistedKey = "persisted_version"
)

// Store persists committed entity rows to SQLite. Every successful commit
// upserts the rows whose version exceeds the persisted high-water mark.
type Store struct {
	*memory.Store
	db        *sql.DB
	mu        sync.Mutex
	path      string
	persisted uint64
	log       *zap.SugaredLogger
}

// NewStore opens (or creates) the database at path and loads every stored row
// through kinds.
func NewStore(path string, kinds domain.KindDecoder, engine *domain.RulesEngine, opts ...memory.Option) (*Store, error) {
	if path == "" {
		path = defaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, errors.Wrap(err, "create dirs")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// SQLite serialises writers; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	ctx := context.Background()
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	mem := memory.NewStore(kinds, engine, opts...)
	s := &Store{Store: mem, db: db, path: path, log: zap.NewNop().Sugar()}
	if err := s.load(ctx, kinds); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS entities (
			id TEXT PRIMARY KEY,
			kind INTEGER NOT NULL,
			row_version INTEGER NOT NULL,
			deleted INTEGER NOT NULL DEFAULT 0,
			payload BLOB NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS entities_row_version ON entities(row_version)`,
		`CREATE TABLE IF NOT EXISTS store_meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "create schema")
		}
	}
	return nil
}

func (s *Store) load(ctx context.Context, dec domain.EntityDecoder) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, payload FROM entities ORDER BY row_version`)
	if err != nil {
		return errors.Wrap(err, "select entities")
	}
	defer func() { _ = rows.Close() }()
	var snapshot memory.Snapshot
	for rows.Next() {
		var id string
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return errors.Wrap(err, "scan entity")
		}
		e, err := dec.Decode(payload)
		if err != nil {
			return errors.Wrapf(err, "decode entity %s", id)
		}
		snapshot.Entities = append(snapshot.Entities, e)
		snapshot.Version = max(snapshot.Version, e.RowVersion())
	}
	if err := rows.Err(); err != nil {
		return errors.Wrap(err, "iterate entities")
	}
	var mark string
	switch err := s.db.QueryRowContext(ctx, `SELECT value FROM store_meta WHERE key = ?`, persistedKey).Scan(&mark); {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return errors.Wrap(err, "select persisted version")
	default:
		v, err := strconv.ParseUint(mark, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "parse persisted version %q", mark)
		}
		snapshot.Version = max(snapshot.Version, v)
	}
	if err := s.ImportState(snapshot); err != nil {
		return errors.Wrap(err, "import entities")
	}
	s.persisted = snapshot.Version
	return nil
}

// SetLogger replaces the store logger.
func (s *Store) SetLogger(log *zap.SugaredLogger) {
	if log != nil {
		s.log = log
	}
}

// persist writes every row committed since the last call. A failed write
// leaves the mark in place, so the next commit retries the same rows.
func (s *Store) persist(ctx context.Context) (retErr error) {
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
		return errors.Wrap(err, "begin")
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	mark := s.persisted
	for _, e := range pending {
		payload, err := json.Marshal(e)
		if err != nil {
			return errors.Wrapf(err, "encode %s", e.ID())
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO entities(id, kind, row_version, deleted, payload) VALUES(?,?,?,?,?)
			ON CONFLICT(id) DO UPDATE SET kind=excluded.kind, row_version=excluded.row_version, deleted=excluded.deleted, payload=excluded.payload`,
			e.ID().String(), int64(e.Kind()), int64(e.RowVersion()), e.Deleted(), payload); err != nil {
			return errors.Wrapf(err, "upsert %s", e.ID())
		}
		mark = max(mark, e.RowVersion())
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO store_meta(key, value) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value`, persistedKey, strconv.FormatUint(mark, 10)); err != nil {
		return errors.Wrap(err, "record persisted version")
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}
	s.persisted = mark
	s.log.Debugw("persisted rows", "count", len(pending), "version", mark)
	return nil
}

// RunInTransaction applies fn in memory, then writes the committed rows to SQLite.
func (s *Store) RunInTransaction(ctx context.Context, fn func(tx domain.Transaction) error) (domain.Result, error) {
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

// PurgeTombstones forgets delete markers at or below through, in memory and on disk.
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
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entities WHERE deleted = 1 AND row_version <= ?`, int64(through)); err != nil {
		return n, errors.Wrap(err, "purge tombstones")
	}
	return n, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// Path returns the configured database path.
func (s *Store) Path() string { return s.path }

// Persisted returns the highest row version written to disk.
func (s *Store) Persisted() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persisted
}
