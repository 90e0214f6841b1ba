// Package memory provides the canonical in-memory entity store. Durable
// backends embed it and persist what it commits.
package memory

import (
	"context"
	"iter"
	"slices"
	"sort"
	"sync"

	"barrelman/internal/rowversion"
	"barrelman/pkg/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Compile-time contract assertion ensuring memory.Store adheres to the domain persistence interface.
var _ domain.PersistentStore = (*Store)(nil)

type (
	// Entity aliases domain.Entity.
	Entity = domain.Entity
	// Change aliases domain.Change captured in transactions.
	Change = domain.Change
	// Result aliases domain.Result summarizing rule evaluation.
	Result = domain.Result
	// RulesEngine aliases domain.RulesEngine used to evaluate rules.
	RulesEngine = domain.RulesEngine
	// Transaction aliases domain.Transaction representing a mutable unit of work.
	Transaction = domain.Transaction
	// RuleView aliases domain.RuleView providing read-only state.
	RuleView = domain.RuleView
)

// record holds the committed copy of one entity. The entity pointer is
// replaced on every commit and never mutated in place, so readers may use it
// after releasing the lock.
type record struct {
	entity *Entity
	seq    uint64
}

// logEntry marks the version at which an id was committed. The log is
// append-only in version order; entries superseded by a later commit of the
// same id are stale and skipped.
type logEntry struct {
	version uint64
	id      uuid.UUID
}

type memoryState struct {
	records    map[uuid.UUID]*record
	byKind     map[domain.Kind][]uuid.UUID
	log        []logEntry
	nextSeq    uint64
	version    uint64
	live       int
	tombstones int
}

func newMemoryState() memoryState {
	return memoryState{
		records: make(map[uuid.UUID]*record),
		byKind:  make(map[domain.Kind][]uuid.UUID),
	}
}

func (s *memoryState) current(e logEntry) bool {
	rec, ok := s.records[e.id]
	return ok && rec.entity.RowVersion() == e.version
}

// account adjusts the live and tombstone counters for e entering (+1) or
// leaving (-1) the table.
func (s *memoryState) account(e *Entity, delta int) {
	switch {
	case e == nil:
	case e.Deleted():
		s.tombstones += delta
	default:
		s.live += delta
	}
}

// compact drops stale log entries once they make up more than half the log.
func (s *memoryState) compact() {
	if len(s.log) < 64 || len(s.log) <= 2*len(s.records) {
		return
	}
	s.log = slices.DeleteFunc(s.log, func(e logEntry) bool { return !s.current(e) })
}

// Store provides an in-memory transactional entity store. One RWMutex guards
// the whole table; every write, including the optimistic version check, runs
// in a single critical section.
type Store struct {
	mu       sync.RWMutex
	state    memoryState
	kinds    domain.KindResolver
	engine   *RulesEngine
	versions *rowversion.Synchronizer
	log      *zap.SugaredLogger
}

// Option configures a Store.
type Option func(*Store)

// WithSynchronizer shares a version allocator with other components.
func WithSynchronizer(s *rowversion.Synchronizer) Option {
	return func(st *Store) {
		if s != nil {
			st.versions = s
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(st *Store) {
		if log != nil {
			st.log = log
		}
	}
}

// NewStore constructs an in-memory store. kinds answers registration and
// hierarchy questions, normally the kind registry.
func NewStore(kinds domain.KindResolver, engine *RulesEngine, opts ...Option) *Store {
	if engine == nil {
		engine = domain.NewRulesEngine()
	}
	s := &Store{
		state:    newMemoryState(),
		kinds:    kinds,
		engine:   engine,
		versions: rowversion.New(0),
		log:      zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RulesEngine exposes the currently configured engine for integration points like plugins.
func (s *Store) RulesEngine() *RulesEngine {
	return s.engine
}

// Kinds returns the resolver the store was built with.
func (s *Store) Kinds() domain.KindResolver {
	return s.kinds
}

// Version returns the highest committed row version.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.version
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.live
}

// Tombstones returns the number of retained delete markers.
func (s *Store) Tombstones() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.tombstones
}

// Close releases nothing; it exists for the PersistentStore contract.
func (s *Store) Close() error { return nil }

// Insert commits a new entity and stamps e with its first row version.
func (s *Store) Insert(ctx context.Context, e *Entity) error {
	_, err := s.RunInTransaction(ctx, func(tx Transaction) error {
		return tx.Insert(e)
	})
	return err
}

// Update applies e's dirty fields to the committed copy when it is still at
// expectedVersion and returns the new version. An update with nothing to
// change returns the current version without committing.
func (s *Store) Update(ctx context.Context, e *Entity, expectedVersion uint64) (uint64, error) {
	var version uint64
	_, err := s.RunInTransaction(ctx, func(tx Transaction) error {
		var err error
		version, err = tx.Update(e, expectedVersion)
		return err
	})
	if err != nil {
		return 0, err
	}
	return version, nil
}

// Delete replaces the entity with a tombstone.
func (s *Store) Delete(ctx context.Context, id uuid.UUID, expectedVersion uint64) error {
	_, err := s.RunInTransaction(ctx, func(tx Transaction) error {
		return tx.Delete(id, expectedVersion)
	})
	return err
}

// Get returns a copy of the live entity.
func (s *Store) Get(id uuid.UUID) (*Entity, error) {
	s.mu.RLock()
	var e *Entity
	if rec, ok := s.state.records[id]; ok {
		e = rec.entity
	}
	s.mu.RUnlock()
	if e == nil || e.Deleted() {
		return nil, domain.NotFoundError{ID: id}
	}
	return e.Clone(), nil
}

// Query yields live entities of kind, or of kind and its subtypes, in
// insertion order. Each range over the result rescans the table.
func (s *Store) Query(kind domain.Kind, includeSubtypes bool) iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		s.mu.RLock()
		matched := s.state.collect(s.kindSet(kind, includeSubtypes))
		s.mu.RUnlock()
		for _, e := range matched {
			if !yield(e.Clone()) {
				return
			}
		}
	}
}

// ChangesSince yields the latest state of every entity, tombstones included,
// whose row version exceeds version, in ascending version order.
func (s *Store) ChangesSince(version uint64) iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		s.mu.RLock()
		log := s.state.log
		start := sort.Search(len(log), func(i int) bool { return log[i].version > version })
		var out []*Entity
		for _, entry := range log[start:] {
			if s.state.current(entry) {
				out = append(out, s.state.records[entry.id].entity)
			}
		}
		s.mu.RUnlock()
		for _, e := range out {
			if !yield(e.Clone()) {
				return
			}
		}
	}
}

// PurgeTombstones forgets delete markers at or below through. Replicas that
// have not yet read past through will miss those deletes.
func (s *Store) PurgeTombstones(_ context.Context, through uint64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	purged := make(map[uuid.UUID]struct{})
	for id, rec := range s.state.records {
		if rec.entity.Deleted() && rec.entity.RowVersion() <= through {
			purged[id] = struct{}{}
		}
	}
	if len(purged) == 0 {
		return 0, nil
	}
	for id := range purged {
		kind := s.state.records[id].entity.Kind()
		delete(s.state.records, id)
		s.state.byKind[kind] = slices.DeleteFunc(s.state.byKind[kind], func(x uuid.UUID) bool {
			_, gone := purged[x]
			return gone
		})
	}
	s.state.tombstones -= len(purged)
	s.state.log = slices.DeleteFunc(s.state.log, func(e logEntry) bool { return !s.state.current(e) })
	s.log.Infow("purged tombstones", "count", len(purged), "through", through)
	return len(purged), nil
}

func (s *Store) kindSet(kind domain.Kind, includeSubtypes bool) []domain.Kind {
	if !includeSubtypes || s.kinds == nil {
		return []domain.Kind{kind}
	}
	kinds := s.kinds.Descendants(kind)
	if len(kinds) == 0 {
		return []domain.Kind{kind}
	}
	return kinds
}

// collect returns the live committed entities of the given kinds ordered by
// insertion sequence. Callers hold the read lock.
func (s *memoryState) collect(kinds []domain.Kind) []*Entity {
	var recs []*record
	for _, k := range kinds {
		for _, id := range s.byKind[k] {
			rec := s.records[id]
			if rec.entity.Deleted() {
				continue
			}
			recs = append(recs, rec)
		}
	}
	if len(kinds) > 1 {
		sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })
	}
	out := make([]*Entity, len(recs))
	for i, rec := range recs {
		out[i] = rec.entity
	}
	return out
}
