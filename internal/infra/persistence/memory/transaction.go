package memory

import (
	"context"
	"sort"

	"barrelman/pkg/domain"

	"github.com/google/uuid"
)

// transaction buffers writes over the committed state. The store write lock is
// held for its whole life, so the committed state cannot move underneath it.
type transaction struct {
	store   *Store
	pending map[uuid.UUID]*Entity
	order   []uuid.UUID
	changes []Change
	stamps  []stamp
}

// stamp records a caller instance to update once the transaction commits.
type stamp struct {
	entity  *Entity
	version uint64
}

// RunInTransaction executes fn against a transactional overlay of the store.
// Rules are evaluated on the recorded changes before anything becomes
// visible; a blocking violation discards the overlay and returns
// RuleViolationError. Versions allocated by a discarded transaction are not
// reused.
func (s *Store) RunInTransaction(ctx context.Context, fn func(tx Transaction) error) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &transaction{
		store:   s,
		pending: make(map[uuid.UUID]*Entity),
	}
	if err := fn(tx); err != nil {
		return Result{}, err
	}
	if len(tx.changes) == 0 {
		tx.applyStamps()
		return Result{}, nil
	}

	var result Result
	if s.engine != nil {
		res, err := s.engine.Evaluate(ctx, tx.Snapshot(), tx.changes)
		if err != nil {
			return Result{}, err
		}
		result = res
		if res.HasBlocking() {
			s.log.Debugw("transaction blocked", "violations", len(res.Violations))
			return res, domain.RuleViolationError{Result: res}
		}
	}

	tx.commit()
	tx.applyStamps()
	return result, nil
}

// View executes fn against the committed state under the read lock.
func (s *Store) View(_ context.Context, fn func(RuleView) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(stateView{store: s})
}

func (tx *transaction) commit() {
	st := &tx.store.state
	ids := make([]uuid.UUID, len(tx.order))
	copy(ids, tx.order)
	sort.Slice(ids, func(i, j int) bool {
		return tx.pending[ids[i]].RowVersion() < tx.pending[ids[j]].RowVersion()
	})
	for _, id := range ids {
		next := tx.pending[id]
		rec, ok := st.records[id]
		if !ok {
			rec = &record{seq: st.nextSeq}
			st.nextSeq++
			st.records[id] = rec
			st.byKind[next.Kind()] = append(st.byKind[next.Kind()], id)
		}
		st.account(rec.entity, -1)
		st.account(next, 1)
		rec.entity = next
		st.log = append(st.log, logEntry{version: next.RowVersion(), id: id})
		if next.RowVersion() > st.version {
			st.version = next.RowVersion()
		}
	}
	st.compact()
}

func (tx *transaction) applyStamps() {
	for _, s := range tx.stamps {
		s.entity.Stamp(s.version)
	}
}

// lookup returns the transaction's view of id, pending writes first.
func (tx *transaction) lookup(id uuid.UUID) *Entity {
	if e, ok := tx.pending[id]; ok {
		return e
	}
	if rec, ok := tx.store.state.records[id]; ok {
		return rec.entity
	}
	return nil
}

func (tx *transaction) put(e *Entity) {
	if _, ok := tx.pending[e.ID()]; !ok {
		tx.order = append(tx.order, e.ID())
	}
	tx.pending[e.ID()] = e
}

// Snapshot returns a read-only view over the transactional state.
func (tx *transaction) Snapshot() RuleView {
	return txView{tx: tx}
}

// Insert stages a new entity. The id must be unused, including by a tombstone
// that has not been purged.
func (tx *transaction) Insert(e *Entity) error {
	if e == nil || e.Schema() == nil {
		return domain.InvalidEntityError{Reason: "nil entity"}
	}
	if e.ID() == uuid.Nil {
		return domain.InvalidEntityError{ID: e.ID(), Reason: "nil id"}
	}
	if e.Deleted() {
		return domain.InvalidEntityError{ID: e.ID(), Reason: "cannot insert a tombstone"}
	}
	if kinds := tx.store.kinds; kinds != nil && !kinds.Registered(e.Kind()) {
		return domain.UnknownKindError{Kind: e.Kind()}
	}
	if tx.lookup(e.ID()) != nil {
		return domain.DuplicateIDError{ID: e.ID()}
	}
	version := tx.store.versions.NextVersion(e)
	canonical := e.Clone()
	fields := canonical.Dirty()
	canonical.Stamp(version)
	tx.put(canonical)
	tx.stamps = append(tx.stamps, stamp{entity: e, version: version})
	tx.changes = append(tx.changes, Change{
		Kind:    e.Kind(),
		ID:      e.ID(),
		Action:  domain.ActionCreate,
		Version: version,
		Fields:  fields,
		After:   canonical,
	})
	return nil
}

// Update stages e's dirty fields over the current copy.
func (tx *transaction) Update(e *Entity, expectedVersion uint64) (uint64, error) {
	if e == nil || e.Schema() == nil {
		return 0, domain.InvalidEntityError{Reason: "nil entity"}
	}
	cur := tx.lookup(e.ID())
	if cur == nil || cur.Deleted() {
		return 0, domain.NotFoundError{ID: e.ID()}
	}
	if cur.Kind() != e.Kind() {
		return 0, domain.InvalidEntityError{ID: e.ID(), Reason: "kind " + e.Kind().String() + " does not match stored " + cur.Kind().String()}
	}
	next := cur.Clone()
	changed, err := next.Merge(e)
	if err != nil {
		return 0, err
	}
	if len(changed) == 0 {
		if cur.RowVersion() != expectedVersion {
			return 0, domain.NewConflict(e.ID(), expectedVersion, cur.RowVersion())
		}
		tx.stamps = append(tx.stamps, stamp{entity: e, version: cur.RowVersion()})
		return cur.RowVersion(), nil
	}
	version, err := tx.store.versions.CompareAndSwap(cur, expectedVersion)
	if err != nil {
		return 0, err
	}
	next.Stamp(version)
	tx.put(next)
	tx.stamps = append(tx.stamps, stamp{entity: e, version: version})
	tx.changes = append(tx.changes, Change{
		Kind:    e.Kind(),
		ID:      e.ID(),
		Action:  domain.ActionUpdate,
		Version: version,
		Fields:  changed,
		Before:  cur,
		After:   next,
	})
	return version, nil
}

// Delete stages a tombstone for id.
func (tx *transaction) Delete(id uuid.UUID, expectedVersion uint64) error {
	cur := tx.lookup(id)
	if cur == nil || cur.Deleted() {
		return domain.NotFoundError{ID: id}
	}
	version, err := tx.store.versions.CompareAndSwap(cur, expectedVersion)
	if err != nil {
		return err
	}
	ts := cur.Tombstone()
	ts.Stamp(version)
	tx.put(ts)
	tx.changes = append(tx.changes, Change{
		Kind:    cur.Kind(),
		ID:      id,
		Action:  domain.ActionDelete,
		Version: version,
		Before:  cur,
		After:   ts,
	})
	return nil
}

// Get returns a copy of the entity as the transaction sees it.
func (tx *transaction) Get(id uuid.UUID) (*Entity, error) {
	e := tx.lookup(id)
	if e == nil || e.Deleted() {
		return nil, domain.NotFoundError{ID: id}
	}
	return e.Clone(), nil
}

// txView exposes transactional state to rules. Returned entities are shared
// and must not be mutated.
type txView struct {
	tx *transaction
}

func (v txView) Find(id uuid.UUID) (*Entity, bool) {
	e := v.tx.lookup(id)
	if e == nil || e.Deleted() {
		return nil, false
	}
	return e, true
}

func (v txView) List(kind domain.Kind, includeSubtypes bool) []*Entity {
	st := &v.tx.store.state
	kinds := v.tx.store.kindSet(kind, includeSubtypes)
	wanted := make(map[domain.Kind]struct{}, len(kinds))
	for _, k := range kinds {
		wanted[k] = struct{}{}
	}
	type item struct {
		e   *Entity
		seq uint64
	}
	var items []item
	for _, k := range kinds {
		for _, id := range st.byKind[k] {
			if e := v.tx.lookup(id); !e.Deleted() {
				items = append(items, item{e: e, seq: st.records[id].seq})
			}
		}
	}
	fresh := st.nextSeq
	for _, id := range v.tx.order {
		if _, committed := st.records[id]; committed {
			continue
		}
		e := v.tx.pending[id]
		if _, ok := wanted[e.Kind()]; ok && !e.Deleted() {
			items = append(items, item{e: e, seq: fresh})
		}
		fresh++
	}
	sort.Slice(items, func(i, j int) bool { return items[i].seq < items[j].seq })
	out := make([]*Entity, len(items))
	for i, it := range items {
		out[i] = it.e
	}
	return out
}

// stateView exposes committed state under the store read lock.
type stateView struct {
	store *Store
}

func (v stateView) Find(id uuid.UUID) (*Entity, bool) {
	rec, ok := v.store.state.records[id]
	if !ok || rec.entity.Deleted() {
		return nil, false
	}
	return rec.entity.Clone(), true
}

func (v stateView) List(kind domain.Kind, includeSubtypes bool) []*Entity {
	matched := v.store.state.collect(v.store.kindSet(kind, includeSubtypes))
	out := make([]*Entity, len(matched))
	for i, e := range matched {
		out[i] = e.Clone()
	}
	return out
}
