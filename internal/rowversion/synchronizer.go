// Package rowversion allocates store-wide row versions and implements the
// optimistic concurrency check.
package rowversion

import (
	"sync/atomic"

	"barrelman/pkg/domain"
)

// Synchronizer hands out strictly increasing versions from one store-wide
// counter, giving a total order across all entities.
type Synchronizer struct {
	counter atomic.Uint64
}

// New returns a synchronizer whose next version is start+1.
func New(start uint64) *Synchronizer {
	s := &Synchronizer{}
	s.counter.Store(start)
	return s
}

// Current returns the last allocated version.
func (s *Synchronizer) Current() uint64 {
	return s.counter.Load()
}

// NextVersion allocates a version greater than both the counter and the
// entity's current RowVersion.
func (s *Synchronizer) NextVersion(e *domain.Entity) uint64 {
	var floor uint64
	if e != nil {
		floor = e.RowVersion()
	}
	for {
		cur := s.counter.Load()
		next := max(cur, floor) + 1
		if s.counter.CompareAndSwap(cur, next) {
			return next
		}
	}
}

// CompareAndSwap fails with ConflictError when the entity is not at expected;
// otherwise it allocates the next version. Callers that must make the check
// and the commit atomic hold their own lock across both.
func (s *Synchronizer) CompareAndSwap(e *domain.Entity, expected uint64) (uint64, error) {
	if actual := e.RowVersion(); actual != expected {
		return 0, domain.NewConflict(e.ID(), expected, actual)
	}
	return s.NextVersion(e), nil
}

// Observe raises the counter to at least v. Stores call it when loading
// persisted entities.
func (s *Synchronizer) Observe(v uint64) {
	for {
		cur := s.counter.Load()
		if cur >= v || s.counter.CompareAndSwap(cur, v) {
			return
		}
	}
}
