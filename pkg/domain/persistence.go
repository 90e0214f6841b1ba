package domain

import (
	"context"
	"iter"

	"github.com/google/uuid"
)

// KindResolver answers hierarchy questions for stores. The kind registry
// implements it.
type KindResolver interface {
	Registered(kind Kind) bool
	IsOfType(kind, ancestor Kind) bool
	Descendants(kind Kind) []Kind
}

// EntityDecoder rebuilds entities from their JSON encoding.
type EntityDecoder interface {
	Decode(data []byte) (*Entity, error)
}

// KindDecoder is what durable stores need from the kind registry: hierarchy
// answers for the in-memory table and a decoder for rows loaded from disk.
type KindDecoder interface {
	KindResolver
	EntityDecoder
}

// Transaction exposes the entity operations available within an atomic scope.
// Versions are assigned as operations run; caller instances are stamped only
// when the transaction commits.
type Transaction interface {
	Snapshot() RuleView
	Insert(entity *Entity) error
	Update(entity *Entity, expectedVersion uint64) (uint64, error)
	Delete(id uuid.UUID, expectedVersion uint64) error
	Get(id uuid.UUID) (*Entity, error)
}

// EntityStore is the change-tracked entity table.
type EntityStore interface {
	Insert(ctx context.Context, entity *Entity) error
	Update(ctx context.Context, entity *Entity, expectedVersion uint64) (uint64, error)
	Delete(ctx context.Context, id uuid.UUID, expectedVersion uint64) error
	Get(id uuid.UUID) (*Entity, error)
	Query(kind Kind, includeSubtypes bool) iter.Seq[*Entity]
	ChangesSince(version uint64) iter.Seq[*Entity]
}

// PersistentStore is the abstraction over memory and durable backends used by
// higher layers.
type PersistentStore interface {
	EntityStore
	RunInTransaction(ctx context.Context, fn func(Transaction) error) (Result, error)
	View(ctx context.Context, fn func(RuleView) error) error
	PurgeTombstones(ctx context.Context, through uint64) (int, error)
	RulesEngine() *RulesEngine
	Version() uint64
	Len() int
	Close() error
}
