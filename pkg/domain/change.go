package domain

import "github.com/google/uuid"

// FieldChange is published on every effective SetField.
type FieldChange struct {
	EntityID uuid.UUID
	Kind     Kind
	Field    string
	Old      any
	New      any
}

// Action indicates the type of modification performed.
type Action string

// Change actions enumerate the committed mutation types.
const (
	// ActionCreate indicates an entity was created.
	ActionCreate Action = "create"
	// ActionUpdate indicates an entity was updated.
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Change describes a mutation applied to an entity during a transaction.
// Before is nil for creates; After is the tombstone for deletes.
type Change struct {
	Kind    Kind
	ID      uuid.UUID
	Action  Action
	Version uint64
	Fields  []string
	Before  *Entity
	After   *Entity
}
