package domain

import (
	"github.com/google/uuid"
)

// Publisher receives field change events from entities it is attached to.
type Publisher interface {
	Publish(change FieldChange)
}

// Entity is one record of a registered kind: identity, row version and a
// kind-specific field table. An Entity is owned by a single goroutine; the
// store hands out clones.
type Entity struct {
	id         uuid.UUID
	schema     *Schema
	rowVersion uint64
	deleted    bool
	values     []any
	dirty      []bool
	binaryEq   BinaryEquality
	publisher  Publisher
}

// NewEntity returns a default-initialised entity of the schema's kind with a
// fresh random id and RowVersion 0.
func NewEntity(schema *Schema) *Entity {
	return NewEntityWithID(schema, uuid.New())
}

// NewEntityWithID is NewEntity with a caller-supplied id, used by decoders.
func NewEntityWithID(schema *Schema, id uuid.UUID) *Entity {
	e := &Entity{
		id:     id,
		schema: schema,
		values: make([]any, len(schema.fields)),
		dirty:  make([]bool, len(schema.fields)),
	}
	for i, f := range schema.fields {
		e.values[i] = copyValue(f.Default)
	}
	return e
}

func (e *Entity) ID() uuid.UUID        { return e.id }
func (e *Entity) Kind() Kind           { return e.schema.kind }
func (e *Entity) Schema() *Schema      { return e.schema }
func (e *Entity) RowVersion() uint64   { return e.rowVersion }
func (e *Entity) Deleted() bool        { return e.deleted }
func (e *Entity) Publisher() Publisher { return e.publisher }

// SetBinaryEquality selects the comparison used for Binary fields.
func (e *Entity) SetBinaryEquality(mode BinaryEquality) { e.binaryEq = mode }

// Attach routes future field change events to p. A nil p detaches.
func (e *Entity) Attach(p Publisher) { e.publisher = p }

// Value returns the current value of a field. Nullable fields that are unset
// return nil.
func (e *Entity) Value(name string) (any, bool) {
	i, ok := e.schema.index[name]
	if !ok {
		return nil, false
	}
	return e.values[i], true
}

// SetField assigns a field. Writing the current value is a no-op: the entity
// stays clean and no event is published. A real change marks the field dirty
// and then publishes a FieldChange.
func (e *Entity) SetField(name string, value any) error {
	i, ok := e.schema.index[name]
	if !ok {
		return FieldError{Kind: e.Kind(), Field: name, Reason: "no such field"}
	}
	f := e.schema.fields[i]
	var next any
	if value != nil {
		v, err := coerce(f.Type, value)
		if err != nil {
			return FieldError{Kind: e.Kind(), Field: name, Reason: err.Error()}
		}
		next = v
	}
	if next == nil && !f.Nullable {
		return FieldError{Kind: e.Kind(), Field: name, Reason: "field is not nullable"}
	}
	old := e.values[i]
	if valuesEqual(f.Type, old, next, e.binaryEq) {
		return nil
	}
	e.values[i] = next
	e.dirty[i] = true
	if e.publisher != nil {
		e.publisher.Publish(FieldChange{
			EntityID: e.id,
			Kind:     e.Kind(),
			Field:    name,
			Old:      old,
			New:      next,
		})
	}
	return nil
}

// IsDirty reports whether name changed since the last commit.
func (e *Entity) IsDirty(name string) bool {
	i, ok := e.schema.index[name]
	return ok && e.dirty[i]
}

// Dirty returns the changed field names in schema order.
func (e *Entity) Dirty() []string {
	var out []string
	for i, d := range e.dirty {
		if d {
			out = append(out, e.schema.fields[i].Name)
		}
	}
	return out
}

// Stamp records a committed row version and clears the dirty set.
func (e *Entity) Stamp(version uint64) {
	e.rowVersion = version
	clear(e.dirty)
}

// Clone returns a deep copy without the publisher.
func (e *Entity) Clone() *Entity {
	c := &Entity{
		id:         e.id,
		schema:     e.schema,
		rowVersion: e.rowVersion,
		deleted:    e.deleted,
		values:     make([]any, len(e.values)),
		dirty:      make([]bool, len(e.dirty)),
		binaryEq:   e.binaryEq,
	}
	for i, v := range e.values {
		c.values[i] = copyValue(v)
	}
	copy(c.dirty, e.dirty)
	return c
}

// Tombstone returns a field-less deleted marker for e.
func (e *Entity) Tombstone() *Entity {
	t := NewEntityWithID(e.schema, e.id)
	t.deleted = true
	t.rowVersion = e.rowVersion
	return t
}

// Merge copies the dirty fields of from into e without publishing events and
// returns the names that now differ from e's previous values.
func (e *Entity) Merge(from *Entity) ([]string, error) {
	if from.id != e.id || from.schema.kind != e.schema.kind {
		return nil, InvalidEntityError{ID: from.id, Reason: "merge across entities"}
	}
	var changed []string
	for i, d := range from.dirty {
		if !d {
			continue
		}
		f := e.schema.fields[i]
		if valuesEqual(f.Type, e.values[i], from.values[i], from.binaryEq) {
			continue
		}
		e.values[i] = copyValue(from.values[i])
		e.dirty[i] = true
		changed = append(changed, f.Name)
	}
	return changed, nil
}

// EqualFields reports whether both entities have the same kind and field
// values. Buffers compare by content.
func (e *Entity) EqualFields(other *Entity) bool {
	if other == nil || e.schema.kind != other.schema.kind || len(e.values) != len(other.values) {
		return false
	}
	for i, f := range e.schema.fields {
		if !valuesEqual(f.Type, e.values[i], other.values[i], BinaryContent) {
			return false
		}
	}
	return true
}

// FieldValue returns a field value converted to T. The second result is false
// when the field does not exist, is null, or holds another type.
func FieldValue[T any](e *Entity, name string) (T, bool) {
	var zero T
	v, ok := e.Value(name)
	if !ok || v == nil {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
