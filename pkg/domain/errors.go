package domain

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	ErrUnknownKind   = errors.New("unknown kind")
	ErrDuplicateKind = errors.New("duplicate kind")
	ErrInvalidKind   = errors.New("invalid kind registration")
	ErrDuplicateID   = errors.New("duplicate id")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("row version conflict")
	ErrInvalidField  = errors.New("invalid field")
	ErrInvalidEntity = errors.New("invalid entity")
	ErrNotPersisted  = errors.New("committed but not persisted")
)

// UnknownKindError is returned when a kind was never registered or a name does
// not resolve to a catalog kind.
type UnknownKindError struct {
	Kind Kind
	Name string
}

func (e UnknownKindError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown kind %q", e.Name)
	}
	return fmt.Sprintf("unknown kind %s", e.Kind)
}

func (e UnknownKindError) Is(target error) bool { return target == ErrUnknownKind }

// AbstractKindError is returned by Create for kinds registered without a factory.
type AbstractKindError struct {
	Kind Kind
}

func (e AbstractKindError) Error() string {
	return fmt.Sprintf("kind %s is abstract and cannot be created", e.Kind)
}

func (e AbstractKindError) Is(target error) bool { return target == ErrUnknownKind }

// DuplicateKindError is returned when a kind is registered twice.
type DuplicateKindError struct {
	Kind Kind
}

func (e DuplicateKindError) Error() string {
	return fmt.Sprintf("kind %s already registered", e.Kind)
}

func (e DuplicateKindError) Is(target error) bool { return target == ErrDuplicateKind }

// DuplicateIDError is returned by Insert when the id is already present.
type DuplicateIDError struct {
	ID uuid.UUID
}

func (e DuplicateIDError) Error() string {
	return fmt.Sprintf("entity %s already exists", e.ID)
}

func (e DuplicateIDError) Is(target error) bool { return target == ErrDuplicateID }

// NotFoundError is returned when an id is absent or deleted.
type NotFoundError struct {
	ID uuid.UUID
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("entity %s not found", e.ID)
}

func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError signals an optimistic concurrency failure. Callers re-read the
// entity and retry.
type ConflictError struct {
	ID       uuid.UUID
	Expected uint64
	Actual   uint64
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("entity %s: expected row version %d, found %d", e.ID, e.Expected, e.Actual)
}

func (e ConflictError) Is(target error) bool { return target == ErrConflict }

// FieldError reports an unknown field or a value of the wrong type.
type FieldError struct {
	Kind   Kind
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Kind, e.Field, e.Reason)
}

func (e FieldError) Is(target error) bool { return target == ErrInvalidField }

// InvalidEntityError reports an entity the store cannot accept.
type InvalidEntityError struct {
	ID     uuid.UUID
	Reason string
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("entity %s: %s", e.ID, e.Reason)
}

func (e InvalidEntityError) Is(target error) bool { return target == ErrInvalidEntity }

// IsRetryable reports whether err carries the read-modify-write retry contract.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict)
}

// NewConflict builds a ConflictError wrapped with a retry hint.
func NewConflict(id uuid.UUID, expected, actual uint64) error {
	return errors.WithHint(ConflictError{ID: id, Expected: expected, Actual: actual},
		"re-read the entity and retry with its current row version")
}

// PersistError reports a commit that landed in memory at Version but failed
// to reach the durable backend. The commit stands; a later commit retries the
// write. Callers must not resubmit the same change.
type PersistError struct {
	Version uint64
	Err     error
}

func (e PersistError) Error() string {
	return fmt.Sprintf("committed at row version %d, not persisted: %v", e.Version, e.Err)
}

func (e PersistError) Unwrap() error { return e.Err }

func (e PersistError) Is(target error) bool { return target == ErrNotPersisted }
