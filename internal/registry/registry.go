// Package registry maps kind tags to factories and static type-hierarchy
// chains.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"barrelman/pkg/domain"

	"github.com/cockroachdb/errors"
)

// Factory returns a default-initialised entity of one kind.
type Factory func() *domain.Entity

type descriptor struct {
	kind      domain.Kind
	ancestors []domain.Kind
	isA       map[domain.Kind]struct{}
	factory   Factory
}

// Registry is safe for concurrent use. Registration normally happens once at
// startup; lookups take a read lock.
type Registry struct {
	mu       sync.RWMutex
	kinds    map[domain.Kind]*descriptor
	order    []domain.Kind
	binaryEq domain.BinaryEquality
}

// Option configures a Registry.
type Option func(*Registry)

// WithBinaryEquality sets the buffer comparison policy applied to every entity
// the registry creates or decodes.
func WithBinaryEquality(mode domain.BinaryEquality) Option {
	return func(r *Registry) { r.binaryEq = mode }
}

// New constructs an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{kinds: make(map[domain.Kind]*descriptor)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register associates kind with its ancestor chain, nearest parent first, and
// a factory. A nil factory registers an abstract kind that takes part in the
// hierarchy but cannot be created.
func (r *Registry) Register(kind domain.Kind, ancestors []domain.Kind, factory Factory) error {
	if kind == domain.KindUnknown {
		return errors.Wrap(domain.ErrInvalidKind, "kind Unknown cannot be registered")
	}
	seen := map[domain.Kind]struct{}{kind: {}}
	for _, a := range ancestors {
		if a == domain.KindUnknown {
			return errors.Wrapf(domain.ErrInvalidKind, "%s: Unknown in ancestor chain", kind)
		}
		if _, dup := seen[a]; dup {
			return errors.Wrapf(domain.ErrInvalidKind, "%s: %s repeated in ancestor chain", kind, a)
		}
		seen[a] = struct{}{}
	}
	if factory != nil {
		if err := probeFactory(kind, factory); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.kinds[kind]; exists {
		return domain.DuplicateKindError{Kind: kind}
	}
	// A registered ancestor must agree on the rest of the chain so IsOfType is
	// the same relation whichever kind answers it.
	for i, a := range ancestors {
		parent, ok := r.kinds[a]
		if !ok {
			continue
		}
		if !slices.Equal(parent.ancestors, ancestors[i+1:]) {
			return errors.Wrapf(domain.ErrInvalidKind, "%s: chain %v disagrees with registered %s chain %v",
				kind, ancestors, a, parent.ancestors)
		}
		break
	}
	d := &descriptor{
		kind:      kind,
		ancestors: slices.Clone(ancestors),
		isA:       seen,
		factory:   factory,
	}
	r.kinds[kind] = d
	r.order = append(r.order, kind)
	return nil
}

// MustRegister panics on registration errors. Used for static catalogs.
func (r *Registry) MustRegister(kind domain.Kind, ancestors []domain.Kind, factory Factory) {
	if err := r.Register(kind, ancestors, factory); err != nil {
		panic(err)
	}
}

func probeFactory(kind domain.Kind, factory Factory) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Wrapf(domain.ErrInvalidKind, "%s: factory panicked: %v", kind, p)
		}
	}()
	e := factory()
	if e == nil {
		return errors.Wrapf(domain.ErrInvalidKind, "%s: factory returned nil", kind)
	}
	if e.Kind() != kind {
		return errors.Wrapf(domain.ErrInvalidKind, "%s: factory produces %s", kind, e.Kind())
	}
	return nil
}

// Create invokes the kind's factory.
func (r *Registry) Create(kind domain.Kind) (*domain.Entity, error) {
	r.mu.RLock()
	d, ok := r.kinds[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.UnknownKindError{Kind: kind}
	}
	if d.factory == nil {
		return nil, domain.AbstractKindError{Kind: kind}
	}
	e := d.factory()
	e.SetBinaryEquality(r.binaryEq)
	return e, nil
}

// IsOfType reports whether candidate is kind itself or one of its ancestors.
// Unregistered kinds are of no type.
func (r *Registry) IsOfType(kind, candidate domain.Kind) bool {
	r.mu.RLock()
	d, ok := r.kinds[kind]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	_, is := d.isA[candidate]
	return is
}

// Ancestors returns the registered chain for kind, nearest parent first.
func (r *Registry) Ancestors(kind domain.Kind) ([]domain.Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.kinds[kind]
	if !ok {
		return nil, false
	}
	return slices.Clone(d.ancestors), true
}

// Descendants returns kind followed by every registered kind that is-a kind,
// in registration order. An unregistered kind yields nil.
func (r *Registry) Descendants(kind domain.Kind) []domain.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.kinds[kind]; !ok {
		return nil
	}
	out := []domain.Kind{kind}
	for _, k := range r.order {
		if k == kind {
			continue
		}
		if _, is := r.kinds[k].isA[kind]; is {
			out = append(out, k)
		}
	}
	return out
}

// Registered reports whether kind has been registered.
func (r *Registry) Registered(kind domain.Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.kinds[kind]
	return ok
}

// Abstract reports whether kind is registered without a factory.
func (r *Registry) Abstract(kind domain.Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.kinds[kind]
	return ok && d.factory == nil
}

// Kinds lists registered kinds in registration order.
func (r *Registry) Kinds() []domain.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Decode rebuilds an entity from its JSON encoding through the kind's factory.
func (r *Registry) Decode(data []byte) (*domain.Entity, error) {
	kind, err := domain.PeekKind(data)
	if err != nil {
		return nil, err
	}
	e, err := r.Create(kind)
	if err != nil {
		return nil, errors.Wrap(err, "decode entity")
	}
	if err := e.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return e, nil
}

// String summarises the registry for diagnostics.
func (r *Registry) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	abstract := 0
	for _, d := range r.kinds {
		if d.factory == nil {
			abstract++
		}
	}
	return fmt.Sprintf("registry(%d kinds, %d abstract)", len(r.kinds), abstract)
}
