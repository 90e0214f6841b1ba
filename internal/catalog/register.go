package catalog

import (
	"barrelman/internal/registry"
	"barrelman/pkg/domain"

	"github.com/cockroachdb/errors"
)

// Factory returns the factory for a concrete catalog kind, or nil for
// abstract kinds.
func Factory(kind domain.Kind) registry.Factory {
	if Abstract(kind) {
		return nil
	}
	schema := Schema(kind)
	if schema == nil {
		return nil
	}
	return func() *domain.Entity { return domain.NewEntity(schema) }
}

// Register adds every catalog kind to reg, parents ahead of their subtypes.
func Register(reg *registry.Registry) error {
	for _, kind := range registrationOrder() {
		if err := reg.Register(kind, Ancestors(kind), Factory(kind)); err != nil {
			return errors.Wrapf(err, "register %s", kind)
		}
	}
	return nil
}

// NewRegistry returns a registry holding the full catalog.
func NewRegistry(opts ...registry.Option) (*registry.Registry, error) {
	reg := registry.New(opts...)
	if err := Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Rules returns the rules that ship with the catalog.
func Rules() []domain.Rule {
	return []domain.Rule{NewPositionRangeRule(), NewTrackReferenceRule()}
}
