package core

import (
	"slices"

	"barrelman/internal/registry"
	"barrelman/pkg/domain"
)

// Plugin contributes kinds and rules to a service.
type Plugin interface {
	Name() string
	Version() string
	Register(registry *PluginRegistry) error
}

// KindRegistration is one kind contributed by a plugin. A nil Factory marks
// the kind abstract.
type KindRegistration struct {
	Kind      domain.Kind
	Ancestors []domain.Kind
	Factory   registry.Factory
}

// PluginRegistry accumulates plugin contributions during registration.
type PluginRegistry struct {
	kinds []KindRegistration
	rules []domain.Rule
}

// NewPluginRegistry constructs a plugin registry.
func NewPluginRegistry() *PluginRegistry {
	return &PluginRegistry{}
}

// RegisterKind queues a kind for the service's kind registry. Parents must be
// registered before their subtypes.
func (r *PluginRegistry) RegisterKind(kind domain.Kind, ancestors []domain.Kind, factory registry.Factory) {
	r.kinds = append(r.kinds, KindRegistration{Kind: kind, Ancestors: slices.Clone(ancestors), Factory: factory})
}

// RegisterRule adds an in-transaction rule contributed by the plugin.
func (r *PluginRegistry) RegisterRule(rule domain.Rule) {
	if rule == nil {
		return
	}
	r.rules = append(r.rules, rule)
}

// Kinds returns a copy of the queued kinds in registration order.
func (r *PluginRegistry) Kinds() []KindRegistration {
	out := make([]KindRegistration, len(r.kinds))
	for i, k := range r.kinds {
		k.Ancestors = slices.Clone(k.Ancestors)
		out[i] = k
	}
	return out
}

// Rules returns a copy of registered rules.
func (r *PluginRegistry) Rules() []domain.Rule {
	return slices.Clone(r.rules)
}

// PluginMetadata describes an installed plugin.
type PluginMetadata struct {
	Name    string
	Version string
	Kinds   []domain.Kind
	Rules   []string
}
