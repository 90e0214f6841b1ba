package catalog

import (
	"barrelman/internal/core"
)

// PluginName identifies the catalog plugin.
const PluginName = "barrelman-catalog"

// Plugin installs the catalog into a service whose registry is empty.
type Plugin struct{}

// NewPlugin returns the catalog plugin.
func NewPlugin() Plugin { return Plugin{} }

func (Plugin) Name() string    { return PluginName }
func (Plugin) Version() string { return "1.0.0" }

// Register queues every catalog kind, parents first, and the catalog rules.
func (Plugin) Register(r *core.PluginRegistry) error {
	for _, kind := range registrationOrder() {
		r.RegisterKind(kind, Ancestors(kind), Factory(kind))
	}
	for _, rule := range Rules() {
		r.RegisterRule(rule)
	}
	return nil
}
