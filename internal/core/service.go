package core

import (
	"context"
	"iter"
	"slices"
	"strings"
	"sync"
	"time"

	"barrelman/internal/infra/persistence/memory"
	"barrelman/internal/logger"
	"barrelman/internal/notify"
	"barrelman/internal/registry"
	"barrelman/pkg/domain"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

const defaultMaxAttempts = 3

// Service exposes the entity store together with the kind registry and the
// change notification bus. Every operation is traced, timed and logged;
// mutations are also audited.
type Service struct {
	store domain.PersistentStore
	kinds *registry.Registry
	bus   *notify.Bus

	mu      sync.RWMutex
	plugins map[string]PluginMetadata

	logger      Logger
	audit       AuditRecorder
	metrics     MetricsRecorder
	tracer      Tracer
	clock       Clock
	maxAttempts int
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAuditRecorder sets the recorder that receives one entry per mutation.
func WithAuditRecorder(r AuditRecorder) Option {
	return func(s *Service) {
		if r != nil {
			s.audit = r
		}
	}
}

// WithMetricsRecorder sets the operation metrics sink.
func WithMetricsRecorder(r MetricsRecorder) Option {
	return func(s *Service) {
		if r != nil {
			s.metrics = r
		}
	}
}

// WithTracer sets the span source.
func WithTracer(t Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithClock overrides the audit timestamp source.
func WithClock(c Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithBus shares a notification bus with other components.
func WithBus(b *notify.Bus) Option {
	return func(s *Service) {
		if b != nil {
			s.bus = b
		}
	}
}

// WithMaxAttempts bounds the read-modify-write retries of Mutate. Values
// below one are ignored.
func WithMaxAttempts(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// NewService constructs a service over store. kinds must be the registry the
// store resolves kinds with.
func NewService(store domain.PersistentStore, kinds *registry.Registry, opts ...Option) *Service {
	s := &Service{
		store:       store,
		kinds:       kinds,
		bus:         notify.New(),
		plugins:     make(map[string]PluginMetadata),
		logger:      noopLogger{},
		audit:       noopAuditRecorder{},
		metrics:     noopMetricsRecorder{},
		tracer:      noopTracer{},
		clock:       ClockFunc(nil),
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewInMemoryService creates a service over a fresh in-memory store using
// kinds and engine. A nil engine starts with no rules.
func NewInMemoryService(kinds *registry.Registry, engine *domain.RulesEngine, opts ...Option) *Service {
	return NewService(memory.NewStore(kinds, engine), kinds, opts...)
}

// Store returns the underlying store.
func (s *Service) Store() domain.PersistentStore { return s.store }

// Registry returns the kind registry.
func (s *Service) Registry() *registry.Registry { return s.kinds }

// Bus returns the notification bus entities are attached to.
func (s *Service) Bus() *notify.Bus { return s.bus }

// Create returns a new default entity of kind attached to the bus. Nothing is
// stored until Insert.
func (s *Service) Create(kind domain.Kind) (*domain.Entity, error) {
	e, err := s.kinds.Create(kind)
	if err != nil {
		return nil, err
	}
	s.bus.Attach(e)
	return e, nil
}

// Insert stores e and stamps it with its first row version.
func (s *Service) Insert(ctx context.Context, e *domain.Entity) error {
	if e == nil {
		return errors.Wrap(domain.ErrInvalidEntity, "insert nil entity")
	}
	entry := AuditEntry{Kind: e.Kind(), Action: domain.ActionCreate, EntityID: e.ID()}
	return s.run(ctx, "insert_entity", &entry, func(ctx context.Context) error {
		if err := s.store.Insert(ctx, e); err != nil {
			return err
		}
		entry.Version = e.RowVersion()
		return nil
	})
}

// Update commits e's dirty fields when the stored row is still at
// expectedVersion.
func (s *Service) Update(ctx context.Context, e *domain.Entity, expectedVersion uint64) (uint64, error) {
	if e == nil {
		return 0, errors.Wrap(domain.ErrInvalidEntity, "update nil entity")
	}
	var version uint64
	entry := AuditEntry{Kind: e.Kind(), Action: domain.ActionUpdate, EntityID: e.ID()}
	err := s.run(ctx, "update_entity", &entry, func(ctx context.Context) error {
		var err error
		version, err = s.store.Update(ctx, e, expectedVersion)
		entry.Version = version
		return err
	})
	return version, err
}

// Delete tombstones the entity and drops its bus subscriptions.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, expectedVersion uint64) error {
	entry := AuditEntry{Action: domain.ActionDelete, EntityID: id}
	return s.run(ctx, "delete_entity", &entry, func(ctx context.Context) error {
		if e, err := s.store.Get(id); err == nil {
			entry.Kind = e.Kind()
		}
		if err := s.store.Delete(ctx, id, expectedVersion); err != nil {
			return err
		}
		s.bus.Close(id)
		return nil
	})
}

// Get returns a copy of the live entity attached to the bus.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Entity, error) {
	var e *domain.Entity
	err := s.run(ctx, "get_entity", nil, func(context.Context) error {
		var err error
		e, err = s.store.Get(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.bus.Attach(e)
	return e, nil
}

// Query yields live entities of kind, optionally with its subtypes, attached
// to the bus. The span covers the whole iteration.
func (s *Service) Query(ctx context.Context, kind domain.Kind, includeSubtypes bool) iter.Seq[*domain.Entity] {
	return func(yield func(*domain.Entity) bool) {
		_ = s.run(ctx, "query_entities", nil, func(context.Context) error {
			for e := range s.store.Query(kind, includeSubtypes) {
				s.bus.Attach(e)
				if !yield(e) {
					break
				}
			}
			return nil
		})
	}
}

// ChangesSince yields the latest state, tombstones included, of every entity
// changed after version.
func (s *Service) ChangesSince(ctx context.Context, version uint64) iter.Seq[*domain.Entity] {
	return func(yield func(*domain.Entity) bool) {
		_ = s.run(ctx, "changes_since", nil, func(context.Context) error {
			for e := range s.store.ChangesSince(version) {
				if !yield(e) {
					break
				}
			}
			return nil
		})
	}
}

// Subscribe registers h for field changes of e and attaches e to the bus.
func (s *Service) Subscribe(e *domain.Entity, h notify.Handler) notify.Subscription {
	return s.bus.Subscribe(e, h)
}

// Unsubscribe removes a subscription. Unknown subscriptions are ignored.
func (s *Service) Unsubscribe(e *domain.Entity, sub notify.Subscription) {
	s.bus.Unsubscribe(e, sub)
}

// RunInTransaction runs fn atomically against the store.
func (s *Service) RunInTransaction(ctx context.Context, fn func(domain.Transaction) error) (domain.Result, error) {
	var res domain.Result
	entry := AuditEntry{}
	err := s.run(ctx, "transaction", &entry, func(ctx context.Context) error {
		var err error
		res, err = s.store.RunInTransaction(ctx, fn)
		entry.Version = s.store.Version()
		return err
	})
	return res, err
}

// PurgeTombstones forgets delete markers at or below through.
func (s *Service) PurgeTombstones(ctx context.Context, through uint64) (int, error) {
	var n int
	entry := AuditEntry{Action: domain.ActionDelete, Version: through}
	err := s.run(ctx, "purge_tombstones", &entry, func(ctx context.Context) error {
		var err error
		n, err = s.store.PurgeTombstones(ctx, through)
		return err
	})
	return n, err
}

// Mutate reads the entity, applies fn and commits the result at the version
// that was read. A conflict rereads and reapplies fn, up to the configured
// number of attempts. Field events raised by fn reach the bus only for the
// attempt that commits. fn must not retain the entity between calls.
func (s *Service) Mutate(ctx context.Context, id uuid.UUID, fn func(*domain.Entity) error) (*domain.Entity, error) {
	var out *domain.Entity
	entry := AuditEntry{Action: domain.ActionUpdate, EntityID: id}
	err := s.run(ctx, "mutate_entity", &entry, func(ctx context.Context) error {
		for attempt := 1; ; attempt++ {
			e, err := s.store.Get(id)
			if err != nil {
				return err
			}
			entry.Kind = e.Kind()
			pending := &bufferedPublisher{}
			e.Attach(pending)
			if err := fn(e); err != nil {
				return err
			}
			if len(e.Dirty()) == 0 {
				entry.Version = e.RowVersion()
				out = e
				break
			}
			read := e.RowVersion()
			version, err := s.store.Update(ctx, e, read)
			if err == nil || errors.Is(err, domain.ErrNotPersisted) {
				entry.Version = version
				// Fields set and then restored commit nothing.
				if version != read {
					for _, change := range pending.changes {
						s.bus.Publish(change)
					}
				}
				if err != nil {
					return err
				}
				out = e
				break
			}
			if !domain.IsRetryable(err) || attempt >= s.maxAttempts {
				return errors.Wrapf(err, "mutate %s after %d attempt(s)", id, attempt)
			}
			s.logger.Debug("retrying conflicting mutation",
				logger.FieldEntityID, id.String(),
				"attempt", attempt,
				logger.FieldError, err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.bus.Attach(out)
	return out, nil
}

type bufferedPublisher struct {
	changes []domain.FieldChange
}

func (b *bufferedPublisher) Publish(change domain.FieldChange) {
	b.changes = append(b.changes, change)
}

// InstallPlugin registers a plugin's kinds with the registry and its rules
// with the store's engine.
func (s *Service) InstallPlugin(plugin Plugin) (PluginMetadata, error) {
	if plugin == nil {
		return PluginMetadata{}, errors.New("plugin cannot be nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.plugins[plugin.Name()]; ok {
		return PluginMetadata{}, errors.Newf("plugin %s already registered", plugin.Name())
	}

	contrib := NewPluginRegistry()
	if err := plugin.Register(contrib); err != nil {
		return PluginMetadata{}, errors.Wrapf(err, "plugin %s", plugin.Name())
	}

	meta := PluginMetadata{Name: plugin.Name(), Version: plugin.Version()}
	for _, k := range contrib.Kinds() {
		if err := s.kinds.Register(k.Kind, k.Ancestors, k.Factory); err != nil {
			return PluginMetadata{}, errors.Wrapf(err, "plugin %s", plugin.Name())
		}
		meta.Kinds = append(meta.Kinds, k.Kind)
	}
	engine := s.store.RulesEngine()
	for _, rule := range contrib.Rules() {
		engine.Register(rule)
		meta.Rules = append(meta.Rules, rule.Name())
	}
	s.plugins[plugin.Name()] = meta
	s.logger.Info("plugin installed",
		"plugin", meta.Name,
		"version", meta.Version,
		"kinds", len(meta.Kinds),
		"rules", len(meta.Rules))
	return meta, nil
}

// RegisteredPlugins returns metadata describing installed plugins, ordered by
// name.
func (s *Service) RegisteredPlugins() []PluginMetadata {
	s.mu.RLock()
	out := make([]PluginMetadata, 0, len(s.plugins))
	for _, meta := range s.plugins {
		out = append(out, meta)
	}
	s.mu.RUnlock()
	slices.SortFunc(out, func(a, b PluginMetadata) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// run wraps one operation with a span, a metric and a log line. A non-nil
// entry is completed and sent to the audit recorder.
func (s *Service) run(ctx context.Context, op string, entry *AuditEntry, fn func(context.Context) error) error {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, op)
	err := fn(ctx)
	elapsed := time.Since(start)
	span.End(err)
	s.metrics.Observe(ctx, op, err == nil, elapsed)

	if entry != nil {
		entry.Operation = op
		entry.Status = AuditStatusSuccess
		if err != nil {
			entry.Status = AuditStatusError
			entry.Error = err.Error()
		}
		entry.Duration = elapsed
		entry.Timestamp = s.clock.Now()
		s.audit.Record(ctx, *entry)
	}

	if err != nil {
		s.logger.Warn("operation failed",
			logger.FieldOperation, op,
			logger.FieldDuration, elapsed.Milliseconds(),
			logger.FieldError, err.Error())
		return err
	}
	s.logger.Debug("operation complete",
		logger.FieldOperation, op,
		logger.FieldDuration, elapsed.Milliseconds())
	return nil
}
