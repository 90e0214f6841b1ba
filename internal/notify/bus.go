// Package notify delivers per-entity field change events to subscribers.
package notify

import (
	"sync"

	"barrelman/pkg/domain"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler observes one field change. Returned errors are reported but never
// undo the mutation that triggered the event.
type Handler func(domain.FieldChange) error

// Subscription identifies a registered handler for Unsubscribe.
type Subscription uint64

type subscriber struct {
	id      Subscription
	handler Handler
}

// Bus fans field changes out to the handlers subscribed to each entity id.
// Handlers run synchronously on the mutating goroutine, outside the bus lock,
// so a handler may subscribe or unsubscribe.
type Bus struct {
	mu      sync.RWMutex
	next    Subscription
	subs    map[uuid.UUID][]subscriber
	log     *zap.SugaredLogger
	onError func(domain.FieldChange, error)
}

// Option configures a Bus.
type Option func(*Bus)

// WithLogger sets the logger used for handler failures.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(b *Bus) {
		if log != nil {
			b.log = log
		}
	}
}

// WithErrorHandler installs a callback for handler errors and panics.
func WithErrorHandler(fn func(domain.FieldChange, error)) Option {
	return func(b *Bus) { b.onError = fn }
}

// New constructs a bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		subs: make(map[uuid.UUID][]subscriber),
		log:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers h for changes to e and attaches the bus to e so its
// SetField calls publish here. Handlers are keyed by entity id, so they keep
// receiving events from clones of e that are attached later.
func (b *Bus) Subscribe(e *domain.Entity, h Handler) Subscription {
	b.mu.Lock()
	b.next++
	id := b.next
	b.subs[e.ID()] = append(b.subs[e.ID()], subscriber{id: id, handler: h})
	b.mu.Unlock()
	e.Attach(b)
	return id
}

// Unsubscribe removes a handler. Unknown or already removed subscriptions are
// ignored.
func (b *Bus) Unsubscribe(e *domain.Entity, sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.subs[e.ID()]
	for i, s := range list {
		if s.id != sub {
			continue
		}
		next := make([]subscriber, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(b.subs, e.ID())
		} else {
			b.subs[e.ID()] = next
		}
		return
	}
}

// Attach routes e's events to the bus without adding a handler.
func (b *Bus) Attach(e *domain.Entity) {
	e.Attach(b)
}

// Subscribers returns the number of handlers registered for id.
func (b *Bus) Subscribers(id uuid.UUID) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[id])
}

// Close drops every handler registered for id.
func (b *Bus) Close(id uuid.UUID) {
	b.mu.Lock()
	delete(b.subs, id)
	b.mu.Unlock()
}

// Publish delivers change to the entity's handlers in subscription order.
func (b *Bus) Publish(change domain.FieldChange) {
	b.mu.RLock()
	list := b.subs[change.EntityID]
	b.mu.RUnlock()
	// Unsubscribe replaces the slice instead of editing it, so list is a
	// stable snapshot.
	for _, s := range list {
		if err := b.deliver(s, change); err != nil {
			b.log.Warnw("field change handler failed",
				"entity_id", change.EntityID,
				"kind", change.Kind.String(),
				"field", change.Field,
				"subscription", uint64(s.id),
				"error", err)
			if b.onError != nil {
				b.onError(change, err)
			}
		}
	}
}

func (b *Bus) deliver(s subscriber, change domain.FieldChange) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Newf("handler panic: %v", p)
		}
	}()
	return s.handler(change)
}
