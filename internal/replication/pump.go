// Package replication ships committed entity versions out of a store by
// polling ChangesSince with a persisted cursor.
package replication

import (
	"context"
	"iter"
	"time"

	"barrelman/pkg/domain"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	defaultBatchSize = 256
	defaultInterval  = time.Second
)

// Source is the read side of an entity store.
type Source interface {
	ChangesSince(version uint64) iter.Seq[*domain.Entity]
}

// Batch is one delivery: entities in ascending row-version order. Sinks share
// the entities and must not mutate them.
type Batch struct {
	From     uint64
	To       uint64
	Entities []*domain.Entity
}

// Sink receives batches. Delivery is at-least-once; a batch is repeated after
// any sink fails, so sinks must tolerate duplicates.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, batch Batch) error
}

// CursorStore remembers the last delivered version per pump.
type CursorStore interface {
	Load(ctx context.Context, name string) (uint64, error)
	Save(ctx context.Context, name string, version uint64) error
}

// Pump moves changes from a Source to its sinks.
type Pump struct {
	name      string
	source    Source
	cursors   CursorStore
	sinks     []Sink
	batchSize int
	limiter   *rate.Limiter
	log       *zap.SugaredLogger
}

// Option configures a Pump.
type Option func(*Pump)

// WithBatchSize caps how many entities one Step delivers.
func WithBatchSize(n int) Option {
	return func(p *Pump) {
		if n > 0 {
			p.batchSize = n
		}
	}
}

// WithInterval sets the minimum spacing between polls in Run.
func WithInterval(d time.Duration) Option {
	return func(p *Pump) {
		if d > 0 {
			p.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// WithLogger sets the pump logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(p *Pump) {
		if log != nil {
			p.log = log
		}
	}
}

// NewPump wires a named pump. The name keys the cursor.
func NewPump(name string, source Source, cursors CursorStore, sinks []Sink, opts ...Option) (*Pump, error) {
	if name == "" {
		return nil, errors.New("replication: pump name required")
	}
	if source == nil || cursors == nil {
		return nil, errors.New("replication: source and cursor store required")
	}
	if len(sinks) == 0 {
		return nil, errors.New("replication: at least one sink required")
	}
	p := &Pump{
		name:      name,
		source:    source,
		cursors:   cursors,
		sinks:     sinks,
		batchSize: defaultBatchSize,
		limiter:   rate.NewLimiter(rate.Every(defaultInterval), 1),
		log:       zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Name returns the pump name.
func (p *Pump) Name() string { return p.name }

// Step delivers at most one batch and returns how many entities it carried.
// The cursor advances only when every sink accepted the batch.
func (p *Pump) Step(ctx context.Context) (int, error) {
	cursor, err := p.cursors.Load(ctx, p.name)
	if err != nil {
		return 0, errors.Wrapf(err, "load cursor %s", p.name)
	}
	batch := Batch{Entities: make([]*domain.Entity, 0, p.batchSize)}
	for e := range p.source.ChangesSince(cursor) {
		batch.Entities = append(batch.Entities, e)
		if len(batch.Entities) == p.batchSize {
			break
		}
	}
	if len(batch.Entities) == 0 {
		return 0, nil
	}
	batch.From = batch.Entities[0].RowVersion()
	batch.To = batch.Entities[len(batch.Entities)-1].RowVersion()

	g, gctx := errgroup.WithContext(ctx)
	for _, sink := range p.sinks {
		g.Go(func() error {
			return errors.Wrapf(sink.Deliver(gctx, batch), "sink %s", sink.Name())
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := p.cursors.Save(ctx, p.name, batch.To); err != nil {
		return 0, errors.Wrapf(err, "save cursor %s", p.name)
	}
	p.log.Debugw("replicated batch", "pump", p.name, "from", batch.From, "to", batch.To, "count", len(batch.Entities))
	return len(batch.Entities), nil
}

// Drain runs Step until the source has nothing past the cursor.
func (p *Pump) Drain(ctx context.Context) (int, error) {
	total := 0
	for {
		n, err := p.Step(ctx)
		total += n
		if err != nil || n == 0 {
			return total, err
		}
	}
}

// Run polls until ctx is done. Failed steps are logged and retried on the
// next tick; a full batch is followed immediately by another step.
func (p *Pump) Run(ctx context.Context) error {
	p.log.Infow("replication pump started", "pump", p.name, "sinks", len(p.sinks), "batch_size", p.batchSize)
	defer p.log.Infow("replication pump stopped", "pump", p.name)
	for {
		if err := p.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		for {
			n, err := p.Step(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				p.log.Warnw("replication step failed", "pump", p.name, "error", err)
				break
			}
			if n < p.batchSize {
				break
			}
		}
	}
}
