package core

import (
	"context"
	"sync"
	"testing"
	"time"

	"barrelman/internal/registry"
	"barrelman/pkg/domain"

	"github.com/stretchr/testify/require"
)

var (
	trackSchema = domain.NewSchema(domain.KindTrack,
		domain.Field{Name: "TrackNumber", Type: domain.FieldInt64},
	)
	trackValueSchema = domain.NewSchema(domain.KindTrackValue,
		domain.Field{Name: "Track", Type: domain.FieldGUID},
		domain.Field{Name: "Latitude", Type: domain.FieldFloat64},
		domain.Field{Name: "Speed", Type: domain.FieldFloat64},
	)
)

func factory(s *domain.Schema) registry.Factory {
	return func() *domain.Entity { return domain.NewEntity(s) }
}

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	require.NoError(t, r.Register(domain.KindTrackBase, nil, nil))
	require.NoError(t, r.Register(domain.KindTrack, []domain.Kind{domain.KindTrackBase}, factory(trackSchema)))
	require.NoError(t, r.Register(domain.KindTrackValue, nil, factory(trackValueSchema)))
	return r
}

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	return NewInMemoryService(newTestRegistry(t), domain.NewRulesEngine(), opts...)
}

func insertTrackValue(t *testing.T, svc *Service, speed float64) *domain.Entity {
	t.Helper()
	e, err := svc.Create(domain.KindTrackValue)
	require.NoError(t, err)
	require.NoError(t, e.SetField("Speed", speed))
	require.NoError(t, svc.Insert(context.Background(), e))
	return e
}

type captureAuditRecorder struct {
	mu      sync.Mutex
	entries []AuditEntry
}

func (c *captureAuditRecorder) Record(_ context.Context, entry AuditEntry) {
	c.mu.Lock()
	c.entries = append(c.entries, entry)
	c.mu.Unlock()
}

func (c *captureAuditRecorder) find(op string, status AuditStatus) (AuditEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.Operation == op && e.Status == status {
			return e, true
		}
	}
	return AuditEntry{}, false
}

type captureMetricsRecorder struct {
	mu       sync.Mutex
	observed map[string][]bool
}

func (c *captureMetricsRecorder) Observe(_ context.Context, op string, success bool, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.observed == nil {
		c.observed = make(map[string][]bool)
	}
	c.observed[op] = append(c.observed[op], success)
}

func (c *captureMetricsRecorder) has(op string, success bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.observed[op] {
		if s == success {
			return true
		}
	}
	return false
}

type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *captureLogger) add(level, msg string) {
	l.mu.Lock()
	l.lines = append(l.lines, level+": "+msg)
	l.mu.Unlock()
}

func (l *captureLogger) Debug(msg string, _ ...any) { l.add("debug", msg) }
func (l *captureLogger) Info(msg string, _ ...any)  { l.add("info", msg) }
func (l *captureLogger) Warn(msg string, _ ...any)  { l.add("warn", msg) }
func (l *captureLogger) Error(msg string, _ ...any) { l.add("error", msg) }
