package replication

import (
	"context"
	"testing"

	"barrelman/internal/infra/persistence/memory"
	"barrelman/internal/registry"
	"barrelman/pkg/domain"

	"github.com/stretchr/testify/require"
)

var trackSchema = domain.NewSchema(domain.KindTrack,
	domain.Field{Name: "TrackNumber", Type: domain.FieldInt64},
)

func newStore(t *testing.T) (*memory.Store, *registry.Registry) {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.Register(domain.KindTrackBase, nil, nil))
	require.NoError(t, reg.Register(domain.KindTrack, []domain.Kind{domain.KindTrackBase},
		func() *domain.Entity { return domain.NewEntity(trackSchema) }))
	return memory.NewStore(reg, nil), reg
}

func seed(t *testing.T, s *memory.Store, reg *registry.Registry, n int) []*domain.Entity {
	t.Helper()
	out := make([]*domain.Entity, 0, n)
	for i := range n {
		e, err := reg.Create(domain.KindTrack)
		require.NoError(t, err)
		require.NoError(t, e.SetField("TrackNumber", int64(i)))
		require.NoError(t, s.Insert(context.Background(), e))
		out = append(out, e)
	}
	return out
}

// recordingSink keeps every batch and can be told to fail.
type recordingSink struct {
	name    string
	fail    error
	batches []Batch
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Deliver(_ context.Context, b Batch) error {
	if s.fail != nil {
		return s.fail
	}
	s.batches = append(s.batches, b)
	return nil
}
