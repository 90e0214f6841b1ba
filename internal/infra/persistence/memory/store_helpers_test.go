package memory

import (
	"context"
	"slices"
	"testing"

	"barrelman/internal/registry"
	"barrelman/pkg/domain"

	"github.com/stretchr/testify/require"
)

var (
	trackValueSchema = domain.NewSchema(domain.KindTrackValue,
		domain.Field{Name: "Track", Type: domain.FieldGUID},
		domain.Field{Name: "Latitude", Type: domain.FieldFloat64},
		domain.Field{Name: "Longitude", Type: domain.FieldFloat64},
		domain.Field{Name: "Speed", Type: domain.FieldFloat64},
		domain.Field{Name: "Payload", Type: domain.FieldBinary},
	)
	trackSchema = domain.NewSchema(domain.KindTrack,
		domain.Field{Name: "TrackNumber", Type: domain.FieldInt64},
	)
	aisSchema = domain.NewSchema(domain.KindAisPositionReportClassAMessage,
		domain.Field{Name: "Mmsi", Type: domain.FieldInt32},
	)
	staticSchema = domain.NewSchema(domain.KindAisStaticDataReportPartAMessage,
		domain.Field{Name: "ShipName", Type: domain.FieldString},
	)
	radarSchema = domain.NewSchema(domain.KindRadarConfiguration,
		domain.Field{Name: "Name", Type: domain.FieldString},
	)
)

func factory(s *domain.Schema) registry.Factory {
	return func() *domain.Entity { return domain.NewEntity(s) }
}

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	ais := []domain.Kind{domain.KindAisMessage}
	require.NoError(t, r.Register(domain.KindAisMessage, nil, nil))
	require.NoError(t, r.Register(domain.KindAisPositionReportClassAMessageBase, ais, nil))
	require.NoError(t, r.Register(domain.KindAisPositionReportClassAMessage,
		[]domain.Kind{domain.KindAisPositionReportClassAMessageBase, domain.KindAisMessage}, factory(aisSchema)))
	require.NoError(t, r.Register(domain.KindAisStaticDataReportMessage, ais, nil))
	require.NoError(t, r.Register(domain.KindAisStaticDataReportPartAMessage,
		[]domain.Kind{domain.KindAisStaticDataReportMessage, domain.KindAisMessage}, factory(staticSchema)))
	require.NoError(t, r.Register(domain.KindRadarConfiguration, nil, factory(radarSchema)))
	require.NoError(t, r.Register(domain.KindTrackBase, nil, nil))
	require.NoError(t, r.Register(domain.KindTrack, []domain.Kind{domain.KindTrackBase}, factory(trackSchema)))
	require.NoError(t, r.Register(domain.KindTrackValue, nil, factory(trackValueSchema)))
	return r
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *registry.Registry) {
	t.Helper()
	reg := newTestRegistry(t)
	return NewStore(reg, domain.NewRulesEngine(), opts...), reg
}

func create(t *testing.T, reg *registry.Registry, kind domain.Kind, fields map[string]any) *domain.Entity {
	t.Helper()
	e, err := reg.Create(kind)
	require.NoError(t, err)
	for name, v := range fields {
		require.NoError(t, e.SetField(name, v))
	}
	return e
}

func insert(t *testing.T, s *Store, e *domain.Entity) {
	t.Helper()
	require.NoError(t, s.Insert(context.Background(), e))
}

func versions(s *Store, since uint64) []uint64 {
	var out []uint64
	for e := range s.ChangesSince(since) {
		out = append(out, e.RowVersion())
	}
	return out
}

func kindsOf(seq []*domain.Entity) []domain.Kind {
	out := make([]domain.Kind, 0, len(seq))
	for _, e := range seq {
		out = append(out, e.Kind())
	}
	return out
}

func collect(s *Store, kind domain.Kind, includeSubtypes bool) []*domain.Entity {
	return slices.Collect(s.Query(kind, includeSubtypes))
}
