package catalog

import (
	"context"
	"testing"

	"barrelman/internal/core"
	"barrelman/internal/infra/persistence/memory"
	"barrelman/internal/registry"
	"barrelman/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) *core.Service {
	t.Helper()
	svc := core.NewInMemoryService(registry.New(), domain.NewRulesEngine())
	meta, err := svc.InstallPlugin(NewPlugin())
	require.NoError(t, err)
	require.Len(t, meta.Kinds, len(domain.CatalogKinds()))
	require.Equal(t, []string{"position_range", "track_reference"}, meta.Rules)
	return svc
}

func TestTrackValueScenario(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	track, err := svc.Create(domain.KindTrack)
	require.NoError(t, err)
	require.NoError(t, svc.Insert(ctx, track))

	e, err := svc.Create(domain.KindTrackValue)
	require.NoError(t, err)
	tv, err := AsTrackValue(e)
	require.NoError(t, err)
	require.NoError(t, tv.SetTrack(track.ID()))
	require.NoError(t, tv.SetLatitude(59.9))
	require.NoError(t, tv.SetLongitude(10.7))
	require.NoError(t, tv.SetSpeed(12.3))
	require.NoError(t, svc.Insert(ctx, tv.Entity))
	require.Equal(t, uint64(2), tv.RowVersion())

	var events []domain.FieldChange
	svc.Subscribe(tv.Entity, func(c domain.FieldChange) error {
		events = append(events, c)
		return nil
	})

	require.NoError(t, tv.SetSpeed(12.3))
	assert.Empty(t, events)
	assert.Empty(t, tv.Dirty())
	v, err := svc.Update(ctx, tv.Entity, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v)

	require.NoError(t, tv.SetSpeed(14.0))
	require.Len(t, events, 1)
	assert.Equal(t, "Speed", events[0].Field)
	assert.Equal(t, 12.3, events[0].Old)
	assert.Equal(t, 14.0, events[0].New)
	v, err = svc.Update(ctx, tv.Entity, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), v)
	assert.Equal(t, uint64(3), tv.RowVersion())

	var changed []uuid.UUID
	for c := range svc.ChangesSince(ctx, 2) {
		changed = append(changed, c.ID())
	}
	assert.Equal(t, []uuid.UUID{tv.ID()}, changed)

	got, err := svc.Get(ctx, tv.ID())
	require.NoError(t, err)
	stored, err := AsTrackValue(got)
	require.NoError(t, err)
	assert.Equal(t, 14.0, stored.Speed())
	assert.Equal(t, track.ID(), stored.Track())
}

func TestPolymorphicQuery(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	msg, err := svc.Create(domain.KindAisPositionReportClassAMessage)
	require.NoError(t, err)
	require.NoError(t, svc.Insert(ctx, msg))
	part, err := svc.Create(domain.KindAisStaticDataReportPartAMessage)
	require.NoError(t, err)
	require.NoError(t, svc.Insert(ctx, part))
	radar, err := svc.Create(domain.KindRadarConfiguration)
	require.NoError(t, err)
	require.NoError(t, svc.Insert(ctx, radar))

	var ids []uuid.UUID
	for e := range svc.Query(ctx, domain.KindAisMessage, true) {
		ids = append(ids, e.ID())
	}
	assert.Equal(t, []uuid.UUID{msg.ID(), part.ID()}, ids)

	n := 0
	for range svc.Query(ctx, domain.KindAisMessage, false) {
		n++
	}
	assert.Zero(t, n, "abstract kinds have no direct instances")

	n = 0
	for e := range svc.Query(ctx, domain.KindRadarConfiguration, true) {
		assert.Equal(t, radar.ID(), e.ID())
		n++
	}
	assert.Equal(t, 1, n)
}

func TestPositionRangeRuleBlocks(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	msg := NewAisPositionReportClassAMessage()
	require.NoError(t, msg.SetLatitude(91))
	err := svc.Insert(ctx, msg.Entity)
	var blocked domain.RuleViolationError
	require.ErrorAs(t, err, &blocked)
	require.Len(t, blocked.Result.Violations, 1)
	assert.Equal(t, "position_range", blocked.Result.Violations[0].Rule)
	assert.Equal(t, msg.ID(), blocked.Result.Violations[0].EntityID)
	assert.Zero(t, svc.Store().Len())

	require.NoError(t, msg.SetLatitude(-90))
	require.NoError(t, msg.SetLongitude(-181))
	assert.ErrorAs(t, svc.Insert(ctx, msg.Entity), &blocked)

	require.NoError(t, msg.SetLongitude(180))
	require.NoError(t, svc.Insert(ctx, msg.Entity))
}

func TestTrackReferenceRuleWarns(t *testing.T) {
	ctx := context.Background()
	reg, err := NewRegistry()
	require.NoError(t, err)
	engine := domain.NewRulesEngine()
	for _, r := range Rules() {
		engine.Register(r)
	}
	store := memory.NewStore(reg, engine)

	zone, err := reg.Create(domain.KindCircularZone)
	require.NoError(t, err)
	require.NoError(t, store.Insert(ctx, zone))
	track, err := reg.Create(domain.KindTrack3D)
	require.NoError(t, err)
	require.NoError(t, store.Insert(ctx, track))

	cases := []struct {
		name   string
		target uuid.UUID
		want   string
	}{
		{"no track", uuid.Nil, "has no track"},
		{"missing", uuid.New(), "references missing track"},
		{"wrong kind", zone.ID(), "not a track"},
		{"track", track.ID(), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tv := NewTrackValue()
			require.NoError(t, tv.SetTrack(tc.target))
			res, err := store.RunInTransaction(ctx, func(tx domain.Transaction) error {
				return tx.Insert(tv.Entity)
			})
			require.NoError(t, err)
			if tc.want == "" {
				assert.Empty(t, res.Violations)
				return
			}
			require.Len(t, res.Violations, 1)
			assert.Equal(t, domain.SeverityWarn, res.Violations[0].Severity)
			assert.Contains(t, res.Violations[0].Message, tc.want)
		})
	}
}

func TestTrackReferenceSeesSameTransaction(t *testing.T) {
	ctx := context.Background()
	reg, err := NewRegistry()
	require.NoError(t, err)
	engine := domain.NewRulesEngine()
	engine.Register(NewTrackReferenceRule())
	store := memory.NewStore(reg, engine)

	track, err := reg.Create(domain.KindTrack)
	require.NoError(t, err)
	tv := NewTrackValue()
	require.NoError(t, tv.SetTrack(track.ID()))

	res, err := store.RunInTransaction(ctx, func(tx domain.Transaction) error {
		if err := tx.Insert(track); err != nil {
			return err
		}
		return tx.Insert(tv.Entity)
	})
	require.NoError(t, err)
	assert.Empty(t, res.Violations)
	assert.Equal(t, 2, store.Len())
}
