package core

import (
	"context"
	"errors"
	"testing"

	"barrelman/internal/notify"
	"barrelman/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCRUD(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	e := insertTrackValue(t, svc, 12.3)
	assert.Equal(t, uint64(1), e.RowVersion())

	got, err := svc.Get(ctx, e.ID())
	require.NoError(t, err)
	assert.True(t, got.EqualFields(e))
	assert.Same(t, svc.Bus(), got.Publisher())

	require.NoError(t, got.SetField("Speed", 14.0))
	v, err := svc.Update(ctx, got, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v)

	require.NoError(t, e.SetField("Speed", 15.0))
	_, err = svc.Update(ctx, e, 1)
	assert.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, svc.Delete(ctx, e.ID(), 2))
	_, err = svc.Get(ctx, e.ID())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var changed []*domain.Entity
	for c := range svc.ChangesSince(ctx, 0) {
		changed = append(changed, c)
	}
	require.Len(t, changed, 1)
	assert.True(t, changed[0].Deleted())
	assert.Equal(t, uint64(3), changed[0].RowVersion())
}

func TestServiceCreateRejectsAbstractKinds(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Create(domain.KindTrackBase)
	var abstract domain.AbstractKindError
	assert.ErrorAs(t, err, &abstract)

	_, err = svc.Create(domain.KindZone)
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestServiceInsertNil(t *testing.T) {
	svc := newTestService(t)
	assert.ErrorIs(t, svc.Insert(context.Background(), nil), domain.ErrInvalidEntity)
	_, err := svc.Update(context.Background(), nil, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidEntity)
}

func TestServiceQueryAttachesBus(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	track, err := svc.Create(domain.KindTrack)
	require.NoError(t, err)
	require.NoError(t, svc.Insert(ctx, track))
	insertTrackValue(t, svc, 1)

	var kinds []domain.Kind
	for e := range svc.Query(ctx, domain.KindTrackBase, true) {
		assert.Same(t, svc.Bus(), e.Publisher())
		kinds = append(kinds, e.Kind())
	}
	assert.Equal(t, []domain.Kind{domain.KindTrack}, kinds)

	n := 0
	for range svc.Query(ctx, domain.KindTrackBase, false) {
		n++
	}
	assert.Zero(t, n)
}

func TestServiceSubscriptions(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	e := insertTrackValue(t, svc, 12.3)

	var events []domain.FieldChange
	sub := svc.Subscribe(e, func(c domain.FieldChange) error {
		events = append(events, c)
		return nil
	})
	require.NoError(t, e.SetField("Speed", 12.3))
	assert.Empty(t, events)

	require.NoError(t, e.SetField("Speed", 14.0))
	require.Len(t, events, 1)
	assert.Equal(t, "Speed", events[0].Field)

	// Handlers are keyed by id, so a fresh copy from Get reaches them too.
	other, err := svc.Get(ctx, e.ID())
	require.NoError(t, err)
	require.NoError(t, other.SetField("Latitude", 59.9))
	assert.Len(t, events, 2)

	svc.Unsubscribe(e, sub)
	require.NoError(t, e.SetField("Speed", 20.0))
	assert.Len(t, events, 2)
	assert.Zero(t, svc.Bus().Subscribers(e.ID()))
}

func TestServiceDeleteClosesSubscriptions(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	e := insertTrackValue(t, svc, 1)
	svc.Subscribe(e, func(domain.FieldChange) error { return nil })
	require.Equal(t, 1, svc.Bus().Subscribers(e.ID()))

	require.NoError(t, svc.Delete(ctx, e.ID(), e.RowVersion()))
	assert.Zero(t, svc.Bus().Subscribers(e.ID()))
}

func TestMutateRetriesOnConflict(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	e := insertTrackValue(t, svc, 1)

	var events []domain.FieldChange
	svc.Subscribe(e, func(c domain.FieldChange) error {
		events = append(events, c)
		return nil
	})

	calls := 0
	out, err := svc.Mutate(ctx, e.ID(), func(m *domain.Entity) error {
		calls++
		if calls == 1 {
			// A writer without the bus commits first.
			other, err := svc.Store().Get(e.ID())
			require.NoError(t, err)
			require.NoError(t, other.SetField("Latitude", 59.9))
			_, err = svc.Store().Update(ctx, other, other.RowVersion())
			require.NoError(t, err)
		}
		return m.SetField("Speed", 50.0)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, uint64(3), out.RowVersion())
	assert.Empty(t, out.Dirty())
	assert.Same(t, svc.Bus(), out.Publisher())

	lat, _ := domain.FieldValue[float64](out, "Latitude")
	assert.Equal(t, 59.9, lat)

	require.Len(t, events, 1)
	assert.Equal(t, "Speed", events[0].Field)
	assert.Equal(t, 50.0, events[0].New)
}

func TestMutateGivesUp(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, WithMaxAttempts(2))
	e := insertTrackValue(t, svc, 1)

	calls := 0
	_, err := svc.Mutate(ctx, e.ID(), func(m *domain.Entity) error {
		calls++
		other, err := svc.Store().Get(e.ID())
		require.NoError(t, err)
		require.NoError(t, other.SetField("Speed", float64(100+calls)))
		_, err = svc.Store().Update(ctx, other, other.RowVersion())
		require.NoError(t, err)
		return m.SetField("Speed", 2.0)
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.True(t, domain.IsRetryable(err))
	assert.Equal(t, 2, calls)
}

func TestMutateWithoutChanges(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	e := insertTrackValue(t, svc, 12.3)

	out, err := svc.Mutate(ctx, e.ID(), func(m *domain.Entity) error {
		return m.SetField("Speed", 12.3)
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), out.RowVersion())
	assert.Equal(t, uint64(1), svc.Store().Version())
}

func TestMutateRestoredFieldPublishesNothing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	e := insertTrackValue(t, svc, 12.3)

	var events []domain.FieldChange
	svc.Subscribe(e, func(c domain.FieldChange) error {
		events = append(events, c)
		return nil
	})

	out, err := svc.Mutate(ctx, e.ID(), func(m *domain.Entity) error {
		if err := m.SetField("Speed", 40.0); err != nil {
			return err
		}
		return m.SetField("Speed", 12.3)
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), out.RowVersion())
	assert.Equal(t, uint64(1), svc.Store().Version())
	assert.Empty(t, events)
}

func TestMutateTerminalErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	e := insertTrackValue(t, svc, 1)

	boom := errors.New("boom")
	calls := 0
	_, err := svc.Mutate(ctx, e.ID(), func(*domain.Entity) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)

	_, err = svc.Mutate(ctx, uuid.New(), func(*domain.Entity) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunInTransaction(t *testing.T) {
	ctx := context.Background()
	audit := &captureAuditRecorder{}
	svc := newTestService(t, WithAuditRecorder(audit))

	a, err := svc.Create(domain.KindTrack)
	require.NoError(t, err)
	b, err := svc.Create(domain.KindTrackValue)
	require.NoError(t, err)
	require.NoError(t, b.SetField("Track", a.ID()))

	_, err = svc.RunInTransaction(ctx, func(tx domain.Transaction) error {
		if err := tx.Insert(a); err != nil {
			return err
		}
		return tx.Insert(b)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, svc.Store().Len())

	entry, ok := audit.find("transaction", AuditStatusSuccess)
	require.True(t, ok)
	assert.Equal(t, uint64(2), entry.Version)
}

func TestPurgeTombstones(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	e := insertTrackValue(t, svc, 1)
	require.NoError(t, svc.Delete(ctx, e.ID(), 1))

	n, err := svc.PurgeTombstones(ctx, svc.Store().Version())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	count := 0
	for range svc.ChangesSince(ctx, 0) {
		count++
	}
	assert.Zero(t, count)
}

func TestServiceSharedBus(t *testing.T) {
	bus := notify.New()
	svc := newTestService(t, WithBus(bus))
	assert.Same(t, bus, svc.Bus())

	e, err := svc.Create(domain.KindTrack)
	require.NoError(t, err)
	assert.Same(t, bus, e.Publisher())
}
