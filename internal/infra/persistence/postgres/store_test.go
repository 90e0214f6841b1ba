package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"barrelman/internal/registry"
	"barrelman/pkg/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

var trackSchema = domain.NewSchema(domain.KindTrack,
	domain.Field{Name: "TrackNumber", Type: domain.FieldInt64},
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	require.NoError(t, r.Register(domain.KindTrackBase, nil, nil))
	require.NoError(t, r.Register(domain.KindTrack, []domain.Kind{domain.KindTrackBase},
		func() *domain.Entity { return domain.NewEntity(trackSchema) }))
	return r
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	restore := OverrideSQLOpen(func(driver, dsn string) (*sql.DB, error) {
		require.Equal(t, defaultDriver, driver)
		require.Equal(t, defaultDSN, dsn)
		return db, nil
	})
	t.Cleanup(restore)
	return db, mock
}

func expectSchema(mock sqlmock.Sqlmock) {
	for _, stmt := range schemaStatements {
		mock.ExpectExec(stmt).WillReturnResult(sqlmock.NewResult(0, 0))
	}
}

func expectLoad(mock sqlmock.Sqlmock, mark *int64, entities ...*domain.Entity) {
	rows := sqlmock.NewRows([]string{"id", "payload"})
	for _, e := range entities {
		payload, _ := json.Marshal(e)
		rows.AddRow(e.ID().String(), payload)
	}
	mock.ExpectQuery(selectEntities).WillReturnRows(rows)
	meta := sqlmock.NewRows([]string{"value"})
	if mark != nil {
		meta.AddRow(*mark)
	}
	mock.ExpectQuery(selectPersisted).WithArgs(persistedKey).WillReturnRows(meta)
}

func expectPersist(mock sqlmock.Sqlmock, mark uint64, entities ...*domain.Entity) *sqlmock.ExpectedCommit {
	mock.ExpectBegin()
	for _, e := range entities {
		mock.ExpectExec(upsertEntity).
			WithArgs(e.ID().String(), int64(e.Kind()), int64(e.RowVersion()), e.Deleted(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec(upsertPersisted).WithArgs(persistedKey, int64(mark)).WillReturnResult(sqlmock.NewResult(0, 1))
	return mock.ExpectCommit()
}

func newTrack(t *testing.T, reg *registry.Registry, number int64) *domain.Entity {
	t.Helper()
	e, err := reg.Create(domain.KindTrack)
	require.NoError(t, err)
	require.NoError(t, e.SetField("TrackNumber", number))
	return e
}

func TestNewStoreLoadsRowsAndPersistsCommits(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry(t)
	_, mock := newMock(t)

	stored := newTrack(t, reg, 1)
	stored.Stamp(7)
	mark := int64(9)
	expectSchema(mock)
	expectLoad(mock, &mark, stored)

	s, err := NewStore("", reg, domain.NewRulesEngine())
	require.NoError(t, err)
	require.Equal(t, uint64(9), s.Version())
	got, err := s.Get(stored.ID())
	require.NoError(t, err)
	n, _ := domain.FieldValue[int64](got, "TrackNumber")
	require.Equal(t, int64(1), n)

	fresh := newTrack(t, reg, 2)
	want := fresh.Clone()
	want.Stamp(10)
	expectPersist(mock, 10, want)
	require.NoError(t, s.Insert(ctx, fresh))
	require.Equal(t, uint64(10), fresh.RowVersion())

	mock.ExpectClose()
	require.NoError(t, s.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFailedCommitRetriesOnNextWrite(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry(t)
	_, mock := newMock(t)
	expectSchema(mock)
	expectLoad(mock, nil)
	s, err := NewStore("", reg, nil)
	require.NoError(t, err)

	a := newTrack(t, reg, 1)
	wantA := a.Clone()
	wantA.Stamp(1)
	expectPersist(mock, 1, wantA).WillReturnError(errors.New("connection reset"))
	err = s.Insert(ctx, a)
	require.ErrorContains(t, err, "connection reset")
	require.ErrorIs(t, err, domain.ErrNotPersisted)
	var pe domain.PersistError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, uint64(1), pe.Version)
	// The in-memory commit stands; only the write-behind failed.
	_, err = s.Get(a.ID())
	require.NoError(t, err)

	b := newTrack(t, reg, 2)
	wantB := b.Clone()
	wantB.Stamp(2)
	expectPersist(mock, 2, wantA, wantB)
	require.NoError(t, s.Insert(ctx, b))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeTombstonesDeletesRows(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry(t)
	_, mock := newMock(t)
	expectSchema(mock)
	expectLoad(mock, nil)
	s, err := NewStore("", reg, nil)
	require.NoError(t, err)

	a := newTrack(t, reg, 1)
	wantA := a.Clone()
	wantA.Stamp(1)
	expectPersist(mock, 1, wantA)
	require.NoError(t, s.Insert(ctx, a))

	tomb := wantA.Tombstone()
	tomb.Stamp(2)
	expectPersist(mock, 2, tomb)
	require.NoError(t, s.Delete(ctx, a.ID(), 1))

	mock.ExpectExec(purgeEntities).WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
	n, err := s.PurgeTombstones(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewStoreSurfacesSchemaErrors(t *testing.T) {
	reg := newRegistry(t)
	_, mock := newMock(t)
	mock.ExpectExec(schemaStatements[0]).WillReturnError(errors.New("permission denied"))
	mock.ExpectClose()

	_, err := NewStore("", reg, nil)
	require.ErrorContains(t, err, "ensure schema")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewStoreRejectsUndecodableRows(t *testing.T) {
	reg := newRegistry(t)
	_, mock := newMock(t)
	expectSchema(mock)
	mock.ExpectQuery(selectEntities).WillReturnRows(
		sqlmock.NewRows([]string{"id", "payload"}).AddRow("x", []byte(`{"kind":9999}`)))
	mock.ExpectClose()

	_, err := NewStore("", reg, nil)
	require.ErrorIs(t, err, domain.ErrUnknownKind)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOverrideSQLOpenRestores(t *testing.T) {
	called := false
	restore := OverrideSQLOpen(func(string, string) (*sql.DB, error) {
		called = true
		return nil, errors.New("unreachable")
	})
	_, err := NewStore("postgres://example/db", newRegistry(t), nil)
	require.ErrorContains(t, err, "open postgres")
	require.True(t, called)
	restore()

	openMu.Lock()
	defer openMu.Unlock()
	require.NotNil(t, sqlOpen)
}
