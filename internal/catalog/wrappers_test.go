package catalog

import (
	"testing"
	"time"

	"barrelman/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsWrappersCheckKind(t *testing.T) {
	_, err := AsTrackValue(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidEntity)

	radar := NewRadarConfiguration()
	_, err = AsTrackValue(radar.Entity)
	assert.ErrorIs(t, err, domain.ErrInvalidKind)
	_, err = AsAisPositionReportClassAMessage(radar.Entity)
	assert.ErrorIs(t, err, domain.ErrInvalidKind)

	back, err := AsRadarConfiguration(radar.Entity)
	require.NoError(t, err)
	assert.Same(t, radar.Entity, back.Entity)
}

func TestTrackValueAccessors(t *testing.T) {
	tv := NewTrackValue()
	now := time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC)
	track := uuid.New()

	require.NoError(t, tv.SetTrack(track))
	require.NoError(t, tv.SetTimestamp(now))
	require.NoError(t, tv.SetFlags(TrackFlagsPosition|TrackFlagsSpeed))
	require.NoError(t, tv.SetStatus(TrackStatusTracked))
	require.NoError(t, tv.SetCourse(271.5))
	require.NoError(t, tv.SetHeading(270))

	assert.Equal(t, track, tv.Track())
	assert.Equal(t, now, tv.Timestamp())
	assert.Equal(t, TrackFlagsPosition|TrackFlagsSpeed, tv.Flags())
	assert.Equal(t, TrackStatusTracked, tv.Status())
	assert.Equal(t, 271.5, tv.Course())
	assert.Equal(t, 270.0, tv.Heading())
	assert.ElementsMatch(t, []string{"Track", "Timestamp", "Flags", "Status", "Course", "Heading"}, tv.Dirty())
}

func TestClassAOptionalFields(t *testing.T) {
	m := NewAisPositionReportClassAMessage()
	assert.Nil(t, m.Mmsi())
	assert.Nil(t, m.RateOfTurn())
	assert.Nil(t, m.TrueHeading())

	id := uuid.New()
	rot := int32(-12)
	require.NoError(t, m.SetMmsi(&id))
	require.NoError(t, m.SetRateOfTurn(&rot))
	require.NoError(t, m.SetNavigationStatus(NavigationStatusMoored))
	require.NoError(t, m.SetRaim(RaimInUse))

	require.NotNil(t, m.Mmsi())
	assert.Equal(t, id, *m.Mmsi())
	assert.Equal(t, int32(-12), *m.RateOfTurn())
	assert.Equal(t, NavigationStatusMoored, m.NavigationStatus())
	assert.Equal(t, RaimInUse, m.Raim())

	require.NoError(t, m.SetMmsi(nil))
	assert.Nil(t, m.Mmsi())
	assert.True(t, m.IsDirty("Mmsi"))
}

func TestRadarConfigurationDefaults(t *testing.T) {
	r := NewRadarConfiguration()
	assert.Equal(t, RadarImageTypeMaskedProcessed, r.RadarImageType())
	assert.Nil(t, r.ImageSubstitutionColor())

	color := uint32(0xff00ff)
	require.NoError(t, r.SetImageSubstitutionColor(&color))
	require.NoError(t, r.SetReadTimeout(1500*time.Millisecond))
	require.NoError(t, r.SetRadarImageType(RadarImageTypeFullRaw))
	assert.Equal(t, color, *r.ImageSubstitutionColor())
	assert.Equal(t, 1500*time.Millisecond, r.ReadTimeout())
	assert.Equal(t, RadarImageTypeFullRaw, r.RadarImageType())
}
