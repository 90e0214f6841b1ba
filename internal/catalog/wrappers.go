package catalog

import (
	"time"

	"barrelman/pkg/domain"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// Typed wrappers give field access by method. Every setter goes through
// SetField, so validation, the no-op guard and change events stay in one
// place.

func wrap(e *domain.Entity, kind domain.Kind) (*domain.Entity, error) {
	if e == nil {
		return nil, errors.Wrap(domain.ErrInvalidEntity, "nil entity")
	}
	if e.Kind() != kind {
		return nil, errors.Wrapf(domain.ErrInvalidKind, "entity %s is %s, want %s", e.ID(), e.Kind(), kind)
	}
	return e, nil
}

func get[T any](e *domain.Entity, name string) T {
	v, _ := domain.FieldValue[T](e, name)
	return v
}

func getOpt[T any](e *domain.Entity, name string) *T {
	v, ok := domain.FieldValue[T](e, name)
	if !ok {
		return nil
	}
	return &v
}

// TrackValue is one position fix of a 2D track.
type TrackValue struct{ *domain.Entity }

// NewTrackValue creates a default TrackValue.
func NewTrackValue() TrackValue {
	return TrackValue{domain.NewEntity(Schema(domain.KindTrackValue))}
}

// AsTrackValue wraps e, which must be a TrackValue.
func AsTrackValue(e *domain.Entity) (TrackValue, error) {
	w, err := wrap(e, domain.KindTrackValue)
	return TrackValue{w}, err
}

func (t TrackValue) Track() uuid.UUID               { return get[uuid.UUID](t.Entity, "Track") }
func (t TrackValue) Timestamp() time.Time           { return get[time.Time](t.Entity, "Timestamp") }
func (t TrackValue) Flags() TrackFlags              { return TrackFlags(get[int32](t.Entity, "Flags")) }
func (t TrackValue) Status() TrackStatus            { return TrackStatus(get[int32](t.Entity, "Status")) }
func (t TrackValue) Latitude() float64              { return get[float64](t.Entity, "Latitude") }
func (t TrackValue) Longitude() float64             { return get[float64](t.Entity, "Longitude") }
func (t TrackValue) Speed() float64                 { return get[float64](t.Entity, "Speed") }
func (t TrackValue) Course() float64                { return get[float64](t.Entity, "Course") }
func (t TrackValue) Heading() float64               { return get[float64](t.Entity, "Heading") }
func (t TrackValue) SetTrack(v uuid.UUID) error     { return t.SetField("Track", v) }
func (t TrackValue) SetTimestamp(v time.Time) error { return t.SetField("Timestamp", v) }
func (t TrackValue) SetFlags(v TrackFlags) error    { return t.SetField("Flags", v) }
func (t TrackValue) SetStatus(v TrackStatus) error  { return t.SetField("Status", v) }
func (t TrackValue) SetLatitude(v float64) error    { return t.SetField("Latitude", v) }
func (t TrackValue) SetLongitude(v float64) error   { return t.SetField("Longitude", v) }
func (t TrackValue) SetSpeed(v float64) error       { return t.SetField("Speed", v) }
func (t TrackValue) SetCourse(v float64) error      { return t.SetField("Course", v) }
func (t TrackValue) SetHeading(v float64) error     { return t.SetField("Heading", v) }

// AisPositionReportClassAMessage is an AIS message type 1 position report.
type AisPositionReportClassAMessage struct{ *domain.Entity }

func NewAisPositionReportClassAMessage() AisPositionReportClassAMessage {
	return AisPositionReportClassAMessage{domain.NewEntity(Schema(domain.KindAisPositionReportClassAMessage))}
}

func AsAisPositionReportClassAMessage(e *domain.Entity) (AisPositionReportClassAMessage, error) {
	w, err := wrap(e, domain.KindAisPositionReportClassAMessage)
	return AisPositionReportClassAMessage{w}, err
}

func (m AisPositionReportClassAMessage) AisDevice() uuid.UUID { return get[uuid.UUID](m.Entity, "AisDevice") }
func (m AisPositionReportClassAMessage) ReceivedTimestamp() time.Time {
	return get[time.Time](m.Entity, "ReceivedTimestamp")
}
func (m AisPositionReportClassAMessage) MessageSequenceNumber() int64 {
	return get[int64](m.Entity, "MessageSequenceNumber")
}
func (m AisPositionReportClassAMessage) Repeat() int32    { return get[int32](m.Entity, "Repeat") }
func (m AisPositionReportClassAMessage) Mmsi() *uuid.UUID { return getOpt[uuid.UUID](m.Entity, "Mmsi") }
func (m AisPositionReportClassAMessage) NavigationStatus() NavigationStatus {
	return NavigationStatus(get[int32](m.Entity, "NavigationStatus"))
}
func (m AisPositionReportClassAMessage) RateOfTurn() *int32 { return getOpt[int32](m.Entity, "RateOfTurn") }
func (m AisPositionReportClassAMessage) SpeedOverGround() float64 {
	return get[float64](m.Entity, "SpeedOverGround")
}
func (m AisPositionReportClassAMessage) PositionAccuracy() PositionAccuracy {
	return PositionAccuracy(get[int32](m.Entity, "PositionAccuracy"))
}
func (m AisPositionReportClassAMessage) Longitude() float64 { return get[float64](m.Entity, "Longitude") }
func (m AisPositionReportClassAMessage) Latitude() float64  { return get[float64](m.Entity, "Latitude") }
func (m AisPositionReportClassAMessage) CourseOverGround() float64 {
	return get[float64](m.Entity, "CourseOverGround")
}
func (m AisPositionReportClassAMessage) TrueHeading() *int32 { return getOpt[int32](m.Entity, "TrueHeading") }
func (m AisPositionReportClassAMessage) Timestamp() int32    { return get[int32](m.Entity, "Timestamp") }
func (m AisPositionReportClassAMessage) ManeuverIndicator() ManeuverIndicator {
	return ManeuverIndicator(get[int32](m.Entity, "ManeuverIndicator"))
}
func (m AisPositionReportClassAMessage) Spare() int32       { return get[int32](m.Entity, "Spare") }
func (m AisPositionReportClassAMessage) Raim() Raim         { return Raim(get[int32](m.Entity, "Raim")) }
func (m AisPositionReportClassAMessage) RadioStatus() int32 { return get[int32](m.Entity, "RadioStatus") }

func (m AisPositionReportClassAMessage) SetAisDevice(v uuid.UUID) error {
	return m.SetField("AisDevice", v)
}
func (m AisPositionReportClassAMessage) SetReceivedTimestamp(v time.Time) error {
	return m.SetField("ReceivedTimestamp", v)
}
func (m AisPositionReportClassAMessage) SetMessageSequenceNumber(v int64) error {
	return m.SetField("MessageSequenceNumber", v)
}
func (m AisPositionReportClassAMessage) SetRepeat(v int32) error { return m.SetField("Repeat", v) }

// SetMmsi accepts nil to clear the reference.
func (m AisPositionReportClassAMessage) SetMmsi(v *uuid.UUID) error { return m.SetField("Mmsi", v) }
func (m AisPositionReportClassAMessage) SetNavigationStatus(v NavigationStatus) error {
	return m.SetField("NavigationStatus", v)
}
func (m AisPositionReportClassAMessage) SetRateOfTurn(v *int32) error {
	return m.SetField("RateOfTurn", v)
}
func (m AisPositionReportClassAMessage) SetSpeedOverGround(v float64) error {
	return m.SetField("SpeedOverGround", v)
}
func (m AisPositionReportClassAMessage) SetPositionAccuracy(v PositionAccuracy) error {
	return m.SetField("PositionAccuracy", v)
}
func (m AisPositionReportClassAMessage) SetLongitude(v float64) error {
	return m.SetField("Longitude", v)
}
func (m AisPositionReportClassAMessage) SetLatitude(v float64) error {
	return m.SetField("Latitude", v)
}
func (m AisPositionReportClassAMessage) SetCourseOverGround(v float64) error {
	return m.SetField("CourseOverGround", v)
}
func (m AisPositionReportClassAMessage) SetTrueHeading(v *int32) error {
	return m.SetField("TrueHeading", v)
}
func (m AisPositionReportClassAMessage) SetTimestamp(v int32) error {
	return m.SetField("Timestamp", v)
}
func (m AisPositionReportClassAMessage) SetManeuverIndicator(v ManeuverIndicator) error {
	return m.SetField("ManeuverIndicator", v)
}
func (m AisPositionReportClassAMessage) SetSpare(v int32) error { return m.SetField("Spare", v) }
func (m AisPositionReportClassAMessage) SetRaim(v Raim) error   { return m.SetField("Raim", v) }
func (m AisPositionReportClassAMessage) SetRadioStatus(v int32) error {
	return m.SetField("RadioStatus", v)
}

// RadarConfiguration holds the connection and image settings of one radar.
type RadarConfiguration struct{ *domain.Entity }

func NewRadarConfiguration() RadarConfiguration {
	return RadarConfiguration{domain.NewEntity(Schema(domain.KindRadarConfiguration))}
}

func AsRadarConfiguration(e *domain.Entity) (RadarConfiguration, error) {
	w, err := wrap(e, domain.KindRadarConfiguration)
	return RadarConfiguration{w}, err
}

func (r RadarConfiguration) Radar() uuid.UUID            { return get[uuid.UUID](r.Entity, "Radar") }
func (r RadarConfiguration) Timestamp() time.Time        { return get[time.Time](r.Entity, "Timestamp") }
func (r RadarConfiguration) RadarProtocolVersion() int32 { return get[int32](r.Entity, "RadarProtocolVersion") }
func (r RadarConfiguration) RadarIPAddress() string      { return get[string](r.Entity, "RadarIPAddress") }
func (r RadarConfiguration) RadarPort() int32            { return get[int32](r.Entity, "RadarPort") }
func (r RadarConfiguration) RadarConfigurationPort() int32 {
	return get[int32](r.Entity, "RadarConfigurationPort")
}
func (r RadarConfiguration) SkipMagicTimeout() time.Duration {
	return get[time.Duration](r.Entity, "SkipMagicTimeout")
}
func (r RadarConfiguration) ReadTimeout() time.Duration { return get[time.Duration](r.Entity, "ReadTimeout") }
func (r RadarConfiguration) SynchronizationInterval() time.Duration {
	return get[time.Duration](r.Entity, "SynchronizationInterval")
}
func (r RadarConfiguration) TargetsRefreshRate() int32 { return get[int32](r.Entity, "TargetsRefreshRate") }
func (r RadarConfiguration) Range() int32              { return get[int32](r.Entity, "Range") }
func (r RadarConfiguration) SectorCount() int32        { return get[int32](r.Entity, "SectorCount") }
func (r RadarConfiguration) SectorOffset() int32       { return get[int32](r.Entity, "SectorOffset") }
func (r RadarConfiguration) ImageColor() uint32        { return get[uint32](r.Entity, "ImageColor") }
func (r RadarConfiguration) ImageSubstitutionColor() *uint32 {
	return getOpt[uint32](r.Entity, "ImageSubstitutionColor")
}
func (r RadarConfiguration) TransparentColor() uint32 { return get[uint32](r.Entity, "TransparentColor") }
func (r RadarConfiguration) ImageScaleFactorX() float64 {
	return get[float64](r.Entity, "ImageScaleFactorX")
}
func (r RadarConfiguration) ImageOffsetX() float64 { return get[float64](r.Entity, "ImageOffsetX") }
func (r RadarConfiguration) ImageScaleFactorY() float64 {
	return get[float64](r.Entity, "ImageScaleFactorY")
}
func (r RadarConfiguration) ImageOffsetY() float64 { return get[float64](r.Entity, "ImageOffsetY") }
func (r RadarConfiguration) RadarImageType() RadarImageType {
	return RadarImageType(get[int32](r.Entity, "RadarImageType"))
}
func (r RadarConfiguration) TrackColor() uint32  { return get[uint32](r.Entity, "TrackColor") }
func (r RadarConfiguration) VectorColor() uint32 { return get[uint32](r.Entity, "VectorColor") }
func (r RadarConfiguration) EnableNmea() bool    { return get[bool](r.Entity, "EnableNmea") }
func (r RadarConfiguration) NmeaReceiverIPAddress() string {
	return get[string](r.Entity, "NmeaReceiverIPAddress")
}
func (r RadarConfiguration) NmeaReceiverPort() int32 { return get[int32](r.Entity, "NmeaReceiverPort") }
func (r RadarConfiguration) NmeaReceiverSourceId() string {
	return get[string](r.Entity, "NmeaReceiverSourceId")
}

func (r RadarConfiguration) SetRadar(v uuid.UUID) error     { return r.SetField("Radar", v) }
func (r RadarConfiguration) SetTimestamp(v time.Time) error { return r.SetField("Timestamp", v) }
func (r RadarConfiguration) SetRadarProtocolVersion(v int32) error {
	return r.SetField("RadarProtocolVersion", v)
}
func (r RadarConfiguration) SetRadarIPAddress(v string) error { return r.SetField("RadarIPAddress", v) }
func (r RadarConfiguration) SetRadarPort(v int32) error       { return r.SetField("RadarPort", v) }
func (r RadarConfiguration) SetRadarConfigurationPort(v int32) error {
	return r.SetField("RadarConfigurationPort", v)
}
func (r RadarConfiguration) SetSkipMagicTimeout(v time.Duration) error {
	return r.SetField("SkipMagicTimeout", v)
}
func (r RadarConfiguration) SetReadTimeout(v time.Duration) error { return r.SetField("ReadTimeout", v) }
func (r RadarConfiguration) SetSynchronizationInterval(v time.Duration) error {
	return r.SetField("SynchronizationInterval", v)
}
func (r RadarConfiguration) SetTargetsRefreshRate(v int32) error {
	return r.SetField("TargetsRefreshRate", v)
}
func (r RadarConfiguration) SetRange(v int32) error        { return r.SetField("Range", v) }
func (r RadarConfiguration) SetSectorCount(v int32) error  { return r.SetField("SectorCount", v) }
func (r RadarConfiguration) SetSectorOffset(v int32) error { return r.SetField("SectorOffset", v) }
func (r RadarConfiguration) SetImageColor(v uint32) error  { return r.SetField("ImageColor", v) }
func (r RadarConfiguration) SetImageSubstitutionColor(v *uint32) error {
	return r.SetField("ImageSubstitutionColor", v)
}
func (r RadarConfiguration) SetTransparentColor(v uint32) error {
	return r.SetField("TransparentColor", v)
}
func (r RadarConfiguration) SetImageScaleFactorX(v float64) error {
	return r.SetField("ImageScaleFactorX", v)
}
func (r RadarConfiguration) SetImageOffsetX(v float64) error { return r.SetField("ImageOffsetX", v) }
func (r RadarConfiguration) SetImageScaleFactorY(v float64) error {
	return r.SetField("ImageScaleFactorY", v)
}
func (r RadarConfiguration) SetImageOffsetY(v float64) error { return r.SetField("ImageOffsetY", v) }
func (r RadarConfiguration) SetRadarImageType(v RadarImageType) error {
	return r.SetField("RadarImageType", v)
}
func (r RadarConfiguration) SetTrackColor(v uint32) error  { return r.SetField("TrackColor", v) }
func (r RadarConfiguration) SetVectorColor(v uint32) error { return r.SetField("VectorColor", v) }
func (r RadarConfiguration) SetEnableNmea(v bool) error    { return r.SetField("EnableNmea", v) }
func (r RadarConfiguration) SetNmeaReceiverIPAddress(v string) error {
	return r.SetField("NmeaReceiverIPAddress", v)
}
func (r RadarConfiguration) SetNmeaReceiverPort(v int32) error {
	return r.SetField("NmeaReceiverPort", v)
}
func (r RadarConfiguration) SetNmeaReceiverSourceId(v string) error {
	return r.SetField("NmeaReceiverSourceId", v)
}
