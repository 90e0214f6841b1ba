package domain

import (
	"testing"
	"time"
)

var testTrackValueSchema = NewSchema(KindTrackValue,
	Field{Name: "Track", Type: FieldGUID},
	Field{Name: "Timestamp", Type: FieldTime},
	Field{Name: "Flags", Type: FieldEnum, Enum: "TrackFlags"},
	Field{Name: "Latitude", Type: FieldFloat64},
	Field{Name: "Longitude", Type: FieldFloat64},
	Field{Name: "Speed", Type: FieldFloat64},
	Field{Name: "Course", Type: FieldFloat64},
	Field{Name: "Heading", Type: FieldFloat64},
)

var testRawMessageSchema = NewSchema(KindAisDeviceRawMessage,
	Field{Name: "AisDevice", Type: FieldGUID},
	Field{Name: "Timestamp", Type: FieldTime},
	Field{Name: "IsSent", Type: FieldBool},
	Field{Name: "Message", Type: FieldString},
	Field{Name: "Payload", Type: FieldBinary},
	Field{Name: "Interval", Type: FieldDuration},
	Field{Name: "Repeat", Type: FieldByte, Default: 3},
	Field{Name: "Mmsi", Type: FieldInt32, Nullable: true},
)

type recordingPublisher struct {
	events []FieldChange
}

func (p *recordingPublisher) Publish(change FieldChange) {
	p.events = append(p.events, change)
}

func mustSet(t *testing.T, e *Entity, name string, value any) {
	t.Helper()
	if err := e.SetField(name, value); err != nil {
		t.Fatalf("set %s: %v", name, err)
	}
}

func fixedTime() time.Time {
	return time.Date(2024, 5, 17, 12, 30, 0, 123456789, time.UTC)
}
