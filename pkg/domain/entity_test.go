package domain

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewEntityDefaults(t *testing.T) {
	e := NewEntity(testRawMessageSchema)
	if e.ID() == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if e.Kind() != KindAisDeviceRawMessage || e.RowVersion() != 0 || e.Deleted() {
		t.Fatalf("unexpected header kind=%s version=%d deleted=%v", e.Kind(), e.RowVersion(), e.Deleted())
	}
	if v, ok := FieldValue[uint8](e, "Repeat"); !ok || v != 3 {
		t.Fatalf("expected coerced default 3, got %v %v", v, ok)
	}
	if v, _ := e.Value("Mmsi"); v != nil {
		t.Fatalf("nullable field should start nil, got %v", v)
	}
	if v, ok := FieldValue[string](e, "Message"); !ok || v != "" {
		t.Fatalf("expected empty string default")
	}
	if len(e.Dirty()) != 0 {
		t.Fatalf("fresh entity must be clean")
	}
	if NewEntity(testRawMessageSchema).ID() == e.ID() {
		t.Fatalf("ids must be unique")
	}
}

func TestSetFieldNoOpWriteGuard(t *testing.T) {
	e := NewEntity(testTrackValueSchema)
	pub := &recordingPublisher{}
	e.Attach(pub)

	mustSet(t, e, "Speed", 12.3)
	if len(pub.events) != 1 || !e.IsDirty("Speed") {
		t.Fatalf("expected one event and dirty Speed")
	}
	e.Stamp(1)
	if e.IsDirty("Speed") || e.RowVersion() != 1 {
		t.Fatalf("stamp must clear dirty set")
	}

	mustSet(t, e, "Speed", 12.3)
	if len(pub.events) != 1 || len(e.Dirty()) != 0 {
		t.Fatalf("same value must not publish or mark dirty")
	}

	mustSet(t, e, "Speed", 14.0)
	if len(pub.events) != 2 {
		t.Fatalf("expected second event")
	}
	ev := pub.events[1]
	if ev.Field != "Speed" || ev.Old != 12.3 || ev.New != 14.0 || ev.EntityID != e.ID() || ev.Kind != KindTrackValue {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestSetFieldTimeUsesInstantEquality(t *testing.T) {
	e := NewEntity(testTrackValueSchema)
	ts := fixedTime()
	mustSet(t, e, "Timestamp", ts)
	e.Stamp(1)
	oslo := time.FixedZone("CET", 3600)
	mustSet(t, e, "Timestamp", ts.In(oslo))
	if e.IsDirty("Timestamp") {
		t.Fatalf("same instant in another zone must be a no-op")
	}
	got, _ := FieldValue[time.Time](e, "Timestamp")
	if got.Location() != time.UTC {
		t.Fatalf("times are stored in UTC")
	}
}

func TestSetFieldNormalisesIntegerTypes(t *testing.T) {
	type trackFlags int32
	e := NewEntity(testTrackValueSchema)
	mustSet(t, e, "Flags", trackFlags(6))
	if v, ok := FieldValue[int32](e, "Flags"); !ok || v != 6 {
		t.Fatalf("expected int32 6, got %v", v)
	}
	e.Stamp(1)
	mustSet(t, e, "Flags", 6)
	if e.IsDirty("Flags") {
		t.Fatalf("int and named int with equal value must be a no-op")
	}
}

func TestSetFieldErrors(t *testing.T) {
	e := NewEntity(testRawMessageSchema)
	cases := []struct {
		name  string
		field string
		value any
	}{
		{"unknown field", "Nope", 1},
		{"wrong type", "Message", 42},
		{"overflow", "Repeat", 300},
		{"negative unsigned", "Repeat", -1},
		{"nil on non-nullable", "Message", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := e.SetField(tc.field, tc.value)
			if !errors.Is(err, ErrInvalidField) {
				t.Fatalf("expected ErrInvalidField, got %v", err)
			}
			var fe FieldError
			if !errors.As(err, &fe) || fe.Field != tc.field {
				t.Fatalf("expected FieldError for %s, got %v", tc.field, err)
			}
		})
	}
	if len(e.Dirty()) != 0 {
		t.Fatalf("failed writes must not mark fields dirty")
	}
}

func TestNullableFieldTransitions(t *testing.T) {
	e := NewEntity(testRawMessageSchema)
	pub := &recordingPublisher{}
	e.Attach(pub)
	mustSet(t, e, "Mmsi", nil)
	if len(pub.events) != 0 {
		t.Fatalf("nil to nil is a no-op")
	}
	mmsi := int32(257123000)
	mustSet(t, e, "Mmsi", &mmsi)
	if v, ok := FieldValue[int32](e, "Mmsi"); !ok || v != mmsi {
		t.Fatalf("pointer value not dereferenced: %v", v)
	}
	var none *int32
	mustSet(t, e, "Mmsi", none)
	if v, _ := e.Value("Mmsi"); v != nil {
		t.Fatalf("nil pointer should clear the field")
	}
	if len(pub.events) != 2 {
		t.Fatalf("expected two events, got %d", len(pub.events))
	}
}

func TestBinaryReferenceEquality(t *testing.T) {
	e := NewEntity(testRawMessageSchema)
	pub := &recordingPublisher{}
	e.Attach(pub)
	buf := []byte{1, 2, 3}
	mustSet(t, e, "Payload", buf)
	mustSet(t, e, "Payload", buf)
	if len(pub.events) != 1 {
		t.Fatalf("same buffer must be a no-op, got %d events", len(pub.events))
	}
	mustSet(t, e, "Payload", []byte{1, 2, 3})
	if len(pub.events) != 2 {
		t.Fatalf("content-equal distinct buffer must count as a change")
	}
}

func TestBinaryContentEquality(t *testing.T) {
	e := NewEntity(testRawMessageSchema)
	e.SetBinaryEquality(BinaryContent)
	pub := &recordingPublisher{}
	e.Attach(pub)
	mustSet(t, e, "Payload", []byte{1, 2, 3})
	mustSet(t, e, "Payload", []byte{1, 2, 3})
	if len(pub.events) != 1 {
		t.Fatalf("content policy must ignore equal bytes, got %d events", len(pub.events))
	}
	mustSet(t, e, "Payload", []byte{})
	if len(pub.events) != 2 {
		t.Fatalf("nil and empty buffers differ")
	}
}

func TestParseBinaryEquality(t *testing.T) {
	for in, want := range map[string]BinaryEquality{"": BinaryReference, "reference": BinaryReference, "content": BinaryContent} {
		got, err := ParseBinaryEquality(in)
		if err != nil || got != want {
			t.Fatalf("ParseBinaryEquality(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseBinaryEquality("deep"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}

func TestCloneIsDeepAndDetached(t *testing.T) {
	e := NewEntity(testRawMessageSchema)
	e.Attach(&recordingPublisher{})
	buf := []byte{9, 9}
	mustSet(t, e, "Payload", buf)
	c := e.Clone()
	if c.Publisher() != nil {
		t.Fatalf("clone must not keep the publisher")
	}
	buf[0] = 1
	got, _ := FieldValue[[]byte](c, "Payload")
	if got[0] != 9 {
		t.Fatalf("clone shares buffer with caller")
	}
	if !c.IsDirty("Payload") {
		t.Fatalf("clone should carry the dirty set")
	}
	if c.EqualFields(e) {
		t.Fatalf("caller buffer edits are visible on the original only")
	}
}

func TestMergeCopiesDirtyFields(t *testing.T) {
	canonical := NewEntity(testTrackValueSchema)
	mustSet(t, canonical, "Latitude", 59.9)
	canonical.Stamp(1)

	edit := canonical.Clone()
	mustSet(t, edit, "Latitude", 59.9)
	mustSet(t, edit, "Speed", 14.0)

	target := canonical.Clone()
	changed, err := target.Merge(edit)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(changed) != 1 || changed[0] != "Speed" {
		t.Fatalf("expected only Speed, got %v", changed)
	}
	if v, _ := FieldValue[float64](target, "Speed"); v != 14.0 {
		t.Fatalf("merged value missing")
	}

	other := NewEntity(testTrackValueSchema)
	if _, err := target.Merge(other); !errors.Is(err, ErrInvalidEntity) {
		t.Fatalf("expected invalid entity for foreign merge, got %v", err)
	}
}

func TestTombstoneKeepsIdentity(t *testing.T) {
	e := NewEntity(testTrackValueSchema)
	mustSet(t, e, "Speed", 3.0)
	e.Stamp(7)
	ts := e.Tombstone()
	if !ts.Deleted() || ts.ID() != e.ID() || ts.RowVersion() != 7 || ts.Kind() != e.Kind() {
		t.Fatalf("unexpected tombstone %+v", ts)
	}
	if v, _ := FieldValue[float64](ts, "Speed"); v != 0 {
		t.Fatalf("tombstones carry defaults only")
	}
}

func TestSchemaExtendOverridesDefaults(t *testing.T) {
	base := NewSchema(KindZone,
		Field{Name: "Name", Type: FieldString},
		Field{Name: "AlarmType", Type: FieldEnum, Default: 0},
	)
	circ := base.Extend(KindCircularZone,
		Field{Name: "Radius", Type: FieldFloat64},
		Field{Name: "AlarmType", Type: FieldEnum, Default: 1},
	)
	if circ.Len() != 3 || circ.Kind() != KindCircularZone {
		t.Fatalf("unexpected schema len=%d kind=%s", circ.Len(), circ.Kind())
	}
	f, ok := circ.Lookup("AlarmType")
	if !ok || f.Default != int32(1) {
		t.Fatalf("override not applied: %+v", f)
	}
	if fields := circ.Fields(); fields[1].Name != "AlarmType" {
		t.Fatalf("override must keep inherited position, got %v", fields)
	}
	if base.Len() != 2 {
		t.Fatalf("base schema must be untouched")
	}
}

func TestNewSchemaPanicsOnBadDefault(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewSchema(KindZone, Field{Name: "Name", Type: FieldString, Default: 12})
}

func TestSetFieldRejectsNonFiniteFloats(t *testing.T) {
	e := NewEntity(testTrackValueSchema)
	mustSet(t, e, "Speed", 12.5)
	e.Stamp(1)

	for _, v := range []any{math.NaN(), math.Inf(1), math.Inf(-1), float32(math.Inf(-1))} {
		err := e.SetField("Speed", v)
		if !errors.Is(err, ErrInvalidField) {
			t.Fatalf("SetField(%v): expected invalid field, got %v", v, err)
		}
	}
	if got, _ := FieldValue[float64](e, "Speed"); got != 12.5 {
		t.Fatalf("rejected write changed the value to %v", got)
	}
	if len(e.Dirty()) != 0 {
		t.Fatalf("rejected write marked fields dirty: %v", e.Dirty())
	}
	if _, err := json.Marshal(e); err != nil {
		t.Fatalf("entity must stay encodable: %v", err)
	}
}
