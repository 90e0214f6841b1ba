package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type entityJSON struct {
	ID         uuid.UUID                  `json:"id"`
	Kind       Kind                       `json:"kind"`
	RowVersion uint64                     `json:"row_version"`
	Deleted    bool                       `json:"deleted,omitempty"`
	Fields     map[string]json.RawMessage `json:"fields,omitempty"`
}

// PeekKind reads only the kind tag of an encoded entity.
func PeekKind(data []byte) (Kind, error) {
	var head struct {
		Kind *Kind `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return KindUnknown, errors.Wrap(err, "decode entity header")
	}
	if head.Kind == nil {
		return KindUnknown, errors.New("decode entity header: missing kind")
	}
	return *head.Kind, nil
}

// MarshalJSON encodes the entity with its kind tag and field table. Tombstones
// carry no fields.
func (e *Entity) MarshalJSON() ([]byte, error) {
	out := entityJSON{
		ID:         e.id,
		Kind:       e.Kind(),
		RowVersion: e.rowVersion,
		Deleted:    e.deleted,
	}
	if !e.deleted {
		out.Fields = make(map[string]json.RawMessage, len(e.values))
		for i, f := range e.schema.fields {
			raw, err := json.Marshal(e.values[i])
			if err != nil {
				return nil, errors.Wrapf(err, "encode %s.%s", e.Kind(), f.Name)
			}
			out.Fields[f.Name] = raw
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores an entity created for the encoded kind, usually by the
// kind registry. Unknown field names are ignored and missing ones keep their
// defaults. The result is clean and has no publisher events.
func (e *Entity) UnmarshalJSON(data []byte) error {
	if e.schema == nil {
		return errors.New("decode entity: no schema, decode through the kind registry")
	}
	var in entityJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return errors.Wrap(err, "decode entity")
	}
	if in.Kind != e.schema.kind {
		return InvalidEntityError{ID: in.ID, Reason: fmt.Sprintf("encoded kind %s does not match %s", in.Kind, e.schema.kind)}
	}
	e.id = in.ID
	e.rowVersion = in.RowVersion
	e.deleted = in.Deleted
	clear(e.dirty)
	for i, f := range e.schema.fields {
		raw, ok := in.Fields[f.Name]
		if !ok {
			e.values[i] = copyValue(f.Default)
			continue
		}
		v, err := decodeValue(f, raw)
		if err != nil {
			return FieldError{Kind: e.schema.kind, Field: f.Name, Reason: err.Error()}
		}
		e.values[i] = v
	}
	return nil
}

func decodeValue(f Field, raw json.RawMessage) (any, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		if f.Nullable {
			return nil, nil
		}
		if f.Type == FieldBinary {
			return []byte(nil), nil
		}
		return nil, errors.New("null for non-nullable field")
	}
	switch f.Type {
	case FieldBool:
		var b bool
		if err := unmarshalInto(raw, &b); err != nil {
			return nil, err
		}
		return b, nil
	case FieldByte, FieldInt16, FieldInt32, FieldInt64, FieldUInt32, FieldEnum:
		var n int64
		if err := unmarshalInto(raw, &n); err != nil {
			return nil, err
		}
		return coerce(f.Type, n)
	case FieldFloat64:
		var x float64
		if err := unmarshalInto(raw, &x); err != nil {
			return nil, err
		}
		return x, nil
	case FieldString:
		var s string
		if err := unmarshalInto(raw, &s); err != nil {
			return nil, err
		}
		return s, nil
	case FieldTime:
		var t time.Time
		if err := unmarshalInto(raw, &t); err != nil {
			return nil, err
		}
		return t.UTC(), nil
	case FieldDuration:
		var n int64
		if err := unmarshalInto(raw, &n); err != nil {
			return nil, err
		}
		return time.Duration(n), nil
	case FieldGUID:
		var id uuid.UUID
		if err := unmarshalInto(raw, &id); err != nil {
			return nil, err
		}
		return id, nil
	case FieldBinary:
		var b []byte
		if err := unmarshalInto(raw, &b); err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, errors.Newf("unsupported field type %s", f.Type)
	}
}

func unmarshalInto(raw json.RawMessage, dst any) error {
	return json.Unmarshal(raw, dst)
}
