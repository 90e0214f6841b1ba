package domain

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"time"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// FieldType enumerates the value types a field table can hold.
type FieldType uint8

const (
	FieldBool FieldType = iota + 1
	FieldByte
	FieldInt16
	FieldInt32
	FieldInt64
	FieldUInt32
	FieldFloat64
	FieldString
	FieldTime
	FieldDuration
	FieldGUID
	FieldBinary
	FieldEnum
)

var fieldTypeNames = map[FieldType]string{
	FieldBool:     "bool",
	FieldByte:     "byte",
	FieldInt16:    "int16",
	FieldInt32:    "int32",
	FieldInt64:    "int64",
	FieldUInt32:   "uint32",
	FieldFloat64:  "float64",
	FieldString:   "string",
	FieldTime:     "time",
	FieldDuration: "duration",
	FieldGUID:     "guid",
	FieldBinary:   "binary",
	FieldEnum:     "enum",
}

func (t FieldType) String() string {
	if n, ok := fieldTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("FieldType(%d)", uint8(t))
}

// BinaryEquality selects how Binary fields are compared by the no-op write guard.
type BinaryEquality uint8

const (
	// BinaryReference treats two buffers as equal only when they share the same
	// backing array and length.
	BinaryReference BinaryEquality = iota
	// BinaryContent compares buffer bytes.
	BinaryContent
)

// ParseBinaryEquality maps a configuration value to a policy.
func ParseBinaryEquality(s string) (BinaryEquality, error) {
	switch s {
	case "", "reference":
		return BinaryReference, nil
	case "content":
		return BinaryContent, nil
	default:
		return BinaryReference, errors.Newf("unknown binary equality %q", s)
	}
}

// Field describes one column of a kind's field table.
type Field struct {
	Name     string
	Type     FieldType
	Nullable bool
	// Default is the value a new entity starts with. Nil for nullable fields
	// means null; nil for non-nullable fields means the type's zero value.
	Default any
	// Enum names the enumeration for FieldEnum fields.
	Enum string
}

// Schema is the ordered field table of a kind.
type Schema struct {
	kind   Kind
	fields []Field
	index  map[string]int
}

// NewSchema builds a field table. Later fields with a repeated name override
// earlier ones in place, which lets derived kinds adjust inherited defaults.
func NewSchema(kind Kind, fields ...Field) *Schema {
	s := &Schema{kind: kind, index: make(map[string]int, len(fields))}
	for _, f := range fields {
		if f.Default == nil && !f.Nullable {
			f.Default = zeroValue(f.Type)
		}
		if f.Default != nil {
			v, err := coerce(f.Type, f.Default)
			if err != nil {
				panic(fmt.Sprintf("schema %s: field %s default: %v", kind, f.Name, err))
			}
			f.Default = v
		}
		if i, ok := s.index[f.Name]; ok {
			s.fields[i] = f
			continue
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s
}

// Extend derives a schema for kind that starts with every field of s.
func (s *Schema) Extend(kind Kind, fields ...Field) *Schema {
	all := make([]Field, 0, len(s.fields)+len(fields))
	all = append(all, s.fields...)
	all = append(all, fields...)
	return NewSchema(kind, all...)
}

// Kind returns the kind the schema describes.
func (s *Schema) Kind() Kind { return s.kind }

// Fields returns a copy of the field table.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Lookup returns the field descriptor for name.
func (s *Schema) Lookup(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

func zeroValue(t FieldType) any {
	switch t {
	case FieldBool:
		return false
	case FieldByte:
		return uint8(0)
	case FieldInt16:
		return int16(0)
	case FieldInt32, FieldEnum:
		return int32(0)
	case FieldInt64:
		return int64(0)
	case FieldUInt32:
		return uint32(0)
	case FieldFloat64:
		return float64(0)
	case FieldString:
		return ""
	case FieldTime:
		return time.Time{}
	case FieldDuration:
		return time.Duration(0)
	case FieldGUID:
		return uuid.Nil
	case FieldBinary:
		return []byte(nil)
	default:
		return nil
	}
}

// coerce converts v to the canonical Go representation of t. Pointers are
// dereferenced so typed wrappers can pass optional values directly.
func coerce(t FieldType, v any) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
		v = rv.Interface()
	}
	switch t {
	case FieldBool:
		if rv.Kind() == reflect.Bool {
			return rv.Bool(), nil
		}
	case FieldByte:
		if n, ok := asInt(rv); ok && n >= 0 && n <= math.MaxUint8 {
			return uint8(n), nil
		}
	case FieldInt16:
		if n, ok := asInt(rv); ok && n >= math.MinInt16 && n <= math.MaxInt16 {
			return int16(n), nil
		}
	case FieldInt32, FieldEnum:
		if n, ok := asInt(rv); ok && n >= math.MinInt32 && n <= math.MaxInt32 {
			return int32(n), nil
		}
	case FieldInt64:
		if n, ok := asInt(rv); ok {
			return n, nil
		}
	case FieldUInt32:
		if n, ok := asInt(rv); ok && n >= 0 && n <= math.MaxUint32 {
			return uint32(n), nil
		}
	case FieldFloat64:
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			x := rv.Float()
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, errors.Newf("non-finite value %v", x)
			}
			return x, nil
		}
	case FieldString:
		if rv.Kind() == reflect.String {
			return rv.String(), nil
		}
	case FieldTime:
		if tm, ok := v.(time.Time); ok {
			return tm.UTC(), nil
		}
	case FieldDuration:
		if d, ok := v.(time.Duration); ok {
			return d, nil
		}
	case FieldGUID:
		if id, ok := v.(uuid.UUID); ok {
			return id, nil
		}
	case FieldBinary:
		if b, ok := v.([]byte); ok {
			return b, nil
		}
	}
	return nil, errors.Newf("cannot use %T as %s", v, t)
}

func asInt(rv reflect.Value) (int64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	return 0, false
}

// valuesEqual is the no-op write guard comparison for already coerced values.
func valuesEqual(t FieldType, a, b any, mode BinaryEquality) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch t {
	case FieldTime:
		return a.(time.Time).Equal(b.(time.Time))
	case FieldBinary:
		x, y := a.([]byte), b.([]byte)
		if mode == BinaryContent {
			return (x == nil) == (y == nil) && bytes.Equal(x, y)
		}
		return len(x) == len(y) && unsafe.SliceData(x) == unsafe.SliceData(y)
	default:
		return a == b
	}
}

func copyValue(v any) any {
	if b, ok := v.([]byte); ok {
		return bytes.Clone(b)
	}
	return v
}
