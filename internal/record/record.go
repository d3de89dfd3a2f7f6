package record

import (
	"encoding/json"
	"fmt"
	"time"
)

// ZoneID names a zone inside a store partition. The empty ZoneID means the
// partition's default (root) zone.
type ZoneID string

// DefaultZone is the root zone of a partition.
const DefaultZone ZoneID = ""

// Kind tags the scalar type carried by a FieldValue.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindTime
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// FieldValue is a single typed record field. Values are immutable once
// constructed; typed accessors fail rather than coerce.
type FieldValue struct {
	kind Kind
	s    string
	i    int64
	b    bool
	t    time.Time
}

// String builds a string field value.
func String(v string) FieldValue { return FieldValue{kind: KindString, s: v} }

// Int builds an integer field value.
func Int(v int64) FieldValue { return FieldValue{kind: KindInt, i: v} }

// Bool builds a boolean field value.
func Bool(v bool) FieldValue { return FieldValue{kind: KindBool, b: v} }

// Time builds a timestamp field value. Stored at UTC.
func Time(v time.Time) FieldValue { return FieldValue{kind: KindTime, t: v.UTC()} }

// Reference builds a field value pointing at another record by id.
func Reference(recordID string) FieldValue {
	return FieldValue{kind: KindReference, s: recordID}
}

// Kind returns the scalar kind of the value.
func (v FieldValue) Kind() Kind { return v.kind }

// AsString returns the string payload, false when the value is not a string.
func (v FieldValue) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsInt returns the integer payload, false when the value is not an int.
func (v FieldValue) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// AsBool returns the boolean payload, false when the value is not a bool.
func (v FieldValue) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsTime returns the timestamp payload, false when the value is not a time.
func (v FieldValue) AsTime() (time.Time, bool) {
	if v.kind != KindTime {
		return time.Time{}, false
	}
	return v.t, true
}

// AsReference returns the referenced record id, false when the value is not
// a reference.
func (v FieldValue) AsReference() (string, bool) {
	if v.kind != KindReference {
		return "", false
	}
	return v.s, true
}

type fieldValueJSON struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// MarshalJSON encodes the value as {"type": ..., "value": ...} so the wire
// shape stays self-describing.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	out := fieldValueJSON{Type: v.kind.String()}
	switch v.kind {
	case KindString, KindReference:
		out.Value = v.s
	case KindInt:
		out.Value = v.i
	case KindBool:
		out.Value = v.b
	case KindTime:
		out.Value = v.t.Format(time.RFC3339Nano)
	default:
		return nil, fmt.Errorf("record: cannot marshal field of kind %d", v.kind)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the tagged wire shape back into a typed value.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type  string          `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Type {
	case "string", "reference":
		var s string
		if err := json.Unmarshal(raw.Value, &s); err != nil {
			return fmt.Errorf("record: bad %s field: %w", raw.Type, err)
		}
		if raw.Type == "string" {
			*v = String(s)
		} else {
			*v = Reference(s)
		}
	case "int":
		var i int64
		if err := json.Unmarshal(raw.Value, &i); err != nil {
			return fmt.Errorf("record: bad int field: %w", err)
		}
		*v = Int(i)
	case "bool":
		var b bool
		if err := json.Unmarshal(raw.Value, &b); err != nil {
			return fmt.Errorf("record: bad bool field: %w", err)
		}
		*v = Bool(b)
	case "time":
		var s string
		if err := json.Unmarshal(raw.Value, &s); err != nil {
			return fmt.Errorf("record: bad time field: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("record: bad time field: %w", err)
		}
		*v = Time(t)
	default:
		return fmt.Errorf("record: unknown field kind %q", raw.Type)
	}
	return nil
}

// Fields maps field names to typed values. A missing key means the field was
// never set, which callers must keep distinguishable from a present zero
// value.
type Fields map[string]FieldValue

// SetString stores a string field.
func (f Fields) SetString(key, v string) { f[key] = String(v) }

// SetOptionalString stores a string field only when v is non-nil, so absence
// survives a round trip.
func (f Fields) SetOptionalString(key string, v *string) {
	if v != nil {
		f[key] = String(*v)
	}
}

// SetInt stores an integer field.
func (f Fields) SetInt(key string, v int64) { f[key] = Int(v) }

// SetOptionalInt stores an integer field only when v is non-nil.
func (f Fields) SetOptionalInt(key string, v *int) {
	if v != nil {
		f[key] = Int(int64(*v))
	}
}

// SetBool stores a boolean field.
func (f Fields) SetBool(key string, v bool) { f[key] = Bool(v) }

// SetTime stores a timestamp field.
func (f Fields) SetTime(key string, v time.Time) { f[key] = Time(v) }

// SetOptionalTime stores a timestamp field only when v is non-nil.
func (f Fields) SetOptionalTime(key string, v *time.Time) {
	if v != nil {
		f[key] = Time(*v)
	}
}

// SetReference stores a reference field.
func (f Fields) SetReference(key, recordID string) { f[key] = Reference(recordID) }

// GetString returns the named string field, false when absent or mistyped.
func (f Fields) GetString(key string) (string, bool) {
	v, ok := f[key]
	if !ok {
		return "", false
	}
	return v.AsString()
}

// GetOptionalString returns a pointer to the named string field, nil when
// the field is absent. A present but mistyped field reports !ok.
func (f Fields) GetOptionalString(key string) (*string, bool) {
	v, ok := f[key]
	if !ok {
		return nil, true
	}
	s, ok := v.AsString()
	if !ok {
		return nil, false
	}
	return &s, true
}

// GetInt returns the named integer field, false when absent or mistyped.
func (f Fields) GetInt(key string) (int64, bool) {
	v, ok := f[key]
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// GetOptionalInt returns a pointer to the named integer field, nil when
// absent.
func (f Fields) GetOptionalInt(key string) (*int, bool) {
	v, ok := f[key]
	if !ok {
		return nil, true
	}
	i, ok := v.AsInt()
	if !ok {
		return nil, false
	}
	out := int(i)
	return &out, true
}

// GetBool returns the named boolean field, false when absent or mistyped.
func (f Fields) GetBool(key string) (bool, bool) {
	v, ok := f[key]
	if !ok {
		return false, false
	}
	return v.AsBool()
}

// GetTime returns the named timestamp field, false when absent or mistyped.
func (f Fields) GetTime(key string) (time.Time, bool) {
	v, ok := f[key]
	if !ok {
		return time.Time{}, false
	}
	return v.AsTime()
}

// GetOptionalTime returns a pointer to the named timestamp field, nil when
// absent.
func (f Fields) GetOptionalTime(key string) (*time.Time, bool) {
	v, ok := f[key]
	if !ok {
		return nil, true
	}
	t, ok := v.AsTime()
	if !ok {
		return nil, false
	}
	return &t, true
}

// GetReference returns the named reference field, false when absent or
// mistyped.
func (f Fields) GetReference(key string) (string, bool) {
	v, ok := f[key]
	if !ok {
		return "", false
	}
	return v.AsReference()
}

// GetOptionalReference returns a pointer to the named reference field, nil
// when absent.
func (f Fields) GetOptionalReference(key string) (*string, bool) {
	v, ok := f[key]
	if !ok {
		return nil, true
	}
	r, ok := v.AsReference()
	if !ok {
		return nil, false
	}
	return &r, true
}

// Clone returns a shallow copy of the field map.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Record is the wire-level unit the store persists: a typed, identified bag
// of tagged fields living in some zone.
type Record struct {
	Type   string `json:"recordType"`
	ID     string `json:"recordId"`
	Zone   ZoneID `json:"zoneId,omitempty"`
	Fields Fields `json:"fields"`
}

// Clone returns a copy whose field map is independent of the original.
func (r Record) Clone() Record {
	r.Fields = r.Fields.Clone()
	return r
}
