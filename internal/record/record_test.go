package record_test

import (
	"encoding/json"
	"testing"
	"time"

	"mypantry/internal/record"
)

func TestFieldValueAccessors(t *testing.T) {
	when := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	t.Run("matching kind", func(t *testing.T) {
		if v, ok := record.String("milk").AsString(); !ok || v != "milk" {
			t.Errorf("AsString = %q, %v", v, ok)
		}
		if v, ok := record.Int(42).AsInt(); !ok || v != 42 {
			t.Errorf("AsInt = %d, %v", v, ok)
		}
		if v, ok := record.Bool(true).AsBool(); !ok || !v {
			t.Errorf("AsBool = %v, %v", v, ok)
		}
		if v, ok := record.Time(when).AsTime(); !ok || !v.Equal(when) {
			t.Errorf("AsTime = %v, %v", v, ok)
		}
		if v, ok := record.Reference("rec-1").AsReference(); !ok || v != "rec-1" {
			t.Errorf("AsReference = %q, %v", v, ok)
		}
	})

	t.Run("mismatched kind fails instead of coercing", func(t *testing.T) {
		if _, ok := record.Int(7).AsString(); ok {
			t.Error("int read as string")
		}
		if _, ok := record.String("7").AsInt(); ok {
			t.Error("string read as int")
		}
		if _, ok := record.String("rec-1").AsReference(); ok {
			t.Error("string read as reference")
		}
		if _, ok := record.Reference("rec-1").AsString(); ok {
			t.Error("reference read as string")
		}
	})

	t.Run("time normalized to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+7", 7*3600)
		v, _ := record.Time(when.In(loc)).AsTime()
		if v.Location() != time.UTC {
			t.Errorf("expected UTC, got %v", v.Location())
		}
		if !v.Equal(when) {
			t.Errorf("instant changed: %v != %v", v, when)
		}
	})
}

func TestFieldValueJSON(t *testing.T) {
	when := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("round trip keeps kind and value", func(t *testing.T) {
		values := map[string]record.FieldValue{
			"s": record.String("milk"),
			"i": record.Int(-3),
			"b": record.Bool(false),
			"t": record.Time(when),
			"r": record.Reference("share-1"),
		}
		for name, v := range values {
			raw, err := json.Marshal(v)
			if err != nil {
				t.Fatalf("%s: marshal: %v", name, err)
			}
			var back record.FieldValue
			if err := json.Unmarshal(raw, &back); err != nil {
				t.Fatalf("%s: unmarshal: %v", name, err)
			}
			if back.Kind() != v.Kind() {
				t.Errorf("%s: kind changed: %v -> %v", name, v.Kind(), back.Kind())
			}
			if name == "t" {
				got, _ := back.AsTime()
				if !got.Equal(when) {
					t.Errorf("time changed: %v", got)
				}
			} else if back != v {
				t.Errorf("%s: value changed: %+v -> %+v", name, v, back)
			}
		}
	})

	t.Run("wire shape is tagged", func(t *testing.T) {
		raw, err := json.Marshal(record.Int(9))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var wire map[string]any
		if err := json.Unmarshal(raw, &wire); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if wire["type"] != "int" {
			t.Errorf("type tag = %v", wire["type"])
		}
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		var v record.FieldValue
		if err := json.Unmarshal([]byte(`{"type":"float","value":1.5}`), &v); err == nil {
			t.Error("expected error for unknown kind")
		}
	})

	t.Run("mismatched payload rejected", func(t *testing.T) {
		var v record.FieldValue
		if err := json.Unmarshal([]byte(`{"type":"int","value":"seven"}`), &v); err == nil {
			t.Error("expected error for string payload in int field")
		}
	})
}

func TestFieldsOptionalPresence(t *testing.T) {
	fields := make(record.Fields)
	fields.SetOptionalString("note", nil)

	t.Run("unset optional stays absent", func(t *testing.T) {
		if _, present := fields["note"]; present {
			t.Error("nil optional was stored")
		}
		v, ok := fields.GetOptionalString("note")
		if !ok || v != nil {
			t.Errorf("GetOptionalString = %v, %v", v, ok)
		}
	})

	t.Run("set optional round trips", func(t *testing.T) {
		note := "expires soon"
		fields.SetOptionalString("note", &note)
		v, ok := fields.GetOptionalString("note")
		if !ok || v == nil || *v != note {
			t.Errorf("GetOptionalString = %v, %v", v, ok)
		}
	})

	t.Run("mistyped optional reports failure not absence", func(t *testing.T) {
		fields.SetInt("note", 1)
		if _, ok := fields.GetOptionalString("note"); ok {
			t.Error("mistyped field read as ok")
		}
	})

	t.Run("empty string is distinct from absent", func(t *testing.T) {
		f := make(record.Fields)
		empty := ""
		f.SetOptionalString("barcode", &empty)
		v, ok := f.GetOptionalString("barcode")
		if !ok || v == nil || *v != "" {
			t.Errorf("present empty string lost: %v, %v", v, ok)
		}
	})
}

func TestRecordClone(t *testing.T) {
	rec := record.Record{
		Type:   "Pantry",
		ID:     "p1",
		Fields: record.Fields{"name": record.String("Kitchen")},
	}
	clone := rec.Clone()
	clone.Fields.SetString("name", "Garage")

	if v, _ := rec.Fields.GetString("name"); v != "Kitchen" {
		t.Errorf("clone mutated original: %q", v)
	}
}

func TestRecordJSON(t *testing.T) {
	rec := record.Record{
		Type: "Item",
		ID:   "i1",
		Zone: record.ZoneID("SharedPantry-p1"),
		Fields: record.Fields{
			"name":     record.String("Milk"),
			"quantity": record.Int(2),
		},
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back record.Record
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Type != rec.Type || back.ID != rec.ID || back.Zone != rec.Zone {
		t.Errorf("envelope changed: %+v", back)
	}
	if v, _ := back.Fields.GetInt("quantity"); v != 2 {
		t.Errorf("quantity = %d", v)
	}
}
