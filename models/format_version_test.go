package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFormatVersion_StringForm(t *testing.T) {
	var v FormatVersion
	if err := json.Unmarshal([]byte(`"2"`), &v); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if !v.IsSet() {
		t.Error("Expected version to be set")
	}

	if v.IsInt() {
		t.Error("Expected string form, got integer form")
	}

	if v.String() != "2" {
		t.Errorf("Expected '2', got '%s'", v.String())
	}

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	if string(data) != `"2"` {
		t.Errorf("Expected string form to survive round trip, got %s", data)
	}
}

func TestFormatVersion_IntForm(t *testing.T) {
	var v FormatVersion
	if err := json.Unmarshal([]byte(`2`), &v); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if !v.IsInt() {
		t.Error("Expected integer form")
	}

	n, ok := v.Int()
	if !ok || n != 2 {
		t.Errorf("Expected 2, got %d (ok=%v)", n, ok)
	}

	if v.String() != "2" {
		t.Errorf("Expected '2', got '%s'", v.String())
	}

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	if string(data) != `2` {
		t.Errorf("Expected integer form to survive round trip, got %s", data)
	}
}

func TestFormatVersion_RejectsOtherShapes(t *testing.T) {
	for _, raw := range []string{`2.5`, `true`, `[2]`, `{"v": 2}`} {
		var v FormatVersion
		err := json.Unmarshal([]byte(raw), &v)
		if err == nil {
			t.Errorf("Expected %s to be rejected", raw)
			continue
		}

		if !errors.Is(err, ErrInvalidFormatVersion) {
			t.Errorf("Expected ErrInvalidFormatVersion for %s, got %v", raw, err)
		}
	}
}

func TestFormatVersion_Null(t *testing.T) {
	var v FormatVersion
	if err := json.Unmarshal([]byte(`null`), &v); err != nil {
		t.Fatalf("Failed to unmarshal null: %v", err)
	}

	if v.IsSet() {
		t.Error("Expected null to leave the version unset")
	}
}

func TestFormatVersion_Constructors(t *testing.T) {
	s := StringFormatVersion("1.0")
	if s.IsInt() || s.String() != "1.0" {
		t.Errorf("Unexpected string constructor result: %+v", s)
	}

	i := IntFormatVersion(3)
	if !i.IsInt() {
		t.Error("Expected integer form")
	}

	if n, _ := i.Int(); n != 3 {
		t.Errorf("Expected 3, got %d", n)
	}
}
