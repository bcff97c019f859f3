package model

import (
	"encoding/json"
	"testing"
)

func TestOptionalUnmarshal(t *testing.T) {
	type payload struct {
		Tonalidade Optional[string] `json:"tonalidade"`
		BPM        Optional[int]    `json:"bpm"`
	}

	t.Run("campo ausente", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if p.Tonalidade.Set || p.BPM.Set {
			t.Fatalf("absent fields must not be Set: %+v", p)
		}
	})

	t.Run("null explícito", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"tonalidade":null,"bpm":null}`), &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !p.Tonalidade.Set || p.Tonalidade.Valid {
			t.Fatalf("null must be Set and not Valid: %+v", p.Tonalidade)
		}
		if p.BPM.Ptr() != nil {
			t.Fatal("Ptr of null must be nil")
		}
	})

	t.Run("valor presente", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"tonalidade":"Em","bpm":72}`), &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !p.Tonalidade.Set || !p.Tonalidade.Valid || p.Tonalidade.Value != "Em" {
			t.Fatalf("unexpected tonalidade: %+v", p.Tonalidade)
		}
		if got := p.BPM.Ptr(); got == nil || *got != 72 {
			t.Fatalf("unexpected bpm: %v", got)
		}
	})

	t.Run("tipo errado", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"bpm":"rápido"}`), &p); err == nil {
			t.Fatal("expected type error")
		}
	})
}

func TestOptionalMarshal(t *testing.T) {
	raw, err := json.Marshal(Some("G"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"G"` {
		t.Fatalf("expected \"G\", got %s", raw)
	}

	raw, err = json.Marshal(Null[string]())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "null" {
		t.Fatalf("expected null, got %s", raw)
	}
}
