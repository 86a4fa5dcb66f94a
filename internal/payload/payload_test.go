package payload

import (
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	session := NewSessionID()

	raw, err := EncodeEntryMove(session, 42)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	env, err := Decode(raw, session)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if env.Kind != KindEntryMove {
		t.Errorf("Expected kind %q, got %q", KindEntryMove, env.Kind)
	}
	id, ok := env.Int64("entry_id")
	if !ok || id != 42 {
		t.Errorf("Expected entry_id 42, got %d (ok=%v)", id, ok)
	}
}

func TestDecodeRejections(t *testing.T) {
	session := NewSessionID()

	cases := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{"v": 1,`},
		{"wrong version", `{"v": 2, "session": "` + session + `", "kind": "entry_move", "data": {}}`},
		{"missing session", `{"v": 1, "kind": "entry_move", "data": {}}`},
		{"foreign session", `{"v": 1, "session": "someone-else", "kind": "entry_move", "data": {}}`},
		{"missing kind", `{"v": 1, "session": "` + session + `", "data": {}}`},
		{"missing data", `{"v": 1, "session": "` + session + `", "kind": "entry_move"}`},
		{"non-object data", `{"v": 1, "session": "` + session + `", "kind": "entry_move", "data": [1]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(tc.raw, session); !errors.Is(err, ErrInvalidPayload) {
				t.Errorf("Expected ErrInvalidPayload, got %v", err)
			}
		})
	}
}

func TestEncodeRequiresSessionAndKind(t *testing.T) {
	if _, err := Encode("", "entry_move", nil); err == nil {
		t.Error("Expected error for empty session")
	}
	if _, err := Encode(NewSessionID(), "  ", nil); err == nil {
		t.Error("Expected error for empty kind")
	}
}

func TestInt64Access(t *testing.T) {
	session := NewSessionID()
	raw, _ := EncodeOccurrenceMove(session, 7)
	env, err := Decode(raw, session)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if id, ok := env.Int64("occurrence_id"); !ok || id != 7 {
		t.Errorf("Expected occurrence_id 7, got %d (ok=%v)", id, ok)
	}
	if _, ok := env.Int64("absent"); ok {
		t.Error("Absent key should not resolve")
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	if NewSessionID() == NewSessionID() {
		t.Error("Session ids should be unique")
	}
}
