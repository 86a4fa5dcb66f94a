// Package payload encodes drag-and-drop move intents as a small versioned
// JSON envelope. The envelope carries the originating session id so drops
// from a stale or foreign session can be rejected at the single decode
// chokepoint instead of by every drop target.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Version is the only envelope version this build understands.
const Version = 1

// Envelope kinds for the built-in move intents.
const (
	KindEntryMove      = "entry_move"
	KindOccurrenceMove = "occurrence_move"
)

// ErrInvalidPayload marks any decode rejection: malformed JSON, version or
// session mismatch, or a structurally bad envelope.
var ErrInvalidPayload = errors.New("invalid payload")

// Envelope is the wire form of a move intent.
type Envelope struct {
	V       int            `json:"v"`
	Session string         `json:"session"`
	Kind    string         `json:"kind"`
	Data    map[string]any `json:"data"`
}

// NewSessionID mints the per-process session id embedded in every payload.
func NewSessionID() string {
	return uuid.NewString()
}

// Encode serializes a move intent for the given session.
func Encode(session, kind string, data map[string]any) (string, error) {
	if strings.TrimSpace(session) == "" {
		return "", fmt.Errorf("encode payload: session is required")
	}
	if strings.TrimSpace(kind) == "" {
		return "", fmt.Errorf("encode payload: kind is required")
	}
	if data == nil {
		data = map[string]any{}
	}
	raw, err := json.Marshal(Envelope{V: Version, Session: session, Kind: kind, Data: data})
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	return string(raw), nil
}

// Decode is the single canonical payload parser. It rejects anything that
// is not a well-formed current-version envelope from wantSession.
func Decode(raw, wantSession string) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if env.V != Version {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrInvalidPayload, env.V, Version)
	}
	if env.Session == "" {
		return nil, fmt.Errorf("%w: missing session", ErrInvalidPayload)
	}
	if env.Session != wantSession {
		return nil, fmt.Errorf("%w: session mismatch", ErrInvalidPayload)
	}
	if strings.TrimSpace(env.Kind) == "" {
		return nil, fmt.Errorf("%w: missing kind", ErrInvalidPayload)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%w: missing data", ErrInvalidPayload)
	}
	return &env, nil
}

// Int64 reads an integer field from the envelope data. JSON numbers arrive
// as float64, so this is the one place that conversion lives.
func (e *Envelope) Int64(key string) (int64, bool) {
	v, ok := e.Data[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// EncodeEntryMove builds the payload for dragging a scheduled entry.
func EncodeEntryMove(session string, entryID int64) (string, error) {
	return Encode(session, KindEntryMove, map[string]any{"entry_id": entryID})
}

// EncodeOccurrenceMove builds the payload for dragging a task occurrence.
func EncodeOccurrenceMove(session string, occurrenceID int64) (string, error) {
	return Encode(session, KindOccurrenceMove, map[string]any{"occurrence_id": occurrenceID})
}
