// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"encoding/hex"
	"fmt"
)

// EventIDSize is the byte length of an event content ID (BLAKE3).
const EventIDSize = 32

// EventID is a validated event content ID: the 32-byte hash of the
// event's canonical byte form, wire-encoded as 64 lowercase hex
// characters. Event IDs are computed, never chosen, so this type only
// validates shape — whether the ID matches the event it claims to name
// is checked by event verification, not here.
//
// EventID is an immutable, comparable value type. The zero value is
// not valid; use IsZero to check.
type EventID struct {
	id string
}

// ParseEventID validates and wraps a hex-encoded event ID string.
// Returns an error if the string is not exactly 64 hex characters.
// Mixed-case input is canonicalized to lowercase.
func ParseEventID(raw string) (EventID, error) {
	if len(raw) != EventIDSize*2 {
		return EventID{}, fmt.Errorf("event ID must be %d hex characters, got %d: %q", EventIDSize*2, len(raw), raw)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return EventID{}, fmt.Errorf("event ID is not valid hex: %q", raw)
	}
	return EventID{id: hex.EncodeToString(b)}, nil
}

// MustParseEventID is like ParseEventID but panics on error. Use in
// tests and static initialization where the input is known-valid.
func MustParseEventID(raw string) EventID {
	e, err := ParseEventID(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseEventID(%q): %v", raw, err))
	}
	return e
}

// EventIDFromHash wraps a computed 32-byte hash as an EventID.
func EventIDFromHash(h [EventIDSize]byte) EventID {
	return EventID{id: hex.EncodeToString(h[:])}
}

// String returns the lowercase hex encoding of the ID.
func (e EventID) String() string { return e.id }

// IsZero reports whether the EventID is the zero value (uninitialized).
func (e EventID) IsZero() bool { return e.id == "" }

// MarshalText implements encoding.TextMarshaler.
func (e EventID) MarshalText() ([]byte, error) {
	return []byte(e.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input
// produces the zero value (unset ID).
func (e *EventID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*e = EventID{}
		return nil
	}
	parsed, err := ParseEventID(string(data))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
