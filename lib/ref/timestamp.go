// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strconv"
	"time"
)

// Timestamp is a unix timestamp in whole seconds, wire-encoded as an
// unsigned decimal string. Sub-second precision does not exist in the
// protocol and is never carried.
//
// Timestamp is an immutable, comparable value type. The zero value
// means "unset" and is never emitted on the wire; use IsZero to check.
type Timestamp struct {
	secs uint64
}

// UnixTimestamp wraps a seconds-since-epoch value.
func UnixTimestamp(secs uint64) Timestamp {
	return Timestamp{secs: secs}
}

// ParseTimestamp parses the wire form: an unsigned decimal count of
// seconds since the unix epoch.
func ParseTimestamp(raw string) (Timestamp, error) {
	secs, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}
	return Timestamp{secs: secs}, nil
}

// TimestampNow returns the current time truncated to whole seconds.
func TimestampNow() Timestamp {
	return Timestamp{secs: uint64(time.Now().Unix())}
}

// Unix returns the seconds-since-epoch value.
func (t Timestamp) Unix() uint64 { return t.secs }

// Time converts to a time.Time in UTC.
func (t Timestamp) Time() time.Time { return time.Unix(int64(t.secs), 0).UTC() }

// String returns the wire form: the unsigned decimal seconds value.
func (t Timestamp) String() string { return strconv.FormatUint(t.secs, 10) }

// IsZero reports whether the Timestamp is the zero value (unset).
func (t Timestamp) IsZero() bool { return t.secs == 0 }

// MarshalText implements encoding.TextMarshaler.
func (t Timestamp) MarshalText() ([]byte, error) {
	if t.IsZero() {
		return []byte{}, nil
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input
// produces the zero value (unset timestamp).
func (t *Timestamp) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*t = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
