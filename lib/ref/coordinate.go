// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strings"
)

// Coordinate is a compact reference naming another protocol object by
// kind, author, and identifier. The wire form is
// "kind:pubkey:identifier", e.g.
// "35001:b3e392...4f87:333e500a-7d80-4e7b-beb1-ad1956a6150a".
// The identifier may itself contain ':' characters; only the first two
// separators are structural.
//
// Coordinate is an immutable, comparable value type. The zero value is
// not valid; use IsZero to check.
type Coordinate struct {
	kind       Kind
	author     PublicKey
	identifier string
}

// NewCoordinate builds a coordinate from its parts.
func NewCoordinate(kind Kind, author PublicKey, identifier string) Coordinate {
	return Coordinate{kind: kind, author: author, identifier: identifier}
}

// ParseCoordinate parses the "kind:pubkey:identifier" wire form.
// Returns an error if either structural separator is missing, the kind
// is not a decimal number, or the pubkey is not 64 hex characters.
func ParseCoordinate(raw string) (Coordinate, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 {
		return Coordinate{}, fmt.Errorf("coordinate must have form kind:pubkey:identifier: %q", raw)
	}
	kind, err := ParseKind(parts[0])
	if err != nil {
		return Coordinate{}, fmt.Errorf("coordinate %q: %w", raw, err)
	}
	author, err := ParsePublicKey(parts[1])
	if err != nil {
		return Coordinate{}, fmt.Errorf("coordinate %q: %w", raw, err)
	}
	return Coordinate{kind: kind, author: author, identifier: parts[2]}, nil
}

// MustParseCoordinate is like ParseCoordinate but panics on error. Use
// in tests and static initialization where the input is known-valid.
func MustParseCoordinate(raw string) Coordinate {
	c, err := ParseCoordinate(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseCoordinate(%q): %v", raw, err))
	}
	return c
}

// Kind returns the kind of the referenced object.
func (c Coordinate) Kind() Kind { return c.kind }

// Author returns the public key of the referenced object's author.
func (c Coordinate) Author() PublicKey { return c.author }

// Identifier returns the referenced object's stable identifier (its
// "d" tag value).
func (c Coordinate) Identifier() string { return c.identifier }

// String returns the "kind:pubkey:identifier" wire form.
func (c Coordinate) String() string {
	return c.kind.String() + ":" + c.author.String() + ":" + c.identifier
}

// IsZero reports whether the Coordinate is the zero value (uninitialized).
func (c Coordinate) IsZero() bool {
	return c.kind == 0 && c.author.IsZero() && c.identifier == ""
}

// MarshalText implements encoding.TextMarshaler.
func (c Coordinate) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return []byte{}, nil
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input
// produces the zero value (unset coordinate).
func (c *Coordinate) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*c = Coordinate{}
		return nil
	}
	parsed, err := ParseCoordinate(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
