// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"encoding/hex"
	"fmt"
)

// PublicKeySize is the byte length of a protocol public key (Ed25519).
const PublicKeySize = 32

// PublicKey is a validated 32-byte public key identifying an event
// author or a referenced user. The wire form is 64 lowercase hex
// characters; parsing accepts mixed case and canonicalizes.
//
// PublicKey is an immutable, comparable value type. The zero value is
// not valid; use IsZero to check.
type PublicKey struct {
	k [PublicKeySize]byte
}

// ParsePublicKey validates and decodes a hex-encoded public key.
// Returns an error if the string is not exactly 64 hex characters.
func ParsePublicKey(raw string) (PublicKey, error) {
	if len(raw) != PublicKeySize*2 {
		return PublicKey{}, fmt.Errorf("public key must be %d hex characters, got %d: %q", PublicKeySize*2, len(raw), raw)
	}
	var p PublicKey
	if _, err := hex.Decode(p.k[:], []byte(raw)); err != nil {
		return PublicKey{}, fmt.Errorf("public key is not valid hex: %q", raw)
	}
	return p, nil
}

// MustParsePublicKey is like ParsePublicKey but panics on error. Use in
// tests and static initialization where the input is known-valid.
func MustParsePublicKey(raw string) PublicKey {
	p, err := ParsePublicKey(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParsePublicKey(%q): %v", raw, err))
	}
	return p
}

// PublicKeyFromBytes wraps a raw 32-byte key. Returns an error if the
// slice has the wrong length.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != PublicKeySize {
		return PublicKey{}, fmt.Errorf("public key has %d bytes, want %d", len(b), PublicKeySize)
	}
	var p PublicKey
	copy(p.k[:], b)
	return p, nil
}

// String returns the lowercase hex encoding of the key.
func (p PublicKey) String() string { return hex.EncodeToString(p.k[:]) }

// Bytes returns a copy of the raw 32-byte key.
func (p PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeySize)
	copy(b, p.k[:])
	return b
}

// IsZero reports whether the PublicKey is the zero value (uninitialized).
func (p PublicKey) IsZero() bool { return p.k == [PublicKeySize]byte{} }

// MarshalText implements encoding.TextMarshaler.
func (p PublicKey) MarshalText() ([]byte, error) {
	if p.IsZero() {
		return []byte{}, nil
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input
// produces the zero value (unset key).
func (p *PublicKey) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*p = PublicKey{}
		return nil
	}
	parsed, err := ParsePublicKey(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
