// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/bureau-foundation/planwire/lib/ref"
)

// SignatureSize is the byte length of an event signature (Ed25519).
const SignatureSize = ed25519.SignatureSize

// Signature is an Ed25519 signature over an event's content ID,
// wire-encoded as 128 lowercase hex characters. The zero value means
// "unsigned".
type Signature [SignatureSize]byte

// String returns the lowercase hex encoding of the signature.
func (s Signature) String() string { return hex.EncodeToString(s[:]) }

// IsZero reports whether the Signature is the zero value (unsigned).
func (s Signature) IsZero() bool { return s == Signature{} }

// MarshalText implements encoding.TextMarshaler.
func (s Signature) MarshalText() ([]byte, error) {
	if s.IsZero() {
		return []byte{}, nil
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input
// produces the zero value (unsigned).
func (s *Signature) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*s = Signature{}
		return nil
	}
	if len(data) != SignatureSize*2 {
		return fmt.Errorf("signature must be %d hex characters, got %d", SignatureSize*2, len(data))
	}
	if _, err := hex.Decode(s[:], data); err != nil {
		return fmt.Errorf("signature is not valid hex: %w", err)
	}
	return nil
}

// Keys is an Ed25519 signing keypair. The public half doubles as the
// author identity on signed events.
type Keys struct {
	public  ref.PublicKey
	private ed25519.PrivateKey
}

// GenerateKeys creates a new random keypair.
func GenerateKeys() (*Keys, error) {
	public, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating Ed25519 keypair: %w", err)
	}
	pub, err := ref.PublicKeyFromBytes(public)
	if err != nil {
		return nil, err
	}
	return &Keys{public: pub, private: private}, nil
}

// KeysFromSeed derives a keypair from a 32-byte seed. Deterministic:
// the same seed always yields the same keypair. Useful for tests and
// for identities derived from stored secrets.
func KeysFromSeed(seed []byte) (*Keys, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed has %d bytes, want %d", len(seed), ed25519.SeedSize)
	}
	private := ed25519.NewKeyFromSeed(seed)
	pub, err := ref.PublicKeyFromBytes(private.Public().(ed25519.PublicKey))
	if err != nil {
		return nil, err
	}
	return &Keys{public: pub, private: private}, nil
}

// Public returns the public key (the author identity).
func (k *Keys) Public() ref.PublicKey { return k.public }

// sign produces the Ed25519 signature over the given message bytes.
func (k *Keys) sign(message []byte) Signature {
	var sig Signature
	copy(sig[:], ed25519.Sign(k.private, message))
	return sig
}
