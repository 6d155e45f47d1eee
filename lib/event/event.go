// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/planwire/lib/codec"
	"github.com/bureau-foundation/planwire/lib/ref"
)

// idDomainKey is the BLAKE3 key for event content IDs. Domain
// separation keeps event IDs from colliding with any other hash the
// protocol computes over the same bytes. The byte values are the ASCII
// encoding of the domain name, zero-padded to 32 bytes — readable in
// hex dumps without sacrificing any cryptographic property.
var idDomainKey = [32]byte{
	'p', 'l', 'a', 'n', 'w', 'i', 'r', 'e', '.', 'e', 'v', 'e', 'n', 't', '.',
	'i', 'd', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Event is a signed, authored protocol record: a numeric kind, a
// free-text content body, and an ordered tag list. Events are
// append-only — once signed, every field is fixed, and the ID binds
// them all.
type Event struct {
	// ID is the BLAKE3 content ID over the canonical CBOR form of
	// (author, created_at, kind, tags, content).
	ID ref.EventID `json:"id"`

	// Author is the public key that signed the event.
	Author ref.PublicKey `json:"author"`

	// CreatedAt is the author-asserted creation time.
	CreatedAt ref.Timestamp `json:"created_at"`

	// Kind is the protocol message kind.
	Kind ref.Kind `json:"kind"`

	// Tags is the ordered tag list.
	Tags Tags `json:"tags"`

	// Content is the free-text body.
	Content string `json:"content"`

	// Sig is the Ed25519 signature over ID.
	Sig Signature `json:"sig"`
}

// idPreimage is the canonical signing form. Field names are the CBOR
// map keys; changing any of them invalidates every existing event ID.
type idPreimage struct {
	Author    ref.PublicKey `cbor:"author"`
	CreatedAt uint64        `cbor:"created_at"`
	Kind      uint16        `cbor:"kind"`
	Tags      [][]string    `cbor:"tags"`
	Content   string        `cbor:"content"`
}

// computeID hashes the canonical CBOR form of the event's signed
// fields with the event-ID domain key.
func computeID(author ref.PublicKey, createdAt ref.Timestamp, kind ref.Kind, tags Tags, content string) ([32]byte, error) {
	data, err := codec.Marshal(idPreimage{
		Author:    author,
		CreatedAt: createdAt.Unix(),
		Kind:      uint16(kind),
		Tags:      tags.wire(),
		Content:   content,
	})
	if err != nil {
		return [32]byte{}, fmt.Errorf("encoding event for hashing: %w", err)
	}

	// NewKeyed requires exactly 32 bytes, which idDomainKey
	// guarantees, so the error is unreachable.
	hasher, err := blake3.NewKeyed(idDomainKey[:])
	if err != nil {
		panic("event: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash [32]byte
	copy(hash[:], hasher.Sum(nil))
	return hash, nil
}

// Verify recomputes the event's content ID and checks the signature
// against the author key. Returns nil only when both match.
func (e *Event) Verify() error {
	hash, err := computeID(e.Author, e.CreatedAt, e.Kind, e.Tags, e.Content)
	if err != nil {
		return err
	}
	if ref.EventIDFromHash(hash) != e.ID {
		return fmt.Errorf("event ID mismatch: computed %s, event claims %s",
			hex.EncodeToString(hash[:]), e.ID)
	}
	if !ed25519.Verify(e.Author.Bytes(), hash[:], e.Sig[:]) {
		return fmt.Errorf("event signature verification failed for %s", e.ID)
	}
	return nil
}
