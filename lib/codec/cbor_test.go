// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"

	"github.com/bureau-foundation/planwire/lib/ref"
)

// samplePreimage mirrors the shape of an event signing preimage: a mix
// of ref value types and plain fields.
type samplePreimage struct {
	Author    ref.PublicKey  `cbor:"author"`
	CreatedAt ref.Timestamp  `cbor:"created_at"`
	Kind      ref.Kind       `cbor:"kind"`
	Tags      [][]string     `cbor:"tags"`
	Content   string         `cbor:"content"`
	Target    ref.Coordinate `cbor:"target,omitempty"`
}

func samplePreimageValue() samplePreimage {
	key := "b3e392b11f5d4f28321cedd09303a748acfd0487aea5a7450b3481c60b6e4f87"
	return samplePreimage{
		Author:    ref.MustParsePublicKey(key),
		CreatedAt: ref.UnixTimestamp(1296962229),
		Kind:      35001,
		Tags:      [][]string{{"d", "T1"}, {"title", "Example"}},
		Content:   "body text",
		Target:    ref.MustParseCoordinate("35002:" + key + ":board-1"),
	}
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := samplePreimageValue()

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded samplePreimage
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Author != original.Author ||
		decoded.CreatedAt != original.CreatedAt ||
		decoded.Kind != original.Kind ||
		decoded.Content != original.Content ||
		decoded.Target != original.Target {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	message := samplePreimageValue()

	first, err := Marshal(message)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(message)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestRefTypesEncodeAsTextStrings(t *testing.T) {
	// A ref type must serialize via MarshalText, not as an empty CBOR
	// map of its unexported fields. The canonical text form appears
	// verbatim in the encoded bytes.
	ts := ref.UnixTimestamp(1296962229)
	data, err := Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Contains(data, []byte("1296962229")) {
		t.Errorf("encoded timestamp %x does not contain its text form", data)
	}
}
