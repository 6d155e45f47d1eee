// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides strongly typed, immutable value types for the
// protocol primitives the planwire codecs are built on: public keys,
// event IDs, unix-second timestamps, numeric event kinds, and
// coordinates (compact references naming another protocol object by
// kind, author, and identifier).
//
// All constructors validate their inputs and return errors for invalid
// values. Once constructed, a ref is immutable. The zero value of every
// type is "unset", never a valid protocol value; use IsZero to check.
//
// The canonical serialization form of each type is its String()
// rendering (lowercase hex for keys and event IDs, decimal for
// timestamps and kinds, "kind:pubkey:identifier" for coordinates).
// JSON and CBOR marshaling use this form via encoding.TextMarshaler.
package ref
