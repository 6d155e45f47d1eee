// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package event provides the generic protocol event container that the
// planwire schema packages encode into and decode from: an ordered tag
// list (each tag an ordered list of strings, the first value acting as
// a kind discriminant), a free-text content body, a numeric event kind,
// and an author identity.
//
// Events are immutable once signed. Builder accumulates kind, content,
// and tags, and Sign produces the finished event: the content ID is a
// domain-separated BLAKE3 hash of the canonical CBOR form, and the
// signature is Ed25519 over the ID. The schema packages never touch
// keys or hashes — they produce Builders and consume signed Events.
package event
