// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides deterministic CBOR encoding and decoding for
// planwire. Event IDs and signatures are computed over encoded bytes,
// so the same logical value must always produce identical bytes — the
// encoder is locked to RFC 8949 Core Deterministic Encoding and every
// hash or signature in the protocol depends on that property.
package codec
