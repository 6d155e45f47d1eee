// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package task maps [Task] objects to and from kind-35001 protocol
// events. A task's description is the event content body; everything
// else ([Metadata]) lives in the tag list.
//
// Encoding is deterministic: a given task always produces the same tag
// list, in a fixed field order. Decoding is a single pass over the tag
// list with a permissive policy — unrecognized tag kinds and
// structurally invalid user references are skipped, repeated scalar
// tags overwrite (last write wins), and only malformed URL or
// timestamp payloads on recognized tags are fatal. Encode followed by
// decode is lossless for every field the tag set carries.
package task
