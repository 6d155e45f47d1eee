// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package kanban decodes kind-35002 kanban board events and provides
// the kanban instantiation of the generic tracker payload.
//
// Board decoding is strict where task metadata decoding is permissive:
// a single malformed column tag fails the whole board, and a board
// without columns is invalid. This asymmetry is part of the protocol's
// compatibility story and is deliberate — do not "fix" one policy to
// match the other.
package kanban
