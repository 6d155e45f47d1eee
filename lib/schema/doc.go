// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema holds what the planwire object schemas share: the
// decode error types that every codec surfaces. The object schemas
// themselves live in the subpackages:
//
//   - [github.com/bureau-foundation/planwire/lib/schema/task] --
//     tasks and task metadata (kind 35001)
//   - [github.com/bureau-foundation/planwire/lib/schema/kanban] --
//     kanban boards, columns, and the kanban tracker payload
//     (kind 35002)
//   - [github.com/bureau-foundation/planwire/lib/schema/tracker] --
//     the generic tracker binding a tracked item to a workflow
//     (kind 35003)
//
// Decode errors are typed and matchable: sentinel errors for plain
// absence conditions ([ErrMissingIdentifier]) and error structs
// carrying diagnostics where the offending input matters
// ([WrongKindError], [InvalidURLError], [InvalidTimestampError]).
// Decoders stop at the first fatal condition; no partial object is
// ever returned alongside an error.
package schema
