// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tracker decodes kind-35003 tracker events: the glue objects
// that bind a tracked item to a workflow via labelled coordinate
// references, plus whatever workflow-specific payload the event
// carries.
//
// [Tracker] is generic over its payload type. Decode takes the payload
// decoder as a function from the same source event, so a workflow
// schema instantiates the tracker for its own payload without this
// package knowing about it (see the kanban package for the shipped
// instantiation).
package tracker
