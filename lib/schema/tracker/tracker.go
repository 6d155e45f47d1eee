// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tracker

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/planwire/lib/event"
	"github.com/bureau-foundation/planwire/lib/ref"
	"github.com/bureau-foundation/planwire/lib/schema"
)

// KindTracker is the event kind for trackers.
const KindTracker ref.Kind = 35003

var (
	// ErrInvalidRefTag is returned by ParseRefTag for a reference
	// tag with too few values or an unparseable coordinate.
	ErrInvalidRefTag = errors.New("invalid reference tag")

	// ErrMissingTrackedItem is returned when no reference tag on the
	// event carries the tracked_item label.
	ErrMissingTrackedItem = errors.New("missing tracked item reference")

	// ErrMissingWorkflow is returned when no reference tag on the
	// event carries the workflow label.
	ErrMissingWorkflow = errors.New("missing workflow reference")

	// ErrNoPayload is returned when the workflow-specific payload
	// decoder fails. The decoder's own error is attached as a wrapped
	// cause.
	ErrNoPayload = errors.New("cannot get workflow specific data")
)

// Tracker binds a tracked item to a workflow. Data is the
// workflow-specific payload, decoded from the same source event by the
// payload decoder passed to Decode.
type Tracker[Data any] struct {
	// ID is the stable identifier, carried in the "d" tag.
	ID string

	// TrackedItem is the coordinate of the item being tracked.
	TrackedItem ref.Coordinate

	// Workflow is the coordinate of the workflow.
	Workflow ref.Coordinate

	// Data is the workflow-specific payload.
	Data Data
}

// Decode parses a tracker from an event, decoding the
// workflow-specific payload with decodeData.
//
// The event kind must be KindTracker and the tag list must carry an
// identifier. The tracked-item and workflow references are resolved in
// two independent scans over the full tag list, each taking the first
// tag (in tag order) whose label matches; reference tags that fail to
// parse are skipped during the scans, so a malformed tag among several
// does not fail the decode as long as a later tag matches. A payload
// decoder failure returns [ErrNoPayload] with the cause wrapped.
func Decode[Data any](ev *event.Event, decodeData func(*event.Event) (Data, error)) (Tracker[Data], error) {
	if ev.Kind != KindTracker {
		return Tracker[Data]{}, &schema.WrongKindError{Got: ev.Kind, Want: KindTracker}
	}
	id, ok := ev.Tags.Identifier()
	if !ok {
		return Tracker[Data]{}, schema.ErrMissingIdentifier
	}

	trackedItem, ok := findLabelled(ev.Tags, LabelTrackedItem)
	if !ok {
		return Tracker[Data]{}, ErrMissingTrackedItem
	}
	workflow, ok := findLabelled(ev.Tags, LabelWorkflow)
	if !ok {
		return Tracker[Data]{}, ErrMissingWorkflow
	}

	data, err := decodeData(ev)
	if err != nil {
		return Tracker[Data]{}, fmt.Errorf("%w: %w", ErrNoPayload, err)
	}

	return Tracker[Data]{
		ID:          id,
		TrackedItem: trackedItem,
		Workflow:    workflow,
		Data:        data,
	}, nil
}

// findLabelled scans the tag list in order, attempting ParseRefTag on
// every tag, and returns the coordinate of the first tag whose label
// matches. Tags that fail to parse as references are skipped.
func findLabelled(tags event.Tags, want Label) (ref.Coordinate, bool) {
	for _, tag := range tags {
		labelled, err := ParseRefTag(tag)
		if err != nil {
			continue
		}
		if labelled.Label == want {
			return labelled.Coordinate, true
		}
	}
	return ref.Coordinate{}, false
}
