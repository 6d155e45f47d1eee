// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package kanban

import (
	"strconv"

	"github.com/bureau-foundation/planwire/lib/event"
	"github.com/bureau-foundation/planwire/lib/schema/task"
	"github.com/bureau-foundation/planwire/lib/schema/tracker"
)

// TagRank carries a card's ordering rank within its column.
const TagRank = "rank"

// TrackerData is the kanban-workflow payload of a tracker event: the
// card's column status, its optional rank, and the task-style metadata
// the card carries.
type TrackerData struct {
	// Status is the column ID the card sits in on the linked board.
	// Empty means status is deferred to the tracked item itself.
	// Carried in the event content body, not a tag.
	Status string

	// Rank orders the card within its column. Nil means unranked.
	Rank *uint32

	// Metadata is the task-style metadata on the card.
	Metadata task.Metadata
}

// Deferred reports whether the card defers status to the tracked item.
func (d TrackerData) Deferred() bool { return d.Status == "" }

// Tracker is a tracker carrying kanban workflow data.
type Tracker = tracker.Tracker[TrackerData]

// DecodeTrackerData decodes the kanban payload from a tracker event.
// Status comes from the content body (empty means deferred). Rank is
// the first "rank" tag's content parsed as an unsigned 32-bit integer;
// an absent or unparseable rank is nil, not an error. Metadata
// decoding follows task.MetadataFromTags and its errors propagate.
func DecodeTrackerData(ev *event.Event) (TrackerData, error) {
	var rank *uint32
	if raw, ok := ev.Tags.FindContent(TagRank); ok {
		if n, err := strconv.ParseUint(raw, 10, 32); err == nil {
			r := uint32(n)
			rank = &r
		}
	}

	metadata, err := task.MetadataFromTags(ev.Tags)
	if err != nil {
		return TrackerData{}, err
	}

	return TrackerData{
		Status:   ev.Content,
		Rank:     rank,
		Metadata: metadata,
	}, nil
}

// DecodeTracker decodes a complete kanban tracker from an event: the
// generic tracker envelope plus the kanban payload from the same
// event.
func DecodeTracker(ev *event.Event) (Tracker, error) {
	return tracker.Decode(ev, DecodeTrackerData)
}
