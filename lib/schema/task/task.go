// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"github.com/google/uuid"

	"github.com/bureau-foundation/planwire/lib/event"
	"github.com/bureau-foundation/planwire/lib/ref"
	"github.com/bureau-foundation/planwire/lib/schema"
)

// KindTask is the event kind for tasks.
const KindTask ref.Kind = 35001

// Task is a work item: a stable identifier, a free-text description
// (markdown), and tag-carried metadata. The identifier is chosen by
// the creator and must be non-empty to encode; NewID generates a
// suitable one.
type Task struct {
	// ID is the stable identifier, carried in the "d" tag.
	ID string

	// Description is the event content body.
	Description string

	// Metadata is everything carried in the remaining tags.
	Metadata Metadata
}

// New constructs a task with the given identifier and description and
// empty metadata.
func New(id, description string) Task {
	return Task{ID: id, Description: description}
}

// NewID generates a fresh task identifier (a random UUID string).
func NewID() string {
	return uuid.NewString()
}

// Builder encodes the task as a buildable event: kind 35001, content =
// description, tags = identifier tag followed by the metadata tag
// list. Returns [schema.ErrMissingIdentifier] if ID is empty — the
// only encode-time failure.
func (t Task) Builder() (*event.Builder, error) {
	if t.ID == "" {
		return nil, schema.ErrMissingIdentifier
	}
	return event.NewBuilder(KindTask, t.Description).
		Tag(event.NewTag(event.TagIdentifier, t.ID)).
		Tags(t.Metadata.TagList()), nil
}

// Decode parses a task from an event. The event kind must be KindTask
// ([schema.WrongKindError] otherwise) and the tag list must carry an
// identifier ([schema.ErrMissingIdentifier]); metadata decoding
// follows [MetadataFromTags] and its errors propagate unchanged.
func Decode(ev *event.Event) (Task, error) {
	if ev.Kind != KindTask {
		return Task{}, &schema.WrongKindError{Got: ev.Kind, Want: KindTask}
	}
	id, ok := ev.Tags.Identifier()
	if !ok {
		return Task{}, schema.ErrMissingIdentifier
	}
	metadata, err := MetadataFromTags(ev.Tags)
	if err != nil {
		return Task{}, err
	}
	return Task{ID: id, Description: ev.Content, Metadata: metadata}, nil
}
