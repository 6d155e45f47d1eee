// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"github.com/bureau-foundation/planwire/lib/ref"
)

// Builder accumulates the signed fields of an event. Builders are
// produced by the schema encoders (which own the kind, content, and
// tag list) and consumed by whoever holds the signing keys.
type Builder struct {
	kind      ref.Kind
	content   string
	createdAt ref.Timestamp
	tags      Tags
}

// NewBuilder starts an event with the given kind and content body.
func NewBuilder(kind ref.Kind, content string) *Builder {
	return &Builder{kind: kind, content: content}
}

// Tag appends one tag. Returns the builder for chaining.
func (b *Builder) Tag(t Tag) *Builder {
	b.tags = append(b.tags, t)
	return b
}

// Tags appends all given tags in order. Returns the builder for
// chaining.
func (b *Builder) Tags(ts Tags) *Builder {
	b.tags = append(b.tags, ts...)
	return b
}

// CreatedAt sets an explicit creation time. When unset, Sign stamps
// the current time.
func (b *Builder) CreatedAt(t ref.Timestamp) *Builder {
	b.createdAt = t
	return b
}

// TagList returns a copy of the tags accumulated so far, in order.
func (b *Builder) TagList() Tags {
	ts := make(Tags, len(b.tags))
	copy(ts, b.tags)
	return ts
}

// Sign finishes the event: stamps the creation time if unset, computes
// the content ID, and signs it with the given keys. The builder is not
// consumed — signing twice with different keys yields two independent
// events.
func (b *Builder) Sign(keys *Keys) (*Event, error) {
	createdAt := b.createdAt
	if createdAt.IsZero() {
		createdAt = ref.TimestampNow()
	}

	tags := make(Tags, len(b.tags))
	copy(tags, b.tags)

	hash, err := computeID(keys.Public(), createdAt, b.kind, tags, b.content)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        ref.EventIDFromHash(hash),
		Author:    keys.Public(),
		CreatedAt: createdAt,
		Kind:      b.kind,
		Tags:      tags,
		Content:   b.content,
		Sig:       keys.sign(hash[:]),
	}, nil
}
