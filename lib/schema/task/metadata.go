// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"net/url"

	"github.com/bureau-foundation/planwire/lib/event"
	"github.com/bureau-foundation/planwire/lib/ref"
	"github.com/bureau-foundation/planwire/lib/schema"
)

// Tag kinds owned by the task metadata schema. TagTitle, TagImage, and
// the timestamp tags carry a single scalar payload; TagArchived
// carries none (presence is the signal).
const (
	TagTitle       = "title"
	TagImage       = "image"
	TagPublishedAt = "published_at"
	TagDueAt       = "due_at"
	TagArchived    = "archived"
)

// UserRef is one (public key, role) association on a task.
type UserRef struct {
	Key  ref.PublicKey
	Role UserRole
}

// Metadata is the tag-carried state of a task or task-like object.
// Optional scalars use the zero value for "unset": an empty Title, a
// nil Image, a zero Timestamp, a false Archived are all absent on the
// wire. Tags and Users preserve insertion order and duplicates.
type Metadata struct {
	// Title is a short summary. Empty means unset.
	Title string

	// Image is a URL to show along with the title. Nil means unset.
	Image *url.URL

	// PublishedAt is when the object was first created.
	PublishedAt ref.Timestamp

	// DueAt is the due date.
	DueAt ref.Timestamp

	// Archived reports whether the object is archived. Encoded as a
	// presence-only tag: false is never emitted, and any event
	// carrying an archived tag decodes to true regardless of the
	// tag's payload.
	Archived bool

	// Tags are free-text categorization strings, in insertion
	// order. Duplicates are allowed and preserved.
	Tags []string

	// Users are referenced users with their roles, in insertion
	// order.
	Users []UserRef
}

// AddTag appends categorization tags.
func (m *Metadata) AddTag(tags ...string) {
	m.Tags = append(m.Tags, tags...)
}

// AddUser appends a user reference with a role.
func (m *Metadata) AddUser(key ref.PublicKey, role UserRole) {
	m.Users = append(m.Users, UserRef{Key: key, Role: role})
}

// TagList encodes the metadata as a tag list in the fixed field order:
// title, image, published_at, due_at, archived (only when true), then
// one "t" tag per categorization string, then one "p" tag per user
// reference. Pure: no errors, no mutation.
func (m Metadata) TagList() event.Tags {
	tags := make(event.Tags, 0, 5+len(m.Tags)+len(m.Users))

	if m.Title != "" {
		tags = append(tags, event.NewTag(TagTitle, m.Title))
	}
	if m.Image != nil {
		tags = append(tags, event.NewTag(TagImage, m.Image.String()))
	}
	if !m.PublishedAt.IsZero() {
		tags = append(tags, event.NewTag(TagPublishedAt, m.PublishedAt.String()))
	}
	if !m.DueAt.IsZero() {
		tags = append(tags, event.NewTag(TagDueAt, m.DueAt.String()))
	}
	if m.Archived {
		tags = append(tags, event.NewTag(TagArchived, "true"))
	}
	for _, t := range m.Tags {
		tags = append(tags, event.NewTag(event.TagHashtag, t))
	}
	for _, u := range m.Users {
		if u.Role.IsNone() {
			tags = append(tags, event.NewTag(event.TagPublicKey, u.Key.String()))
		} else {
			tags = append(tags, event.NewTag(event.TagPublicKey, u.Key.String(), u.Role.String()))
		}
	}
	return tags
}

// MetadataFromTags decodes metadata from a tag list in a single pass.
//
// Policy: unrecognized tag kinds are skipped (forward compatible);
// repeated scalar tags overwrite, last write wins; "p" tags whose key
// payload does not parse are dropped, not errors. The only fatal
// conditions are a recognized image tag whose payload is not a URL
// and a recognized timestamp tag whose payload is not an unsigned
// integer.
func MetadataFromTags(tags event.Tags) (Metadata, error) {
	var m Metadata

	for _, tag := range tags {
		switch tag.Kind() {
		case TagTitle:
			if title, ok := tag.Content(); ok {
				m.Title = title
			}
		case TagImage:
			if raw, ok := tag.Content(); ok {
				u, ok := parseImageURL(raw)
				if !ok {
					return Metadata{}, &schema.InvalidURLError{Raw: raw}
				}
				m.Image = u
			}
		case TagPublishedAt:
			if raw, ok := tag.Content(); ok {
				ts, err := ref.ParseTimestamp(raw)
				if err != nil {
					return Metadata{}, &schema.InvalidTimestampError{Raw: raw}
				}
				m.PublishedAt = ts
			}
		case TagDueAt:
			if raw, ok := tag.Content(); ok {
				ts, err := ref.ParseTimestamp(raw)
				if err != nil {
					return Metadata{}, &schema.InvalidTimestampError{Raw: raw}
				}
				m.DueAt = ts
			}
		case TagArchived:
			// Presence is the signal; the payload is ignored.
			m.Archived = true
		case event.TagHashtag:
			if t, ok := tag.Content(); ok {
				m.Tags = append(m.Tags, t)
			}
		case event.TagPublicKey:
			raw, ok := tag.Content()
			if !ok {
				continue
			}
			key, err := ref.ParsePublicKey(raw)
			if err != nil {
				// Structurally invalid reference: dropped.
				continue
			}
			role, _ := tag.Value(2)
			m.AddUser(key, ParseUserRole(role))
		}
	}
	return m, nil
}

// parseImageURL parses an image tag payload. net/url accepts nearly
// any string, so a bare url.Parse would make the invalid-URL condition
// unreachable; an absolute URL with a scheme and host is required.
func parseImageURL(raw string) (*url.URL, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return u, true
}
