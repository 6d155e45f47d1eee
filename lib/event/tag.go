// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"
	"fmt"
)

// Protocol-generic tag kinds. Schema-specific kinds (title, col, rank,
// ...) are defined by the schema packages that own them.
const (
	// TagIdentifier ("d") carries the stable identifier of an
	// addressable object. At most one is meaningful per event.
	TagIdentifier = "d"

	// TagPublicKey ("p") references a user by public key. An optional
	// third value annotates the reference with a role.
	TagPublicKey = "p"

	// TagReference ("a") references another addressable object by
	// coordinate. An optional third value annotates the reference
	// with a semantic label.
	TagReference = "a"

	// TagHashtag ("t") is a free-text categorization tag.
	TagHashtag = "t"
)

// Tag is one ordered list of string values. The first value is the
// kind discriminant; the remaining values are positional payload. The
// protocol places no uniqueness or ordering constraints on tags beyond
// what each schema specifies.
//
// Tag is immutable after construction.
type Tag struct {
	values []string
}

// NewTag builds a tag from its values, the kind discriminant first.
func NewTag(values ...string) Tag {
	v := make([]string, len(values))
	copy(v, values)
	return Tag{values: v}
}

// Kind returns the kind discriminant (the first value), or "" for an
// empty tag.
func (t Tag) Kind() string {
	if len(t.values) == 0 {
		return ""
	}
	return t.values[0]
}

// Content returns the first positional value after the kind marker.
// ok is false when the tag has no payload values.
func (t Tag) Content() (string, bool) {
	return t.Value(1)
}

// Value returns the value at index i (index 0 is the kind marker).
// ok is false when the index is out of range.
func (t Tag) Value(i int) (string, bool) {
	if i < 0 || i >= len(t.values) {
		return "", false
	}
	return t.values[i], true
}

// Len returns the number of values, including the kind marker.
func (t Tag) Len() int { return len(t.values) }

// Values returns a copy of all values, the kind marker first.
func (t Tag) Values() []string {
	v := make([]string, len(t.values))
	copy(v, t.values)
	return v
}

// MarshalJSON encodes the tag in its wire form: a JSON array of
// strings.
func (t Tag) MarshalJSON() ([]byte, error) {
	if t.values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.values)
}

// UnmarshalJSON decodes the wire form. A tag must have at least its
// kind marker.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("tag must have at least a kind value")
	}
	t.values = values
	return nil
}

// Tags is an ordered tag list. Order is significant: decoders that
// take the first match scan in list order.
type Tags []Tag

// Find returns the first tag with the given kind.
func (ts Tags) Find(kind string) (Tag, bool) {
	for _, t := range ts {
		if t.Kind() == kind {
			return t, true
		}
	}
	return Tag{}, false
}

// FindContent returns the content of the first tag with the given kind
// that has a content value. Tags of the right kind with no payload are
// skipped.
func (ts Tags) FindContent(kind string) (string, bool) {
	for _, t := range ts {
		if t.Kind() == kind {
			if content, ok := t.Content(); ok {
				return content, true
			}
		}
	}
	return "", false
}

// Identifier returns the stable identifier carried by the first "d"
// tag with a content value.
func (ts Tags) Identifier() (string, bool) {
	return ts.FindContent(TagIdentifier)
}

// wire returns the raw [][]string form used for canonical encoding.
func (ts Tags) wire() [][]string {
	w := make([][]string, len(ts))
	for i, t := range ts {
		w[i] = t.values
	}
	return w
}
