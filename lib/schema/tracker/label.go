// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tracker

import (
	"fmt"

	"github.com/bureau-foundation/planwire/lib/event"
	"github.com/bureau-foundation/planwire/lib/ref"
)

// Label is the semantic role of a coordinate reference on a tracker
// event. The recognized labels are [LabelTrackedItem] and
// [LabelWorkflow]; any other non-empty string is a custom label,
// carried verbatim for forward compatibility. The empty string is "no
// label" (a bare reference).
type Label string

const (
	// LabelNone marks an unlabelled reference.
	LabelNone Label = ""

	// LabelTrackedItem marks the reference to the item being
	// tracked.
	LabelTrackedItem Label = "tracked_item"

	// LabelWorkflow marks the reference to the workflow the item is
	// tracked in.
	LabelWorkflow Label = "workflow"
)

// ParseLabel maps a wire label string to a Label. Total: the empty
// string is LabelNone, the recognized literals map to their labels,
// and anything else is a custom label holding the raw string.
func ParseLabel(raw string) Label {
	return Label(raw)
}

// String returns the wire form: the label literal, or "" for
// LabelNone.
func (l Label) String() string { return string(l) }

// LabelledCoordinate is one reference tag decoded into a typed
// coordinate plus its semantic label. Transient parse result; not
// persisted.
type LabelledCoordinate struct {
	Coordinate ref.Coordinate
	Label      Label
}

// ParseRefTag decodes one generic reference tag. The tag must have at
// least a kind marker and a coordinate value, and the coordinate value
// must parse ([ErrInvalidRefTag] otherwise). The third positional
// value, if present, is the label; its grammar is open-ended and never
// fails.
func ParseRefTag(tag event.Tag) (LabelledCoordinate, error) {
	raw, ok := tag.Content()
	if !ok {
		return LabelledCoordinate{}, fmt.Errorf("%w: tag has no coordinate value", ErrInvalidRefTag)
	}
	coordinate, err := ref.ParseCoordinate(raw)
	if err != nil {
		return LabelledCoordinate{}, fmt.Errorf("%w: %w", ErrInvalidRefTag, err)
	}
	label, _ := tag.Value(2)
	return LabelledCoordinate{Coordinate: coordinate, Label: ParseLabel(label)}, nil
}
