// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package kanban

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/planwire/lib/event"
	"github.com/bureau-foundation/planwire/lib/ref"
	"github.com/bureau-foundation/planwire/lib/schema"
	"github.com/bureau-foundation/planwire/lib/schema/task"
)

// KindBoard is the event kind for kanban boards.
const KindBoard ref.Kind = 35002

// Tag kinds owned by the kanban board schema. Title reuses the task
// schema's tag kind.
const (
	TagColumn      = "col"
	TagDescription = "description"
	TagAlt         = "alt"
)

var (
	// ErrNotBoard is returned when the event kind is not KindBoard.
	ErrNotBoard = errors.New("event is not a kanban board")

	// ErrNoColumns is returned when a board event has no column
	// tags (or none that decode).
	ErrNoColumns = errors.New("kanban board must have at least one column")

	// ErrMissingColumnID is returned for a column tag with no
	// content value.
	ErrMissingColumnID = errors.New("column tag missing content")

	// ErrMissingColumnLabel is returned for a column tag with no
	// label value.
	ErrMissingColumnLabel = errors.New("column tag has no label")
)

// Board is a kanban board definition: an ordered set of columns plus a
// maintainer list of users who may add or edit cards.
type Board struct {
	// ID is the stable identifier, carried in the "d" tag.
	ID string

	// Title is the board title. Empty means unset.
	Title string

	// Description is the board description. Empty means unset.
	Description string

	// Alt is a plaintext summary for clients that do not render
	// boards. Empty means unset.
	Alt string

	// Columns are the board's columns, in tag order. Never empty on
	// a decoded board.
	Columns []Column

	// Maintainers are the users who may add/edit cards. When a
	// board event declares no maintainer references, the event
	// author is the sole implicit maintainer; the author is never
	// added alongside explicit maintainers.
	Maintainers []ref.PublicKey
}

// Column is one column definition of a kanban board.
type Column struct {
	// ID is the machine-readable column identifier (e.g. "todo").
	ID string

	// Label is the human-readable column label (e.g. "To do").
	Label string

	// Color is the column color, or ColorNone.
	Color Color
}

// DecodeBoard parses a kanban board from an event.
//
// Column decoding is strict: every "col" tag must decode, and any
// single malformed column tag fails the whole board. This is the
// opposite of the permissive skip policy task metadata uses for its
// optional fields, and the asymmetry is deliberate (see the package
// comment).
func DecodeBoard(ev *event.Event) (Board, error) {
	if ev.Kind != KindBoard {
		return Board{}, ErrNotBoard
	}
	id, ok := ev.Tags.Identifier()
	if !ok {
		return Board{}, schema.ErrMissingIdentifier
	}

	title, _ := ev.Tags.FindContent(task.TagTitle)
	description, _ := ev.Tags.FindContent(TagDescription)
	alt, _ := ev.Tags.FindContent(TagAlt)

	var columns []Column
	for _, tag := range ev.Tags {
		if tag.Kind() != TagColumn {
			continue
		}
		column, err := decodeColumn(tag)
		if err != nil {
			return Board{}, fmt.Errorf("board %q: %w", id, err)
		}
		columns = append(columns, column)
	}
	if len(columns) == 0 {
		return Board{}, ErrNoColumns
	}

	var maintainers []ref.PublicKey
	for _, tag := range ev.Tags {
		if tag.Kind() != event.TagPublicKey {
			continue
		}
		raw, ok := tag.Content()
		if !ok {
			continue
		}
		key, err := ref.ParsePublicKey(raw)
		if err != nil {
			// Unparseable maintainer references are dropped.
			continue
		}
		maintainers = append(maintainers, key)
	}
	if len(maintainers) == 0 {
		maintainers = []ref.PublicKey{ev.Author}
	}

	return Board{
		ID:          id,
		Title:       title,
		Description: description,
		Alt:         alt,
		Columns:     columns,
		Maintainers: maintainers,
	}, nil
}

// decodeColumn parses one "col" tag: content is the column ID
// (required), the second positional value is the label (required), and
// the third, if present, is parsed as a Color (unparseable or absent
// means no color, never an error).
func decodeColumn(tag event.Tag) (Column, error) {
	id, ok := tag.Content()
	if !ok {
		return Column{}, ErrMissingColumnID
	}
	label, ok := tag.Value(2)
	if !ok {
		return Column{}, ErrMissingColumnLabel
	}
	var color Color
	if raw, ok := tag.Value(3); ok {
		color, _ = ParseColor(raw)
	}
	return Column{ID: id, Label: label, Color: color}, nil
}
