// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/planwire/lib/ref"
)

// ErrMissingIdentifier is returned when an event that must carry a
// stable identifier ("d" tag with a content value) has none.
var ErrMissingIdentifier = errors.New("missing identifier")

// WrongKindError is returned when an event's kind does not match the
// kind the decoder handles. Always fatal to the decode call.
type WrongKindError struct {
	Got  ref.Kind
	Want ref.Kind
}

func (e *WrongKindError) Error() string {
	return fmt.Sprintf("wrong event kind: got %s, want %s", e.Got, e.Want)
}

// InvalidURLError is returned when a tag payload that must be a URL
// does not parse. Raw is the offending string, kept for diagnostics.
type InvalidURLError struct {
	Raw string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL: %q", e.Raw)
}

// InvalidTimestampError is returned when a tag payload that must be a
// unix-second timestamp does not parse. Raw is the offending string,
// kept for diagnostics.
type InvalidTimestampError struct {
	Raw string
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp: %q", e.Raw)
}
