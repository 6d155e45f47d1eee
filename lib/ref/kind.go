// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strconv"
)

// Kind is a numeric protocol event kind. The value space is flat; the
// planwire schema packages define the kinds they own (task, kanban
// board, tracker) as constants of this type. Kind 0 is reserved and
// treated as unset.
type Kind uint16

// ParseKind parses the wire form: an unsigned decimal kind number.
func ParseKind(raw string) (Kind, error) {
	n, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid event kind %q: %w", raw, err)
	}
	return Kind(n), nil
}

// String returns the decimal wire form.
func (k Kind) String() string { return strconv.FormatUint(uint64(k), 10) }
