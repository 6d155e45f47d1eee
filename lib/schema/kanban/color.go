// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package kanban

import "strings"

// Color is a column color: one of eight named presets, or a "#"-
// prefixed RGB hex value. The empty string means "no color".
type Color string

const (
	ColorNone   Color = ""
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorCyan   Color = "cyan"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorGray   Color = "gray"
)

// ParseColor maps a wire color string to a Color. Preset names match
// case-insensitively and canonicalize to lowercase; any value starting
// with '#' is a hex color, carried with its case preserved. Anything
// else is "no color" — ok is false, never an error, so callers decide
// whether absence is acceptable.
func ParseColor(raw string) (Color, bool) {
	switch strings.ToLower(raw) {
	case "red":
		return ColorRed, true
	case "orange":
		return ColorOrange, true
	case "yellow":
		return ColorYellow, true
	case "green":
		return ColorGreen, true
	case "cyan":
		return ColorCyan, true
	case "blue":
		return ColorBlue, true
	case "purple":
		return ColorPurple, true
	case "gray":
		return ColorGray, true
	}
	if strings.HasPrefix(raw, "#") {
		return Color(raw), true
	}
	return ColorNone, false
}

// String returns the wire form: the preset literal, the hex value
// unchanged, or "" for ColorNone.
func (c Color) String() string { return string(c) }

// IsNone reports whether the color is ColorNone.
func (c Color) IsNone() bool { return c == ColorNone }
