// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package kanban

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		raw    string
		want   Color
		wantOk bool
	}{
		{"red", ColorRed, true},
		{"orange", ColorOrange, true},
		{"yellow", ColorYellow, true},
		{"green", ColorGreen, true},
		{"cyan", ColorCyan, true},
		{"blue", ColorBlue, true},
		{"purple", ColorPurple, true},
		{"gray", ColorGray, true},
		{"RED", ColorRed, true}, // presets match case-insensitively
		{"Purple", ColorPurple, true},
		{"#FF0000", Color("#FF0000"), true},
		{"#AbCdEf", Color("#AbCdEf"), true}, // hex case preserved
		{"chartreuse", ColorNone, false},
		{"", ColorNone, false},
		{"grey", ColorNone, false}, // only the "gray" spelling is a preset
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.raw)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("ParseColor(%q) = %q, %v; want %q, %v", tt.raw, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestColorRoundTrip(t *testing.T) {
	colors := []Color{
		ColorRed, ColorOrange, ColorYellow, ColorGreen,
		ColorCyan, ColorBlue, ColorPurple, ColorGray,
		Color("#AbCdEf"),
	}
	for _, color := range colors {
		got, ok := ParseColor(color.String())
		if !ok || got != color {
			t.Errorf("round-trip of %q yielded %q, %v", color, got, ok)
		}
	}
}

func TestParseColorNormalizesPresetCase(t *testing.T) {
	// "RED" decodes to the preset, which encodes as "red" — preset
	// case is canonical lowercase, only hex values keep their case.
	got, ok := ParseColor("RED")
	if !ok || got.String() != "red" {
		t.Errorf("ParseColor(RED) = %q, %v; want red", got, ok)
	}
}
