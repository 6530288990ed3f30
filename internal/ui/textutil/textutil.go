// Package textutil provides unicode-aware width helpers for the popup layouts.
package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// PadRight pads s with spaces to width columns. Wider strings are truncated.
func PadRight(s string, width int) string {
	if Width(s) > width {
		return Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}
