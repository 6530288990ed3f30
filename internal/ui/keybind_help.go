package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a help model styled like the rest of the widget.
func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = Styles.Hint
	m.Styles.ShortSeparator = Styles.Hint
	return m
}

// RenderKeybindHelp produces the transient help box shown after SPC.
// Returns "" when the handler is not waiting for a leader sequence.
func RenderKeybindHelp(keyHandler *KeyHandler, cancelDesc string) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	bindings := leaderBindings(keyHandler.Registry.LeaderHints(keyHandler.Mode), cancelDesc)
	if len(bindings) == 0 {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)

	content := Styles.Label.Render(keyHandler.LeaderSeq) + " " + newHelpModel().ShortHelpView(bindings)
	return boxStyle.Render(content)
}
