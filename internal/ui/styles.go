package ui

import (
	"counterapp/internal/counter"

	"github.com/charmbracelet/lipgloss"
)

// Theme palette, named after the design-system variables the widget was drawn with.
const (
	ColorRoarLight      = "#CFECEF" // default text
	ColorShrineTan      = "#B28C5B" // default background
	ColorForestGreen    = "#4A7729" // positive and celebrate
	ColorOriginal87Pink = "#BC204B" // either bound
	ColorMuted          = "241"
	ColorHighlight      = "205"
	ColorAccent         = "86"
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title    lipgloss.Style // Bold accent - widget heading
	Wrapper  lipgloss.Style // Root box: margin + padding around the counter
	Count    lipgloss.Style // Large count display
	Button   lipgloss.Style // Enabled button
	Focused  lipgloss.Style // Enabled button with focus
	Disabled lipgloss.Style // Disabled button
	Hint     lipgloss.Style // Help/hint text
	Box      lipgloss.Style // Overlay box
	Label    lipgloss.Style // Overlay field label
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Wrapper: lipgloss.NewStyle().
		Margin(1, 2).
		Padding(1, 4),
	Count: lipgloss.NewStyle().
		Bold(true).
		Padding(0, 2).
		MarginBottom(1),
	Button: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2),
	Focused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 2),
	Disabled: lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder()).
		Foreground(lipgloss.Color(ColorMuted)).
		Faint(true).
		Padding(0, 2),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}

// VariantColor returns the foreground colour for a style variant.
func VariantColor(v counter.Variant) lipgloss.Color {
	switch v {
	case counter.VariantPositive, counter.VariantCelebrate:
		return lipgloss.Color(ColorForestGreen)
	case counter.VariantLowBound, counter.VariantHighBound:
		return lipgloss.Color(ColorOriginal87Pink)
	default:
		return lipgloss.Color(ColorRoarLight)
	}
}

// VariantStyle returns the root style for a style variant.
func VariantStyle(v counter.Variant) lipgloss.Style {
	return Styles.Wrapper.
		Foreground(VariantColor(v)).
		Background(lipgloss.Color(ColorShrineTan))
}
