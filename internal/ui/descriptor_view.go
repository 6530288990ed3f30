package ui

import (
	"strings"

	"counterapp/internal/descriptor"
	"counterapp/internal/i18n"
	"counterapp/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	descriptorLabelWidth = 11
	descriptorTextWidth  = 48
)

// DescriptorView is the popup listing the widget's capability descriptor.
type DescriptorView struct {
	Descriptor *descriptor.Descriptor
	Labels     *i18n.Catalog
}

// NewDescriptorView creates the popup for d.
func NewDescriptorView(d *descriptor.Descriptor, labels *i18n.Catalog) *DescriptorView {
	return &DescriptorView{Descriptor: d, Labels: labels}
}

// Init implements View.
func (v *DescriptorView) Init() tea.Cmd { return nil }

// Update implements View. esc, q and enter close the popup.
func (v *DescriptorView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "q", "enter":
			return v, func() tea.Msg { return DismissOverlayMsg{} }
		}
	}
	return v, nil
}

// View implements View.
func (v *DescriptorView) View() string {
	d := v.Descriptor
	var b strings.Builder
	b.WriteString(Styles.Title.Render(v.Labels.T("descriptor") + ": " + d.Gizmo.Title))
	b.WriteString("\n\n")
	if d.Gizmo.Description != "" {
		b.WriteString(textutil.Truncate(d.Gizmo.Description, descriptorTextWidth) + "\n")
	}
	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(Styles.Label.Render(textutil.PadRight(label, descriptorLabelWidth)) + textutil.Truncate(value, descriptorTextWidth) + "\n")
	}
	row("ref", descriptor.Ref())
	row("tag", descriptor.Tag)
	row("author", d.Author())
	row("icon", d.Gizmo.Icon)
	row("tags", strings.Join(d.Gizmo.Tags, ", "))
	row("properties", strings.Join(d.Configurable(), ", "))
	return Styles.Box.Render(strings.TrimRight(b.String(), "\n"))
}
