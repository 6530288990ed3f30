package ui

import (
	"counterapp/internal/counter"
	"counterapp/internal/descriptor"
	"counterapp/internal/effect"
	"counterapp/internal/i18n"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options wires the collaborators of the app. Zero values get defaults.
type Options struct {
	Counter    *counter.Counter
	Labels     *i18n.Catalog
	Descriptor *descriptor.Descriptor
	Confetti   *effect.Container
	// Requests carries celebration requests from the core's Celebrator.
	Requests <-chan effect.Request
}

// AppModel is the root model: the counter view, an optional popup on top and the
// keybind system.
type AppModel struct {
	Mode       AppMode
	Counter    *CounterView
	Overlay    View
	KeyHandler *KeyHandler
	Labels     *i18n.Catalog
	Descriptor *descriptor.Descriptor
	Requests   <-chan effect.Request

	help help.Model
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Counter.Init(), a.listen())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		return a, nil
	case effect.PopMsg:
		_, cmd := a.Counter.Update(msg)
		return a, tea.Batch(cmd, a.listen())
	case ShowDescriptorMsg:
		if a.Descriptor != nil {
			a.Overlay = NewDescriptorView(a.Descriptor, a.Labels)
			a.setMode(ModeDescriptor)
			return a, a.Overlay.Init()
		}
		return a, nil
	case DismissOverlayMsg:
		a.Overlay = nil
		a.setMode(ModeCounter)
		return a, nil
	case tea.KeyMsg:
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		if a.Overlay != nil {
			v, cmd := a.Overlay.Update(msg)
			a.Overlay = v
			return a, cmd
		}
	}

	_, cmd := a.Counter.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	parts := []string{a.Counter.View()}
	if a.Overlay != nil {
		parts = append(parts, a.Overlay.View())
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		parts = append(parts, RenderKeybindHelp(a.KeyHandler, a.Labels.T("cancel")))
	} else if a.KeyHandler != nil {
		parts = append(parts, a.help.View(NewKeyMap(a.KeyHandler, a.Labels.T("cancel"))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *AppModel) setMode(m AppMode) {
	a.Mode = m
	if a.KeyHandler != nil {
		a.KeyHandler.Mode = m
	}
}

// listen waits for the next celebration request, if a channel is wired.
func (a *AppModel) listen() tea.Cmd {
	if a.Requests == nil {
		return nil
	}
	return effect.Listen(a.Requests)
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	labels := opts.Labels
	if labels == nil {
		labels, _ = i18n.Load(i18n.Fallback) // embedded; nil catalog still yields keys
	}
	c := opts.Counter
	if c == nil {
		c = counter.New(nil)
	}

	return &AppModel{
		Mode:       ModeCounter,
		Counter:    NewCounterView(c, labels, opts.Confetti),
		KeyHandler: NewKeyHandler(NewRegistry(labels)),
		Labels:     labels,
		Descriptor: opts.Descriptor,
		Requests:   opts.Requests,
		help:       newHelpModel(),
	}
}

// NewRegistry returns the widget's keybindings with translated descriptions.
func NewRegistry(labels *i18n.Catalog) *KeybindRegistry {
	send := func(msg tea.Msg) tea.Cmd {
		return func() tea.Msg { return msg }
	}
	counterOnly := []AppMode{ModeCounter}

	reg := NewKeybindRegistry()
	for _, k := range []string{"-", "h", "left"} {
		reg.BindWithDescForMode(k, send(DecrementMsg{}), labels.T("decreaseHint"), counterOnly)
	}
	for _, k := range []string{"+", "=", "l", "right"} {
		reg.BindWithDescForMode(k, send(IncrementMsg{}), labels.T("increaseHint"), counterOnly)
	}
	reg.BindWithDescForMode("tab", send(FocusNextMsg{}), labels.T("focus"), counterOnly)
	reg.BindWithDescForMode("enter", send(PressFocusedMsg{}), labels.T("press"), counterOnly)
	reg.BindWithDescForMode("r", send(ResetMsg{}), labels.T("reset"), counterOnly)
	reg.BindWithDescForMode("q", tea.Quit, labels.T("quit"), counterOnly)
	reg.Bind("ctrl+c", tea.Quit)

	reg.BindWithDescForMode("SPC r", send(ResetMsg{}), labels.T("reset"), counterOnly)
	reg.BindWithDescForMode("SPC d", send(ShowDescriptorMsg{}), labels.T("descriptor"), counterOnly)
	reg.BindWithDesc("SPC q", tea.Quit, labels.T("quit"))
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
