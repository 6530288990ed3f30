package ui

import (
	"fmt"
	"strconv"

	"counterapp/internal/counter"
	"counterapp/internal/effect"
	"counterapp/internal/i18n"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Button identifies one of the two counter controls.
type Button int

const (
	ButtonDecrease Button = iota
	ButtonIncrease
)

// CounterView renders the counter: heading, count, the "-1"/"+1" buttons and the
// confetti container around them. It draws from the last state the core
// reported, so every notification is a re-render.
type CounterView struct {
	Counter  *counter.Counter
	Labels   *i18n.Catalog
	Title    string
	Confetti *effect.Container
	Focus    Button

	state       counter.State
	renders     int
	unsubscribe func()
}

// NewCounterView subscribes a view to c. Call Close to unsubscribe.
func NewCounterView(c *counter.Counter, labels *i18n.Catalog, confetti *effect.Container) *CounterView {
	if confetti == nil {
		confetti = effect.NewContainer(counter.ElementID)
	}
	v := &CounterView{
		Counter:  c,
		Labels:   labels,
		Title:    labels.T("title"),
		Confetti: confetti,
		Focus:    ButtonIncrease,
		state:    c.State(),
	}
	v.unsubscribe = c.Subscribe(v.onChange)
	return v
}

func (v *CounterView) onChange(s counter.State) {
	v.state = s
	v.renders++
}

// Close stops listening to the counter.
func (v *CounterView) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

// Variant is the style variant reflected on the root element.
func (v *CounterView) Variant() counter.Variant {
	return v.state.Variant
}

// Disabled reports whether b is disabled in the current state.
func (v *CounterView) Disabled(b Button) bool {
	if b == ButtonDecrease {
		return v.state.AtMin()
	}
	return v.state.AtMax()
}

// Init implements View.
func (v *CounterView) Init() tea.Cmd {
	return v.Confetti.Init()
}

// Update implements View.
func (v *CounterView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg.(type) {
	case IncrementMsg:
		v.Counter.Increment()
		return v, nil
	case DecrementMsg:
		v.Counter.Decrement()
		return v, nil
	case ResetMsg:
		v.Counter.Reset()
		return v, nil
	case FocusNextMsg:
		if v.Focus == ButtonDecrease {
			v.Focus = ButtonIncrease
		} else {
			v.Focus = ButtonDecrease
		}
		return v, nil
	case PressFocusedMsg:
		if v.Disabled(v.Focus) {
			return v, nil
		}
		if v.Focus == ButtonDecrease {
			v.Counter.Decrement()
		} else {
			v.Counter.Increment()
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.Confetti, cmd = v.Confetti.Update(msg)
	return v, cmd
}

// View implements View.
func (v *CounterView) View() string {
	count := Styles.Count.Render(strconv.Itoa(v.state.Count))
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		v.renderButton(ButtonDecrease, v.Labels.T("decrease")),
		"  ",
		v.renderButton(ButtonIncrease, v.Labels.T("increase")),
	)
	bounds := Styles.Hint.Render(fmt.Sprintf("%s %d–%d", v.Labels.T("bounds"), v.state.Min, v.state.Max))
	if v.Confetti.Popped {
		bounds = Styles.Title.Render(v.Labels.T("celebrate"))
	}

	body := v.Confetti.View(lipgloss.JoinVertical(lipgloss.Center, count, buttons, bounds))
	heading := Styles.Title.Render(v.Title)
	return VariantStyle(v.state.Variant).Render(lipgloss.JoinVertical(lipgloss.Center, heading, body))
}

func (v *CounterView) renderButton(b Button, label string) string {
	switch {
	case v.Disabled(b):
		return Styles.Disabled.Render(label)
	case v.Focus == b:
		return Styles.Focused.Render(label)
	default:
		return Styles.Button.Render(label)
	}
}
