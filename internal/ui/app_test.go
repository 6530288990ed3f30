package ui

import (
	"testing"

	"counterapp/internal/counter"
	"counterapp/internal/descriptor"
	"counterapp/internal/effect"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run feeds msg to the model and executes any returned command once, feeding
// non-batch results back in.
func run(t *testing.T, m tea.Model, msg tea.Msg) tea.Msg {
	t.Helper()
	_, cmd := m.Update(msg)
	if cmd == nil {
		return nil
	}
	out := cmd()
	if out != nil {
		if _, isBatch := out.(tea.BatchMsg); !isBatch {
			m.Update(out)
		}
	}
	return out
}

func newTestApp(t *testing.T) (*AppModel, tea.Model, chan effect.Request) {
	t.Helper()
	ch := make(chan effect.Request, 1)
	d, err := descriptor.Load()
	require.NoError(t, err)
	app := NewAppModel(Options{
		Counter:    counter.New(&effect.ChanTrigger{Ch: ch}),
		Descriptor: d,
		Requests:   ch,
	})
	return app, app.AsTeaModel(), ch
}

func TestApp_KeysDriveCounter(t *testing.T) {
	app, m, _ := newTestApp(t)

	run(t, m, keyMsg("+"))
	run(t, m, keyMsg("right"))
	assert.Equal(t, 18, app.Counter.Counter.Count())

	run(t, m, keyMsg("-"))
	run(t, m, keyMsg("h"))
	assert.Equal(t, 16, app.Counter.Counter.Count())

	run(t, m, keyMsg("+"))
	run(t, m, keyMsg("r"))
	assert.Equal(t, counter.Default, app.Counter.Counter.Count())
}

func TestApp_LeaderReset(t *testing.T) {
	app, m, _ := newTestApp(t)
	run(t, m, keyMsg("+"))

	run(t, m, keyMsg(" "))
	assert.Contains(t, m.View(), "SPC")
	run(t, m, keyMsg("r"))

	assert.Equal(t, counter.Default, app.Counter.Counter.Count())
	assert.False(t, app.KeyHandler.LeaderWaiting)
}

func TestApp_QuitKeys(t *testing.T) {
	_, m, _ := newTestApp(t)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_CelebrationFlowsThroughChannel(t *testing.T) {
	app, m, ch := newTestApp(t)
	for range 5 {
		run(t, m, keyMsg("+"))
	}
	require.Len(t, ch, 1, "reaching 21 queues one request")

	msg := effect.Listen(ch)()
	pop, ok := msg.(effect.PopMsg)
	require.True(t, ok)
	assert.Equal(t, counter.ElementID, pop.ElementID)

	_, cmd := m.Update(pop)
	assert.NotNil(t, cmd, "pop schedules frames and re-listens")
	assert.True(t, app.Counter.Confetti.Popped)
	assert.Contains(t, m.View(), "Twenty-one!")

	run(t, m, keyMsg("+"))
	assert.Empty(t, ch, "22 does not celebrate")
}

func TestApp_DescriptorOverlay(t *testing.T) {
	app, m, _ := newTestApp(t)

	run(t, m, keyMsg(" "))
	run(t, m, keyMsg("d"))
	require.NotNil(t, app.Overlay)
	assert.Equal(t, ModeDescriptor, app.Mode)
	assert.Contains(t, m.View(), "Counter app")
	assert.Contains(t, m.View(), descriptor.Ref())

	// Counter keys are inert while the popup is open.
	run(t, m, keyMsg("+"))
	assert.Equal(t, counter.Default, app.Counter.Counter.Count())

	// q closes the popup instead of quitting.
	out := run(t, m, keyMsg("q"))
	assert.IsType(t, DismissOverlayMsg{}, out)
	assert.Nil(t, app.Overlay)
	assert.Equal(t, ModeCounter, app.Mode)
	assert.Equal(t, ModeCounter, app.KeyHandler.Mode)
}

func TestApp_DescriptorMissing(t *testing.T) {
	app := NewAppModel(Options{})
	m := app.AsTeaModel()
	m.Update(ShowDescriptorMsg{})
	assert.Nil(t, app.Overlay)
	assert.Nil(t, app.listen())
}

func TestApp_HelpBarShowsTranslatedHints(t *testing.T) {
	_, m, _ := newTestApp(t)
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	view := m.View()
	assert.Contains(t, view, "Increase")
	assert.Contains(t, view, "Decrease")
}

func TestAppMode_String(t *testing.T) {
	assert.Equal(t, "Counter", ModeCounter.String())
	assert.Equal(t, "Descriptor", ModeDescriptor.String())
	assert.Equal(t, "Unknown", AppMode(99).String())
}
