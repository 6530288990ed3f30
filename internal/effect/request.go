package effect

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Request asks the container with ElementID to play the effect.
type Request struct {
	ElementID string
	Timestamp time.Time
}

// ChanTrigger queues celebration requests on a channel for the UI loop to pick up.
// It implements counter.Celebrator.
type ChanTrigger struct {
	Ch chan<- Request
}

// Trigger sends a request without blocking; it is dropped if the channel is full.
func (t *ChanTrigger) Trigger(elementID string) {
	t.Emit(Request{ElementID: elementID})
}

// Emit sends req (non-blocking; drops if full).
func (t *ChanTrigger) Emit(req Request) {
	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now()
	}
	select {
	case t.Ch <- req:
	default:
		// A pop is already pending; one more would look the same.
	}
}

// PopMsg tells a Container to start its effect.
type PopMsg struct {
	ElementID string
	At        time.Time
}

// Listen returns a command that waits for the next request on ch.
// Re-issue it after every PopMsg to keep listening.
func Listen(ch <-chan Request) tea.Cmd {
	return func() tea.Msg {
		req, ok := <-ch
		if !ok {
			return nil
		}
		return PopMsg{ElementID: req.ElementID, At: req.Timestamp}
	}
}
