package effect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChanTrigger_Trigger_StampsRequest(t *testing.T) {
	ch := make(chan Request, 1)
	trig := &ChanTrigger{Ch: ch}

	trig.Trigger("confetti")

	got := <-ch
	assert.Equal(t, "confetti", got.ElementID)
	assert.False(t, got.Timestamp.IsZero())
}

func TestChanTrigger_Emit_PreservesTimestamp(t *testing.T) {
	ch := make(chan Request, 1)
	trig := &ChanTrigger{Ch: ch}

	ts := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	trig.Emit(Request{ElementID: "confetti", Timestamp: ts})

	got := <-ch
	assert.True(t, got.Timestamp.Equal(ts))
}

func TestChanTrigger_DropsWhenFull(t *testing.T) {
	ch := make(chan Request, 1)
	trig := &ChanTrigger{Ch: ch}

	trig.Trigger("first")
	done := make(chan struct{})
	go func() {
		trig.Trigger("dropped")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Trigger blocked on a full channel")
	}
	assert.Equal(t, "first", (<-ch).ElementID)
	assert.Empty(t, ch)
}

func TestListen(t *testing.T) {
	ch := make(chan Request, 1)
	ts := time.Now()
	ch <- Request{ElementID: "confetti", Timestamp: ts}

	msg := Listen(ch)()
	pop, ok := msg.(PopMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, "confetti", pop.ElementID)
	assert.True(t, pop.At.Equal(ts))
}

func TestListen_ClosedChannel(t *testing.T) {
	ch := make(chan Request)
	close(ch)
	assert.Nil(t, Listen(ch)())
}
