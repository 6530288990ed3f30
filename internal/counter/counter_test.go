package counter

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder counts celebration requests per element id.
type recorder struct {
	calls []string
}

func (r *recorder) Trigger(elementID string) {
	r.calls = append(r.calls, elementID)
}

func TestNew_StartsAtDefault(t *testing.T) {
	c := New(nil)
	assert.Equal(t, Default, c.Count())
	assert.False(t, c.AtMin())
	assert.False(t, c.AtMax())
	assert.Equal(t, VariantDefault, c.Variant())
}

func TestIncrement_NoOpAtMax(t *testing.T) {
	c := New(nil)
	for range Max - Default {
		c.Increment()
	}
	require.Equal(t, Max, c.Count())
	require.True(t, c.AtMax())

	c.Increment()
	c.Increment()
	assert.Equal(t, Max, c.Count())
}

func TestDecrement_NoOpAtMin(t *testing.T) {
	c := New(nil)
	for range Default - Min {
		c.Decrement()
	}
	require.Equal(t, Min, c.Count())
	require.True(t, c.AtMin())

	c.Decrement()
	assert.Equal(t, Min, c.Count())
}

func TestReset_FromAnyState(t *testing.T) {
	for start := Min; start <= Max; start++ {
		c := New(nil)
		c.count = start
		c.Reset()
		assert.Equal(t, Default, c.Count(), "reset from %d", start)
	}
}

func TestBoundsHoldForRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	c := New(nil)
	for i := 0; i < 5000; i++ {
		switch rng.IntN(7) {
		case 0:
			c.Reset()
		case 1, 2, 3:
			c.Increment()
		default:
			c.Decrement()
		}
		require.GreaterOrEqual(t, c.Count(), Min)
		require.LessOrEqual(t, c.Count(), Max)
	}
}

func TestCelebration_ExactlyOnceAt21(t *testing.T) {
	rec := &recorder{}
	c := New(rec)

	for range 5 {
		c.Increment()
	}
	require.Equal(t, 21, c.Count())
	assert.Equal(t, []string{ElementID}, rec.calls)

	c.Increment()
	assert.Equal(t, 22, c.Count())
	assert.Len(t, rec.calls, 1, "moving past 21 must not trigger")
}

func TestCelebration_RetriggersOnReturnTo21(t *testing.T) {
	rec := &recorder{}
	c := New(rec)
	for range 6 {
		c.Increment()
	}
	require.Len(t, rec.calls, 1)

	c.Decrement()
	assert.Equal(t, 21, c.Count())
	assert.Len(t, rec.calls, 2)
}

func TestCelebration_NilCelebrator(t *testing.T) {
	c := New(nil)
	assert.NotPanics(t, func() {
		for range 5 {
			c.Increment()
		}
	})
}

func TestCelebratorFunc(t *testing.T) {
	var got string
	c := New(CelebratorFunc(func(id string) { got = id }))
	for range 5 {
		c.Increment()
	}
	assert.Equal(t, ElementID, got)
}

func TestVariantFor(t *testing.T) {
	tests := []struct {
		count int
		want  Variant
	}{
		{10, VariantLowBound},
		{11, VariantDefault},
		{16, VariantDefault},
		{18, VariantPositive},
		{21, VariantCelebrate},
		{22, VariantDefault},
		{25, VariantHighBound},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VariantFor(tt.count), "count %d", tt.count)
	}
}

func TestSubscribe_NotifiedOnChangeOnly(t *testing.T) {
	c := New(nil)
	var got []State
	c.Subscribe(func(s State) { got = append(got, s) })

	c.Increment()
	c.Increment()
	require.Len(t, got, 2)
	assert.Equal(t, 18, got[1].Count)
	assert.Equal(t, VariantPositive, got[1].Variant)

	c.Reset()
	require.Len(t, got, 3)
	assert.Equal(t, Default, got[2].Count)

	// Already at default: nothing changed, nothing reported.
	c.Reset()
	assert.Len(t, got, 3)
}

func TestSubscribe_BoundaryNoOpIsSilent(t *testing.T) {
	c := New(nil)
	for range Default - Min {
		c.Decrement()
	}
	calls := 0
	c.Subscribe(func(State) { calls++ })
	c.Decrement()
	assert.Zero(t, calls)
}

func TestSubscribe_ListenersSeeStateBeforeCelebration(t *testing.T) {
	var order []string
	c := New(CelebratorFunc(func(string) { order = append(order, "celebrate") }))
	c.Subscribe(func(s State) {
		if s.Count == CelebrateAt {
			order = append(order, "render")
		}
	})
	for range 5 {
		c.Increment()
	}
	assert.Equal(t, []string{"render", "celebrate"}, order)
}

func TestUnsubscribe(t *testing.T) {
	c := New(nil)
	a, b := 0, 0
	unsubA := c.Subscribe(func(State) { a++ })
	c.Subscribe(func(State) { b++ })

	c.Increment()
	unsubA()
	unsubA()
	c.Increment()

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestUnsubscribeDuringNotification(t *testing.T) {
	c := New(nil)
	calls := 0
	var unsub func()
	unsub = c.Subscribe(func(State) {
		calls++
		unsub()
	})
	other := 0
	c.Subscribe(func(State) { other++ })

	c.Increment()
	c.Increment()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestStatePredicates(t *testing.T) {
	assert.True(t, State{Count: 10, Min: 10, Max: 25}.AtMin())
	assert.True(t, State{Count: 25, Min: 10, Max: 25}.AtMax())
	assert.False(t, State{Count: 16, Min: 10, Max: 25}.AtMax())
}
