package counter

const (
	Min         = 10
	Max         = 25
	Default     = 16
	CelebrateAt = 21

	// ElementID identifies the element the celebration effect plays on.
	ElementID = "confetti"
)

// Celebrator plays the celebration effect on the element with the given id.
// Implementations must not block; the core never observes the outcome.
type Celebrator interface {
	Trigger(elementID string)
}

// CelebratorFunc adapts a plain function to Celebrator.
type CelebratorFunc func(elementID string)

// Trigger implements Celebrator.
func (f CelebratorFunc) Trigger(elementID string) { f(elementID) }

// State is a read-only snapshot of the counter.
type State struct {
	Count   int
	Min     int
	Max     int
	Default int
	Variant Variant
}

// AtMin reports whether the snapshot sits on the lower bound.
func (s State) AtMin() bool { return s.Count == s.Min }

// AtMax reports whether the snapshot sits on the upper bound.
func (s State) AtMax() bool { return s.Count == s.Max }

// Listener is notified with the new state after every change of the count.
type Listener func(State)

type subscription struct {
	id int
	fn Listener
}

// Counter is the widget core. It is not safe for concurrent use; all calls are
// expected from the single UI event loop.
type Counter struct {
	count      int
	celebrator Celebrator
	listeners  []subscription
	nextID     int
}

// New creates a counter at Default. A nil celebrator disables the effect.
func New(celebrator Celebrator) *Counter {
	return &Counter{
		count:      Default,
		celebrator: celebrator,
	}
}

// Count returns the current count.
func (c *Counter) Count() int {
	return c.count
}

// State returns a snapshot of the current state.
func (c *Counter) State() State {
	return State{
		Count:   c.count,
		Min:     Min,
		Max:     Max,
		Default: Default,
		Variant: VariantFor(c.count),
	}
}

// Variant returns the style variant for the current count.
func (c *Counter) Variant() Variant {
	return VariantFor(c.count)
}

// AtMax reports whether the increase control should be disabled.
func (c *Counter) AtMax() bool {
	return c.count == Max
}

// AtMin reports whether the decrease control should be disabled.
func (c *Counter) AtMin() bool {
	return c.count == Min
}

// Increment adds one unless the count is already at Max.
func (c *Counter) Increment() {
	if c.count < Max {
		c.set(c.count + 1)
	}
}

// Decrement subtracts one unless the count is already at Min.
func (c *Counter) Decrement() {
	if c.count > Min {
		c.set(c.count - 1)
	}
}

// Reset restores Default from any state.
func (c *Counter) Reset() {
	c.set(Default)
}

// Subscribe registers fn for change notifications and returns a function that
// removes it. Listeners run synchronously in registration order.
func (c *Counter) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, s := range c.listeners {
			if s.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// set applies a new count and runs the change side effects. Unchanged values are
// not reported.
func (c *Counter) set(n int) {
	if n == c.count {
		return
	}
	c.count = n

	st := c.State()
	// Copy so a listener may unsubscribe while being notified.
	subs := append([]subscription(nil), c.listeners...)
	for _, s := range subs {
		s.fn(st)
	}

	if n == CelebrateAt && c.celebrator != nil {
		c.celebrator.Trigger(ElementID)
	}
}
