// Package counter holds the state and transition logic of the counter widget.
//
// The core owns a single bounded integer. Increment and Decrement move it by one
// inside [Min, Max], Reset restores Default. Every change of the count is pushed to
// subscribed listeners, and reaching CelebrateAt asks the injected Celebrator to
// play its effect on ElementID. Rendering is left entirely to the listeners.
package counter
