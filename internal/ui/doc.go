// Package ui renders the counter widget with Bubble Tea.
//
// Core abstractions:
//   - View: a screen or region with its own model, update, view (Elm-style)
//   - CounterView: the widget itself; re-renders from counter notifications
//   - Overlay: popup views (the descriptor panel) with a dismiss key
//   - KeybindRegistry / KeyHandler: single keys plus SPC-prefixed leader sequences
//
// The root element's colour follows the counter's style variant; see VariantStyle.
package ui
