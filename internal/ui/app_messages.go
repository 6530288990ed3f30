package ui

// IncrementMsg is sent by the "+1" control ("+", "l", right).
type IncrementMsg struct{}

// DecrementMsg is sent by the "-1" control ("-", "h", left).
type DecrementMsg struct{}

// ResetMsg restores the default count ("r" or SPC r).
type ResetMsg struct{}

// FocusNextMsg moves focus to the other button (tab).
type FocusNextMsg struct{}

// PressFocusedMsg activates the focused button (enter).
type PressFocusedMsg struct{}

// ShowDescriptorMsg opens the descriptor panel (SPC d).
type ShowDescriptorMsg struct{}

// DismissOverlayMsg closes the top overlay.
type DismissOverlayMsg struct{}
