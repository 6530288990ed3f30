package ui

// AppMode represents what currently has input focus.
type AppMode int

const (
	ModeCounter AppMode = iota
	ModeDescriptor
)

func (m AppMode) String() string {
	switch m {
	case ModeCounter:
		return "Counter"
	case ModeDescriptor:
		return "Descriptor"
	default:
		return "Unknown"
	}
}
