package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC r" for SPC then r.
// Single keys: "+", "-", "tab", "ctrl+c", "enter".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // nil/empty = applies to all modes
	order        []string             // registration order, for stable help output
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a key sequence to a command in all modes.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help view.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers a key sequence that only fires in the given modes.
// If modes is nil or empty, the binding applies to all modes.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	n := normalizeSeq(seq)
	if _, exists := r.bindings[n]; !exists {
		r.order = append(r.order, n)
	}
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[n] = modes
	} else {
		delete(r.modeFilter, n)
	}
}

// Lookup returns the command for a key sequence in mode, or nil if not bound there.
func (r *KeybindRegistry) Lookup(seq string, mode AppMode) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesToMode(n, mode) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns the keys that may follow SPC in mode, mapped to their descriptions.
func (r *KeybindRegistry) LeaderHints(mode AppMode) map[string]string {
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, "SPC ") || !r.appliesToMode(seq, mode) {
			continue
		}
		k := strings.TrimPrefix(seq, "SPC ")
		if d := r.descriptions[seq]; d != "" {
			out[k] = d
		} else {
			out[k] = seq
		}
	}
	return out
}

// KeyHints groups the described single-key bindings of mode by description.
// Groups keep registration order; keys within a group do too.
func (r *KeybindRegistry) KeyHints(mode AppMode) []KeyHint {
	var out []KeyHint
	index := make(map[string]int)
	for _, seq := range r.order {
		desc := r.descriptions[seq]
		if desc == "" || r.bindings[seq] == nil || strings.HasPrefix(seq, "SPC") || !r.appliesToMode(seq, mode) {
			continue
		}
		if i, ok := index[desc]; ok {
			out[i].Keys = append(out[i].Keys, seq)
			continue
		}
		index[desc] = len(out)
		out = append(out, KeyHint{Keys: []string{seq}, Desc: desc})
	}
	return out
}

// KeyHint is one entry in the help bar.
type KeyHint struct {
	Keys []string
	Desc string
}

// appliesToMode returns true if the binding applies to the given mode.
func (r *KeybindRegistry) appliesToMode(seq string, mode AppMode) bool {
	modes, ok := r.modeFilter[seq]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "r" -> "r".
func normalizeSeq(seq string) string {
	if seq == " " {
		return "SPC"
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	Mode          AppMode  // mode used for lookups; the app keeps it current
	LeaderKey     string   // " " (tea.KeyMsg.String() format)
	LeaderSeq     string   // "SPC" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		Mode:      ModeCounter,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and should not be passed to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	// Esc cancels leader mode
	if s == "esc" {
		if h.LeaderWaiting {
			h.cancel()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq, h.Mode); c != nil {
			h.cancel()
			return true, c
		}
		// No exact match; stay in leader mode if a longer binding exists
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.cancel()
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s), h.Mode); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) cancel() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyMap implements help.KeyMap for rendering keybind help with bubbles/help.Model.
// Outside leader mode it lists single-key bindings; in leader mode, the SPC hints.
type KeyMap struct {
	keyHandler *KeyHandler
	cancelDesc string
}

// NewKeyMap creates a KeyMap for the handler's registry and current mode.
// cancelDesc labels the esc binding shown in leader mode.
func NewKeyMap(keyHandler *KeyHandler, cancelDesc string) help.KeyMap {
	return &KeyMap{keyHandler: keyHandler, cancelDesc: cancelDesc}
}

// ShortHelp returns bindings for the short help view.
func (km *KeyMap) ShortHelp() []key.Binding {
	h := km.keyHandler
	if h == nil || h.Registry == nil {
		return nil
	}
	if h.LeaderWaiting {
		return leaderBindings(h.Registry.LeaderHints(h.Mode), km.cancelDesc)
	}
	hints := h.Registry.KeyHints(h.Mode)
	bindings := make([]key.Binding, 0, len(hints))
	for _, hint := range hints {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(hint.Keys...),
			key.WithHelp(strings.Join(hint.Keys, "/"), hint.Desc),
		))
	}
	return bindings
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

// leaderBindings converts leader hints to key bindings sorted by key, plus esc.
func leaderBindings(hints map[string]string, cancelDesc string) []key.Binding {
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	if cancelDesc == "" {
		cancelDesc = "cancel"
	}
	return append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", cancelDesc),
	))
}
