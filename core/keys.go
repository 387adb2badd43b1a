package core

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding names an action and the keys that trigger it within scopes.
// "space" stands for the space bar.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string

	binding key.Binding
}

// Help returns the footer entry for the binding.
func (b KeyBinding) Help() key.Help {
	return b.binding.Help()
}

// KeyRegistry resolves key presses to named actions per scope.
type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{bindings: make([]KeyBinding, 0, len(bindings))}
	for _, b := range bindings {
		r.Register(b)
	}
	return r
}

// Register adds a binding. Bindings registered earlier win when two share a
// key in the same scope.
func (r *KeyRegistry) Register(b KeyBinding) {
	b.Keys = append([]string(nil), b.Keys...)
	b.Scopes = append([]string(nil), b.Scopes...)
	opts := []key.BindingOpt{key.WithKeys(pressKeys(b.Keys)...)}
	if len(b.Keys) > 0 {
		opts = append(opts, key.WithHelp(b.Keys[0], b.Description))
	}
	b.binding = key.NewBinding(opts...)
	r.bindings = append(r.bindings, b)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for _, b := range r.bindings {
		if b.Action == action && scopeMatch(scope, b.Scopes) && key.Matches(msg, b.binding) {
			return true
		}
	}
	return false
}

// ActionFor returns the first action bound to msg in scope, or "".
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) string {
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) && key.Matches(msg, b.binding) {
			return b.Action
		}
	}
	return ""
}

// pressKeys maps binding names onto the strings tea.KeyMsg reports. The
// space bar arrives as " ".
func pressKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "space" {
			k = " "
		}
		out = append(out, k)
	}
	return out
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
