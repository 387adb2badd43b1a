package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"b"}, Action: "bulk", Scopes: []string{"grid"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	b := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}
	if !reg.IsAction(b, "bulk", "grid") {
		t.Fatalf("expected b in grid")
	}
	if reg.IsAction(b, "bulk", "screen:bulk-select") {
		t.Fatalf("did not expect b in popover scope")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "screen:bulk-select") {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestSpaceBarMatchesSpaceBinding(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeySpace}, ScopeGrid); got != ActionToggleRow {
		t.Fatalf("space action = %q, want %q", got, ActionToggleRow)
	}
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}, ScopeGrid); got != ActionToggleRow {
		t.Fatalf("space rune action = %q, want %q", got, ActionToggleRow)
	}
}

func TestEnterResolvesPerScope(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	if got := reg.ActionFor(enter, ScopeGrid); got != ActionConfirm {
		t.Fatalf("grid enter = %q, want confirm", got)
	}
	if got := reg.ActionFor(enter, ScopeBulkSelect); got != ActionSubmit {
		t.Fatalf("popover enter = %q, want submit", got)
	}
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, ScopeGrid); got != "" {
		t.Fatalf("unbound key resolved to %q", got)
	}
}

func TestBindingsForScopeFiltersPopover(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	for _, b := range reg.BindingsForScope(ScopeBulkSelect) {
		if b.Action != ActionSubmit && b.Action != ActionClose {
			t.Fatalf("unexpected popover binding %q", b.Action)
		}
	}
	if n := len(reg.BindingsForScope(ScopeBulkSelect)); n != 2 {
		t.Fatalf("popover bindings = %d, want 2", n)
	}
}

func TestRegisterBuildsMatchableBindingWithHelp(t *testing.T) {
	reg := NewKeyRegistry(nil)
	reg.Register(KeyBinding{Keys: []string{"space", "x"}, Action: "toggle", Description: "toggle row", Scopes: []string{"grid"}})

	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeySpace}, "grid"); got != "toggle" {
		t.Fatalf("space action = %q, want toggle", got)
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, "toggle", "grid") {
		t.Fatalf("expected x to toggle")
	}
	bindings := reg.BindingsForScope("grid")
	if len(bindings) != 1 {
		t.Fatalf("bindings = %d, want 1", len(bindings))
	}
	if h := bindings[0].Help(); h.Key != "space" || h.Desc != "toggle row" {
		t.Fatalf("help = %+v", h)
	}
}

func TestFirstRegisteredBindingWins(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"enter"}, Action: "first", Scopes: []string{"grid"}},
	})
	reg.Register(KeyBinding{Keys: []string{"enter"}, Action: "second", Scopes: []string{"grid"}})
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyEnter}, "grid"); got != "first" {
		t.Fatalf("enter action = %q, want first", got)
	}
}
