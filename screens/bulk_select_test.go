package screens

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/jask/artgrid/core"
)

func typeText(s *BulkSelectScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestBulkSelectSubmitEmitsInputWithoutClosing(t *testing.T) {
	s := NewBulkSelectScreen(core.NewKeyRegistry(core.DefaultKeyBindings()), 0)
	typeText(s, "3")

	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if pop {
		t.Fatalf("submit should leave closing to the model")
	}
	if cmd == nil {
		t.Fatalf("expected submit command")
	}
	msg, ok := cmd().(core.BulkSelectSubmittedMsg)
	if !ok || msg.Input != "3" {
		t.Fatalf("unexpected submit msg %#v", msg)
	}
}

func TestBulkSelectEscCloses(t *testing.T) {
	s := NewBulkSelectScreen(core.NewKeyRegistry(core.DefaultKeyBindings()), 0)
	typeText(s, "7")
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !pop || cmd != nil {
		t.Fatalf("esc should close without a command")
	}
}

func TestBulkSelectPrefillsLastCount(t *testing.T) {
	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	if v := NewBulkSelectScreen(keys, 4).Value(); v != "4" {
		t.Fatalf("prefill = %q, want 4", v)
	}
	if v := NewBulkSelectScreen(keys, 0).Value(); v != "" {
		t.Fatalf("zero count should leave input empty, got %q", v)
	}
}

func TestBulkSelectViewShowsPlaceholder(t *testing.T) {
	s := NewBulkSelectScreen(core.NewKeyRegistry(core.DefaultKeyBindings()), 0)
	view := ansi.Strip(s.View(40, 5))
	if !strings.Contains(view, "Select rows") {
		t.Fatalf("title missing:\n%s", view)
	}
	if !strings.Contains(view, "umber of rows...") {
		t.Fatalf("placeholder missing:\n%s", view)
	}
	if s.Scope() != core.ScopeBulkSelect {
		t.Fatalf("scope = %q", s.Scope())
	}
}

func TestOpenBulkSelectHookReadsModelCount(t *testing.T) {
	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	m := core.NewModel(context.Background(), nil, keys, zerolog.Nop(), 1)
	screen := OpenBulkSelect(keys)(&m)
	if screen.Scope() != core.ScopeBulkSelect {
		t.Fatalf("hook returned scope %q", screen.Scope())
	}
}

func TestBulkSelectInputAcceptsOnlyRowCounts(t *testing.T) {
	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	cases := map[string]string{
		"12":   "12",
		"5abc": "5",
		"2.5":  "25",
		"-3":   "-3",
		"3-":   "3",
		"+-7":  "+7",
		"e":    "",
	}
	for typed, want := range cases {
		s := NewBulkSelectScreen(keys, 0)
		typeText(s, typed)
		if got := s.Value(); got != want {
			t.Fatalf("typed %q, value = %q, want %q", typed, got, want)
		}
	}
}

func TestBulkSelectPasteKeepsDigits(t *testing.T) {
	s := NewBulkSelectScreen(core.NewKeyRegistry(core.DefaultKeyBindings()), 0)
	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4 rows"), Paste: true})
	if got := s.Value(); got != "4" {
		t.Fatalf("pasted value = %q, want 4", got)
	}
}

func TestValidRowCount(t *testing.T) {
	for _, ok := range []string{"", "7", "-2", "+10"} {
		if err := validRowCount(ok); err != nil {
			t.Fatalf("validRowCount(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"2.5", "--1", "1e2", "a"} {
		if err := validRowCount(bad); err == nil {
			t.Fatalf("validRowCount(%q) should fail", bad)
		}
	}
}
