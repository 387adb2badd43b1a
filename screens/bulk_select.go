package screens

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/artgrid/core"
)

var errNotRowCount = errors.New("row count must be a whole number")

var (
	bulkTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	bulkHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

// BulkSelectScreen asks how many leading rows of the loaded page to select.
// Submitting emits core.BulkSelectSubmittedMsg and leaves the popover open;
// the model pops it once the count is accepted.
type BulkSelectScreen struct {
	keys  *core.KeyRegistry
	input textinput.Model
}

func NewBulkSelectScreen(keys *core.KeyRegistry, count int) *BulkSelectScreen {
	in := textinput.New()
	in.Placeholder = "Number of rows..."
	in.Prompt = "› "
	in.CharLimit = 6
	in.Width = 18
	in.Validate = validRowCount
	if count > 0 {
		in.SetValue(strconv.Itoa(count))
	}
	in.Focus()
	return &BulkSelectScreen{keys: keys, input: in}
}

// OpenBulkSelect is the core.Model hook that builds the popover from the
// model's current bulk count.
func OpenBulkSelect(keys *core.KeyRegistry) func(m *core.Model) core.Screen {
	return func(m *core.Model) core.Screen {
		return NewBulkSelectScreen(keys, m.State().BulkCount)
	}
}

func (s *BulkSelectScreen) Title() string { return "Select rows" }
func (s *BulkSelectScreen) Scope() string { return core.ScopeBulkSelect }

func (s *BulkSelectScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok && s.keys != nil {
		switch {
		case s.keys.IsAction(km, core.ActionClose, core.ScopeBulkSelect):
			return s, nil, true
		case s.keys.IsAction(km, core.ActionSubmit, core.ScopeBulkSelect):
			value := s.input.Value()
			return s, func() tea.Msg { return core.BulkSelectSubmittedMsg{Input: value} }, false
		}
	}
	if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyRunes {
		km.Runes = rowCountRunes(s.input.Value(), s.input.Position(), km.Runes)
		if len(km.Runes) == 0 {
			return s, nil, false
		}
		msg = km
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

// rowCountRunes keeps digits, plus one sign when it lands at the start of an
// unsigned value.
func rowCountRunes(current string, pos int, runes []rune) []rune {
	signed := strings.HasPrefix(current, "-") || strings.HasPrefix(current, "+")
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		switch {
		case r >= '0' && r <= '9':
			out = append(out, r)
		case (r == '-' || r == '+') && pos == 0 && len(out) == 0 && !signed:
			out = append(out, r)
			signed = true
		}
	}
	return out
}

func validRowCount(s string) error {
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 {
		return errNotRowCount
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return errNotRowCount
		}
	}
	return nil
}

func (s *BulkSelectScreen) View(width, height int) string {
	lines := []string{
		bulkTitleStyle.Render(s.Title()),
		s.input.View(),
		bulkHintStyle.Render("enter: select  esc: close"),
	}
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return lipgloss.NewStyle().MaxWidth(max(1, width)).Render(strings.Join(lines, "\n"))
}

// Value returns the raw input text.
func (s *BulkSelectScreen) Value() string {
	return s.input.Value()
}
