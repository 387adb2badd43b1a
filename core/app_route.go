package core

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/artgrid/internal/catalog"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layoutTable()
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.PushScreen(msg.Screen)
		return m, nil
	case PageRequestMsg:
		return m, m.requestPage(msg.Page)
	case PageLoadedMsg:
		next, applied := m.state.FetchSucceeded(msg.Request, msg.Page)
		if !applied {
			m.logger.Debug().Int("page", msg.Request.Page).Uint64("seq", msg.Request.Seq).Msg("stale page discarded")
			return m, nil
		}
		m.state = next
		m.releaseFetch()
		m.pager.SetTotalPages(m.state.Total)
		m.pager.Page = min(m.state.Page-1, max(0, m.pager.TotalPages-1))
		m.syncTable(true)
		m.logger.Debug().Int("page", m.state.Page).Int("records", len(m.state.Records)).Int("total", m.state.Total).Msg("page loaded")
		return m, nil
	case PageFailedMsg:
		next, applied := m.state.FetchFailed(msg.Request)
		if !applied {
			m.logger.Debug().Err(msg.Err).Int("page", msg.Request.Page).Bool("canceled", catalog.IsCanceled(msg.Err)).Msg("stale fetch failure discarded")
			return m, nil
		}
		m.state = next
		m.releaseFetch()
		m.logger.Error().Err(msg.Err).Int("page", msg.Request.Page).Msg("page fetch failed")
		return m, nil
	case BulkSelectSubmittedMsg:
		m.state = m.state.SetBulkCount(msg.Input)
		next, closed := m.state.SubmitBulkSelect()
		if !closed {
			return m, ErrorStatusCmd("Enter a row count above 0")
		}
		m.state = next
		m.screens.Pop()
		m.syncTable(false)
		return m, StatusCmd(fmt.Sprintf("Selected first %d rows", m.state.Selection.Len()))
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if top := m.screens.Top(); top != nil {
			next, cmd, pop := top.Update(msg)
			if pop {
				m.screens.Pop()
				return m, cmd
			}
			m.screens.ReplaceTop(next)
			return m, cmd
		}
		return m.handleGridKey(msg)
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		m.screens.ReplaceTop(next)
		return m, cmd
	}
	return m, nil
}

// handleGridKey routes keys through the registry. Keys are never forwarded to
// the table, whose own keymap would page the viewport on space.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.ActionFor(msg, ScopeGrid) {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionConfirm:
		m.confirmed = true
		m.quitting = true
		m.releaseFetch()
		return m, tea.Quit
	case ActionRowUp:
		m.table.MoveUp(1)
	case ActionRowDown:
		m.table.MoveDown(1)
	case ActionRangeUp:
		m.extendFromCursor(-1)
	case ActionRangeDown:
		m.extendFromCursor(1)
	case ActionPagePrev:
		if m.state.Page > 1 {
			return m, m.requestPage(m.state.Page - 1)
		}
	case ActionPageNext:
		if m.state.Page < m.state.TotalPages() {
			return m, m.requestPage(m.state.Page + 1)
		}
	case ActionToggleRow:
		if r, ok := m.cursorRecord(); ok {
			m.state = m.state.ToggleRecord(r)
			m.syncTable(false)
		}
	case ActionToggleAll:
		m.state = m.state.ToggleAll(!m.state.HeaderChecked())
		m.syncTable(false)
	case ActionBulkSelect:
		if m.OpenBulkSelect != nil {
			return m, pushScreenCmd(m.OpenBulkSelect(&m))
		}
	}
	return m, nil
}

// extendFromCursor adds the cursor row and the row it moves onto.
func (m *Model) extendFromCursor(dir int) {
	from, ok := m.cursorRecord()
	if !ok {
		return
	}
	if dir < 0 {
		m.table.MoveUp(1)
	} else {
		m.table.MoveDown(1)
	}
	m.state = m.state.ExtendSelection(from)
	if to, ok := m.cursorRecord(); ok {
		m.state = m.state.ExtendSelection(to)
	}
	m.syncTable(false)
}
