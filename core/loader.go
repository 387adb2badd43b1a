package core

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/artgrid/internal/grid"
)

// requestPage moves the grid to page n and starts its fetch. The fetch
// started before it, if still running, is cancelled; its settlement will be
// stale either way.
func (m *Model) requestPage(n int) tea.Cmd {
	next, req, ok := m.state.ChangePage(n)
	if !ok {
		return nil
	}
	m.state = next
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel

	m.pager.TotalPages = max(m.pager.TotalPages, n)
	m.pager.Page = n - 1

	m.logger.Debug().Int("page", n).Uint64("seq", req.Seq).Msg("page requested")
	return fetchPageCmd(ctx, m.source, req)
}

// releaseFetch drops the cancel func once the current request has settled.
func (m *Model) releaseFetch() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func fetchPageCmd(ctx context.Context, source PageSource, req grid.Request) tea.Cmd {
	return func() tea.Msg {
		page, err := source.FetchPage(ctx, req.Page)
		if err != nil {
			return PageFailedMsg{Request: req, Err: err}
		}
		return PageLoadedMsg{Request: req, Page: page}
	}
}
