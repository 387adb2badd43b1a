package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/artgrid/widgets"
)

// The bulk-select popover hangs off the header checkbox: row 0 of the body is
// the pane border and row 1 is the table header.
const (
	popoverAnchorX = 1
	popoverAnchorY = 2
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := m.bodyHeight()

	body := m.renderGrid(bodyHeight)
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		popup := top.View(min(36, max(20, m.width-4)), max(3, bodyHeight-4))
		body = widgets.RenderPopupAt(body, popup, popoverAnchorX, popoverAnchorY, m.width, bodyHeight)
	}
	body = fitHeight(body, bodyHeight)

	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func (m Model) renderGrid(height int) string {
	if height < 3 {
		return ""
	}
	pager := pagerStyle.Render(m.pager.View())
	if m.state.Loading {
		pager += "  " + m.spinner.View() + pagerStyle.Render(fmt.Sprintf(" loading page %d", m.state.Page))
	}
	content := m.table.View() + "\n" + pager
	return widgets.Pane{
		Title:   "Artworks",
		Content: content,
		Busy:    m.state.Loading,
	}.Render(m.width, height)
}

func renderHeader(m Model) string {
	left := headerAppStyle.Background(colorMantle).Render("artgrid")
	right := headerMetaStyle.Render("Art Institute of Chicago · artworks")
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

// gridSummary is the left half of the status bar.
func gridSummary(m Model) string {
	s := m.state
	return fmt.Sprintf("page %d/%d · %d records · %d selected · %d on this page",
		s.Page, s.TotalPages(), s.Total, s.Selection.Len(), s.SelectedOnPage())
}

// headerMismatchNote flags a header checkbox that reads checked only because
// the selection size matches the page size.
func headerMismatchNote(m Model) string {
	if m.state.HeaderChecked() && !m.state.PageFullySelected() {
		return "header counts a selection from another page"
	}
	return ""
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
