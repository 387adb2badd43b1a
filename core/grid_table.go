package core

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"github.com/jask/artgrid/internal/catalog"
	"github.com/jask/artgrid/widgets"
)

const (
	checkColWidth = 9
	codeColWidth  = 7
	// each bubbles table cell carries one column of padding on either side
	cellPadding = 2
	gridColumns = 4
	// header, status and footer bars
	chromeRows = 3
)

func (m Model) bodyHeight() int {
	return max(0, m.height-chromeRows)
}

// paneContentWidth is the width inside the pane border and its padding.
func (m Model) paneContentWidth() int {
	return max(1, m.width-4)
}

func (m Model) columns() []table.Column {
	avail := max(0, m.paneContentWidth()-gridColumns*cellPadding-checkColWidth-codeColWidth)
	category := max(8, avail*3/10)
	name := max(8, avail-category)
	return []table.Column{
		{Title: headerCheckTitle(m.state.HeaderChecked()), Width: checkColWidth},
		{Title: "Code", Width: codeColWidth},
		{Title: "Name", Width: name},
		{Title: "Category", Width: category},
	}
}

func headerCheckTitle(checked bool) string {
	return widgets.Checkbox(checked) + " All ▾"
}

// layoutTable sizes the table to the pane, leaving a row for the paginator.
func (m *Model) layoutTable() {
	inner := max(3, m.bodyHeight()-2)
	m.table.SetColumns(m.columns())
	m.table.SetWidth(m.paneContentWidth())
	m.table.SetHeight(max(2, inner-1))
}

// syncTable rebuilds rows and the header checkbox from grid state. A fresh
// page puts the cursor back on its first row.
func (m *Model) syncTable(resetCursor bool) {
	m.table.SetColumns(m.columns())
	rows := make([]table.Row, 0, len(m.state.Records))
	for _, r := range m.state.Records {
		rows = append(rows, table.Row{
			widgets.Checkbox(m.state.IsSelected(r.ID)),
			strconv.Itoa(r.ID),
			r.Title,
			r.CategoryTitles,
		})
	}
	m.table.SetRows(rows)
	cursor := m.table.Cursor()
	if resetCursor || cursor < 0 {
		cursor = 0
	}
	if len(rows) > 0 {
		m.table.SetCursor(min(cursor, len(rows)-1))
	}
}

func (m Model) cursorRecord() (catalog.Record, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.state.Records) {
		return catalog.Record{}, false
	}
	return m.state.Records[c], true
}
