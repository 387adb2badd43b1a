package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/artgrid/internal/catalog"
	"github.com/jask/artgrid/internal/grid"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

// PageRequestMsg asks the loader to move to Page and fetch it.
type PageRequestMsg struct {
	Page int
}

// PageLoadedMsg settles the fetch tagged by Request.
type PageLoadedMsg struct {
	Request grid.Request
	Page    catalog.Page
}

// PageFailedMsg settles the fetch tagged by Request with an error.
type PageFailedMsg struct {
	Request grid.Request
	Err     error
}

// BulkSelectSubmittedMsg carries the raw popover input on submit.
type BulkSelectSubmittedMsg struct {
	Input string
}

type PushScreenMsg struct {
	Screen Screen
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

// ErrorStatusCmd reports input the grid could not act on.
func ErrorStatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, IsErr: true} }
}

func pushScreenCmd(s Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}
