package core

import (
	"context"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/artgrid/internal/catalog"
	"github.com/jask/artgrid/internal/grid"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// PageSource fetches one page of the remote catalog.
type PageSource interface {
	FetchPage(ctx context.Context, page int) (catalog.Page, error)
}

type Model struct {
	ctx       context.Context
	width     int
	height    int
	source    PageSource
	logger    zerolog.Logger
	state     grid.State
	startPage int
	cancel    context.CancelFunc
	table     table.Model
	pager     paginator.Model
	spinner   spinner.Model
	screens   ScreenStack
	keys      *KeyRegistry
	status    string
	statusErr bool
	quitting  bool
	confirmed bool

	OpenBulkSelect func(m *Model) Screen
}

func NewModel(ctx context.Context, source PageSource, keys *KeyRegistry, logger zerolog.Logger, startPage int) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	startPage = max(1, startPage)

	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.PerPage = grid.PageSize
	pager.TotalPages = startPage
	pager.Page = startPage - 1

	m := Model{
		ctx:       ctx,
		source:    source,
		keys:      keys,
		logger:    logger,
		state:     grid.New(),
		startPage: startPage,
		table: table.New(
			table.WithFocused(true),
			table.WithStyles(gridTableStyles()),
		),
		pager:   pager,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		width:   100,
		height:  24,
	}
	m.layoutTable()
	m.syncTable(true)
	return m
}

func (m Model) Init() tea.Cmd {
	start := m.startPage
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return PageRequestMsg{Page: start} },
	)
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return ScopeGrid
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

// State returns the current grid state.
func (m Model) State() grid.State {
	return m.state
}

// Selection returns the selected records in the order they were selected.
func (m Model) Selection() []catalog.Record {
	return m.state.Selection.Records()
}

// Confirmed reports whether the program ended through the confirm action.
func (m Model) Confirmed() bool {
	return m.confirmed
}
