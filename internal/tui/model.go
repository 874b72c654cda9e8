// Package tui implements the interactive grid editor for a planning table:
// a frozen row-label pane, a horizontally scrollable pane of unit columns,
// and a pinned header and totals footer that follow the body's scroll
// offset. Amount edits flow through the sanitizer into the grid store;
// totals recompute on every change through the store's subscription.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Kael-Dean/SKT-sub000/pkg/planning"
)

// Column geometry, in terminal cells.
const (
	codeWidth  = 6
	labelWidth = 28
	frozenGap  = 2
	colWidth   = 14

	// Rows of chrome around the scrollable body: title, header, footer,
	// status, help.
	chromeRows = 5
)

type unitsLoadedMsg struct {
	units []planning.Unit
	err   error
}

type cellsLoadedMsg struct {
	gen   uint64
	plan  planning.Plan
	cells []planning.PlanCell
	err   error
}

type saveDoneMsg struct {
	count int
	err   error
}

// Model is the bubbletea model of the grid editor. It owns the grid and
// the gateway; network calls run as tea.Cmd goroutines and their results
// come back into Update, so all grid mutation stays on the update loop.
type Model struct {
	store   planning.PlanStore
	unitDir planning.UnitDirectory
	gateway *planning.Gateway
	grid    *planning.Grid

	plan        planning.Plan
	table       planning.TableKind
	maxDecimals int

	units  []planning.Unit
	totals planning.Totals
	pos    planning.Position
	vp     planning.Viewport
	keys   keyMap

	status    string
	statusErr bool

	itemRows []planning.LineItem
	bodyRows []planning.LineItem
	// displayRow maps an editable row index to its body row index, so
	// vertical scroll-into-view accounts for section and subtotal rows.
	displayRow []int
}

// New builds the editor for one plan/table selection. The grid must be the
// one the gateway writes into.
func New(store planning.PlanStore, unitDir planning.UnitDirectory, gw *planning.Gateway,
	grid *planning.Grid, plan planning.Plan, table planning.TableKind, maxDecimals int) *Model {

	m := &Model{
		store:       store,
		unitDir:     unitDir,
		gateway:     gw,
		grid:        grid,
		plan:        plan,
		table:       table,
		maxDecimals: maxDecimals,
		keys:        defaultKeyMap(),
		status:      "loading units...",
		vp: planning.Viewport{
			FrozenWidth: codeWidth + labelWidth + frozenGap,
			Width:       80,
			Height:      20,
		},
	}
	m.itemRows = grid.Taxonomy().ItemRows()
	m.layoutRows()
	grid.Subscribe(func() { m.totals = planning.ComputeTotals(m.grid) })
	m.totals = planning.ComputeTotals(grid)
	return m
}

// layoutRows splits the taxonomy into the scrollable body (everything but
// the title and grand-total rows, which are pinned) and records where each
// editable row lands.
func (m *Model) layoutRows() {
	m.bodyRows = nil
	m.displayRow = nil
	for _, row := range m.grid.Taxonomy().Rows() {
		switch row.Kind {
		case planning.RowTitle, planning.RowGrandTotal:
			continue
		case planning.RowItem:
			m.displayRow = append(m.displayRow, len(m.bodyRows))
		}
		m.bodyRows = append(m.bodyRows, row)
	}
}

// Init starts the unit fetch.
func (m *Model) Init() tea.Cmd {
	return m.fetchUnits()
}

func (m *Model) fetchUnits() tea.Cmd {
	branch := m.plan.BranchID
	return func() tea.Msg {
		units, err := m.unitDir.Units(context.Background(), branch)
		return unitsLoadedMsg{units: units, err: err}
	}
}

func (m *Model) fetchCells(gen uint64, plan planning.Plan) tea.Cmd {
	return func() tea.Msg {
		cells, err := m.store.LoadCells(context.Background(), plan)
		return cellsLoadedMsg{gen: gen, plan: plan, cells: cells, err: err}
	}
}

func (m *Model) submit(plan planning.Plan, rows []planning.RowSubmission) tea.Cmd {
	return func() tea.Msg {
		count, err := m.store.SaveRows(context.Background(), plan, rows)
		return saveDoneMsg{count: count, err: err}
	}
}

// Update is the single mutation point of the editor.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - chromeRows
		m.clampViewport()
		return m, nil

	case unitsLoadedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.units = msg.units
		ids := make([]string, len(msg.units))
		for i, u := range msg.units {
			ids[i] = u.ID
		}
		// One reshape per unit-set change.
		m.grid.Reshape(ids)
		m.pos = planning.Position{}
		m.clampViewport()
		m.setStatus("loading amounts...")
		gen := m.gateway.BeginLoad(m.plan)
		return m, m.fetchCells(gen, m.plan)

	case cellsLoadedMsg:
		err := m.gateway.ApplyLoad(msg.gen, msg.plan, msg.cells, msg.err)
		switch {
		case errors.Is(err, planning.ErrStaleLoad):
			// Superseded by a newer load; drop silently.
		case err != nil:
			m.setError(err)
		default:
			m.setStatus("loaded")
		}
		return m, nil

	case saveDoneMsg:
		m.gateway.FinishSave(msg.err)
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("saved %d rows, reloading...", msg.count))
		gen := m.gateway.BeginLoad(m.plan)
		return m, m.fetchCells(gen, m.plan)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case keyMatches(msg, k.Quit):
		return m, tea.Quit

	case keyMatches(msg, k.Up):
		m.move(planning.NavUp)
	case keyMatches(msg, k.Down):
		m.move(planning.NavDown)
	case keyMatches(msg, k.Left):
		m.move(planning.NavLeft)
	case keyMatches(msg, k.Right):
		m.move(planning.NavRight)
	case keyMatches(msg, k.Enter):
		m.move(planning.NavEnter)

	case keyMatches(msg, k.Backspace):
		cur := []rune(m.activeCellText())
		if len(cur) > 0 {
			m.setActiveCell(string(cur[:len(cur)-1]))
		}
	case keyMatches(msg, k.Clear):
		m.setActiveCell("")

	case keyMatches(msg, k.Save):
		return m.startSave()
	case keyMatches(msg, k.Reload):
		m.setStatus("reloading...")
		gen := m.gateway.BeginLoad(m.plan)
		return m, m.fetchCells(gen, m.plan)

	default:
		if s := msg.String(); len(s) == 1 && (s == "." || (s[0] >= '0' && s[0] <= '9')) {
			m.setActiveCell(m.activeCellText() + s)
		}
	}
	return m, nil
}

// startSave runs the unmapped-row precondition on the update loop and only
// then hands the batch to a command; a row that cannot be persisted aborts
// here, before any network call.
func (m *Model) startSave() (tea.Model, tea.Cmd) {
	rows, err := m.gateway.BuildBatch(m.plan)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	if err := m.gateway.BeginSave(); err != nil {
		m.setError(err)
		return m, nil
	}
	m.setStatus("saving...")
	return m, m.submit(m.plan, rows)
}

func (m *Model) move(key planning.NavKey) {
	if len(m.itemRows) == 0 || len(m.grid.UnitIDs()) == 0 {
		return
	}
	m.pos = planning.Navigate(m.pos, key, len(m.itemRows), len(m.grid.UnitIDs()))
	m.vp.EnsureVisible(m.pos.Col*colWidth, colWidth, m.displayRow[m.pos.Row])
}

func (m *Model) activeCellText() string {
	if len(m.itemRows) == 0 || len(m.grid.UnitIDs()) == 0 {
		return ""
	}
	return m.grid.Get(m.itemRows[m.pos.Row].Code, m.grid.UnitIDs()[m.pos.Col])
}

func (m *Model) setActiveCell(raw string) {
	if len(m.itemRows) == 0 || len(m.grid.UnitIDs()) == 0 {
		return
	}
	code := m.itemRows[m.pos.Row].Code
	unit := m.grid.UnitIDs()[m.pos.Col]
	m.grid.Set(code, unit, planning.Sanitize(raw, m.maxDecimals))
	m.statusErr = false
}

func (m *Model) clampViewport() {
	contentWidth := (len(m.grid.UnitIDs()) + 1) * colWidth // units + total column
	m.vp.Clamp(contentWidth, len(m.bodyRows))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = errorText(err)
	m.statusErr = true
}

// errorText renders an error kind as the user-facing status message. Every
// failure is recoverable by retrying the triggering action.
func errorText(err error) string {
	var unmapped *planning.UnmappedDataError
	switch {
	case errors.As(err, &unmapped):
		return "cannot save: " + unmapped.Error()
	case errors.Is(err, planning.ErrAuth):
		return "not authorized: sign in again and retry"
	case errors.Is(err, planning.ErrNotFound):
		return "no plan data on the server for this selection"
	case errors.Is(err, planning.ErrValidation):
		return "the server rejected the submitted amounts"
	case errors.Is(err, planning.ErrNetwork):
		return "server unreachable: check the connection and retry"
	case errors.Is(err, planning.ErrSaveInProgress):
		return "a save is already running"
	default:
		return err.Error()
	}
}
