// Package dashboard implements the interactive terminal dashboard: a
// three-state view (loading, ready, failed) over one acquisition of the
// fleet API. Acquisition runs exactly once per mount; the terminal
// states never transition back to loading.
package dashboard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/fleetdash/internal/client"
	"github.com/leapstack-labs/fleetdash/internal/pivot"
)

// State is the dashboard lifecycle state.
type State int

const (
	// StateLoading is the initial state while acquisition is in flight.
	StateLoading State = iota
	// StateReady means acquisition succeeded; terminal.
	StateReady
	// StateFailed means acquisition failed; terminal.
	StateFailed
)

// Fetcher acquires one snapshot of the fleet API.
type Fetcher interface {
	Fetch(ctx context.Context) (*client.Snapshot, error)
}

// dataMsg carries a successful acquisition.
type dataMsg struct {
	snapshot *client.Snapshot
}

// errMsg carries a failed acquisition.
type errMsg struct {
	err error
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	ctx     context.Context
	fetcher Fetcher
	baseURL string

	state    State
	snapshot *client.Snapshot
	trend    pivot.Result
	err      error

	spinner spinner.Model
	table   table.Model
	width   int
}

// New creates a dashboard model in the loading state. The context bounds
// the acquisition: cancelling it aborts an in-flight fetch so a closed
// dashboard never updates state afterwards.
func New(ctx context.Context, fetcher Fetcher, baseURL string) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	return Model{
		ctx:     ctx,
		fetcher: fetcher,
		baseURL: baseURL,
		state:   StateLoading,
		spinner: sp,
	}
}

// State returns the current lifecycle state.
func (m Model) State() State {
	return m.state
}

// Err returns the acquisition error, if any.
func (m Model) Err() error {
	return m.err
}

// Init starts the spinner and fires the acquisition command. This is the
// single fetch of the mount; nothing re-triggers it.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

// fetch performs the acquisition and resolves to dataMsg or errMsg.
func (m Model) fetch() tea.Msg {
	snap, err := m.fetcher.Fetch(m.ctx)
	if err != nil {
		return errMsg{err: err}
	}
	return dataMsg{snapshot: snap}
}

// Update is a pure reducer over the two acquisition events plus input
// and terminal events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case dataMsg:
		if m.state != StateLoading {
			return m, nil
		}
		m.state = StateReady
		m.snapshot = msg.snapshot
		m.trend = pivot.Pivot(msg.snapshot.Data)
		m.table = newRecordTable(msg.snapshot)
		return m, nil

	case errMsg:
		if m.state != StateLoading {
			return m, nil
		}
		m.state = StateFailed
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.state == StateReady {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// newRecordTable builds the raw-record table from a snapshot.
func newRecordTable(snap *client.Snapshot) table.Model {
	columns := []table.Column{
		{Title: "Fleet", Width: 10},
		{Title: "Month", Width: 7},
		{Title: "Availability", Width: 13},
		{Title: "Missions", Width: 10},
		{Title: "Maintenance (h)", Width: 16},
	}

	rows := make([]table.Row, 0, len(snap.Data))
	for _, rec := range snap.Data {
		rows = append(rows, table.Row{
			rec.FleetID,
			rec.Month,
			fmt.Sprintf("%.0f%%", rec.Availability),
			fmt.Sprintf("%d", rec.MissionsComplete),
			fmt.Sprintf("%.0f", rec.MaintenanceHours),
		})
	}

	height := len(rows)
	if height > 12 {
		height = 12
	}
	if height < 1 {
		height = 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return t
}
