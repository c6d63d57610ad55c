package dashboard

// view.go - pure rendering from model state

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/fleetdash/internal/client"
	"github.com/leapstack-labs/fleetdash/internal/pivot"
)

const chartBarWidth = 40

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			MarginTop(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			MarginRight(1)

	cardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cardValueStyle = lipgloss.NewStyle().Bold(true)

	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)

	monthStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(5)
)

// View renders the dashboard as a pure function of the current state.
func (m Model) View() string {
	switch m.state {
	case StateFailed:
		return m.failedView()
	case StateReady:
		return m.readyView()
	default:
		return m.loadingView()
	}
}

func (m Model) loadingView() string {
	return fmt.Sprintf("\n  %s Loading fleet data from %s...\n", m.spinner.View(), m.baseURL)
}

func (m Model) failedView() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(errorStyle.Render("  Unable to load dashboard data"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %v\n\n", m.err))
	b.WriteString(hintStyle.Render(fmt.Sprintf("  Is the backend running at %s? Try: fleetdash serve", m.baseURL)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) readyView() string {
	var sections []string

	sections = append(sections, titleStyle.Render("Fleet Performance Dashboard"))
	sections = append(sections, renderCards(m.snapshot))
	sections = append(sections, sectionStyle.Render("Availability Trend"))
	sections = append(sections, renderTrend(m.trend))
	sections = append(sections, sectionStyle.Render("Monthly Records"))
	sections = append(sections, m.table.View())
	sections = append(sections, helpStyle.Render("↑/↓: scroll table • q: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// renderCards renders one summary card per fleet.
func renderCards(snap *client.Snapshot) string {
	if len(snap.Summary) == 0 {
		return hintStyle.Render("No fleet summaries available.")
	}

	cards := make([]string, 0, len(snap.Summary))
	for i, s := range snap.Summary {
		name := lipgloss.NewStyle().
			Bold(true).
			Foreground(pivot.ColorFor(i)).
			Render(s.FleetID)

		body := lipgloss.JoinVertical(lipgloss.Left,
			name,
			cardLabelStyle.Render("Avg availability ")+cardValueStyle.Render(fmt.Sprintf("%.1f%%", s.AvgAvailability)),
			cardLabelStyle.Render("Missions         ")+cardValueStyle.Render(fmt.Sprintf("%d", s.TotalMissions)),
			cardLabelStyle.Render("Maintenance      ")+cardValueStyle.Render(fmt.Sprintf("%.0f h", s.TotalMaintenanceHours)),
		)
		cards = append(cards, cardStyle.Render(body))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderTrend renders the pivoted availability data as one colored bar
// per fleet per month. A fleet with no record for a month renders no bar.
func renderTrend(res pivot.Result) string {
	if len(res.Rows) == 0 {
		return hintStyle.Render("No trend data available.")
	}

	colors := make(map[string]lipgloss.Color, len(res.Fleets))
	for i, id := range res.Fleets {
		colors[id] = pivot.ColorFor(i)
	}

	var lines []string
	for _, row := range res.Rows {
		label := monthStyle.Render(row.Month)
		for _, id := range res.Fleets {
			v, ok := row.Value(id)
			if !ok {
				continue
			}
			bar := renderBar(v, colors[id])
			lines = append(lines, fmt.Sprintf("%s %-8s %s %3.0f%%", label, id, bar, v))
			label = monthStyle.Render("")
		}
	}
	return strings.Join(lines, "\n")
}

// renderBar renders availability (0-100) as a proportional colored bar.
func renderBar(availability float64, color lipgloss.Color) string {
	if availability < 0 {
		availability = 0
	}
	if availability > 100 {
		availability = 100
	}
	filled := int(availability / 100 * chartBarWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", chartBarWidth-filled)
	return lipgloss.NewStyle().Foreground(color).Render(bar)
}
