package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/fleetdash/internal/cli/output"
	"github.com/leapstack-labs/fleetdash/internal/client"
	"github.com/leapstack-labs/fleetdash/internal/pivot"
)

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print a one-shot fleet performance report",
		Long: `Fetch fleet data once and print a static report.

Output adapts to environment:
  - Terminal: styled tables
  - Piped/Scripted: markdown format (agent-friendly)
  - JSON: machine-readable snapshot

Use --output to override: auto, text, markdown, json`,
		Example: `  # Print a report (auto-detect output format)
  fleetdash report

  # Machine-readable snapshot
  fleetdash report --output json

  # Markdown report for scripts and agents
  fleetdash report --output markdown`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd)
		},
	}
}

func runReport(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	snap, err := cmdCtx.NewClient().Fetch(cmd.Context())
	if err != nil {
		r.Errorf("Unable to load dashboard data: %v", err)
		r.Errorf("Is the backend running at %s? Try: fleetdash serve", cmdCtx.Cfg.BaseURL)
		return err
	}

	trend := pivot.Pivot(snap.Data)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return reportJSON(r, snap, trend)
	case output.ModeMarkdown:
		return reportMarkdown(r, snap, trend)
	default:
		return reportText(r, snap, trend)
	}
}

// reportText renders styled tables for interactive terminals.
func reportText(r *output.Renderer, snap *client.Snapshot, trend pivot.Result) error {
	styles := r.Styles()

	r.Println(styles.Title.Render("Fleet Performance Report"))
	r.Println(styles.Label.Render("Fetched ") + styles.Value.Render(snap.FetchedAt.Format(time.RFC3339)))
	r.Println("")

	r.Header(2, fmt.Sprintf("Fleet Summary (%d fleets)", len(snap.Summary)))
	summaryTable(r, snap)

	r.Println("")
	r.Header(2, fmt.Sprintf("Availability by Month (%d months)", len(trend.Rows)))
	trendTable(r, trend)
	return nil
}

func summaryTable(r *output.Renderer, snap *client.Snapshot) {
	if len(snap.Summary) == 0 {
		r.Println(r.Styles().Muted.Render("(0 fleets)"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Fleet", "Avg Availability", "Total Missions", "Maintenance (h)"})
	for _, s := range snap.Summary {
		t.AppendRow(table.Row{
			s.FleetID,
			fmt.Sprintf("%.1f%%", s.AvgAvailability),
			s.TotalMissions,
			fmt.Sprintf("%.0f", s.TotalMaintenanceHours),
		})
	}
	t.Render()
}

func trendTable(r *output.Renderer, trend pivot.Result) {
	if len(trend.Rows) == 0 {
		r.Println(r.Styles().Muted.Render("(0 months)"))
		return
	}

	header := table.Row{"Month"}
	for _, id := range trend.Fleets {
		header = append(header, id)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	for _, row := range trend.Rows {
		pretty := table.Row{row.Month}
		for _, id := range trend.Fleets {
			pretty = append(pretty, formatCell(row, id))
		}
		t.AppendRow(pretty)
	}
	t.Render()
}

// reportMarkdown renders pipe tables for piped output.
func reportMarkdown(r *output.Renderer, snap *client.Snapshot, trend pivot.Result) error {
	r.Header(1, "Fleet Performance Report")
	r.Println("")
	r.Println(output.FormatKeyValue("Fetched", snap.FetchedAt.Format(time.RFC3339)))
	r.Println(output.FormatKeyValue("Fleets", fmt.Sprintf("%d", len(snap.Summary))))
	r.Println("")
	r.Header(2, "Fleet Summary")
	r.Println("")

	if len(snap.Summary) == 0 {
		r.Println("(0 fleets)")
	} else {
		r.Println("| Fleet | Avg Availability | Total Missions | Maintenance (h) |")
		r.Println("| --- | --- | --- | --- |")
		for _, s := range snap.Summary {
			r.Printf("| %s | %.1f%% | %d | %.0f |\n",
				s.FleetID, s.AvgAvailability, s.TotalMissions, s.TotalMaintenanceHours)
		}
	}

	r.Println("")
	r.Header(2, "Availability by Month")
	r.Println("")

	if len(trend.Rows) == 0 {
		r.Println("(0 months)")
		return nil
	}

	r.Printf("| Month | %s |\n", strings.Join(trend.Fleets, " | "))
	seps := make([]string, len(trend.Fleets)+1)
	for i := range seps {
		seps[i] = "---"
	}
	r.Printf("| %s |\n", strings.Join(seps, " | "))
	for _, row := range trend.Rows {
		cells := make([]string, 0, len(trend.Fleets)+1)
		cells = append(cells, row.Month)
		for _, id := range trend.Fleets {
			cells = append(cells, formatCell(row, id))
		}
		r.Printf("| %s |\n", strings.Join(cells, " | "))
	}
	return nil
}

// reportJSON renders the machine-readable snapshot. Trend rows carry a
// month field plus one field per fleet with a record that month; fleets
// without a record are absent, not null.
func reportJSON(r *output.Renderer, snap *client.Snapshot, trend pivot.Result) error {
	rows := make([]map[string]any, 0, len(trend.Rows))
	for _, row := range trend.Rows {
		m := make(map[string]any, len(row.Values)+1)
		m["month"] = row.Month
		for id, v := range row.Values {
			m[id] = v
		}
		rows = append(rows, m)
	}

	return r.JSON(map[string]any{
		"fetched_at": snap.FetchedAt,
		"summary":    snap.Summary,
		"fleets":     trend.Fleets,
		"trend":      rows,
	})
}

// formatCell renders one fleet's availability in a month, or a dash when
// the fleet has no record for that month.
func formatCell(row pivot.Row, fleetID string) string {
	v, ok := row.Value(fleetID)
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", v)
}
