package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/fleetdash/internal/dashboard"
)

// NewViewCommand creates the view command.
func NewViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the interactive fleet dashboard",
		Long: `Open the fleet performance dashboard in the terminal.

The dashboard fetches fleet data and the per-fleet summary from the
backend, then renders summary cards, an availability trend chart, and a
table of monthly records. The data is fetched once when the dashboard
opens; quit and reopen to refresh.`,
		Example: `  # Open the dashboard against the default backend
  fleetdash view

  # Point at a different backend
  fleetdash view --base-url http://fleet-api:8080`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd)
		},
	}
}

func runView(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	c := cmdCtx.NewClient()

	m := dashboard.New(cmd.Context(), c, c.BaseURL())
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
