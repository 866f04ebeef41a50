package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ezytask/ezytask/internal/model"
	"github.com/ezytask/ezytask/internal/tui"
	"github.com/ezytask/ezytask/internal/views"
)

// upcomingLimit caps the "focus next" list.
const upcomingLimit = 4

// dashboardCmd launches the interactive dashboard.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "ui"},
	Short:   "Open the interactive dashboard",
	Long: `Open the full-screen dashboard with three tabs: a stats overview,
the kanban board, and a due-date ordered task list.

With --format json or plain, prints the dashboard summary instead of
opening the interactive view.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if ctx.IsJSON() {
		return runDashboardSummary(cmd, args)
	}
	return tui.Run(ctx.Store, ctx.Theme())
}

// runDashboardSummary prints the non-interactive dashboard summary.
func runDashboardSummary(cmd *cobra.Command, args []string) error {
	tasks := views.Filter(ctx.Store.Tasks(), ctx.Store.ActiveProjectID(), "")
	stats := views.Summarize(tasks)
	upcoming := views.Upcoming(tasks, upcomingLimit)
	today := model.Today()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintDashboard(stats, upcoming, today)
	}

	f := ctx.CLIFormatter()
	if p := ctx.Store.ActiveProject(); p != nil {
		f.Title(p.Name)
	}
	f.PrintStats(stats)
	f.PrintUpcoming(upcoming, today)
	return nil
}
