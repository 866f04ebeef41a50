package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ezytask/ezytask/internal/model"
	"github.com/ezytask/ezytask/internal/views"
)

var boardFlagQuery string

// boardCmd shows the kanban board for the active project.
var boardCmd = &cobra.Command{
	Use:     "board",
	Aliases: []string{"kanban"},
	Short:   "Show the kanban board for the active project",
	Args:    cobra.NoArgs,
	RunE:    runBoard,
}

func init() {
	boardCmd.Flags().StringVarP(&boardFlagQuery, "query", "q", "", "Filter by title or description")
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	tasks := views.Filter(ctx.Store.Tasks(), ctx.Store.ActiveProjectID(), boardFlagQuery)
	cols := views.Columns(tasks)
	today := model.Today()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintBoard(cols, today)
	}
	ctx.CLIFormatter().PrintBoard(cols, today)
	return nil
}
