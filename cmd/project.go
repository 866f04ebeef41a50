package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/ezytask/ezytask/internal/errors"
	"github.com/ezytask/ezytask/internal/validate"
)

// projectCmd represents the project command.
var projectCmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"projects", "p"},
	Short:   "Manage projects",
	Long: `List projects, create new ones, switch the active project, or delete one.

Deleting a project also removes its tasks.

Examples:
  ezytask project
  ezytask project create "Core Strategy" --color "#10B981"
  ezytask project switch p2
  ezytask project delete p3`,
	RunE: runProjectList,
}

var projectCreateFlagColor string

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Args:  cobra.NoArgs,
	RunE:  runProjectList,
}

var projectCreateCmd = &cobra.Command{
	Use:     "create NAME",
	Aliases: []string{"add", "new"},
	Short:   "Create a new project and make it active",
	Args:    cobra.ExactArgs(1),
	RunE:    runProjectCreate,
}

var projectSwitchCmd = &cobra.Command{
	Use:     "switch PROJECT_ID",
	Aliases: []string{"use"},
	Short:   "Switch the active project",
	Args:    cobra.ExactArgs(1),
	RunE:    runProjectSwitch,
}

var projectDeleteCmd = &cobra.Command{
	Use:     "delete PROJECT_ID",
	Aliases: []string{"rm"},
	Short:   "Delete a project and its tasks",
	Args:    cobra.ExactArgs(1),
	RunE:    runProjectDelete,
}

func init() {
	projectCreateCmd.Flags().StringVarP(&projectCreateFlagColor, "color", "c", "", "Hex color (#RRGGBB)")

	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectSwitchCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}

// projectTaskCounts maps project id to its task count.
func projectTaskCounts() map[string]int {
	counts := make(map[string]int)
	for _, t := range ctx.Store.Tasks() {
		counts[t.ProjectID]++
	}
	return counts
}

func runProjectList(cmd *cobra.Command, args []string) error {
	projects := ctx.Store.Projects()
	activeID := ctx.Store.ActiveProjectID()
	counts := projectTaskCounts()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintProjects(projects, activeID, counts)
	}

	f := ctx.CLIFormatter()
	if len(projects) == 0 {
		f.Muted("No projects. Create one with 'ezytask project create'.")
		return nil
	}
	f.PrintProjects(projects, activeID, counts)
	return nil
}

func runProjectCreate(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if err := validate.ProjectName(name); err != nil {
		return err
	}
	if err := validate.HexColor(projectCreateFlagColor); err != nil {
		return err
	}

	project, err := ctx.Store.CreateProject(name, projectCreateFlagColor)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintProjects(ctx.Store.Projects(), project.ID, projectTaskCounts())
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Created project %s: %s (now active)", project.ID, project.Name))
	return nil
}

func runProjectSwitch(cmd *cobra.Command, args []string) error {
	id := args[0]
	project := ctx.Store.FindProject(id)
	if project == nil {
		return apperrors.ErrProjectNotFound
	}

	if err := ctx.Store.SetActiveProject(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintProjects(ctx.Store.Projects(), id, projectTaskCounts())
	}
	ctx.CLIFormatter().Success("Switched to " + project.Name)
	return nil
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	id := args[0]
	project := ctx.Store.FindProject(id)
	if project == nil {
		return apperrors.ErrProjectNotFound
	}
	name := project.Name
	removed := projectTaskCounts()[id]

	if err := ctx.Store.DeleteProject(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintProjects(ctx.Store.Projects(), ctx.Store.ActiveProjectID(), projectTaskCounts())
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Deleted %s and %d task(s)", name, removed))
	return nil
}
