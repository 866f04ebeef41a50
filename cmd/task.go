package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/ezytask/ezytask/internal/errors"
	"github.com/ezytask/ezytask/internal/model"
	"github.com/ezytask/ezytask/internal/parser"
	"github.com/ezytask/ezytask/internal/store"
	"github.com/ezytask/ezytask/internal/validate"
	"github.com/ezytask/ezytask/internal/views"
)

// taskCmd represents the task command.
var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks", "t"},
	Short:   "Manage tasks",
	Long: `List, add, edit, and complete tasks in the active project.

Examples:
  ezytask task
  ezytask task add "Finalize Q4 Roadmap" --priority high --due "next friday"
  ezytask task edit 3f2a --status doing
  ezytask task done 3f2a
  ezytask task delete 3f2a`,
	RunE: runTaskList,
}

// Task subcommand flags.
var (
	taskAddFlagDescription string
	taskAddFlagStatus      string
	taskAddFlagPriority    string
	taskAddFlagDue         string
	taskAddFlagTags        []string
	taskAddFlagAssignee    string

	taskEditFlagTitle       string
	taskEditFlagDescription string
	taskEditFlagStatus      string
	taskEditFlagPriority    string
	taskEditFlagDue         string
	taskEditFlagTags        []string
	taskEditFlagAssignee    string
	taskEditFlagAttach      []string
	taskEditFlagDetach      []string

	taskListFlagQuery  string
	taskListFlagStatus string
	taskListFlagAll    bool
)

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in the active project",
	Args:  cobra.NoArgs,
	RunE:  runTaskList,
}

var taskAddCmd = &cobra.Command{
	Use:     "add [TITLE]",
	Aliases: []string{"create", "new"},
	Short:   "Add a new task to the active project",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runTaskAdd,
}

var taskShowCmd = &cobra.Command{
	Use:   "show TASK_ID",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskShow,
}

var taskEditCmd = &cobra.Command{
	Use:   "edit TASK_ID",
	Short: "Edit a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskEdit,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done TASK_ID",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDone,
}

var taskDeleteCmd = &cobra.Command{
	Use:     "delete TASK_ID",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskDelete,
}

var taskSubtaskCmd = &cobra.Command{
	Use:     "subtask",
	Aliases: []string{"sub"},
	Short:   "Manage a task's checklist",
	Long: `Add, toggle, or remove subtasks on a task.

Examples:
  ezytask task subtask add 3f2a "Draft outline"
  ezytask task subtask done 3f2a s1
  ezytask task subtask rm 3f2a s1`,
}

var taskSubtaskAddCmd = &cobra.Command{
	Use:   "add TASK_ID TITLE",
	Short: "Add a subtask",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubtaskAdd,
}

var taskSubtaskDoneCmd = &cobra.Command{
	Use:     "done TASK_ID SUBTASK_ID",
	Aliases: []string{"toggle"},
	Short:   "Toggle a subtask's completion",
	Args:    cobra.ExactArgs(2),
	RunE:    runSubtaskToggle,
}

var taskSubtaskRmCmd = &cobra.Command{
	Use:     "rm TASK_ID SUBTASK_ID",
	Aliases: []string{"delete"},
	Short:   "Remove a subtask",
	Args:    cobra.ExactArgs(2),
	RunE:    runSubtaskRemove,
}

func init() {
	taskAddCmd.Flags().StringVarP(&taskAddFlagDescription, "description", "d", "", "Task description")
	taskAddCmd.Flags().StringVarP(&taskAddFlagStatus, "status", "s", "", "Status: todo, doing, done")
	taskAddCmd.Flags().StringVarP(&taskAddFlagPriority, "priority", "p", "", "Priority: low, medium, high")
	taskAddCmd.Flags().StringVar(&taskAddFlagDue, "due", "", "Due date (ISO date or natural language)")
	taskAddCmd.Flags().StringSliceVar(&taskAddFlagTags, "tag", nil, "Tag (repeatable)")
	taskAddCmd.Flags().StringVar(&taskAddFlagAssignee, "assignee", "", "Assignee member id")

	taskEditCmd.Flags().StringVarP(&taskEditFlagTitle, "title", "t", "", "Update title")
	taskEditCmd.Flags().StringVarP(&taskEditFlagDescription, "description", "d", "", "Update description")
	taskEditCmd.Flags().StringVarP(&taskEditFlagStatus, "status", "s", "", "Update status: todo, doing, done")
	taskEditCmd.Flags().StringVarP(&taskEditFlagPriority, "priority", "p", "", "Update priority: low, medium, high")
	taskEditCmd.Flags().StringVar(&taskEditFlagDue, "due", "", "Update due date")
	taskEditCmd.Flags().StringSliceVar(&taskEditFlagTags, "tag", nil, "Replace tags (repeatable)")
	taskEditCmd.Flags().StringVar(&taskEditFlagAssignee, "assignee", "", "Update assignee member id")
	taskEditCmd.Flags().StringSliceVar(&taskEditFlagAttach, "attach", nil, "Attach a file name (repeatable)")
	taskEditCmd.Flags().StringSliceVar(&taskEditFlagDetach, "detach", nil, "Remove an attachment by name (repeatable)")

	taskListCmd.Flags().StringVarP(&taskListFlagQuery, "query", "q", "", "Filter by title or description")
	taskListCmd.Flags().StringVarP(&taskListFlagStatus, "status", "s", "", "Filter by status")
	taskListCmd.Flags().BoolVarP(&taskListFlagAll, "all", "a", false, "Include tasks from all projects")

	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskSubtaskCmd.AddCommand(taskSubtaskAddCmd)
	taskSubtaskCmd.AddCommand(taskSubtaskDoneCmd)
	taskSubtaskCmd.AddCommand(taskSubtaskRmCmd)
	taskCmd.AddCommand(taskSubtaskCmd)
	rootCmd.AddCommand(taskCmd)
}

func runTaskList(cmd *cobra.Command, args []string) error {
	projectID := ctx.Store.ActiveProjectID()
	if taskListFlagAll {
		projectID = ""
	}

	tasks := views.Filter(ctx.Store.Tasks(), projectID, taskListFlagQuery)
	if taskListFlagStatus != "" {
		status, err := validate.Status(taskListFlagStatus)
		if err != nil {
			return err
		}
		filtered := make([]model.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.Status == status {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}
	tasks = views.ByDueDate(tasks)

	today := model.Today()
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTasks(tasks, today)
	}

	f := ctx.CLIFormatter()
	if len(tasks) == 0 {
		f.Muted("No tasks. Add one with 'ezytask task add'.")
		return nil
	}
	for i := range tasks {
		f.PrintTaskLine(&tasks[i], today)
	}
	return nil
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	draft := store.TaskDraft{
		Description: taskAddFlagDescription,
		Tags:        taskAddFlagTags,
		AssigneeID:  taskAddFlagAssignee,
	}
	if len(args) > 0 {
		draft.Title = strings.TrimSpace(args[0])
	}
	if err := validate.TaskTitle(draft.Title); err != nil {
		return err
	}
	if err := validate.Description(draft.Description); err != nil {
		return err
	}

	if taskAddFlagStatus != "" {
		status, err := validate.Status(taskAddFlagStatus)
		if err != nil {
			return err
		}
		draft.Status = status
	}
	if taskAddFlagPriority != "" {
		priority, err := validate.Priority(taskAddFlagPriority)
		if err != nil {
			return err
		}
		draft.Priority = priority
	}
	if taskAddFlagDue != "" {
		due, err := parser.ParseDueDate(taskAddFlagDue, time.Now())
		if err != nil {
			return err
		}
		draft.DueDate = due
	}

	task, err := ctx.Store.CreateTask(draft)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTask(&task, model.Today())
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Added task %s: %s", task.ID, task.Title))
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	task := ctx.Store.FindTask(args[0])
	if task == nil {
		return apperrors.ErrTaskNotFound
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTask(task, model.Today())
	}
	ctx.CLIFormatter().PrintTaskDetail(task, ctx.Store.Members(), model.Today())
	return nil
}

// buildEditPatch converts the set edit flags into a typed patch. The
// current task is needed to merge attachment adds and removals.
func buildEditPatch(cmd *cobra.Command, task *model.Task) (store.TaskPatch, error) {
	var patch store.TaskPatch

	if cmd.Flags().Changed("title") {
		if err := validate.TaskTitle(taskEditFlagTitle); err != nil {
			return patch, err
		}
		patch.Title = store.StringPtr(taskEditFlagTitle)
	}
	if cmd.Flags().Changed("description") {
		if err := validate.Description(taskEditFlagDescription); err != nil {
			return patch, err
		}
		patch.Description = store.StringPtr(taskEditFlagDescription)
	}
	if cmd.Flags().Changed("status") {
		status, err := validate.Status(taskEditFlagStatus)
		if err != nil {
			return patch, err
		}
		patch.Status = store.StatusPtr(status)
	}
	if cmd.Flags().Changed("priority") {
		priority, err := validate.Priority(taskEditFlagPriority)
		if err != nil {
			return patch, err
		}
		patch.Priority = store.PriorityPtr(priority)
	}
	if cmd.Flags().Changed("due") {
		due := taskEditFlagDue
		if due != "" {
			parsed, err := parser.ParseDueDate(due, time.Now())
			if err != nil {
				return patch, err
			}
			due = parsed
		}
		patch.DueDate = store.StringPtr(due)
	}
	if cmd.Flags().Changed("tag") {
		tags := taskEditFlagTags
		patch.Tags = &tags
	}
	if cmd.Flags().Changed("assignee") {
		patch.AssigneeID = store.StringPtr(taskEditFlagAssignee)
	}
	if len(taskEditFlagAttach) > 0 || len(taskEditFlagDetach) > 0 {
		merged := append([]string{}, task.Attachments...)
		for _, name := range taskEditFlagDetach {
			found := false
			for i, a := range merged {
				if a == name {
					merged = append(merged[:i], merged[i+1:]...)
					found = true
					break
				}
			}
			if !found {
				return patch, apperrors.ErrAttachmentNotFound
			}
		}
		merged = append(merged, taskEditFlagAttach...)
		patch.Attachments = &merged
	}

	return patch, nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	current := ctx.Store.FindTask(id)
	if current == nil {
		return apperrors.ErrTaskNotFound
	}

	patch, err := buildEditPatch(cmd, current)
	if err != nil {
		return err
	}
	if patch.IsZero() {
		ctx.CLIFormatter().Muted("Nothing to change.")
		return nil
	}

	// A manual edit supersedes any advisory request running for this task.
	if ctx.Advisor != nil {
		ctx.Advisor.Tracker().Cancel(id)
	}

	task, err := ctx.Store.UpdateTask(id, patch)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTask(task, model.Today())
	}
	ctx.CLIFormatter().Success("Updated " + task.Title)
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	id := args[0]
	if ctx.Store.FindTask(id) == nil {
		return apperrors.ErrTaskNotFound
	}

	if ctx.Advisor != nil {
		ctx.Advisor.Tracker().Cancel(id)
	}

	task, err := ctx.Store.UpdateTask(id, store.TaskPatch{
		Status: store.StatusPtr(model.StatusDone),
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTask(task, model.Today())
	}
	ctx.CLIFormatter().Success("Done: " + task.Title)
	return nil
}

// printSubtaskResult shows the task after a checklist edit.
func printSubtaskResult(task *model.Task, message string) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTask(task, model.Today())
	}
	f := ctx.CLIFormatter()
	f.Success(message)
	done, total := task.SubtaskProgress()
	f.Muted(fmt.Sprintf("  checklist: %d/%d done", done, total))
	return nil
}

func runSubtaskAdd(cmd *cobra.Command, args []string) error {
	id, title := args[0], strings.TrimSpace(args[1])
	if ctx.Store.FindTask(id) == nil {
		return apperrors.ErrTaskNotFound
	}
	if err := validate.TaskTitle(title); err != nil {
		return err
	}

	if ctx.Advisor != nil {
		ctx.Advisor.Tracker().Cancel(id)
	}

	task, err := ctx.Store.AddSubtask(id, title)
	if err != nil {
		return err
	}
	return printSubtaskResult(task, "Added subtask: "+title)
}

func runSubtaskToggle(cmd *cobra.Command, args []string) error {
	id, subID := args[0], args[1]
	if ctx.Store.FindTask(id) == nil {
		return apperrors.ErrTaskNotFound
	}

	if ctx.Advisor != nil {
		ctx.Advisor.Tracker().Cancel(id)
	}

	task, err := ctx.Store.ToggleSubtask(id, subID)
	if err != nil {
		return err
	}
	if task == nil {
		return apperrors.ErrSubtaskNotFound
	}
	return printSubtaskResult(task, "Toggled subtask "+subID)
}

func runSubtaskRemove(cmd *cobra.Command, args []string) error {
	id, subID := args[0], args[1]
	if ctx.Store.FindTask(id) == nil {
		return apperrors.ErrTaskNotFound
	}

	if ctx.Advisor != nil {
		ctx.Advisor.Tracker().Cancel(id)
	}

	task, err := ctx.Store.RemoveSubtask(id, subID)
	if err != nil {
		return err
	}
	if task == nil {
		return apperrors.ErrSubtaskNotFound
	}
	return printSubtaskResult(task, "Removed subtask "+subID)
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	id := args[0]
	task := ctx.Store.FindTask(id)
	if task == nil {
		return apperrors.ErrTaskNotFound
	}
	title := task.Title

	if ctx.Advisor != nil {
		ctx.Advisor.Tracker().Cancel(id)
	}

	if err := ctx.Store.DeleteTask(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintError("ok", "deleted "+id, "")
	}
	ctx.CLIFormatter().Success("Deleted " + title)
	return nil
}
