package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	apperrors "github.com/ezytask/ezytask/internal/errors"
	"github.com/ezytask/ezytask/internal/model"
	"github.com/ezytask/ezytask/internal/store"
	"github.com/ezytask/ezytask/internal/views"
)

// aiCmd groups the advisory operations.
var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Generative advisory for tasks",
	Long: `Advisory helpers backed by a generative model. Requires an API key
in EZYTASK_API_KEY or GEMINI_API_KEY.

Examples:
  ezytask ai refine 3f2a
  ezytask ai subtasks 3f2a
  ezytask ai briefing`,
}

// aiApply controls whether advisory results are written back to the task.
var aiApply bool

var aiRefineCmd = &cobra.Command{
	Use:   "refine TASK_ID",
	Short: "Rewrite a task description to be clearer and more actionable",
	Args:  cobra.ExactArgs(1),
	RunE:  runAIRefine,
}

var aiSubtasksCmd = &cobra.Command{
	Use:     "subtasks TASK_ID",
	Aliases: []string{"suggest"},
	Short:   "Suggest subtasks that break the task down",
	Args:    cobra.ExactArgs(1),
	RunE:    runAISubtasks,
}

var aiBriefingCmd = &cobra.Command{
	Use:   "briefing",
	Short: "Summarize pending work for the active project",
	Args:  cobra.NoArgs,
	RunE:  runAIBriefing,
}

func init() {
	aiRefineCmd.Flags().BoolVar(&aiApply, "apply", true, "Write the refined description back to the task")
	aiSubtasksCmd.Flags().BoolVar(&aiApply, "apply", true, "Append the suggested subtasks to the task")

	aiCmd.AddCommand(aiRefineCmd)
	aiCmd.AddCommand(aiSubtasksCmd)
	aiCmd.AddCommand(aiBriefingCmd)
	rootCmd.AddCommand(aiCmd)
}

// advisorTask resolves a task argument and checks advisor availability.
func advisorTask(id string) (*model.Task, error) {
	if ctx.Advisor == nil || !ctx.Advisor.Available() {
		return nil, apperrors.ErrAdvisorUnavailable
	}
	task := ctx.Store.FindTask(id)
	if task == nil {
		return nil, apperrors.ErrTaskNotFound
	}
	return task, nil
}

func runAIRefine(cmd *cobra.Command, args []string) error {
	task, err := advisorTask(args[0])
	if err != nil {
		return err
	}

	refined := ctx.Advisor.RefineDescription(cmd.Context(), *task)
	if refined == "" {
		return apperrors.ErrAdvisorUnavailable
	}

	if aiApply {
		task, err = ctx.Store.UpdateTask(task.ID, store.TaskPatch{
			Description: store.StringPtr(refined),
		})
		if err != nil {
			return err
		}
		if task == nil {
			// The task was deleted while the request was in flight.
			return apperrors.ErrTaskNotFound
		}
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTask(task, model.Today())
	}
	f := ctx.CLIFormatter()
	f.Title("Refined description")
	f.Println(refined)
	return nil
}

func runAISubtasks(cmd *cobra.Command, args []string) error {
	task, err := advisorTask(args[0])
	if err != nil {
		return err
	}

	titles := ctx.Advisor.SuggestSubtasks(cmd.Context(), *task)
	if len(titles) == 0 {
		return apperrors.ErrAdvisorUnavailable
	}

	if aiApply {
		merged := append([]model.SubTask{}, task.Subtasks...)
		for _, title := range titles {
			merged = append(merged, model.SubTask{ID: uuid.NewString(), Title: title})
		}
		task, err = ctx.Store.UpdateTask(task.ID, store.TaskPatch{Subtasks: &merged})
		if err != nil {
			return err
		}
		if task == nil {
			return apperrors.ErrTaskNotFound
		}
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTask(task, model.Today())
	}
	f := ctx.CLIFormatter()
	f.Title("Suggested subtasks")
	for i, title := range titles {
		f.Println(fmt.Sprintf("  %d. %s", i+1, title))
	}
	return nil
}

func runAIBriefing(cmd *cobra.Command, args []string) error {
	if ctx.Advisor == nil || !ctx.Advisor.Available() {
		return apperrors.ErrAdvisorUnavailable
	}

	tasks := views.Filter(ctx.Store.Tasks(), ctx.Store.ActiveProjectID(), "")
	pending := views.Pending(tasks)

	insight := ctx.Advisor.DailyBriefing(cmd.Context(), pending)
	if insight == nil {
		return apperrors.ErrAdvisorUnavailable
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintInsight(insight)
	}
	ctx.CLIFormatter().PrintInsight(insight)
	return nil
}
