package output

import (
	"time"

	"github.com/ezytask/ezytask/internal/ai"
	"github.com/ezytask/ezytask/internal/model"
	"github.com/ezytask/ezytask/internal/views"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// TaskOutput represents a task in JSON output.
type TaskOutput struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	Priority    string          `json:"priority"`
	DueDate     string          `json:"due_date"`
	Overdue     bool            `json:"overdue"`
	Tags        []string        `json:"tags"`
	Subtasks    []model.SubTask `json:"subtasks"`
	AssigneeID  string          `json:"assignee_id,omitempty"`
	Attachments []string        `json:"attachments"`
	CreatedAt   string          `json:"created_at"`
}

// NewTaskOutput creates a TaskOutput from a Task.
func NewTaskOutput(t *model.Task, today string) *TaskOutput {
	return &TaskOutput{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		Overdue:     t.IsOverdue(today),
		Tags:        t.Tags,
		Subtasks:    t.Subtasks,
		AssigneeID:  t.AssigneeID,
		Attachments: t.Attachments,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

// TasksResponse represents the task list output in JSON.
type TasksResponse struct {
	Tasks      []*TaskOutput `json:"tasks"`
	TotalCount int           `json:"total_count"`
}

// NewTasksResponse builds a TasksResponse from a task slice.
func NewTasksResponse(tasks []model.Task, today string) TasksResponse {
	out := make([]*TaskOutput, len(tasks))
	for i := range tasks {
		out[i] = NewTaskOutput(&tasks[i], today)
	}
	return TasksResponse{Tasks: out, TotalCount: len(out)}
}

// ProjectOutput represents a project in JSON output.
type ProjectOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	Active    bool   `json:"active"`
	TaskCount int    `json:"task_count"`
}

// ProjectsResponse represents the project list output in JSON.
type ProjectsResponse struct {
	Projects []*ProjectOutput `json:"projects"`
}

// BoardResponse represents the board view in JSON.
type BoardResponse struct {
	Columns []BoardColumn `json:"columns"`
}

// BoardColumn is one status bucket in JSON output.
type BoardColumn struct {
	Status string        `json:"status"`
	Tasks  []*TaskOutput `json:"tasks"`
}

// NewBoardResponse builds a BoardResponse from view columns.
func NewBoardResponse(cols []views.Column, today string) BoardResponse {
	out := BoardResponse{Columns: make([]BoardColumn, len(cols))}
	for i, col := range cols {
		bc := BoardColumn{Status: string(col.Status), Tasks: make([]*TaskOutput, len(col.Tasks))}
		for j := range col.Tasks {
			bc.Tasks[j] = NewTaskOutput(&col.Tasks[j], today)
		}
		out.Columns[i] = bc
	}
	return out
}

// DashboardResponse represents the dashboard view in JSON.
type DashboardResponse struct {
	Stats    views.Stats   `json:"stats"`
	Upcoming []*TaskOutput `json:"upcoming"`
}

// InsightResponse represents a daily briefing in JSON.
type InsightResponse struct {
	Status  string      `json:"status"`
	Insight *ai.Insight `json:"insight,omitempty"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintError outputs an error as JSON.
func (j *JSONFormatter) PrintError(status, message, suggestion string) error {
	return j.JSON(ErrorResponse{Status: status, Error: message, Suggestion: suggestion})
}

// PrintTask outputs a single task as JSON.
func (j *JSONFormatter) PrintTask(t *model.Task, today string) error {
	return j.JSON(NewTaskOutput(t, today))
}

// PrintTasks outputs a task list as JSON.
func (j *JSONFormatter) PrintTasks(tasks []model.Task, today string) error {
	return j.JSON(NewTasksResponse(tasks, today))
}

// PrintProjects outputs the project list as JSON.
func (j *JSONFormatter) PrintProjects(projects []model.Project, activeID string, taskCounts map[string]int) error {
	resp := ProjectsResponse{Projects: make([]*ProjectOutput, len(projects))}
	for i, p := range projects {
		resp.Projects[i] = &ProjectOutput{
			ID:        p.ID,
			Name:      p.Name,
			Color:     p.Color,
			Active:    p.ID == activeID,
			TaskCount: taskCounts[p.ID],
		}
	}
	return j.JSON(resp)
}

// PrintBoard outputs the board view as JSON.
func (j *JSONFormatter) PrintBoard(cols []views.Column, today string) error {
	return j.JSON(NewBoardResponse(cols, today))
}

// PrintDashboard outputs the dashboard summary as JSON.
func (j *JSONFormatter) PrintDashboard(stats views.Stats, upcoming []model.Task, today string) error {
	resp := DashboardResponse{Stats: stats, Upcoming: make([]*TaskOutput, len(upcoming))}
	for i := range upcoming {
		resp.Upcoming[i] = NewTaskOutput(&upcoming[i], today)
	}
	return j.JSON(resp)
}

// PrintInsight outputs a daily briefing as JSON.
func (j *JSONFormatter) PrintInsight(insight *ai.Insight) error {
	status := "ok"
	if insight == nil {
		status = "unavailable"
	}
	return j.JSON(InsightResponse{Status: status, Insight: insight})
}
