package model

import (
	"strings"
	"time"
)

// Status represents the workflow column a task sits in.
type Status string

const (
	StatusTodo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// Statuses lists all statuses in board column order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// Valid reports whether the status is one of the three known values.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseStatus parses a status from user input. It accepts the display
// form ("In Progress") as well as compact aliases ("todo", "doing").
func ParseStatus(input string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "todo", "to do", "to-do", "open":
		return StatusTodo, true
	case "inprogress", "in progress", "in-progress", "doing", "active":
		return StatusInProgress, true
	case "done", "complete", "completed", "closed":
		return StatusDone, true
	}
	return "", false
}

// Priority represents task urgency.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether the priority is one of the three known values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority parses a priority from user input, case-insensitively.
func ParsePriority(input string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "low", "l":
		return PriorityLow, true
	case "medium", "med", "m":
		return PriorityMedium, true
	case "high", "h":
		return PriorityHigh, true
	}
	return "", false
}

// SubTask is an embedded checklist item owned by exactly one task.
// It has no independent lifecycle and is only mutated as part of a
// task edit.
type SubTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// DateLayout is the calendar date format used for due dates. Due dates
// are compared lexicographically, which is only correct because the
// format is zero-padded ISO.
const DateLayout = "2006-01-02"

// DefaultTitle is assigned when a task is created without a title.
const DefaultTitle = "Untitled Task"

// Task is a unit of work scoped to a project.
type Task struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	DueDate     string    `json:"due_date"`
	Tags        []string  `json:"tags"`
	Subtasks    []SubTask `json:"subtasks"`
	AssigneeID  string    `json:"assignee_id,omitempty"`
	Attachments []string  `json:"attachments"`
	CreatedAt   time.Time `json:"created_at"`
}

// MatchesQuery reports whether the query is a case-insensitive substring
// of the task title or description. An empty query matches everything.
func (t *Task) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

// HasTag reports whether the task carries the given tag, case-insensitively.
func (t *Task) HasTag(tag string) bool {
	for _, candidate := range t.Tags {
		if strings.EqualFold(candidate, tag) {
			return true
		}
	}
	return false
}

// SubtaskProgress returns the number of completed subtasks and the total.
func (t *Task) SubtaskProgress() (completed, total int) {
	total = len(t.Subtasks)
	for _, st := range t.Subtasks {
		if st.Completed {
			completed++
		}
	}
	return completed, total
}

// IsOverdue reports whether the task is past due relative to today,
// given as a zero-padded ISO date. Done tasks are never overdue, and a
// task due exactly today is not overdue.
func (t *Task) IsOverdue(today string) bool {
	return t.Status != StatusDone && t.DueDate != "" && t.DueDate < today
}

// Today returns the current calendar date in the due-date format.
func Today() string {
	return time.Now().Format(DateLayout)
}
