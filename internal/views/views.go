// Package views computes the per-view slices of the task collection:
// the filtered visible set, board columns, the due-date-ordered list and
// dashboard aggregates. Every function is pure and recomputed on demand;
// nothing here caches.
package views

import (
	"math"
	"sort"

	"github.com/ezytask/ezytask/internal/model"
)

// Filter returns the tasks visible for the active project and search
// query: a task is visible iff it belongs to the active project and the
// query is empty or a case-insensitive substring of its title or
// description. Input order is preserved.
func Filter(tasks []model.Task, activeProjectID, query string) []model.Task {
	visible := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ProjectID != activeProjectID {
			continue
		}
		if !t.MatchesQuery(query) {
			continue
		}
		visible = append(visible, t)
	}
	return visible
}

// Column is one board bucket.
type Column struct {
	Status model.Status
	Tasks  []model.Task
}

// Columns partitions tasks into exactly three ordered buckets by status
// (To Do, In Progress, Done), preserving input order within each bucket.
// Tasks with an unknown status are dropped.
func Columns(tasks []model.Task) []Column {
	cols := make([]Column, 0, 3)
	for _, status := range model.Statuses() {
		col := Column{Status: status, Tasks: []model.Task{}}
		for _, t := range tasks {
			if t.Status == status {
				col.Tasks = append(col.Tasks, t)
			}
		}
		cols = append(cols, col)
	}
	return cols
}

// ByDueDate returns the tasks sorted ascending by due date. The sort is
// stable and lexicographic, which is correct under the zero-padded ISO
// date invariant.
func ByDueDate(tasks []model.Task) []model.Task {
	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueDate < sorted[j].DueDate
	})
	return sorted
}

// Stats holds the dashboard aggregates for a visible task set.
type Stats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	InProgress     int `json:"in_progress"`
	HighPriority   int `json:"high_priority"`
	CompletionRate int `json:"completion_rate"`
}

// Summarize computes the dashboard aggregates. The completion rate is
// round(completed/total*100) and defined as 0 for an empty set.
func Summarize(tasks []model.Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case model.StatusDone:
			s.Completed++
		case model.StatusInProgress:
			s.InProgress++
		}
		if t.Priority == model.PriorityHigh {
			s.HighPriority++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

// Upcoming returns the first n non-Done tasks ordered ascending by due
// date. The dashboard shows the first 4.
func Upcoming(tasks []model.Task, n int) []model.Task {
	pending := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != model.StatusDone {
			pending = append(pending, t)
		}
	}
	pending = ByDueDate(pending)
	if len(pending) > n {
		pending = pending[:n]
	}
	return pending
}

// Pending returns the non-Done tasks in input order. The AI briefing
// operates on this set.
func Pending(tasks []model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != model.StatusDone {
			out = append(out, t)
		}
	}
	return out
}
