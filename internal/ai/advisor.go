package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ezytask/ezytask/internal/logging"
	"github.com/ezytask/ezytask/internal/model"
)

// Insight is the structured daily briefing result.
type Insight struct {
	Summary         string   `json:"summary"`
	PriorityTasks   []string `json:"priorityTasks"`
	ProductivityTip string   `json:"productivityTip"`
}

// Advisor runs the three advisory operations over a generation client.
// Every failure degrades to an empty/neutral result; nothing here is
// ever surfaced to the user as a fatal error.
type Advisor struct {
	client  *Client
	tracker *Tracker
}

// NewAdvisor creates an advisor over the given client.
func NewAdvisor(client *Client) *Advisor {
	return &Advisor{
		client:  client,
		tracker: NewTracker(),
	}
}

// Available reports whether the advisory service can make calls.
func (a *Advisor) Available() bool {
	return a.client.Available()
}

// Tracker returns the in-flight request tracker so edit paths can
// cancel superseded suggestions.
func (a *Advisor) Tracker() *Tracker {
	return a.tracker
}

// RefineDescription rewrites a task's title and description into a
// concise, actionable instruction. Returns "" if the call fails to
// produce text.
func (a *Advisor) RefineDescription(ctx context.Context, task model.Task) string {
	ctx = a.tracker.Begin(ctx, task.ID)
	defer a.tracker.End(task.ID)

	prompt := fmt.Sprintf(`Act as a professional project manager. Refine this task title and description into a concise, actionable instruction:
Title: %s
Description: %s`, task.Title, task.Description)

	text, err := a.client.Generate(ctx, prompt, nil)
	if err != nil {
		logging.Warn("refine description failed", "task_id", task.ID, "error", err)
		return ""
	}
	return strings.TrimSpace(text)
}

// SuggestSubtasks asks for 3-5 concrete subtask titles for the task.
// Returns an empty list on any call or parse failure.
func (a *Advisor) SuggestSubtasks(ctx context.Context, task model.Task) []string {
	ctx = a.tracker.Begin(ctx, task.ID)
	defer a.tracker.End(task.ID)

	prompt := fmt.Sprintf(`Based on this task: "%s - %s", suggest exactly 3-5 concrete subtasks. Return ONLY a JSON array of strings.`,
		task.Title, task.Description)

	schema := &Schema{
		Type:  "array",
		Items: &Schema{Type: "string"},
	}

	text, err := a.client.Generate(ctx, prompt, schema)
	if err != nil {
		logging.Warn("suggest subtasks failed", "task_id", task.ID, "error", err)
		return []string{}
	}

	var titles []string
	if err := json.Unmarshal([]byte(text), &titles); err != nil {
		logging.Warn("suggest subtasks returned malformed JSON", "task_id", task.ID, "error", err)
		return []string{}
	}
	return titles
}

// DailyBriefing summarizes the pending (non-Done) task set into a short
// motivating briefing. Returns nil on any call or parse failure.
func (a *Advisor) DailyBriefing(ctx context.Context, pending []model.Task) *Insight {
	summaries := make([]string, 0, len(pending))
	for _, t := range pending {
		summaries = append(summaries, fmt.Sprintf("%s (Priority: %s)", t.Title, t.Priority))
	}

	prompt := fmt.Sprintf(`Analyze these tasks and provide a short motivating daily briefing.
Tasks: %s
Include:
1. A summary of the day's outlook.
2. Which 3 tasks should be prioritized and why.
3. A brief productivity tip.
Return JSON format.`, strings.Join(summaries, ", "))

	schema := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"summary":         {Type: "string"},
			"priorityTasks":   {Type: "array", Items: &Schema{Type: "string"}},
			"productivityTip": {Type: "string"},
		},
		Required: []string{"summary", "priorityTasks", "productivityTip"},
	}

	text, err := a.client.Generate(ctx, prompt, schema)
	if err != nil {
		logging.Warn("daily briefing failed", "error", err)
		return nil
	}

	var insight Insight
	if err := json.Unmarshal([]byte(text), &insight); err != nil {
		logging.Warn("daily briefing returned malformed JSON", "error", err)
		return nil
	}
	return &insight
}
