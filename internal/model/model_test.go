package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Status / Priority Tests
// =============================================================================

func TestParseStatus(t *testing.T) {
	cases := []struct {
		input string
		want  Status
		ok    bool
	}{
		{"todo", StatusTodo, true},
		{"To Do", StatusTodo, true},
		{"in progress", StatusInProgress, true},
		{"DOING", StatusInProgress, true},
		{"done", StatusDone, true},
		{"  completed ", StatusDone, true},
		{"bogus", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseStatus(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestParsePriority(t *testing.T) {
	got, ok := ParsePriority("HIGH")
	assert.True(t, ok)
	assert.Equal(t, PriorityHigh, got)

	got, ok = ParsePriority("m")
	assert.True(t, ok)
	assert.Equal(t, PriorityMedium, got)

	_, ok = ParsePriority("urgent-ish")
	assert.False(t, ok)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusTodo.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusDone.Valid())
	assert.False(t, Status("Archived").Valid())
}

func TestStatusesOrder(t *testing.T) {
	assert.Equal(t, []Status{StatusTodo, StatusInProgress, StatusDone}, Statuses())
}

// =============================================================================
// Task Tests
// =============================================================================

func TestTaskMatchesQuery(t *testing.T) {
	task := &Task{
		Title:       "Finalize Q4 Roadmap",
		Description: "Prepare the presentation for the stakeholders meeting.",
	}

	assert.True(t, task.MatchesQuery(""))
	assert.True(t, task.MatchesQuery("q4"))
	assert.True(t, task.MatchesQuery("ROADMAP"))
	assert.True(t, task.MatchesQuery("stakeholders"))
	assert.False(t, task.MatchesQuery("xyz"))
}

func TestTaskHasTag(t *testing.T) {
	task := &Task{Tags: []string{"strategy", "Design"}}

	assert.True(t, task.HasTag("strategy"))
	assert.True(t, task.HasTag("DESIGN"))
	assert.False(t, task.HasTag("ops"))

	empty := &Task{}
	assert.False(t, empty.HasTag("any"))
}

func TestTaskSubtaskProgress(t *testing.T) {
	task := &Task{Subtasks: []SubTask{
		{ID: "s1", Title: "one", Completed: true},
		{ID: "s2", Title: "two", Completed: false},
		{ID: "s3", Title: "three", Completed: true},
	}}

	completed, total := task.SubtaskProgress()
	assert.Equal(t, 2, completed)
	assert.Equal(t, 3, total)

	completed, total = (&Task{}).SubtaskProgress()
	assert.Equal(t, 0, completed)
	assert.Equal(t, 0, total)
}

func TestTaskIsOverdue(t *testing.T) {
	today := "2024-06-15"

	overdue := &Task{Status: StatusInProgress, DueDate: "2024-06-14"}
	assert.True(t, overdue.IsOverdue(today))

	// Done tasks are never overdue.
	done := &Task{Status: StatusDone, DueDate: "2024-06-14"}
	assert.False(t, done.IsOverdue(today))

	// Due exactly today is not overdue.
	dueToday := &Task{Status: StatusTodo, DueDate: "2024-06-15"}
	assert.False(t, dueToday.IsOverdue(today))

	// No due date is never overdue.
	undated := &Task{Status: StatusTodo}
	assert.False(t, undated.IsOverdue(today))
}

// =============================================================================
// Project / Member Tests
// =============================================================================

func TestValidateColor(t *testing.T) {
	assert.True(t, ValidateColor(""))
	assert.True(t, ValidateColor("#FF5733"))
	assert.True(t, ValidateColor("#a1b2c3"))
	assert.False(t, ValidateColor("FF5733"))
	assert.False(t, ValidateColor("#FFF"))
	assert.False(t, ValidateColor("#GG0000"))
}

func TestFindMember(t *testing.T) {
	members := SeedMembers()

	m := FindMember(members, "m2")
	assert.NotNil(t, m)
	assert.Equal(t, "Jordan Smith", m.Name)

	assert.Nil(t, FindMember(members, "nope"))
	assert.Nil(t, FindMember(nil, "m1"))
}

func TestValidTheme(t *testing.T) {
	assert.True(t, ValidTheme(ThemeLight))
	assert.True(t, ValidTheme(ThemeDark))
	assert.False(t, ValidTheme("solarized"))
}

// =============================================================================
// Seed Fixture Tests
// =============================================================================

func TestSeedFixtures(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	projects := SeedProjects()
	assert.Len(t, projects, 3)
	assert.Equal(t, "p1", projects[0].ID)

	tasks := SeedTasks(now)
	assert.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, "p1", task.ProjectID)
		assert.True(t, task.Status.Valid())
		assert.True(t, task.Priority.Valid())
	}

	// One overdue, one upcoming relative to the seed time.
	assert.Equal(t, "2024-06-14", tasks[0].DueDate)
	assert.Equal(t, "2024-06-16", tasks[1].DueDate)
	assert.True(t, tasks[0].IsOverdue(now.Format(DateLayout)))
	assert.False(t, tasks[1].IsOverdue(now.Format(DateLayout)))
}
