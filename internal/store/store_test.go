package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/ezytask/ezytask/internal/model"
	"github.com/ezytask/ezytask/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// setupStore creates a store over an in-memory database with a fixed
// clock and sequential ids.
func setupStore(t *testing.T) *Store {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := New(storage.NewBoardRepo(db))
	s.now = func() time.Time { return testNow }

	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}

	require.NoError(t, s.Load())
	return s
}

// =============================================================================
// Load / Seeding Tests
// =============================================================================

func TestLoadSeedsFixtures(t *testing.T) {
	s := setupStore(t)

	assert.Len(t, s.Projects(), 3)
	assert.Len(t, s.Tasks(), 2)
	assert.Equal(t, "p1", s.ActiveProjectID())
	require.NotNil(t, s.ActiveProject())
	assert.Equal(t, "Core Strategy", s.ActiveProject().Name)
}

func TestLoadKeepsExistingData(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := storage.NewBoardRepo(db)

	require.NoError(t, repo.SaveProjects([]model.Project{{ID: "px", Name: "Solo"}}))
	require.NoError(t, repo.SaveTasks([]model.Task{}))
	require.NoError(t, repo.SaveActiveProject("px"))

	s := New(repo)
	require.NoError(t, s.Load())

	assert.Len(t, s.Projects(), 1)
	assert.Empty(t, s.Tasks())
	assert.Equal(t, "px", s.ActiveProjectID())
}

func TestLoadSurvivesReopen(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := storage.NewBoardRepo(db)

	s := New(repo)
	require.NoError(t, s.Load())
	created, err := s.CreateTask(TaskDraft{Title: "persisted"})
	require.NoError(t, err)

	// A second store over the same database sees the write.
	s2 := New(repo)
	require.NoError(t, s2.Load())
	found := s2.FindTask(created.ID)
	require.NotNil(t, found)
	assert.Equal(t, "persisted", found.Title)
}

// =============================================================================
// CreateTask Tests
// =============================================================================

func TestCreateTaskGrowsCollection(t *testing.T) {
	s := setupStore(t)
	before := s.Tasks()
	existing := make(map[string]bool, len(before))
	for _, task := range before {
		existing[task.ID] = true
	}

	task, err := s.CreateTask(TaskDraft{Title: "A"})
	require.NoError(t, err)

	after := s.Tasks()
	assert.Len(t, after, len(before)+1)
	assert.False(t, existing[task.ID], "new id must not collide")
}

func TestCreateTaskDefaults(t *testing.T) {
	s := setupStore(t)

	task, err := s.CreateTask(TaskDraft{})
	require.NoError(t, err)

	assert.Equal(t, "Untitled Task", task.Title)
	assert.Equal(t, model.StatusTodo, task.Status)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Equal(t, "2024-06-15", task.DueDate)
	assert.Equal(t, testNow, task.CreatedAt)
	assert.Equal(t, "p1", task.ProjectID)
	assert.NotNil(t, task.Tags)
	assert.Empty(t, task.Tags)
	assert.NotNil(t, task.Subtasks)
	assert.NotNil(t, task.Attachments)
}

func TestCreateTaskNewestFirst(t *testing.T) {
	s := setupStore(t)

	a, err := s.CreateTask(TaskDraft{Title: "A"})
	require.NoError(t, err)
	b, err := s.CreateTask(TaskDraft{Title: "B"})
	require.NoError(t, err)

	tasks := s.Tasks()
	require.True(t, len(tasks) >= 2)
	assert.Equal(t, b.ID, tasks[0].ID)
	assert.Equal(t, a.ID, tasks[1].ID)
}

func TestCreateTaskBindsActiveProject(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.SetActiveProject("p3"))

	task, err := s.CreateTask(TaskDraft{Title: "growth work"})
	require.NoError(t, err)
	assert.Equal(t, "p3", task.ProjectID)
}

func TestCreateTaskKeepsDraftFields(t *testing.T) {
	s := setupStore(t)

	task, err := s.CreateTask(TaskDraft{
		Title:       "Ship it",
		Description: "final pass",
		Status:      model.StatusInProgress,
		Priority:    model.PriorityHigh,
		DueDate:     "2024-07-01",
		Tags:        []string{"release"},
		AssigneeID:  "m3",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusInProgress, task.Status)
	assert.Equal(t, model.PriorityHigh, task.Priority)
	assert.Equal(t, "2024-07-01", task.DueDate)
	assert.Equal(t, []string{"release"}, task.Tags)
	assert.Equal(t, "m3", task.AssigneeID)
}

// =============================================================================
// UpdateTask Tests
// =============================================================================

func TestUpdateTaskStatusRoundTrip(t *testing.T) {
	s := setupStore(t)
	task, err := s.CreateTask(TaskDraft{
		Title:       "round trip",
		Description: "unchanged",
		Priority:    model.PriorityHigh,
		DueDate:     "2024-07-01",
		Tags:        []string{"keep"},
	})
	require.NoError(t, err)

	_, err = s.UpdateTask(task.ID, TaskPatch{Status: StatusPtr(model.StatusDone)})
	require.NoError(t, err)
	updated, err := s.UpdateTask(task.ID, TaskPatch{Status: StatusPtr(model.StatusTodo)})
	require.NoError(t, err)
	require.NotNil(t, updated)

	// Status restored, everything else untouched.
	assert.Equal(t, task.Status, updated.Status)
	assert.Equal(t, task.Title, updated.Title)
	assert.Equal(t, task.Description, updated.Description)
	assert.Equal(t, task.Priority, updated.Priority)
	assert.Equal(t, task.DueDate, updated.DueDate)
	assert.Equal(t, task.Tags, updated.Tags)
	assert.Equal(t, task.CreatedAt, updated.CreatedAt)
}

func TestUpdateTaskUnknownIDIsNoop(t *testing.T) {
	s := setupStore(t)
	before := s.Tasks()

	updated, err := s.UpdateTask("no-such-id", TaskPatch{Title: StringPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, before, s.Tasks())
}

func TestUpdateTaskSubtasks(t *testing.T) {
	s := setupStore(t)
	task, err := s.CreateTask(TaskDraft{Title: "with subtasks"})
	require.NoError(t, err)

	subtasks := []model.SubTask{
		{ID: "s1", Title: "draft", Completed: true},
		{ID: "s2", Title: "review"},
	}
	updated, err := s.UpdateTask(task.ID, TaskPatch{Subtasks: &subtasks})
	require.NoError(t, err)
	require.NotNil(t, updated)

	completed, total := updated.SubtaskProgress()
	assert.Equal(t, 1, completed)
	assert.Equal(t, 2, total)
}

func TestTaskPatchIsZero(t *testing.T) {
	assert.True(t, TaskPatch{}.IsZero())
	assert.False(t, TaskPatch{Title: StringPtr("t")}.IsZero())
}

// =============================================================================
// DeleteTask Tests
// =============================================================================

func TestDeleteTaskIdempotent(t *testing.T) {
	s := setupStore(t)
	task, err := s.CreateTask(TaskDraft{Title: "doomed"})
	require.NoError(t, err)
	count := len(s.Tasks())

	require.NoError(t, s.DeleteTask(task.ID))
	assert.Len(t, s.Tasks(), count-1)
	assert.Nil(t, s.FindTask(task.ID))

	// Deleting again is a no-op both times.
	require.NoError(t, s.DeleteTask(task.ID))
	assert.Len(t, s.Tasks(), count-1)
}

// =============================================================================
// Project Tests
// =============================================================================

func TestCreateProjectBecomesActive(t *testing.T) {
	s := setupStore(t)

	project, err := s.CreateProject("Side Quest", "#FF5733")
	require.NoError(t, err)

	assert.Equal(t, project.ID, s.ActiveProjectID())
	assert.Len(t, s.Projects(), 4)
	assert.Equal(t, "Side Quest", s.Projects()[3].Name)
}

func TestSetActiveProjectUnvalidated(t *testing.T) {
	s := setupStore(t)

	// Unknown ids are accepted; the visible set just comes up empty.
	require.NoError(t, s.SetActiveProject("ghost"))
	assert.Equal(t, "ghost", s.ActiveProjectID())
	assert.Nil(t, s.ActiveProject())
}

func TestDeleteProjectCascades(t *testing.T) {
	s := setupStore(t)

	// p1 owns the two seed tasks.
	require.NoError(t, s.DeleteProject("p1"))

	assert.Len(t, s.Projects(), 2)
	assert.Empty(t, s.Tasks())
	assert.Equal(t, "p2", s.ActiveProjectID(), "active pointer moves to first remaining")

	// Unknown project delete is a no-op.
	require.NoError(t, s.DeleteProject("p1"))
	assert.Len(t, s.Projects(), 2)
}

func TestDeleteInactiveProjectKeepsActive(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.DeleteProject("p3"))
	assert.Equal(t, "p1", s.ActiveProjectID())
	assert.Len(t, s.Tasks(), 2)
}

// =============================================================================
// Visibility Scenario (newest-first within active project)
// =============================================================================

func TestVisibleOrderingScenario(t *testing.T) {
	s := setupStore(t)
	p, err := s.CreateProject("Fresh", "")
	require.NoError(t, err)

	a, err := s.CreateTask(TaskDraft{Title: "A"})
	require.NoError(t, err)
	b, err := s.CreateTask(TaskDraft{Title: "B"})
	require.NoError(t, err)

	var visible []model.Task
	for _, task := range s.Tasks() {
		if task.ProjectID == p.ID {
			visible = append(visible, task)
		}
	}

	require.Len(t, visible, 2)
	assert.Equal(t, b.ID, visible[0].ID)
	assert.Equal(t, a.ID, visible[1].ID)
}

// =============================================================================
// Subtask / Attachment Edit Tests
// =============================================================================

func TestAddSubtask(t *testing.T) {
	s := setupStore(t)

	task, err := s.AddSubtask("t1", "Review with leads")
	require.NoError(t, err)
	require.NotNil(t, task)
	require.Len(t, task.Subtasks, 2)
	assert.Equal(t, "Review with leads", task.Subtasks[1].Title)
	assert.False(t, task.Subtasks[1].Completed)
	assert.NotEmpty(t, task.Subtasks[1].ID)
}

func TestToggleSubtask(t *testing.T) {
	s := setupStore(t)

	// Seed subtask s1 starts completed.
	task, err := s.ToggleSubtask("t1", "s1")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.False(t, task.Subtasks[0].Completed)

	task, err = s.ToggleSubtask("t1", "s1")
	require.NoError(t, err)
	assert.True(t, task.Subtasks[0].Completed)
}

func TestRemoveSubtask(t *testing.T) {
	s := setupStore(t)

	task, err := s.RemoveSubtask("t1", "s1")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Empty(t, task.Subtasks)
}

func TestSubtaskEditsUnknownIDsNoOp(t *testing.T) {
	s := setupStore(t)

	task, err := s.AddSubtask("ghost", "x")
	require.NoError(t, err)
	assert.Nil(t, task)

	task, err = s.ToggleSubtask("t1", "ghost")
	require.NoError(t, err)
	assert.Nil(t, task)

	task, err = s.RemoveSubtask("t1", "ghost")
	require.NoError(t, err)
	assert.Nil(t, task)

	// The stored checklist is untouched.
	require.Len(t, s.FindTask("t1").Subtasks, 1)
}

func TestSubtaskEditsPersist(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := storage.NewBoardRepo(db)

	s := New(repo)
	require.NoError(t, s.Load())
	_, err = s.AddSubtask("t1", "Publish notes")
	require.NoError(t, err)

	reopened := New(repo)
	require.NoError(t, reopened.Load())
	task := reopened.FindTask("t1")
	require.NotNil(t, task)
	require.Len(t, task.Subtasks, 2)
	assert.Equal(t, "Publish notes", task.Subtasks[1].Title)
}

func TestAddRemoveAttachment(t *testing.T) {
	s := setupStore(t)

	task, err := s.AddAttachment("t1", "Budget_v2.xlsx")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, []string{"Roadmap_Draft.pdf", "Budget_v2.xlsx"}, task.Attachments)

	task, err = s.RemoveAttachment("t1", "Roadmap_Draft.pdf")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, []string{"Budget_v2.xlsx"}, task.Attachments)

	task, err = s.RemoveAttachment("t1", "ghost.pdf")
	require.NoError(t, err)
	assert.Nil(t, task)
}
