package tui

import (
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezytask/ezytask/internal/model"
	"github.com/ezytask/ezytask/internal/storage"
	"github.com/ezytask/ezytask/internal/store"
)

func setupModel(t *testing.T) Model {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := store.New(storage.NewBoardRepo(db))
	require.NoError(t, s.Load())

	return NewModel(s, model.ThemeLight)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// =============================================================================
// Navigation Tests
// =============================================================================

func TestTabCycling(t *testing.T) {
	m := setupModel(t)
	assert.Equal(t, TabDashboard, m.tab)

	next, _ := m.Update(key("tab"))
	m = next.(Model)
	assert.Equal(t, TabBoard, m.tab)

	next, _ = m.Update(key("tab"))
	m = next.(Model)
	assert.Equal(t, TabList, m.tab)

	next, _ = m.Update(key("tab"))
	m = next.(Model)
	assert.Equal(t, TabDashboard, m.tab)
}

func TestNumberKeysJumpToTab(t *testing.T) {
	m := setupModel(t)

	next, _ := m.Update(key("3"))
	m = next.(Model)
	assert.Equal(t, TabList, m.tab)

	next, _ = m.Update(key("2"))
	m = next.(Model)
	assert.Equal(t, TabBoard, m.tab)
}

func TestQuitKey(t *testing.T) {
	m := setupModel(t)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// =============================================================================
// Search Tests
// =============================================================================

func TestSearchFiltersTasks(t *testing.T) {
	m := setupModel(t)

	next, _ := m.Update(key("/"))
	m = next.(Model)
	assert.True(t, m.searching)

	for _, r := range "roadmap" {
		next, _ = m.Update(key(string(r)))
		m = next.(Model)
	}
	next, _ = m.Update(key("enter"))
	m = next.(Model)

	assert.False(t, m.searching)
	assert.Equal(t, "roadmap", m.query)

	tasks := m.visibleTasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Finalize Q4 Roadmap", tasks[0].Title)
}

func TestEscClearsSearch(t *testing.T) {
	m := setupModel(t)

	next, _ := m.Update(key("/"))
	m = next.(Model)
	next, _ = m.Update(key("x"))
	m = next.(Model)
	next, _ = m.Update(key("esc"))
	m = next.(Model)

	assert.False(t, m.searching)
	assert.Empty(t, m.query)
}

// =============================================================================
// Rendering Tests
// =============================================================================

func TestDashboardViewShowsStats(t *testing.T) {
	m := setupModel(t)
	out := m.View()

	assert.Contains(t, out, "Core Strategy")
	assert.Contains(t, out, "Total tasks")
	assert.Contains(t, out, "Focus Next")
}

func TestBoardViewShowsColumns(t *testing.T) {
	m := setupModel(t)
	m.tab = TabBoard
	out := m.View()

	assert.Contains(t, out, "To Do")
	assert.Contains(t, out, "In Progress")
	assert.Contains(t, out, "Done")
}

func TestTaskLineKeepsMultiByteTitlesValid(t *testing.T) {
	m := setupModel(t)
	task, err := m.store.CreateTask(store.TaskDraft{
		Title: "四半期ロードマップを仕上げて経営会議で承認を取り付ける作業",
	})
	require.NoError(t, err)

	line := m.renderTaskLine(task, model.Today())
	assert.True(t, utf8.ValidString(line))
	assert.Contains(t, line, "…")
}

func TestListViewMarksDoneTasks(t *testing.T) {
	m := setupModel(t)
	_, err := m.store.UpdateTask("t1", store.TaskPatch{
		Status: store.StatusPtr(model.StatusDone),
	})
	require.NoError(t, err)

	m.tab = TabList
	out := m.View()
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[ ]")
}
