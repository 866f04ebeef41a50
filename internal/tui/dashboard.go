package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ezytask/ezytask/internal/model"
	"github.com/ezytask/ezytask/internal/store"
	"github.com/ezytask/ezytask/internal/views"
)

// Tab identifies one of the three dashboard views.
type Tab int

const (
	TabDashboard Tab = iota
	TabBoard
	TabList
)

var tabNames = []string{"Dashboard", "Board", "List"}

// Model is the bubbletea model for the interactive dashboard.
type Model struct {
	store  *store.Store
	styles Styles

	tab       Tab
	query     string
	searching bool

	width  int
	height int
	err    error
}

// NewModel builds the dashboard model for the given store and theme.
func NewModel(st *store.Store, theme string) Model {
	return Model{
		store:  st,
		styles: NewStyles(theme),
		tab:    TabDashboard,
	}
}

// Run starts the dashboard and blocks until the user exits.
func Run(st *store.Store, theme string) error {
	p := tea.NewProgram(NewModel(st, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "l", "right":
			m.tab = (m.tab + 1) % 3
		case "shift+tab", "h", "left":
			m.tab = (m.tab + 2) % 3
		case "1":
			m.tab = TabDashboard
		case "2":
			m.tab = TabBoard
		case "3":
			m.tab = TabList
		case "/":
			m.searching = true
			m.query = ""
		case "r":
			m.err = m.store.Load()
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
	case "esc":
		m.searching = false
		m.query = ""
	case "backspace":
		if len(m.query) > 0 {
			m.query = m.query[:len(m.query)-1]
		}
	case "ctrl+c":
		return m, tea.Quit
	default:
		if msg.Type == tea.KeyRunes {
			m.query += string(msg.Runes)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("EzyTask · " + m.projectName()))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Overdue.Render("error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	tasks := m.visibleTasks()
	switch m.tab {
	case TabDashboard:
		b.WriteString(m.renderDashboard(tasks))
	case TabBoard:
		b.WriteString(m.renderBoard(tasks))
	case TabList:
		b.WriteString(m.renderList(tasks))
	}

	help := "tab: switch view  /: search  r: reload  q: quit"
	if m.searching {
		help = "search: " + m.query + "█  (enter to apply, esc to clear)"
	} else if m.query != "" {
		help = fmt.Sprintf("filter: %q  (/ to change)  %s", m.query, help)
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(help))

	return b.String()
}

func (m Model) projectName() string {
	if p := m.store.ActiveProject(); p != nil {
		return p.Name
	}
	return "no project"
}

func (m Model) visibleTasks() []model.Task {
	return views.Filter(m.store.Tasks(), m.store.ActiveProjectID(), m.query)
}

func (m Model) renderTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			parts[i] = m.styles.TabActive.Render(name)
		} else {
			parts[i] = m.styles.TabIdle.Render(name)
		}
	}
	return strings.Join(parts, m.styles.TabIdle.Render("  ·  "))
}

func (m Model) renderDashboard(tasks []model.Task) string {
	stats := views.Summarize(tasks)
	today := model.Today()

	var b strings.Builder
	row := func(label string, value string) {
		b.WriteString(m.styles.StatLabel.Render(fmt.Sprintf("%-16s", label)))
		b.WriteString(m.styles.StatValue.Render(value))
		b.WriteString("\n")
	}
	row("Total tasks", fmt.Sprintf("%d", stats.Total))
	row("Completed", fmt.Sprintf("%d", stats.Completed))
	row("In progress", fmt.Sprintf("%d", stats.InProgress))
	row("High priority", fmt.Sprintf("%d", stats.HighPriority))
	row("Completion", fmt.Sprintf("%d%%", stats.CompletionRate))

	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render("Focus Next"))
	b.WriteString("\n")

	upcoming := views.Upcoming(tasks, 4)
	if len(upcoming) == 0 {
		b.WriteString(m.styles.Muted.Render("Nothing pending. Enjoy the quiet."))
		b.WriteString("\n")
	}
	for _, t := range upcoming {
		b.WriteString(m.renderTaskLine(t, today))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderBoard(tasks []model.Task) string {
	today := model.Today()
	cols := views.Columns(tasks)
	rendered := make([]string, 0, len(cols))

	for _, col := range cols {
		var b strings.Builder
		b.WriteString(m.styles.Title.Render(fmt.Sprintf("%s (%d)", col.Status, len(col.Tasks))))
		b.WriteString("\n")
		if len(col.Tasks) == 0 {
			b.WriteString(m.styles.Muted.Render("empty"))
			b.WriteString("\n")
		}
		for _, t := range col.Tasks {
			b.WriteString(m.renderTaskLine(t, today))
			b.WriteString("\n")
		}
		rendered = append(rendered, m.styles.Column.Render(b.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderList(tasks []model.Task) string {
	if len(tasks) == 0 {
		return m.styles.Muted.Render("No tasks match.") + "\n"
	}
	today := model.Today()
	sorted := views.ByDueDate(tasks)

	var b strings.Builder
	for _, t := range sorted {
		mark := "[ ]"
		if t.Status == model.StatusDone {
			mark = "[x]"
		}
		b.WriteString(m.styles.Muted.Render(mark))
		b.WriteString(" ")
		b.WriteString(m.renderTaskLine(t, today))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderTaskLine(t model.Task, today string) string {
	title := t.Title
	if r := []rune(title); len(r) > 26 {
		title = string(r[:25]) + "…"
	}

	style := m.styles.Task
	if t.Status == model.StatusDone {
		style = m.styles.TaskDone
	}

	line := PriorityDot(t.Priority) + " " + style.Render(title)
	if t.DueDate != "" {
		due := m.styles.Muted.Render(t.DueDate)
		if t.IsOverdue(today) {
			due = m.styles.Overdue.Render(t.DueDate + " !")
		}
		line += " " + due
	}
	return line
}
