package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/ezytask/ezytask/internal/ai"
	"github.com/ezytask/ezytask/internal/model"
	"github.com/ezytask/ezytask/internal/views"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#6366F1") // Indigo
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorSuccess = lipgloss.Color("#10B981") // Emerald
	colorInfo    = lipgloss.Color("#3B82F6") // Blue

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().Bold(true)

	styleOverdue = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	statusStyles = map[model.Status]lipgloss.Style{
		model.StatusTodo:       lipgloss.NewStyle().Foreground(colorMuted),
		model.StatusInProgress: lipgloss.NewStyle().Foreground(colorInfo),
		model.StatusDone:       lipgloss.NewStyle().Foreground(colorSuccess),
	}

	priorityStyles = map[model.Priority]lipgloss.Style{
		model.PriorityLow:    lipgloss.NewStyle().Foreground(colorInfo),
		model.PriorityMedium: lipgloss.NewStyle().Foreground(colorWarning),
		model.PriorityHigh:   lipgloss.NewStyle().Bold(true).Foreground(colorError),
	}
)

// boardColumnWidth is the default width of one board column.
const boardColumnWidth = 28

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, s string) string {
	if !c.IsColorEnabled() {
		return s
	}
	return style.Render(s)
}

// Title prints a section title.
func (c *CLIFormatter) Title(s string) {
	c.Println(c.render(styleTitle, s))
}

// Success prints a success message.
func (c *CLIFormatter) Success(s string) {
	c.Println(c.render(styleSuccess, s))
}

// Muted prints de-emphasized text.
func (c *CLIFormatter) Muted(s string) {
	c.Println(c.render(styleMuted, s))
}

// Status renders a status value with its color.
func (c *CLIFormatter) Status(s model.Status) string {
	return c.render(statusStyles[s], string(s))
}

// Priority renders a priority value with its color.
func (c *CLIFormatter) Priority(p model.Priority) string {
	return c.render(priorityStyles[p], string(p))
}

// DueDate renders a due date, highlighting overdue tasks.
func (c *CLIFormatter) DueDate(t *model.Task, today string) string {
	if t.DueDate == "" {
		return c.render(styleMuted, "no due date")
	}
	if t.IsOverdue(today) {
		return c.render(styleOverdue, t.DueDate+" (overdue)")
	}
	return t.DueDate
}

// PrintTaskLine prints a one-line task summary for list views.
func (c *CLIFormatter) PrintTaskLine(t *model.Task, today string) {
	check := "[ ]"
	if t.Status == model.StatusDone {
		check = "[x]"
	}
	line := fmt.Sprintf("%s %s  %s  %s  %s",
		check,
		c.render(styleBold, t.Title),
		c.Status(t.Status),
		c.Priority(t.Priority),
		c.DueDate(t, today))
	if completed, total := t.SubtaskProgress(); total > 0 {
		line += c.render(styleMuted, fmt.Sprintf("  (%d/%d subtasks)", completed, total))
	}
	c.Println(line)
	c.Muted("    " + t.ID)
}

// PrintTaskDetail prints the full task record.
func (c *CLIFormatter) PrintTaskDetail(t *model.Task, members []model.Member, today string) {
	c.Title(t.Title)
	c.Printf("  ID:       %s\n", t.ID)
	c.Printf("  Status:   %s\n", c.Status(t.Status))
	c.Printf("  Priority: %s\n", c.Priority(t.Priority))
	c.Printf("  Due:      %s\n", c.DueDate(t, today))
	if t.Description != "" {
		c.Printf("  Notes:    %s\n", t.Description)
	}
	if len(t.Tags) > 0 {
		c.Printf("  Tags:     %s\n", strings.Join(t.Tags, ", "))
	}
	if t.AssigneeID != "" {
		name := t.AssigneeID
		if m := model.FindMember(members, t.AssigneeID); m != nil {
			name = fmt.Sprintf("%s (%s)", m.Name, m.Role)
		}
		c.Printf("  Assignee: %s\n", name)
	}
	if len(t.Attachments) > 0 {
		c.Printf("  Files:    %s\n", strings.Join(t.Attachments, ", "))
	}
	if len(t.Subtasks) > 0 {
		c.Println("  Subtasks:")
		for _, st := range t.Subtasks {
			check := "[ ]"
			if st.Completed {
				check = "[x]"
			}
			c.Printf("    %s %s\n", check, st.Title)
		}
	}
}

// PrintProjects prints the project list, marking the active one.
func (c *CLIFormatter) PrintProjects(projects []model.Project, activeID string, taskCounts map[string]int) {
	c.Title("Projects")
	for _, p := range projects {
		marker := "  "
		if p.ID == activeID {
			marker = c.render(styleSuccess, "* ")
		}
		line := fmt.Sprintf("%s%s", marker, c.render(styleBold, p.Name))
		if n, ok := taskCounts[p.ID]; ok {
			line += c.render(styleMuted, fmt.Sprintf("  (%d tasks)", n))
		}
		c.Println(line)
		c.Muted("    " + p.ID)
	}
}

// PrintBoard prints the three status columns side by side, clamped to
// the terminal width.
func (c *CLIFormatter) PrintBoard(cols []views.Column, today string) {
	width := boardColumnWidth
	if f, ok := c.Writer.(*os.File); ok {
		if termWidth, _, err := term.GetSize(int(f.Fd())); err == nil && termWidth > 0 {
			if per := termWidth/len(cols) - 2; per > 12 && per < width {
				width = per
			}
		}
	}

	rendered := make([]string, 0, len(cols))
	for _, col := range cols {
		var sb strings.Builder
		header := fmt.Sprintf("%s (%d)", col.Status, len(col.Tasks))
		sb.WriteString(c.render(styleTitle, truncate(header, width)))
		sb.WriteString("\n")
		for _, t := range col.Tasks {
			title := truncate(t.Title, width-2)
			if t.IsOverdue(today) {
				sb.WriteString("• " + c.render(styleOverdue, title))
			} else {
				sb.WriteString("• " + title)
			}
			sb.WriteString("\n")
			sb.WriteString(c.render(styleMuted, "  "+truncate(string(t.Priority)+" · "+t.DueDate, width-2)))
			sb.WriteString("\n")
		}
		if len(col.Tasks) == 0 {
			sb.WriteString(c.render(styleMuted, "empty"))
			sb.WriteString("\n")
		}
		style := lipgloss.NewStyle().Width(width).MarginRight(2)
		rendered = append(rendered, style.Render(sb.String()))
	}

	c.Println(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

// PrintStats prints the dashboard aggregates.
func (c *CLIFormatter) PrintStats(stats views.Stats) {
	c.Title("Dashboard")
	c.Printf("  Total:        %d\n", stats.Total)
	c.Printf("  Completed:    %d\n", stats.Completed)
	c.Printf("  In Progress:  %d\n", stats.InProgress)
	c.Printf("  High Prio:    %d\n", stats.HighPriority)
	c.Printf("  Efficiency:   %d%%\n", stats.CompletionRate)
}

// PrintUpcoming prints the dashboard's focus-next list.
func (c *CLIFormatter) PrintUpcoming(tasks []model.Task, today string) {
	if len(tasks) == 0 {
		return
	}
	c.Println("")
	c.Title("Focus Next")
	for i := range tasks {
		t := tasks[i]
		c.Printf("  %s  %s  %s\n",
			c.render(styleBold, t.Title),
			c.Priority(t.Priority),
			c.DueDate(&t, today))
	}
}

// PrintInsight prints a daily briefing.
func (c *CLIFormatter) PrintInsight(insight *ai.Insight) {
	c.Title("Daily Briefing")
	c.Println("  " + insight.Summary)
	if len(insight.PriorityTasks) > 0 {
		c.Println("")
		c.Println(c.render(styleBold, "  Prioritize:"))
		for _, t := range insight.PriorityTasks {
			c.Println("    - " + t)
		}
	}
	if insight.ProductivityTip != "" {
		c.Println("")
		c.Muted("  Tip: " + insight.ProductivityTip)
	}
}

// truncate shortens s to at most max runes. Slicing runes, not bytes,
// keeps multi-byte titles valid UTF-8.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}
