// Package tui provides the interactive terminal dashboard for EzyTask.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ezytask/ezytask/internal/model"
)

// Color palette for the TUI dashboard.
var (
	ColorPrimary = lipgloss.Color("#6366F1") // Indigo
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#F43F5E") // Rose
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorActive  = lipgloss.Color("#3B82F6") // Blue
)

// Styles holds the theme-dependent styles for the dashboard.
type Styles struct {
	Title     lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Task      lipgloss.Style
	TaskDone  lipgloss.Style
	Overdue   lipgloss.Style
	Muted     lipgloss.Style
	Column    lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds the style set for the given theme preference.
func NewStyles(theme string) Styles {
	text := lipgloss.Color("#0F172A")
	if theme == model.ThemeDark {
		text = lipgloss.Color("#E2E8F0")
	}

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Underline(true),
		TabIdle: lipgloss.NewStyle().
			Foreground(ColorMuted),
		StatLabel: lipgloss.NewStyle().
			Foreground(ColorMuted),
		StatValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),
		Task: lipgloss.NewStyle().
			Foreground(text),
		TaskDone: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(ColorMuted),
		Overdue: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError),
		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Column: lipgloss.NewStyle().
			Width(30).
			MarginRight(2),
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
	}
}

// PriorityDot returns a colored marker for a priority.
func PriorityDot(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return lipgloss.NewStyle().Foreground(ColorError).Render("●")
	case model.PriorityMedium:
		return lipgloss.NewStyle().Foreground(ColorWarning).Render("●")
	default:
		return lipgloss.NewStyle().Foreground(ColorActive).Render("●")
	}
}
