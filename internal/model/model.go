// Package model defines the domain models for EzyTask.
package model

// Storage key constants. Each collection is persisted as a single
// self-contained snapshot under a fixed key.
const (
	KeyTasks     = "ezytask:tasks"
	KeyProjects  = "ezytask:projects"
	KeyTheme     = "ezytask:theme"
	KeyWorkspace = "ezytask:workspace"
)

// Theme values for the stored theme preference.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidTheme reports whether s is a recognized theme preference.
func ValidTheme(s string) bool {
	return s == ThemeLight || s == ThemeDark
}
