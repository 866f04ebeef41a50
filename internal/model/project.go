package model

import "regexp"

// Project is a named grouping that scopes which tasks are visible.
type Project struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColor checks if a color string is a valid hex color.
// The empty string is allowed (no color).
func ValidateColor(color string) bool {
	if color == "" {
		return true
	}
	return hexColorRegex.MatchString(color)
}
