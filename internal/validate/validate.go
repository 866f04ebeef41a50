// Package validate provides input validation helpers for the EzyTask CLI.
package validate

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ezytask/ezytask/internal/errors"
	"github.com/ezytask/ezytask/internal/model"
)

const (
	// MaxProjectNameLength is the maximum length for a project name.
	MaxProjectNameLength = 128
	// MaxTitleLength is the maximum length for a task title.
	MaxTitleLength = 256
	// MaxDescriptionLength is the maximum length for a task description.
	MaxDescriptionLength = 4096
)

// ProjectName validates a project name. The store itself does not
// enforce this; rejecting blank input is the caller's job.
func ProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewUserError("Project name cannot be empty", "Provide a project name")
	}
	if utf8.RuneCountInString(name) > MaxProjectNameLength {
		return errors.NewUserErrorWithField("project", name,
			"Project name too long",
			"Project names must be 128 characters or fewer")
	}
	return nil
}

// TaskTitle validates a task title. Empty is allowed; the store falls
// back to a placeholder.
func TaskTitle(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NewUserError(
			"Task title too long",
			"Titles must be 256 characters or fewer")
	}
	return nil
}

// Description validates a task description.
func Description(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return errors.NewUserError(
			"Description too long",
			"Descriptions must be 4096 characters or fewer")
	}
	return nil
}

// HexColor validates a hex color code.
func HexColor(color string) error {
	if model.ValidateColor(color) {
		return nil
	}
	return errors.NewUserErrorWithField("color", color,
		"Invalid color format",
		"Use hex format like '#FF5733' or '#00FF00'")
}

// ISODate validates a zero-padded ISO calendar date (YYYY-MM-DD). The
// lexicographic due-date comparisons rely on this shape.
func ISODate(date string) error {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return errors.NewUserErrorWithField("date", date,
			"Invalid date",
			"Use an ISO date like '2024-06-15'")
	}
	return nil
}

// Status validates and normalizes a status string from user input.
func Status(input string) (model.Status, error) {
	status, ok := model.ParseStatus(input)
	if !ok {
		return "", errors.NewUserErrorWithField("status", input,
			"Invalid status",
			"Use one of: todo, 'in progress', done")
	}
	return status, nil
}

// Priority validates and normalizes a priority string from user input.
func Priority(input string) (model.Priority, error) {
	priority, ok := model.ParsePriority(input)
	if !ok {
		return "", errors.NewUserErrorWithField("priority", input,
			"Invalid priority",
			"Use one of: low, medium, high")
	}
	return priority, nil
}
