package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrProjectNotFound:    "Use 'ezytask project' to see available projects.",
	ErrTaskNotFound:       "Use 'ezytask task' to see tasks in the active project.",
	ErrSubtaskNotFound:    "Use 'ezytask task show <id>' to see a task's subtasks.",
	ErrAttachmentNotFound: "Use 'ezytask task show <id>' to see a task's attachments.",
	ErrProjectNameEmpty:   "Provide a non-empty project name, e.g. 'ezytask project create \"Growth\"'.",
	ErrInvalidColor:       "Use hex color format like '#FF5733' or '#00FF00'.",
	ErrInvalidDate:        "Use an ISO date like '2024-06-15' or natural language like 'tomorrow'.",
	ErrInvalidStatus:      "Use one of: todo, 'in progress', done.",
	ErrInvalidPriority:    "Use one of: low, medium, high.",
	ErrInvalidTheme:       "Use 'light' or 'dark'.",
	ErrAdvisorUnavailable: "Set EZYTASK_API_KEY to enable AI suggestions.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	return ""
}
