package runtime

import (
	apperrors "github.com/ezytask/ezytask/internal/errors"
)

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	return apperrors.GetSuggestion(err)
}

// FormatError formats an error with optional suggestion.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
