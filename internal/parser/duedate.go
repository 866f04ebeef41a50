// Package parser turns user-supplied date expressions into the zero-padded
// ISO calendar dates the rest of the system compares lexicographically.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/ezytask/ezytask/internal/model"
)

// relativeRegex matches relative day expressions like "+3d", "+2w".
var relativeRegex = regexp.MustCompile(`^\+(\d+)([dw])$`)

// ParseDueDate parses a due-date expression into an ISO calendar date.
// Supports formats like:
//   - "2024-06-15" (ISO, passed through)
//   - "+3d", "+2w" (relative)
//   - "tomorrow", "next friday" (natural language)
//
// The reference time defaults to now when zero.
func ParseDueDate(input string, ref time.Time) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("due date is required")
	}
	if ref.IsZero() {
		ref = time.Now()
	}

	// ISO dates pass through untouched.
	if t, err := time.Parse(model.DateLayout, input); err == nil {
		return t.Format(model.DateLayout), nil
	}

	// Relative day/week offsets (+3d, +2w).
	if match := relativeRegex.FindStringSubmatch(input); match != nil {
		num, _ := strconv.Atoi(match[1])
		days := num
		if match[2] == "w" {
			days = num * 7
		}
		return ref.AddDate(0, 0, days).Format(model.DateLayout), nil
	}

	// Natural language via go-dateparser.
	cfg := &dateparser.Configuration{
		CurrentTime:         ref,
		PreferredDateSource: dateparser.Future,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return "", fmt.Errorf("could not parse due date %q", input)
	}

	return result.Time.Format(model.DateLayout), nil
}
