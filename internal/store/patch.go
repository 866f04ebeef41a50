package store

import "github.com/ezytask/ezytask/internal/model"

// TaskDraft carries the caller-supplied fields for a new task. Zero
// values are replaced by the documented defaults at creation time.
type TaskDraft struct {
	Title       string
	Description string
	Status      model.Status
	Priority    model.Priority
	DueDate     string
	Tags        []string
	Subtasks    []model.SubTask
	AssigneeID  string
	Attachments []string
}

// TaskPatch is an explicit per-field-optional update. A nil field means
// "leave unchanged", which keeps the update contract statically
// checkable instead of merging untyped partial objects.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *model.Status
	Priority    *model.Priority
	DueDate     *string
	Tags        *[]string
	Subtasks    *[]model.SubTask
	AssigneeID  *string
	Attachments *[]string
}

func (p TaskPatch) apply(t *model.Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	if p.Subtasks != nil {
		t.Subtasks = *p.Subtasks
	}
	if p.AssigneeID != nil {
		t.AssigneeID = *p.AssigneeID
	}
	if p.Attachments != nil {
		t.Attachments = *p.Attachments
	}
}

// IsZero reports whether the patch changes nothing.
func (p TaskPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.DueDate == nil && p.Tags == nil &&
		p.Subtasks == nil && p.AssigneeID == nil && p.Attachments == nil
}

// Helpers for building patches from optional CLI flags.

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }

// StatusPtr returns a pointer to st.
func StatusPtr(st model.Status) *model.Status { return &st }

// PriorityPtr returns a pointer to pr.
func PriorityPtr(pr model.Priority) *model.Priority { return &pr }
