package store

import "github.com/ezytask/ezytask/internal/model"

// Subtask and attachment edits are whole-slice replacements routed
// through UpdateTask, so they persist atomically with the same
// snapshot semantics as any other task edit. All of them follow the
// store's silent no-op convention: an unknown task or member id
// returns (nil, nil).

// AddSubtask appends an unchecked subtask to the task's checklist.
func (s *Store) AddSubtask(taskID, title string) (*model.Task, error) {
	task := s.FindTask(taskID)
	if task == nil {
		return nil, nil
	}

	merged := append([]model.SubTask{}, task.Subtasks...)
	merged = append(merged, model.SubTask{ID: s.newID(), Title: title})
	return s.UpdateTask(taskID, TaskPatch{Subtasks: &merged})
}

// ToggleSubtask flips the completion flag of one subtask.
func (s *Store) ToggleSubtask(taskID, subtaskID string) (*model.Task, error) {
	task := s.FindTask(taskID)
	if task == nil {
		return nil, nil
	}

	merged := append([]model.SubTask{}, task.Subtasks...)
	for i := range merged {
		if merged[i].ID == subtaskID {
			merged[i].Completed = !merged[i].Completed
			return s.UpdateTask(taskID, TaskPatch{Subtasks: &merged})
		}
	}
	return nil, nil
}

// RemoveSubtask deletes one subtask from the task's checklist.
func (s *Store) RemoveSubtask(taskID, subtaskID string) (*model.Task, error) {
	task := s.FindTask(taskID)
	if task == nil {
		return nil, nil
	}

	for i, st := range task.Subtasks {
		if st.ID == subtaskID {
			merged := append([]model.SubTask{}, task.Subtasks[:i]...)
			merged = append(merged, task.Subtasks[i+1:]...)
			return s.UpdateTask(taskID, TaskPatch{Subtasks: &merged})
		}
	}
	return nil, nil
}

// AddAttachment records an attachment name on the task. Duplicate
// names are kept; the original board allowed re-attaching the same
// file name.
func (s *Store) AddAttachment(taskID, name string) (*model.Task, error) {
	task := s.FindTask(taskID)
	if task == nil {
		return nil, nil
	}

	merged := append([]string{}, task.Attachments...)
	merged = append(merged, name)
	return s.UpdateTask(taskID, TaskPatch{Attachments: &merged})
}

// RemoveAttachment drops the first attachment with the given name.
func (s *Store) RemoveAttachment(taskID, name string) (*model.Task, error) {
	task := s.FindTask(taskID)
	if task == nil {
		return nil, nil
	}

	for i, a := range task.Attachments {
		if a == name {
			merged := append([]string{}, task.Attachments[:i]...)
			merged = append(merged, task.Attachments[i+1:]...)
			return s.UpdateTask(taskID, TaskPatch{Attachments: &merged})
		}
	}
	return nil, nil
}
