// Package store implements the in-memory task/project collection and
// its mutation operations. Every mutation immediately re-serializes the
// affected collection through the injected persistence layer; there is
// no batching or partial write.
package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/ezytask/ezytask/internal/logging"
	"github.com/ezytask/ezytask/internal/model"
)

// Persistence is the storage contract the store writes through. It is
// satisfied by storage.BoardRepo.
type Persistence interface {
	LoadTasks() ([]model.Task, bool, error)
	SaveTasks([]model.Task) error
	LoadProjects() ([]model.Project, bool, error)
	SaveProjects([]model.Project) error
	LoadActiveProject() (string, bool, error)
	SaveActiveProject(id string) error
}

// Store holds the ordered task and project collections. Tasks are kept
// newest-first. The store is not safe for concurrent mutation; callers
// run mutations from a single logical thread of control.
type Store struct {
	persist Persistence

	tasks           []model.Task
	projects        []model.Project
	members         []model.Member
	activeProjectID string

	// Injected for deterministic tests.
	now   func() time.Time
	newID func() string
}

// New creates a store backed by the given persistence layer. Call Load
// before using it.
func New(persist Persistence) *Store {
	return &Store{
		persist: persist,
		members: model.SeedMembers(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Load reads the persisted collections. When no prior snapshot exists
// the store seeds the built-in fixtures and writes them back, so a
// fresh database never starts empty.
func (s *Store) Load() error {
	projects, found, err := s.persist.LoadProjects()
	if err != nil {
		return err
	}
	if !found {
		projects = model.SeedProjects()
		if err := s.persist.SaveProjects(projects); err != nil {
			return err
		}
	}
	s.projects = projects

	tasks, found, err := s.persist.LoadTasks()
	if err != nil {
		return err
	}
	if !found {
		tasks = model.SeedTasks(s.now())
		if err := s.persist.SaveTasks(tasks); err != nil {
			return err
		}
	}
	s.tasks = tasks

	active, found, err := s.persist.LoadActiveProject()
	if err != nil {
		return err
	}
	if found {
		s.activeProjectID = active
	} else if len(s.projects) > 0 {
		s.activeProjectID = s.projects[0].ID
	}

	logging.DebugLog("store loaded",
		"tasks", len(s.tasks),
		"projects", len(s.projects),
		"active_project", s.activeProjectID)
	return nil
}

// Tasks returns the task collection, newest-first.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Projects returns the project collection in creation order.
func (s *Store) Projects() []model.Project {
	out := make([]model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Members returns the static member roster.
func (s *Store) Members() []model.Member {
	return s.members
}

// ActiveProjectID returns the id of the currently active project.
func (s *Store) ActiveProjectID() string {
	return s.activeProjectID
}

// ActiveProject returns the active project, or nil when the active id
// does not reference an existing project.
func (s *Store) ActiveProject() *model.Project {
	return s.FindProject(s.activeProjectID)
}

// FindProject returns the project with the given id, or nil.
func (s *Store) FindProject(id string) *model.Project {
	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i]
			return &p
		}
	}
	return nil
}

// FindTask returns a copy of the task with the given id, or nil.
func (s *Store) FindTask(id string) *model.Task {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			return &t
		}
	}
	return nil
}

// CreateTask creates a task from the draft, filling missing fields from
// the documented defaults, binds it to the active project, prepends it
// to the collection and persists the new snapshot. An empty title falls
// back to a placeholder rather than raising a validation error.
func (s *Store) CreateTask(draft TaskDraft) (model.Task, error) {
	task := model.Task{
		ID:          s.newID(),
		ProjectID:   s.activeProjectID,
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status,
		Priority:    draft.Priority,
		DueDate:     draft.DueDate,
		Tags:        draft.Tags,
		Subtasks:    draft.Subtasks,
		AssigneeID:  draft.AssigneeID,
		Attachments: draft.Attachments,
		CreatedAt:   s.now(),
	}

	if task.Title == "" {
		task.Title = model.DefaultTitle
	}
	if task.Status == "" {
		task.Status = model.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if task.DueDate == "" {
		task.DueDate = s.now().Format(model.DateLayout)
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}
	if task.Subtasks == nil {
		task.Subtasks = []model.SubTask{}
	}
	if task.Attachments == nil {
		task.Attachments = []string{}
	}

	s.tasks = append([]model.Task{task}, s.tasks...)
	if err := s.persist.SaveTasks(s.tasks); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// UpdateTask merges the patch into the task with the given id and
// persists the new snapshot. Unknown ids are a silent no-op; fields not
// set in the patch are preserved.
func (s *Store) UpdateTask(id string, patch TaskPatch) (*model.Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		patch.apply(&s.tasks[i])
		if err := s.persist.SaveTasks(s.tasks); err != nil {
			return nil, err
		}
		t := s.tasks[i]
		return &t, nil
	}
	return nil, nil
}

// DeleteTask removes the task with the given id and persists the new
// snapshot. Unknown ids are a silent no-op; subtasks are embedded, so
// no cascading cleanup is needed.
func (s *Store) DeleteTask(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		return s.persist.SaveTasks(s.tasks)
	}
	return nil
}

// CreateProject appends a new project and makes it the active one.
// Rejecting a blank name is the caller's responsibility.
func (s *Store) CreateProject(name, color string) (model.Project, error) {
	project := model.Project{
		ID:    s.newID(),
		Name:  name,
		Color: color,
	}

	s.projects = append(s.projects, project)
	if err := s.persist.SaveProjects(s.projects); err != nil {
		return model.Project{}, err
	}
	if err := s.setActive(project.ID); err != nil {
		return model.Project{}, err
	}
	return project, nil
}

// SetActiveProject changes which project's tasks are visible. The id is
// not validated; an unknown id simply yields an empty visible set.
func (s *Store) SetActiveProject(id string) error {
	return s.setActive(id)
}

// DeleteProject removes a project and all of its tasks. When the active
// project is deleted the active pointer moves to the first remaining
// project. Unknown ids are a silent no-op.
func (s *Store) DeleteProject(id string) error {
	idx := -1
	for i := range s.projects {
		if s.projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	s.projects = append(s.projects[:idx], s.projects[idx+1:]...)
	if err := s.persist.SaveProjects(s.projects); err != nil {
		return err
	}

	// Cascade: a project's tasks have no meaning without it.
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ProjectID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	if err := s.persist.SaveTasks(s.tasks); err != nil {
		return err
	}

	if s.activeProjectID == id {
		next := ""
		if len(s.projects) > 0 {
			next = s.projects[0].ID
		}
		return s.setActive(next)
	}
	return nil
}

func (s *Store) setActive(id string) error {
	s.activeProjectID = id
	return s.persist.SaveActiveProject(id)
}
