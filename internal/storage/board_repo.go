package storage

import (
	"encoding/json"

	apperrors "github.com/ezytask/ezytask/internal/errors"
	"github.com/ezytask/ezytask/internal/model"
)

// BoardRepo persists the board state as whole-collection snapshots under
// fixed keys. Every save replaces the previous snapshot; there is no
// partial write. Storage failures surface as SystemError so the CLI can
// distinguish them from user mistakes.
type BoardRepo struct {
	db *DB
}

// NewBoardRepo creates a new board repository.
func NewBoardRepo(db *DB) *BoardRepo {
	return &BoardRepo{db: db}
}

// LoadTasks retrieves the task collection. The second return value is
// false when no snapshot has ever been written.
func (r *BoardRepo) LoadTasks() ([]model.Task, bool, error) {
	data, err := r.db.GetBytes(model.KeyTasks)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return nil, false, nil
		}
		return nil, false, apperrors.NewSystemErrorWithOp("load_tasks", "failed to read task snapshot", err)
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, false, apperrors.WithContext(err, "corrupt task snapshot")
	}
	return tasks, true, nil
}

// SaveTasks replaces the stored task collection.
func (r *BoardRepo) SaveTasks(tasks []model.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return apperrors.WithContext(err, "encode task snapshot")
	}
	if err := r.db.SetBytes(model.KeyTasks, data); err != nil {
		return apperrors.NewSystemErrorWithOp("save_tasks", "failed to write task snapshot", err)
	}
	return nil
}

// LoadProjects retrieves the project collection. The second return value
// is false when no snapshot has ever been written.
func (r *BoardRepo) LoadProjects() ([]model.Project, bool, error) {
	data, err := r.db.GetBytes(model.KeyProjects)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return nil, false, nil
		}
		return nil, false, apperrors.NewSystemErrorWithOp("load_projects", "failed to read project snapshot", err)
	}

	var projects []model.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, false, apperrors.WithContext(err, "corrupt project snapshot")
	}
	return projects, true, nil
}

// SaveProjects replaces the stored project collection.
func (r *BoardRepo) SaveProjects(projects []model.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return apperrors.WithContext(err, "encode project snapshot")
	}
	if err := r.db.SetBytes(model.KeyProjects, data); err != nil {
		return apperrors.NewSystemErrorWithOp("save_projects", "failed to write project snapshot", err)
	}
	return nil
}

// LoadActiveProject retrieves the persisted active project id.
func (r *BoardRepo) LoadActiveProject() (string, bool, error) {
	data, err := r.db.GetBytes(model.KeyWorkspace)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return "", false, nil
		}
		return "", false, apperrors.NewSystemErrorWithOp("load_workspace", "failed to read workspace state", err)
	}
	return string(data), true, nil
}

// SaveActiveProject persists the active project id.
func (r *BoardRepo) SaveActiveProject(id string) error {
	if err := r.db.SetBytes(model.KeyWorkspace, []byte(id)); err != nil {
		return apperrors.NewSystemErrorWithOp("save_workspace", "failed to write workspace state", err)
	}
	return nil
}

// LoadTheme retrieves the theme preference, or "" when unset.
func (r *BoardRepo) LoadTheme() (string, error) {
	data, err := r.db.GetBytes(model.KeyTheme)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return "", nil
		}
		return "", apperrors.NewSystemErrorWithOp("load_theme", "failed to read theme", err)
	}
	return string(data), nil
}

// SaveTheme persists the theme preference.
func (r *BoardRepo) SaveTheme(theme string) error {
	if err := r.db.SetBytes(model.KeyTheme, []byte(theme)); err != nil {
		return apperrors.NewSystemErrorWithOp("save_theme", "failed to write theme", err)
	}
	return nil
}
