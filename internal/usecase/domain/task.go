// Package domain contains application services orchestrating domain logic by task.
package domain

import (
	"context"
	"errors"

	"teamtodo/internal/entities"
)

// CreateTask stores a new task in a project the requester belongs to.
// Status, creator and timestamps are always set here, whatever the input carries.
func (u *Usecase) CreateTask(ctx context.Context, task entities.Task, requestUserID int64) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.repo.GetProject(ctx, task.ProjectID); err != nil {
		if errors.Is(err, entities.ErrProjectNotFound) {
			return nil, entities.NotFoundf("Project not found with id: %d", task.ProjectID)
		}
		return nil, err
	}

	if _, err := u.repo.FindMember(ctx, task.ProjectID, requestUserID); err != nil {
		if errors.Is(err, entities.ErrMemberNotFound) {
			u.log.Warnw("task create rejected: not a member", "project_id", task.ProjectID, "user_id", requestUserID)
			return nil, entities.Unauthorizedf("User is not a member of the project")
		}
		return nil, err
	}

	if task.Priority == "" {
		task.Priority = entities.DefaultTaskPriority
	}
	now := u.now()
	task.ID = 0
	task.Status = entities.StatusTodo
	task.CreatorID = requestUserID
	task.CreatedAt = now
	task.UpdatedAt = now

	created, err := u.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, err
	}

	u.log.Infow("task create", "task_id", created.ID, "project_id", created.ProjectID)
	return created, nil
}

// GetTask returns a task by id.
func (u *Usecase) GetTask(ctx context.Context, taskID int64) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	task, err := u.repo.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return nil, entities.NotFoundf("Task not found with id: %d", taskID)
		}
		return nil, err
	}
	return task, nil
}
