package postgres

import (
	"context"
	"errors"
	"fmt"

	"teamtodo/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectTaskQuery = `
SELECT id, title, description, priority, status, project_id, creator_id, assignee_id, due_date, created_at, updated_at
FROM tasks
WHERE id=$1`
	insertTaskQuery = `
INSERT INTO tasks(title, description, priority, status, project_id, creator_id, assignee_id, due_date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`
)

// GetTask fetches a task by id.
func (p *Postgres) GetTask(ctx context.Context, taskID int64) (*entities.Task, error) {
	var t entities.Task
	err := p.db.QueryRow(ctx, selectTaskQuery, taskID).Scan(
		&t.ID, &t.Title, &t.Description, &t.Priority, &t.Status, &t.ProjectID,
		&t.CreatorID, &t.AssigneeID, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		p.log.Errorw("failed to get task", "error", err, "task_id", taskID)
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// CreateTask inserts a task and returns it with the generated id.
func (p *Postgres) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	err := p.db.QueryRow(ctx, insertTaskQuery,
		task.Title, task.Description, task.Priority, string(task.Status), task.ProjectID,
		task.CreatorID, task.AssigneeID, task.DueDate, task.CreatedAt, task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		p.log.Errorw("failed to insert task", "error", err, "project_id", task.ProjectID)
		return nil, fmt.Errorf("insert task: %w", err)
	}

	p.log.Infow("task created", "task_id", task.ID, "project_id", task.ProjectID, "creator_id", task.CreatorID)
	return &task, nil
}
