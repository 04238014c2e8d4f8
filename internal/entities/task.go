// Package entities contains core business entities.
package entities

import "time"

// TaskStatus enumerates task board columns.
type TaskStatus string

// StatusTodo is the status every new task starts in.
const StatusTodo TaskStatus = "todo"

// DefaultTaskPriority is assigned when a task is created without a priority.
const DefaultTaskPriority = "medium"

// Task is a unit of work inside a project.
type Task struct {
	ID          int64
	Title       string
	Description *string
	Priority    string
	Status      TaskStatus
	ProjectID   int64
	CreatorID   int64
	AssigneeID  *int64
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
