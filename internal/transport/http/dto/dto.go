// Package dto holds the JSON request and response bodies of the HTTP API.
package dto

import (
	"strings"
	"time"

	"teamtodo/internal/entities"
)

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// AddMemberRequest is the body of POST /projects/members.
type AddMemberRequest struct {
	ProjectID *int64 `json:"projectId"`
	UserID    *int64 `json:"userId"`
	Role      string `json:"role"`
}

// Validate checks required fields before the request reaches the usecase layer.
func (r AddMemberRequest) Validate() error {
	if r.ProjectID == nil {
		return entities.Validationf("Project ID is required")
	}
	if r.UserID == nil {
		return entities.Validationf("User ID is required")
	}
	return nil
}

// Member is a stored project membership.
type Member struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"projectId"`
	UserID    int64     `json:"userId"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// MemberView is one entry of the project member list.
type MemberView struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// MembershipResponse answers the membership check.
type MembershipResponse struct {
	IsMember bool `json:"isMember"`
}

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Priority    string   `json:"priority"`
	ProjectID   *int64   `json:"projectId"`
	AssigneeID  *int64   `json:"assigneeId"`
	DueDate     *DueDate `json:"dueDate"`
}

// Validate checks required fields before the request reaches the usecase layer.
func (r CreateTaskRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return entities.Validationf("Title is required")
	}
	if r.ProjectID == nil {
		return entities.Validationf("Project ID is required")
	}
	return nil
}

// Task is the task representation returned by the API.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	ProjectID   int64      `json:"projectId"`
	CreatorID   int64      `json:"creatorId"`
	AssigneeID  *int64     `json:"assigneeId"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
