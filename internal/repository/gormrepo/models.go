package gormrepo

import (
	"time"

	"teamtodo/internal/entities"
)

type userModel struct {
	ID       int64 `gorm:"primaryKey"`
	Username string
	Email    string
}

func (userModel) TableName() string { return "users" }

type projectModel struct {
	ID          int64 `gorm:"primaryKey"`
	Name        string
	Description *string
	OwnerID     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (projectModel) TableName() string { return "projects" }

type memberModel struct {
	ID        int64 `gorm:"primaryKey"`
	ProjectID int64
	UserID    int64
	Role      string
	JoinedAt  time.Time
}

func (memberModel) TableName() string { return "project_members" }

type taskModel struct {
	ID          int64 `gorm:"primaryKey"`
	Title       string
	Description *string
	Priority    string
	Status      string
	ProjectID   int64
	CreatorID   int64
	AssigneeID  *int64
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (taskModel) TableName() string { return "tasks" }

func (m userModel) toEntity() *entities.User {
	return &entities.User{ID: m.ID, Username: m.Username, Email: m.Email}
}

func (m projectModel) toEntity() *entities.Project {
	p := &entities.Project{
		ID:        m.ID,
		Name:      m.Name,
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Description != nil {
		p.Description = *m.Description
	}
	return p
}

func memberFromEntity(e entities.Member) memberModel {
	return memberModel{ID: e.ID, ProjectID: e.ProjectID, UserID: e.UserID, Role: e.Role, JoinedAt: e.JoinedAt}
}

func (m memberModel) toEntity() entities.Member {
	return entities.Member{ID: m.ID, ProjectID: m.ProjectID, UserID: m.UserID, Role: m.Role, JoinedAt: m.JoinedAt}
}

func taskFromEntity(e entities.Task) taskModel {
	return taskModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Priority:    e.Priority,
		Status:      string(e.Status),
		ProjectID:   e.ProjectID,
		CreatorID:   e.CreatorID,
		AssigneeID:  e.AssigneeID,
		DueDate:     e.DueDate,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (m taskModel) toEntity() *entities.Task {
	return &entities.Task{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Priority:    m.Priority,
		Status:      entities.TaskStatus(m.Status),
		ProjectID:   m.ProjectID,
		CreatorID:   m.CreatorID,
		AssigneeID:  m.AssigneeID,
		DueDate:     m.DueDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
