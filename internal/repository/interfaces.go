// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"teamtodo/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user lookups.
type UserInterface interface {
	GetUser(ctx context.Context, userID int64) (*entities.User, error)
}

// ProjectInterface exposes project lookups.
type ProjectInterface interface {
	GetProject(ctx context.Context, projectID int64) (*entities.Project, error)
}

// MemberInterface exposes project membership persistence.
type MemberInterface interface {
	GetMember(ctx context.Context, memberID int64) (*entities.Member, error)
	FindMember(ctx context.Context, projectID, userID int64) (*entities.Member, error)
	ListMembers(ctx context.Context, projectID int64) ([]entities.Member, error)
	CreateMember(ctx context.Context, member entities.Member) (*entities.Member, error)
	DeleteMember(ctx context.Context, memberID int64) error
}

// TaskInterface exposes task persistence.
type TaskInterface interface {
	GetTask(ctx context.Context, taskID int64) (*entities.Task, error)
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
}
