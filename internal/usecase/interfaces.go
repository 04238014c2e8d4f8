package usecase

import (
	"context"

	"teamtodo/internal/entities"
)

// MemberUsecaseInterface abstracts project membership operations for delivery layer.
type MemberUsecaseInterface interface {
	AddMember(ctx context.Context, member entities.Member) (*entities.Member, error)
	ListMembers(ctx context.Context, projectID int64) ([]entities.MemberView, error)
	RemoveMember(ctx context.Context, projectID, memberID, requestUserID int64) error
	IsMember(ctx context.Context, projectID, userID int64) bool
}

// TaskUsecaseInterface abstracts task operations.
type TaskUsecaseInterface interface {
	CreateTask(ctx context.Context, task entities.Task, requestUserID int64) (*entities.Task, error)
	GetTask(ctx context.Context, taskID int64) (*entities.Task, error)
}
