package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"teamtodo/internal/entities"

	"gorm.io/gorm"
)

// GetUser fetches a user by id.
func (g *Gorm) GetUser(ctx context.Context, userID int64) (*entities.User, error) {
	var m userModel
	if err := g.db.WithContext(ctx).First(&m, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return m.toEntity(), nil
}

// GetProject fetches a project by id.
func (g *Gorm) GetProject(ctx context.Context, projectID int64) (*entities.Project, error) {
	var m projectModel
	if err := g.db.WithContext(ctx).First(&m, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return m.toEntity(), nil
}

// GetMember fetches a member row by id.
func (g *Gorm) GetMember(ctx context.Context, memberID int64) (*entities.Member, error) {
	var m memberModel
	if err := g.db.WithContext(ctx).First(&m, memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	e := m.toEntity()
	return &e, nil
}

// FindMember fetches the member row for a (project, user) pair.
func (g *Gorm) FindMember(ctx context.Context, projectID, userID int64) (*entities.Member, error) {
	var m memberModel
	err := g.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	e := m.toEntity()
	return &e, nil
}

// ListMembers returns member rows of a project in insertion order.
func (g *Gorm) ListMembers(ctx context.Context, projectID int64) ([]entities.Member, error) {
	var rows []memberModel
	if err := g.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	members := make([]entities.Member, 0, len(rows))
	for _, r := range rows {
		members = append(members, r.toEntity())
	}
	return members, nil
}

// CreateMember inserts a member row and returns it with the generated id.
func (g *Gorm) CreateMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	m := memberFromEntity(member)
	if err := g.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, entities.ErrMemberExists
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	g.log.Infow("member created", "member_id", m.ID, "project_id", m.ProjectID, "user_id", m.UserID)
	e := m.toEntity()
	return &e, nil
}

// DeleteMember removes a member row by id.
func (g *Gorm) DeleteMember(ctx context.Context, memberID int64) error {
	res := g.db.WithContext(ctx).Delete(&memberModel{}, memberID)
	if res.Error != nil {
		return fmt.Errorf("delete member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.ErrMemberNotFound
	}

	g.log.Infow("member deleted", "member_id", memberID)
	return nil
}

// GetTask fetches a task by id.
func (g *Gorm) GetTask(ctx context.Context, taskID int64) (*entities.Task, error) {
	var m taskModel
	if err := g.db.WithContext(ctx).First(&m, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return m.toEntity(), nil
}

// CreateTask inserts a task and returns it with the generated id.
func (g *Gorm) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	m := taskFromEntity(task)
	if err := g.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	g.log.Infow("task created", "task_id", m.ID, "project_id", m.ProjectID, "creator_id", m.CreatorID)
	return m.toEntity(), nil
}
