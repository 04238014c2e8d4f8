// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"teamtodo/internal/entities"
	"teamtodo/internal/transport/http/dto"
)

// FromAddMemberRequest builds an entities.Member from a validated request.
func FromAddMemberRequest(src dto.AddMemberRequest) entities.Member {
	m := entities.Member{Role: src.Role}
	if src.ProjectID != nil {
		m.ProjectID = *src.ProjectID
	}
	if src.UserID != nil {
		m.UserID = *src.UserID
	}
	return m
}

// ToMember maps entities.Member to transport model.
func ToMember(m entities.Member) dto.Member {
	return dto.Member{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		UserID:    m.UserID,
		Role:      m.Role,
		JoinedAt:  m.JoinedAt,
	}
}

// ToMemberViews maps member views to a transport slice.
func ToMemberViews(list []entities.MemberView) []dto.MemberView {
	res := make([]dto.MemberView, 0, len(list))
	for _, m := range list {
		res = append(res, dto.MemberView{
			ID:       m.ID,
			UserID:   m.UserID,
			Username: m.Username,
			Email:    m.Email,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		})
	}
	return res
}

// FromCreateTaskRequest builds an entities.Task from a validated request.
func FromCreateTaskRequest(src dto.CreateTaskRequest) entities.Task {
	t := entities.Task{
		Title:       src.Title,
		Description: src.Description,
		Priority:    src.Priority,
		AssigneeID:  src.AssigneeID,
	}
	if src.ProjectID != nil {
		t.ProjectID = *src.ProjectID
	}
	if src.DueDate != nil {
		due := src.DueDate.Time
		t.DueDate = &due
	}
	return t
}

// ToTask maps entities.Task to transport model.
func ToTask(t entities.Task) dto.Task {
	return dto.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      string(t.Status),
		ProjectID:   t.ProjectID,
		CreatorID:   t.CreatorID,
		AssigneeID:  t.AssigneeID,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
