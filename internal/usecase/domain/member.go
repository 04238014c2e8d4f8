// Package domain contains application services orchestrating domain logic by project membership.
package domain

import (
	"context"
	"errors"

	"teamtodo/internal/entities"
)

// AddMember adds a user to a project after existence and duplicate checks.
func (u *Usecase) AddMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.repo.GetProject(ctx, member.ProjectID); err != nil {
		if errors.Is(err, entities.ErrProjectNotFound) {
			return nil, entities.Validationf("Project not found with id: %d", member.ProjectID)
		}
		return nil, err
	}

	if _, err := u.repo.GetUser(ctx, member.UserID); err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.Validationf("User not found with id: %d", member.UserID)
		}
		return nil, err
	}

	_, err := u.repo.FindMember(ctx, member.ProjectID, member.UserID)
	switch {
	case err == nil:
		return nil, entities.Validationf("User is already a member of this project")
	case !errors.Is(err, entities.ErrMemberNotFound):
		return nil, err
	}

	if member.Role == "" {
		member.Role = entities.DefaultMemberRole
	}
	member.ID = 0
	member.JoinedAt = u.now()

	created, err := u.repo.CreateMember(ctx, member)
	if err != nil {
		if errors.Is(err, entities.ErrMemberExists) {
			return nil, entities.Validationf("User is already a member of this project")
		}
		return nil, err
	}

	u.log.Infow("member added", "project_id", created.ProjectID, "user_id", created.UserID, "role", created.Role)
	return created, nil
}

// ListMembers returns project members with the user's name and email filled in when the user still exists.
func (u *Usecase) ListMembers(ctx context.Context, projectID int64) ([]entities.MemberView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	members, err := u.repo.ListMembers(ctx, projectID)
	if err != nil {
		return nil, err
	}

	views := make([]entities.MemberView, 0, len(members))
	for _, m := range members {
		view := entities.MemberView{
			ID:       m.ID,
			UserID:   m.UserID,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}

		usr, err := u.repo.GetUser(ctx, m.UserID)
		switch {
		case err == nil:
			view.Username = usr.Username
			view.Email = usr.Email
		case errors.Is(err, entities.ErrUserNotFound):
			u.log.Warnw("member references missing user", "member_id", m.ID, "user_id", m.UserID)
		default:
			return nil, err
		}

		views = append(views, view)
	}

	return views, nil
}

// RemoveMember deletes a member row. Only the project owner may remove, and never themselves.
func (u *Usecase) RemoveMember(ctx context.Context, projectID, memberID, requestUserID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	project, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, entities.ErrProjectNotFound) {
			return entities.Validationf("Project not found with id: %d", projectID)
		}
		return err
	}

	if project.OwnerID != requestUserID {
		return entities.Validationf("Only project owner can remove members")
	}

	member, err := u.repo.GetMember(ctx, memberID)
	if err != nil {
		if errors.Is(err, entities.ErrMemberNotFound) {
			return entities.Validationf("Member not found with id: %d", memberID)
		}
		return err
	}

	if member.ProjectID != projectID {
		return entities.Validationf("Member does not belong to this project")
	}
	if member.UserID == requestUserID {
		return entities.Validationf("Cannot remove yourself from the project")
	}

	if err := u.repo.DeleteMember(ctx, memberID); err != nil {
		if errors.Is(err, entities.ErrMemberNotFound) {
			return entities.Validationf("Member not found with id: %d", memberID)
		}
		return err
	}

	u.log.Infow("member removed", "project_id", projectID, "member_id", memberID, "by", requestUserID)
	return nil
}

// IsMember reports whether the user has a member row in the project. Storage failures count as false.
func (u *Usecase) IsMember(ctx context.Context, projectID, userID int64) bool {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	_, err := u.repo.FindMember(ctx, projectID, userID)
	if err != nil {
		if !errors.Is(err, entities.ErrMemberNotFound) {
			u.log.Errorw("membership check failed", "error", err, "project_id", projectID, "user_id", userID)
		}
		return false
	}
	return true
}
