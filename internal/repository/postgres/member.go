package postgres

import (
	"context"
	"errors"
	"fmt"

	"teamtodo/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation = "23505"

	memberColumns     = "id, project_id, user_id, role, joined_at"
	selectMemberQuery = "SELECT " + memberColumns + " FROM project_members WHERE id=$1"
	findMemberQuery   = "SELECT " + memberColumns + " FROM project_members WHERE project_id=$1 AND user_id=$2"
	listMembersQuery  = "SELECT " + memberColumns + " FROM project_members WHERE project_id=$1 ORDER BY id"
	insertMemberQuery = "INSERT INTO project_members(project_id, user_id, role, joined_at) VALUES ($1, $2, $3, $4) RETURNING id"
	deleteMemberQuery = "DELETE FROM project_members WHERE id=$1"
)

// GetMember fetches a member row by id.
func (p *Postgres) GetMember(ctx context.Context, memberID int64) (*entities.Member, error) {
	m, err := scanMember(p.db.QueryRow(ctx, selectMemberQuery, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		p.log.Errorw("failed to get member", "error", err, "member_id", memberID)
		return nil, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

// FindMember fetches the member row for a (project, user) pair.
func (p *Postgres) FindMember(ctx context.Context, projectID, userID int64) (*entities.Member, error) {
	m, err := scanMember(p.db.QueryRow(ctx, findMemberQuery, projectID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		p.log.Errorw("failed to find member", "error", err, "project_id", projectID, "user_id", userID)
		return nil, fmt.Errorf("find member: %w", err)
	}
	return m, nil
}

// ListMembers returns member rows of a project in insertion order.
func (p *Postgres) ListMembers(ctx context.Context, projectID int64) ([]entities.Member, error) {
	rows, err := p.db.Query(ctx, listMembersQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			p.log.Errorw("failed to scan member", "error", err, "project_id", projectID)
			return nil, fmt.Errorf("scan members: %w", err)
		}
		members = append(members, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return members, nil
}

// CreateMember inserts a member row and returns it with the generated id.
func (p *Postgres) CreateMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	err := p.db.QueryRow(ctx, insertMemberQuery, member.ProjectID, member.UserID, member.Role, member.JoinedAt).
		Scan(&member.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, entities.ErrMemberExists
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	p.log.Infow("member created", "member_id", member.ID, "project_id", member.ProjectID, "user_id", member.UserID)
	return &member, nil
}

// DeleteMember removes a member row by id.
func (p *Postgres) DeleteMember(ctx context.Context, memberID int64) error {
	tag, err := p.db.Exec(ctx, deleteMemberQuery, memberID)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrMemberNotFound
	}

	p.log.Infow("member deleted", "member_id", memberID)
	return nil
}

func scanMember(row pgx.Row) (*entities.Member, error) {
	var m entities.Member
	if err := row.Scan(&m.ID, &m.ProjectID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
