package postgres

import (
	"context"
	"errors"
	"fmt"

	"teamtodo/internal/entities"

	"github.com/jackc/pgx/v5"
)

const selectProjectQuery = `
SELECT id, name, COALESCE(description, ''), owner_id, created_at, updated_at
FROM projects
WHERE id=$1`

// GetProject fetches a project by id.
func (p *Postgres) GetProject(ctx context.Context, projectID int64) (*entities.Project, error) {
	var pr entities.Project
	err := p.db.QueryRow(ctx, selectProjectQuery, projectID).
		Scan(&pr.ID, &pr.Name, &pr.Description, &pr.OwnerID, &pr.CreatedAt, &pr.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		p.log.Errorw("failed to get project", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &pr, nil
}
