package postgres

import (
	"context"
	"errors"
	"fmt"

	"teamtodo/internal/entities"

	"github.com/jackc/pgx/v5"
)

const selectUserQuery = `SELECT id, username, email FROM users WHERE id=$1`

// GetUser fetches a user by id.
func (p *Postgres) GetUser(ctx context.Context, userID int64) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserQuery, userID).Scan(&u.ID, &u.Username, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		p.log.Errorw("failed to get user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
