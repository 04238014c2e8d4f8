package gormrepo

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"teamtodo/config"
	"teamtodo/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGormRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, zap.NewNop().Sugar(), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	owner := userModel{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, repo.db.Create(&owner).Error)
	member := userModel{Username: "bob", Email: "bob@example.com"}
	require.NoError(t, repo.db.Create(&member).Error)
	project := projectModel{Name: "board", OwnerID: owner.ID}
	require.NoError(t, repo.db.Create(&project).Error)

	p, err := repo.GetProject(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, owner.ID, p.OwnerID)
	require.Empty(t, p.Description)

	_, err = repo.GetProject(ctx, project.ID+100)
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	_, err = repo.GetUser(ctx, member.ID+100)
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	joined := time.Now().UTC().Truncate(time.Microsecond)
	created, err := repo.CreateMember(ctx, entities.Member{ProjectID: project.ID, UserID: member.ID, Role: entities.DefaultMemberRole, JoinedAt: joined})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	_, err = repo.CreateMember(ctx, entities.Member{ProjectID: project.ID, UserID: member.ID, Role: "ADMIN", JoinedAt: joined})
	require.ErrorIs(t, err, entities.ErrMemberExists)

	found, err := repo.FindMember(ctx, project.ID, member.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)

	members, err := repo.ListMembers(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)

	now := time.Now().UTC().Truncate(time.Microsecond)
	task, err := repo.CreateTask(ctx, entities.Task{
		Title: "Release", Priority: entities.DefaultTaskPriority, Status: entities.StatusTodo,
		ProjectID: project.ID, CreatorID: member.ID, AssigneeID: &owner.ID, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	fetched, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusTodo, fetched.Status)
	require.Equal(t, owner.ID, *fetched.AssigneeID)
	require.Nil(t, fetched.DueDate)

	_, err = repo.GetTask(ctx, task.ID+100)
	require.ErrorIs(t, err, entities.ErrTaskNotFound)

	require.NoError(t, repo.DeleteMember(ctx, created.ID))
	require.ErrorIs(t, repo.DeleteMember(ctx, created.ID), entities.ErrMemberNotFound)

	_, err = repo.GetMember(ctx, created.ID)
	require.ErrorIs(t, err, entities.ErrMemberNotFound)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=teamtodo_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	port, err := strconv.Atoi(resource.GetPort("5432/tcp"))
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)

	cfg := &config.Config{
		Repository: config.RepositoryConfig{Backend: config.BackendGorm},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "teamtodo_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	return cfg, func() { _ = pool.Purge(resource) }
}
