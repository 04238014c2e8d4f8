package handlers_fiber

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"teamtodo/internal/entities"
	"teamtodo/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type usecaseMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*usecaseMock)(nil)

func (m *usecaseMock) AddMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *usecaseMock) ListMembers(ctx context.Context, projectID int64) ([]entities.MemberView, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MemberView), args.Error(1)
}

func (m *usecaseMock) RemoveMember(ctx context.Context, projectID, memberID, requestUserID int64) error {
	return m.Called(ctx, projectID, memberID, requestUserID).Error(0)
}

func (m *usecaseMock) IsMember(ctx context.Context, projectID, userID int64) bool {
	return m.Called(ctx, projectID, userID).Bool(0)
}

func (m *usecaseMock) CreateTask(ctx context.Context, task entities.Task, requestUserID int64) (*entities.Task, error) {
	args := m.Called(ctx, task, requestUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *usecaseMock) GetTask(ctx context.Context, taskID int64) (*entities.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func newTestApp(uc *usecaseMock) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app, NewHandler(zap.NewNop().Sugar(), uc))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string, headers map[string]string) (int, map[string]any, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var obj map[string]any
	_ = json.Unmarshal(raw, &obj)
	return resp.StatusCode, obj, raw
}
