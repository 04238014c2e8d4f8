package handlers_fiber

import (
	"net/http"
	"testing"
	"time"

	"teamtodo/internal/entities"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPostTask(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	uc.On("CreateTask", mock.Anything, mock.MatchedBy(func(task entities.Task) bool {
		return task.Title == "T" && task.ProjectID == 1 && task.AssigneeID != nil && *task.AssigneeID == 3
	}), int64(5)).Return(&entities.Task{
		ID: 9, Title: "T", Priority: "medium", Status: entities.StatusTodo,
		ProjectID: 1, CreatorID: 5, CreatedAt: now, UpdatedAt: now,
	}, nil)

	status, body, _ := doRequest(t, app, http.MethodPost, "/tasks",
		`{"title":"T","projectId":1,"assigneeId":3,"status":"done","creatorId":77}`,
		map[string]string{HeaderUserID: "5"})
	require.Equal(t, http.StatusCreated, status)
	require.EqualValues(t, 9, body["id"])
	require.Equal(t, "todo", body["status"])
	require.EqualValues(t, 5, body["creatorId"])
	require.Nil(t, body["description"])
}

func TestPostTaskAcceptsZonelessDueDate(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	due := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	uc.On("CreateTask", mock.Anything, mock.MatchedBy(func(task entities.Task) bool {
		return task.DueDate != nil && task.DueDate.Equal(due)
	}), int64(5)).Return(&entities.Task{
		ID: 10, Title: "T", Priority: "medium", Status: entities.StatusTodo,
		ProjectID: 1, CreatorID: 5, DueDate: &due, CreatedAt: now, UpdatedAt: now,
	}, nil)

	status, body, _ := doRequest(t, app, http.MethodPost, "/tasks",
		`{"title":"T","projectId":1,"dueDate":"2024-06-01T10:00:00"}`,
		map[string]string{HeaderUserID: "5"})
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "2024-06-01T10:00:00Z", body["dueDate"])

	status, body, _ = doRequest(t, app, http.MethodPost, "/tasks",
		`{"title":"T","projectId":1,"dueDate":"June 1st"}`,
		map[string]string{HeaderUserID: "5"})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalid body", body["error"])
	uc.AssertNumberOfCalls(t, "CreateTask", 1)
}

func TestPostTaskValidation(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)
	hdr := map[string]string{HeaderUserID: "5"}

	status, body, _ := doRequest(t, app, http.MethodPost, "/tasks", `{"projectId":1}`, hdr)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Title is required", body["error"])

	status, body, _ = doRequest(t, app, http.MethodPost, "/tasks", `{"title":"T"}`, hdr)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Project ID is required", body["error"])

	status, body, _ = doRequest(t, app, http.MethodPost, "/tasks", `{"title":"T","projectId":1}`, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "X-User-Id is required", body["error"])

	uc.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostTaskFailures(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("CreateTask", mock.Anything, mock.MatchedBy(func(task entities.Task) bool { return task.ProjectID == 404 }), int64(5)).
		Return(nil, entities.NotFoundf("Project not found with id: 404"))
	uc.On("CreateTask", mock.Anything, mock.MatchedBy(func(task entities.Task) bool { return task.ProjectID == 1 }), int64(5)).
		Return(nil, entities.Unauthorizedf("User is not a member of the project"))

	status, body, _ := doRequest(t, app, http.MethodPost, "/tasks", `{"title":"T","projectId":404}`, map[string]string{HeaderUserID: "5"})
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Project not found with id: 404", body["error"])

	status, body, _ = doRequest(t, app, http.MethodPost, "/tasks", `{"title":"T","projectId":1}`, map[string]string{HeaderUserID: "5"})
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "User is not a member of the project", body["error"])
}

func TestGetTask(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	desc := "ship it"
	uc.On("GetTask", mock.Anything, int64(1)).Return(&entities.Task{ID: 1, Title: "T", Description: &desc, Status: entities.StatusTodo}, nil)
	uc.On("GetTask", mock.Anything, int64(2)).Return(nil, entities.NotFoundf("Task not found with id: 2"))

	status, body, _ := doRequest(t, app, http.MethodGet, "/tasks/1", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ship it", body["description"])

	status, body, _ = doRequest(t, app, http.MethodGet, "/tasks/2", "", nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Task not found with id: 2", body["error"])
}
