package opsclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innkeep/backoffice/internal/domain"
)

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.NewDate(s)
	require.NoError(t, err)
	return d
}

func TestListTasks_QueryParameters(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/housekeeping-tasks", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"tasks":[{"id":"t1","roomId":"r1","assignedUserId":"u1","taskDate":"2024-06-01","taskType":"cleaning","priority":"high","status":"pending","createdAt":"2024-05-30T10:00:00Z","updatedAt":"2024-05-30T10:00:00Z"}]}`)
	}))
	defer server.Close()

	client := New(server.URL, WithHTTPClient(server.Client()))

	date := mustDate(t, "2024-06-01")
	status := domain.TaskStatusPending
	userID := "u1"
	tasks, err := client.ListTasks(context.Background(), domain.ListTasksParams{
		Date:           &date,
		Status:         &status,
		AssignedUserID: &userID,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-06-01"}, gotQuery["date"])
	assert.Equal(t, []string{"pending"}, gotQuery["status"])
	assert.Equal(t, []string{"u1"}, gotQuery["userId"])

	require.Len(t, tasks, 1)
	assert.Equal(t, "t1", tasks[0].ID)
	assert.Equal(t, domain.TaskTypeCleaning, tasks[0].TaskType)
	assert.Equal(t, "2024-06-01", tasks[0].TaskDate.String())
}

func TestRescheduleTask_SendsDateOnlyPatch(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/housekeeping-tasks/t1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"t1","roomId":"r1","assignedUserId":"u1","taskDate":"2024-06-03","taskType":"cleaning","priority":"medium","status":"pending","createdAt":"2024-05-30T10:00:00Z","updatedAt":"2024-06-01T10:00:00Z"}`)
	}))
	defer server.Close()

	client := New(server.URL, WithHTTPClient(server.Client()))

	task, err := client.RescheduleTask(context.Background(), "t1", mustDate(t, "2024-06-03"))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"taskDate": "2024-06-03"}, gotBody, "reschedule must carry only the date")
	assert.Equal(t, "2024-06-03", task.TaskDate.String())
}

func TestUpdateTask_StatusOnlyPatch(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"t1","roomId":"r1","assignedUserId":"u1","taskDate":"2024-06-01","taskType":"cleaning","priority":"medium","status":"in_progress","startedAt":"2024-06-01T08:00:00Z","createdAt":"2024-05-30T10:00:00Z","updatedAt":"2024-06-01T08:00:00Z"}`)
	}))
	defer server.Close()

	client := New(server.URL, WithHTTPClient(server.Client()))

	status := domain.TaskStatusInProgress
	task, err := client.UpdateTask(context.Background(), "t1", TaskPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"status": "in_progress"}, gotBody)
	require.NotNil(t, task.StartedAt)
	assert.Equal(t, domain.TaskStatusInProgress, task.Status)
}

func TestCreateTask_OmitsNilNotes(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/housekeeping-tasks", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"t9","roomId":"r1","assignedUserId":"u1","taskDate":"2024-06-01","taskType":"inspection","priority":"low","status":"pending","createdAt":"2024-05-30T10:00:00Z","updatedAt":"2024-05-30T10:00:00Z"}`)
	}))
	defer server.Close()

	client := New(server.URL, WithHTTPClient(server.Client()))

	task, err := client.CreateTask(context.Background(), CreateTaskParams{
		RoomID:         "r1",
		AssignedUserID: "u1",
		TaskDate:       mustDate(t, "2024-06-01"),
		TaskType:       domain.TaskTypeInspection,
		Priority:       domain.TaskPriorityLow,
	})
	require.NoError(t, err)

	assert.NotContains(t, gotBody, "notes")
	assert.Equal(t, "r1", gotBody["roomId"])
	assert.Equal(t, "t9", task.ID)
}

func TestDo_DecodesErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"error":{"code":"CONFLICT","message":"task already scheduled"}}`)
	}))
	defer server.Close()

	client := New(server.URL, WithHTTPClient(server.Client()))

	_, err := client.CreateTask(context.Background(), CreateTaskParams{
		RoomID:         "r1",
		AssignedUserID: "u1",
		TaskDate:       mustDate(t, "2024-06-01"),
		TaskType:       domain.TaskTypeCleaning,
	})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "CONFLICT", apiErr.Code)
	assert.Equal(t, "task already scheduled", apiErr.Message)
}

func TestDo_KeepsStatusOnMalformedErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream exploded")
	}))
	defer server.Close()

	client := New(server.URL, WithHTTPClient(server.Client()))

	err := client.DeleteTask(context.Background(), "t1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Code)
}

func TestDeleteUser_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/users/u1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL, WithHTTPClient(server.Client()))

	require.NoError(t, client.DeleteUser(context.Background(), "u1"))
}
