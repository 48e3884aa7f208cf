package http

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/quotebook/internal/scheduler"
	"github.com/mrlokans/quotebook/internal/tasks"
)

type fakeTaskQueue struct {
	enqueued   []backlite.Task
	enqueueErr error
	statuses   map[string]backlite.TaskStatus
}

func (f *fakeTaskQueue) Enqueue(task backlite.Task) (string, error) {
	if f.enqueueErr != nil {
		return "", f.enqueueErr
	}
	f.enqueued = append(f.enqueued, task)
	return "task-1", nil
}

func (f *fakeTaskQueue) Status(_ context.Context, taskID string) (backlite.TaskStatus, error) {
	status, ok := f.statuses[taskID]
	if !ok {
		return backlite.TaskStatusNotFound, nil
	}
	return status, nil
}

type fakeExportStatus struct {
	next *time.Time
	last *scheduler.RunStatus
}

func (f fakeExportStatus) IsRunning() bool               { return f.next != nil }
func (f fakeExportStatus) GetNextRunTime() *time.Time    { return f.next }
func (f fakeExportStatus) LastRun() *scheduler.RunStatus { return f.last }

func TestTasksController_RunExport(t *testing.T) {
	t.Run("enqueues export with request id", func(t *testing.T) {
		_, repo, cleanup := setupQuotesTestDB(t)
		defer cleanup()
		queue := &fakeTaskQueue{}
		router := NewRouter(RouterConfig{Store: repo, TaskQueue: queue})

		w := doRequestWithHeader(router, "POST", "/api/tasks/export/run", HeaderRequestID, "req-42")

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), `"task_id":"task-1"`)
		require.Len(t, queue.enqueued, 1)
		assert.Equal(t, tasks.ExportQuotesTask{RequestID: "req-42"}, queue.enqueued[0])
	})

	t.Run("enqueue failure is 500", func(t *testing.T) {
		_, repo, cleanup := setupQuotesTestDB(t)
		defer cleanup()
		router := NewRouter(RouterConfig{Store: repo, TaskQueue: &fakeTaskQueue{enqueueErr: errors.New("queue closed")}})

		w := doRequest(router, "POST", "/api/tasks/export/run", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "queue closed")
	})

	t.Run("routes are absent without a queue", func(t *testing.T) {
		_, repo, cleanup := setupQuotesTestDB(t)
		defer cleanup()
		router := NewRouter(RouterConfig{Store: repo})

		w := doRequest(router, "POST", "/api/tasks/export/run", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTasksController_GetTaskStatus(t *testing.T) {
	_, repo, cleanup := setupQuotesTestDB(t)
	defer cleanup()
	queue := &fakeTaskQueue{statuses: map[string]backlite.TaskStatus{"abc": backlite.TaskStatusSuccess}}
	router := NewRouter(RouterConfig{Store: repo, TaskQueue: queue})

	w := doRequest(router, "GET", "/api/tasks/abc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"success"`)

	w = doRequest(router, "GET", "/api/tasks/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTasksController_GetExportStatus(t *testing.T) {
	_, repo, cleanup := setupQuotesTestDB(t)
	defer cleanup()

	t.Run("without scheduler", func(t *testing.T) {
		router := NewRouter(RouterConfig{Store: repo})

		w := doRequest(router, "GET", "/api/export/status", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, decode[ExportStatusResponse](t, w).Scheduled)
	})

	t.Run("with scheduler", func(t *testing.T) {
		next := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		status := fakeExportStatus{
			next: &next,
			last: &scheduler.RunStatus{Error: "disk full"},
		}
		router := NewRouter(RouterConfig{Store: repo, ExportStatus: status})

		w := doRequest(router, "GET", "/api/export/status", nil)

		require.Equal(t, http.StatusOK, w.Code)
		response := decode[ExportStatusResponse](t, w)
		assert.True(t, response.Scheduled)
		require.NotNil(t, response.NextRun)
		assert.True(t, next.Equal(*response.NextRun))
		require.NotNil(t, response.LastRun)
		assert.Equal(t, "disk full", response.LastRun.Error)
	})
}
