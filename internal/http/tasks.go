package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/quotebook/internal/scheduler"
	"github.com/mrlokans/quotebook/internal/tasks"
)

// TaskQueue enqueues background tasks and reports their status.
type TaskQueue interface {
	Enqueue(task backlite.Task) (string, error)
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}

// ExportStatus reports on the scheduled export.
type ExportStatus interface {
	IsRunning() bool
	GetNextRunTime() *time.Time
	LastRun() *scheduler.RunStatus
}

// TasksController handles background export endpoints.
type TasksController struct {
	queue  TaskQueue
	status ExportStatus
}

// NewTasksController creates a new TasksController. Either argument may be nil.
func NewTasksController(queue TaskQueue, status ExportStatus) *TasksController {
	return &TasksController{queue: queue, status: status}
}

// ExportStatusResponse describes the scheduled export.
type ExportStatusResponse struct {
	Scheduled bool                 `json:"scheduled"`
	NextRun   *time.Time           `json:"next_run,omitempty"`
	LastRun   *scheduler.RunStatus `json:"last_run,omitempty"`
}

// RunExport enqueues a markdown export of the collection.
// POST /api/tasks/export/run
func (tc *TasksController) RunExport(c *gin.Context) {
	if tc.queue == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "task queue disabled"})
		return
	}

	taskID, err := tc.queue.Enqueue(tasks.ExportQuotesTask{RequestID: GetRequestID(c)})
	if err != nil {
		respondInternalError(c, err, "enqueue export")
		return
	}

	respondAccepted(c, "task enqueued", gin.H{
		"task_id": taskID,
		"type":    tasks.ExportQuotesQueue,
	})
}

// GetTaskStatus returns the status of a specific task.
// GET /api/tasks/:id
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	if tc.queue == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "task queue disabled"})
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		respondBadRequest(c, "task ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.queue.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}
	if status == backlite.TaskStatusNotFound {
		respondNotFound(c, "task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": tasks.StatusName(status),
	})
}

// GetExportStatus reports whether exports are scheduled and how the last one went.
// GET /api/export/status
func (tc *TasksController) GetExportStatus(c *gin.Context) {
	if tc.status == nil {
		c.JSON(http.StatusOK, ExportStatusResponse{})
		return
	}
	c.JSON(http.StatusOK, ExportStatusResponse{
		Scheduled: tc.status.IsRunning(),
		NextRun:   tc.status.GetNextRunTime(),
		LastRun:   tc.status.LastRun(),
	})
}
