package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const activityLogFileName = "activity.log"

// Event type constants for activity logging.
const (
	EventProjectCreated   = "project_created"
	EventPlanSynced       = "plan_synced"
	EventTaskCreated      = "task_created"
	EventTaskMoved        = "task_moved"
	EventTaskUpdated      = "task_updated"
	EventTaskDeleted      = "task_deleted"
	EventSubprojectLinked = "subproject_linked"
)

// ActivityEvent represents a single activity log entry. Each entry gets a
// unique ID so external consumers of the log can deduplicate on replay.
type ActivityEvent struct {
	ID        string                 `json:"id"`
	Timestamp time.Time              `json:"timestamp"`
	Event     string                 `json:"event"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// ActivityLogger writes activity events to a JSON Lines file. Logging is
// best effort; a failed write never blocks a mutation.
type ActivityLogger struct {
	path string
}

// NewActivityLogger creates a new activity logger for the given project directory.
func NewActivityLogger(projectDir string) *ActivityLogger {
	return &ActivityLogger{
		path: filepath.Join(projectDir, activityLogFileName),
	}
}

// Log appends an activity event to the log file.
func (a *ActivityLogger) Log(event string, data map[string]interface{}) error {
	entry := ActivityEvent{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Event:     event,
		Data:      data,
	}

	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	jsonBytes = append(jsonBytes, '\n')

	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(jsonBytes)
	return err
}

// ProjectCreated logs a project_created event.
func (a *ActivityLogger) ProjectCreated(projectID, name string) error {
	return a.Log(EventProjectCreated, map[string]interface{}{
		"project_id": projectID,
		"name":       name,
	})
}

// PlanSynced logs a plan_synced event.
func (a *ActivityLogger) PlanSynced(projectID string, taskCount int) error {
	return a.Log(EventPlanSynced, map[string]interface{}{
		"project_id": projectID,
		"task_count": taskCount,
	})
}

// TaskCreated logs a task_created event.
func (a *ActivityLogger) TaskCreated(taskID string, status string) error {
	return a.Log(EventTaskCreated, map[string]interface{}{
		"task_id": taskID,
		"status":  status,
	})
}

// TaskMoved logs a task_moved event.
func (a *ActivityLogger) TaskMoved(taskID string, from, to string) error {
	return a.Log(EventTaskMoved, map[string]interface{}{
		"task_id": taskID,
		"from":    from,
		"to":      to,
	})
}

// TaskUpdated logs a task_updated event.
func (a *ActivityLogger) TaskUpdated(taskID string) error {
	return a.Log(EventTaskUpdated, map[string]interface{}{
		"task_id": taskID,
	})
}

// TaskDeleted logs a task_deleted event.
func (a *ActivityLogger) TaskDeleted(taskID string) error {
	return a.Log(EventTaskDeleted, map[string]interface{}{
		"task_id": taskID,
	})
}

// SubprojectLinked logs a subproject_linked event.
func (a *ActivityLogger) SubprojectLinked(taskID, projectID string) error {
	return a.Log(EventSubprojectLinked, map[string]interface{}{
		"task_id":    taskID,
		"project_id": projectID,
	})
}
