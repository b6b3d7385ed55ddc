// Package board implements the sync engine between a plan document and its
// task records: parsing plan text into tasks, regenerating canonical text
// from tasks, reconciling a fresh parse against prior state, and assigning
// display colors to phase labels.
package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is a workflow column on the board.
type Status string

// Board columns, in canonical order.
const (
	StatusBacklog    Status = "Backlog"
	StatusTodo       Status = "To-Do"
	StatusInProgress Status = "In Progress"
	StatusReview     Status = "Review"
	StatusDone       Status = "Done"
	StatusFuture     Status = "Future"
)

// StatusOrder is the canonical column order used by Generate.
var StatusOrder = []Status{
	StatusBacklog,
	StatusTodo,
	StatusInProgress,
	StatusReview,
	StatusDone,
	StatusFuture,
}

// Priority is a task priority level.
type Priority string

// Priority levels.
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
	PriorityNone   Priority = "None"
)

// Task represents a single task line from a plan document.
type Task struct {
	ID           string   `json:"id"`
	Description  string   `json:"description"`
	Status       Status   `json:"status"`
	Phase        string   `json:"phase"`
	SubPhase     string   `json:"subPhase"`
	Priority     Priority `json:"priority"`
	SubProjectID string   `json:"subProjectId,omitempty"`
}

// DefaultPhase is the phase assigned to tasks before any phase heading.
const DefaultPhase = "General"

// placeholderIDPrefix marks IDs synthesized for task lines that have no ID
// yet. Placeholder IDs exist only to give half-typed lines a stable identity
// and are never written back to generated text.
const placeholderIDPrefix = "draft:"

// PlaceholderID returns the synthetic ID for a task line at the given
// zero-based line number.
func PlaceholderID(line int) string {
	return placeholderIDPrefix + strconv.Itoa(line)
}

// IsPlaceholderID reports whether id was synthesized by PlaceholderID.
func IsPlaceholderID(id string) bool {
	return strings.HasPrefix(id, placeholderIDPrefix)
}

// normalizeLabel lowercases s and strips everything but letters and digits,
// so "To-Do", "todo" and "To Do" all resolve to the same key.
func normalizeLabel(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var statusLookup = func() map[string]Status {
	m := make(map[string]Status, len(StatusOrder))
	for _, s := range StatusOrder {
		m[normalizeLabel(string(s))] = s
	}
	return m
}()

var priorityLookup = map[string]Priority{
	normalizeLabel(string(PriorityHigh)):   PriorityHigh,
	normalizeLabel(string(PriorityMedium)): PriorityMedium,
	normalizeLabel(string(PriorityLow)):    PriorityLow,
	normalizeLabel(string(PriorityNone)):   PriorityNone,
}

// ParseStatus maps a raw status label to a Status. Unrecognized labels fall
// back to Backlog so that partially typed headings never fail a parse.
func ParseStatus(raw string) Status {
	if s, ok := statusLookup[normalizeLabel(raw)]; ok {
		return s
	}
	return StatusBacklog
}

// ParsePriority maps a raw priority label to a Priority. Unrecognized labels
// fall back to None.
func ParsePriority(raw string) Priority {
	if p, ok := priorityLookup[normalizeLabel(raw)]; ok {
		return p
	}
	return PriorityNone
}

// NextTaskID returns the first unused auto-incremented ID for subPhase,
// in the form <SubPhase>-<n>.
func NextTaskID(tasks []Task, subPhase string) string {
	existing := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		existing[t.ID] = true
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", subPhase, n)
		if !existing[candidate] {
			return candidate
		}
	}
}
