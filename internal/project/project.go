// Package project holds the application state around the board engine: the
// project model, its JSON storage, and the structured mutations that keep
// the plan document and the task list in sync.
package project

import (
	"fmt"
	"time"

	"github.com/savvywritesstuff/Zenith-Projects/internal/board"
)

// Project is one tracked project: a raw plan document, the task list
// derived from it, and the color maps for its grouping labels.
type Project struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	ParentID       string            `json:"parentId,omitempty"`
	PlanText       string            `json:"planText"`
	Tasks          []board.Task      `json:"tasks"`
	PhaseColors    map[string]string `json:"phaseColors,omitempty"`
	SubPhaseColors map[string]string `json:"subPhaseColors,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// New creates an empty project.
func New(id, name string) *Project {
	return &Project{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// SyncText runs the edit path: parse the document, reconcile against the
// current tasks, reassign colors, and commit only when something actually
// changed. The raw text is stored as typed; it is not canonicalized until
// the next structured mutation. Returns whether a commit happened.
func (p *Project) SyncText(text string, theme board.Theme) bool {
	merged := board.Merge(board.Parse(text), p.Tasks)
	phaseColors, subPhaseColors := board.AssignColors(merged, p.PhaseColors, p.SubPhaseColors, theme)

	changed := text != p.PlanText ||
		!board.TasksEqual(merged, p.Tasks) ||
		!board.ColorsEqual(phaseColors, p.PhaseColors) ||
		!board.ColorsEqual(subPhaseColors, p.SubPhaseColors)
	if !changed {
		return false
	}

	p.PlanText = text
	p.Tasks = merged
	p.PhaseColors = phaseColors
	p.SubPhaseColors = subPhaseColors
	return true
}

// regenerate rewrites the plan document from the task list. Structured
// mutations never patch text in place; the full rewrite is what keeps the
// document and the board from drifting apart.
func (p *Project) regenerate(theme board.Theme) {
	p.PlanText = board.Generate(p.Tasks)
	p.PhaseColors, p.SubPhaseColors = board.AssignColors(p.Tasks, p.PhaseColors, p.SubPhaseColors, theme)
}

// TaskByID returns the index of the task with the given id, or -1.
func (p *Project) TaskByID(id string) int {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// AddTask synthesizes a task with an auto-incremented ID derived from its
// sub-phase, appends it, and regenerates the document. The engine itself
// never deduplicates IDs, so collisions are rejected here.
func (p *Project) AddTask(status board.Status, phase, subPhase, description string, priority board.Priority, theme board.Theme) (board.Task, error) {
	if subPhase == "" {
		return board.Task{}, fmt.Errorf("sub-phase is required")
	}
	if phase == "" {
		phase = board.DefaultPhase
	}

	t := board.Task{
		ID:          board.NextTaskID(p.Tasks, subPhase),
		Description: description,
		Status:      status,
		Phase:       phase,
		SubPhase:    subPhase,
		Priority:    priority,
	}
	if p.TaskByID(t.ID) >= 0 {
		return board.Task{}, fmt.Errorf("task id %s already exists", t.ID)
	}

	p.Tasks = append(p.Tasks, t)
	p.regenerate(theme)
	return t, nil
}

// MoveTask changes a task's status and regenerates the document.
func (p *Project) MoveTask(id string, status board.Status, theme board.Theme) error {
	i := p.TaskByID(id)
	if i < 0 {
		return fmt.Errorf("task not found: %s", id)
	}

	p.Tasks[i].Status = status
	p.regenerate(theme)
	return nil
}

// UpdateTask edits a task's text fields and regenerates the document.
// Empty arguments leave the corresponding field untouched.
func (p *Project) UpdateTask(id, description string, priority board.Priority, theme board.Theme) error {
	i := p.TaskByID(id)
	if i < 0 {
		return fmt.Errorf("task not found: %s", id)
	}

	if description != "" {
		p.Tasks[i].Description = description
	}
	if priority != "" {
		p.Tasks[i].Priority = priority
	}
	p.regenerate(theme)
	return nil
}

// DeleteTask removes a task and regenerates the document. Any sub-project
// the task linked to is left in place; callers decide its fate.
func (p *Project) DeleteTask(id string, theme board.Theme) error {
	i := p.TaskByID(id)
	if i < 0 {
		return fmt.Errorf("task not found: %s", id)
	}

	p.Tasks = append(p.Tasks[:i], p.Tasks[i+1:]...)
	p.regenerate(theme)
	return nil
}

// LinkSubProject attaches a child project to a task. The link is not
// representable in the plan text; the merge step preserves it across
// subsequent reparses.
func (p *Project) LinkSubProject(taskID, projectID string) error {
	i := p.TaskByID(taskID)
	if i < 0 {
		return fmt.Errorf("task not found: %s", taskID)
	}
	if board.IsPlaceholderID(taskID) {
		return fmt.Errorf("cannot link a sub-project to an unsaved task line")
	}

	p.Tasks[i].SubProjectID = projectID
	return nil
}

// UnlinkSubProject clears a task's sub-project link.
func (p *Project) UnlinkSubProject(taskID string) error {
	i := p.TaskByID(taskID)
	if i < 0 {
		return fmt.Errorf("task not found: %s", taskID)
	}

	p.Tasks[i].SubProjectID = ""
	return nil
}

// CountByStatus returns how many tasks sit in each status column.
func (p *Project) CountByStatus() map[board.Status]int {
	counts := make(map[board.Status]int, len(board.StatusOrder))
	for _, t := range p.Tasks {
		counts[t.Status]++
	}
	return counts
}
