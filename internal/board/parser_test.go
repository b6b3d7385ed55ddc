package board

import "testing"

func TestParse_EmptyPlan(t *testing.T) {
	if tasks := Parse(""); len(tasks) != 0 {
		t.Errorf("expected no tasks from empty plan, got %d", len(tasks))
	}
}

func TestParse_FullTaskLine(t *testing.T) {
	text := "# In Progress\n## Backend\n- API, API-1, Build the endpoint, High\n"

	tasks := Parse(text)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}

	got := tasks[0]
	want := Task{
		ID:          "API-1",
		Description: "Build the endpoint",
		Status:      StatusInProgress,
		Phase:       "Backend",
		SubPhase:    "API",
		Priority:    PriorityHigh,
	}
	if got != want {
		t.Errorf("task mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestParse_DefaultsForBareLine(t *testing.T) {
	tasks := Parse("- , , ,")
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}

	got := tasks[0]
	if got.SubPhase != "" {
		t.Errorf("expected empty subPhase, got %q", got.SubPhase)
	}
	if got.ID != PlaceholderID(0) {
		t.Errorf("expected placeholder id for line 0, got %q", got.ID)
	}
	if got.Description != "..." {
		t.Errorf("expected placeholder description, got %q", got.Description)
	}
	if got.Priority != PriorityNone {
		t.Errorf("expected priority None, got %q", got.Priority)
	}
	if got.Status != StatusBacklog {
		t.Errorf("expected status Backlog, got %q", got.Status)
	}
	if got.Phase != DefaultPhase {
		t.Errorf("expected phase %q, got %q", DefaultPhase, got.Phase)
	}
}

func TestParse_MissingTrailingFields(t *testing.T) {
	tasks := Parse("- Core, C-1")
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.ID != "C-1" {
		t.Errorf("expected id C-1, got %q", got.ID)
	}
	if got.Description != "..." {
		t.Errorf("expected placeholder description, got %q", got.Description)
	}
	if got.Priority != PriorityNone {
		t.Errorf("expected priority None, got %q", got.Priority)
	}
}

func TestParse_StatusResetsPhase(t *testing.T) {
	text := `# To-Do
## Alpha
- X, X-1, desc, High
# In Progress
- Y, Y-1, desc2, Low`

	tasks := Parse(text)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}

	if tasks[0].Phase != "Alpha" {
		t.Errorf("expected X-1 in phase Alpha, got %q", tasks[0].Phase)
	}
	if tasks[1].Phase != DefaultPhase {
		t.Errorf("expected Y-1 reset to phase %q, got %q", DefaultPhase, tasks[1].Phase)
	}
	if tasks[1].Status != StatusInProgress {
		t.Errorf("expected Y-1 status In Progress, got %q", tasks[1].Status)
	}
}

func TestParse_ConsecutiveStatusHeadings(t *testing.T) {
	text := `# To-Do
## Alpha
# Review
- Z, Z-1, desc, Medium`

	tasks := Parse(text)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Phase != DefaultPhase {
		t.Errorf("expected phase %q after status change, got %q", DefaultPhase, tasks[0].Phase)
	}
	if tasks[0].Status != StatusReview {
		t.Errorf("expected status Review, got %q", tasks[0].Status)
	}
}

func TestParse_IgnoresUnrecognizedLines(t *testing.T) {
	text := "some prose\n\n# Done\n> a quote\n- K, K-1, done task, Low\n***\n"

	tasks := Parse(text)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].ID != "K-1" {
		t.Errorf("expected K-1, got %q", tasks[0].ID)
	}
}

func TestParse_ExtraCommasDropped(t *testing.T) {
	tasks := Parse("- S, S-1, first half, High, leftover")
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Description != "first half" {
		t.Errorf("expected description %q, got %q", "first half", tasks[0].Description)
	}
	if tasks[0].Priority != PriorityHigh {
		t.Errorf("expected priority High, got %q", tasks[0].Priority)
	}
}

func TestParseStatus_Fallback(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"To-Do", StatusTodo},
		{"todo", StatusTodo},
		{"TO DO", StatusTodo},
		{"in progress", StatusInProgress},
		{"In-Progress", StatusInProgress},
		{"Done", StatusDone},
		{"garbage", StatusBacklog},
		{"", StatusBacklog},
	}

	for _, tt := range tests {
		if got := ParseStatus(tt.raw); got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParsePriority_Fallback(t *testing.T) {
	tests := []struct {
		raw  string
		want Priority
	}{
		{"High", PriorityHigh},
		{"high", PriorityHigh},
		{"MEDIUM", PriorityMedium},
		{"low", PriorityLow},
		{"", PriorityNone},
		{"urgent", PriorityNone},
	}

	for _, tt := range tests {
		if got := ParsePriority(tt.raw); got != tt.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNextTaskID(t *testing.T) {
	tasks := []Task{
		{ID: "API-1", SubPhase: "API"},
		{ID: "API-2", SubPhase: "API"},
		{ID: "UI-1", SubPhase: "UI"},
	}

	if got := NextTaskID(tasks, "API"); got != "API-3" {
		t.Errorf("expected API-3, got %q", got)
	}
	if got := NextTaskID(tasks, "UI"); got != "UI-2" {
		t.Errorf("expected UI-2, got %q", got)
	}
	if got := NextTaskID(tasks, "Infra"); got != "Infra-1" {
		t.Errorf("expected Infra-1, got %q", got)
	}
}
