package board

import "testing"

func sampleTasks() []Task {
	return []Task{
		{ID: "API-1", Description: "Build endpoint", Status: StatusTodo, Phase: "Backend", SubPhase: "API", Priority: PriorityHigh},
		{ID: "API-2", Description: "Add validation", Status: StatusTodo, Phase: "Backend", SubPhase: "API", Priority: PriorityMedium},
		{ID: "UI-1", Description: "Board layout", Status: StatusInProgress, Phase: "Frontend", SubPhase: "UI", Priority: PriorityLow},
		{ID: "OPS-1", Description: "Release checklist", Status: StatusDone, Phase: "General", SubPhase: "OPS", Priority: PriorityNone},
		{ID: "IDEA-1", Description: "Dark theme", Status: StatusFuture, Phase: "General", SubPhase: "IDEA", Priority: PriorityNone},
	}
}

func TestRoundTrip_ParseOfGenerateIsLossless(t *testing.T) {
	original := sampleTasks()

	parsed := Parse(Generate(original))
	if !TasksEqual(parsed, original) {
		t.Errorf("round trip changed tasks:\n got %+v\nwant %+v", parsed, original)
	}
}

func TestRoundTrip_GenerateIsStable(t *testing.T) {
	original := sampleTasks()

	once := Generate(original)
	twice := Generate(Parse(once))
	if once != twice {
		t.Errorf("second generation differs:\n first %q\nsecond %q", once, twice)
	}
}

func TestRoundTrip_IdempotentWithMerge(t *testing.T) {
	original := sampleTasks()
	original[0].SubProjectID = "child-1"

	text := Generate(original)
	regenerated := Generate(Merge(Parse(text), original))
	if text != regenerated {
		t.Errorf("merge round trip changed text:\n before %q\n after %q", text, regenerated)
	}
}

func TestRoundTrip_MergePreservesLinkAcrossReparse(t *testing.T) {
	original := sampleTasks()
	original[2].SubProjectID = "child-7"

	merged := Merge(Parse(Generate(original)), original)
	if !TasksEqual(merged, original) {
		t.Errorf("merge lost fields:\n got %+v\nwant %+v", merged, original)
	}
}

func TestRoundTrip_NormalizesLooseInput(t *testing.T) {
	loose := `
some intro prose

#  to do
##   Backend
-  API ,  API-1 , Build endpoint ,  high

# done
- OPS, OPS-1, Shipped, none
`

	tasks := Parse(loose)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}

	canonical := Generate(tasks)
	reparsed := Parse(canonical)
	if !TasksEqual(reparsed, tasks) {
		t.Errorf("canonicalized text does not parse back:\n got %+v\nwant %+v", reparsed, tasks)
	}
	if canonical != Generate(reparsed) {
		t.Error("canonical text is not a fixed point")
	}
}
