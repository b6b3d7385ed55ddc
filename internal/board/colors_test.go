package board

import (
	"regexp"
	"testing"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func colorTheme() Theme {
	return Theme{
		Name:               "dark",
		HueOffset:          210,
		PhaseSaturation:    0.45,
		PhaseLightness:     0.35,
		SubPhaseSaturation: 0.55,
		SubPhaseLightness:  0.55,
	}
}

func TestAssignColors_AllLabelsColored(t *testing.T) {
	tasks := []Task{
		{ID: "A-1", Phase: "Backend", SubPhase: "API"},
		{ID: "U-1", Phase: "Frontend", SubPhase: "UI"},
		{ID: "A-2", Phase: "Backend", SubPhase: "API"},
	}

	phases, subPhases := AssignColors(tasks, nil, nil, colorTheme())

	if len(phases) != 2 {
		t.Fatalf("expected 2 phase colors, got %d", len(phases))
	}
	if len(subPhases) != 2 {
		t.Fatalf("expected 2 sub-phase colors, got %d", len(subPhases))
	}
	for label, c := range phases {
		if !hexColor.MatchString(c) {
			t.Errorf("phase %q has malformed color %q", label, c)
		}
	}
	for label, c := range subPhases {
		if !hexColor.MatchString(c) {
			t.Errorf("sub-phase %q has malformed color %q", label, c)
		}
	}
}

func TestAssignColors_Deterministic(t *testing.T) {
	tasks := []Task{
		{ID: "A-1", Phase: "Backend", SubPhase: "API"},
		{ID: "U-1", Phase: "Frontend", SubPhase: "UI"},
	}

	p1, s1 := AssignColors(tasks, nil, nil, colorTheme())
	p2, s2 := AssignColors(tasks, nil, nil, colorTheme())

	if !ColorsEqual(p1, p2) || !ColorsEqual(s1, s2) {
		t.Error("expected identical inputs to produce identical colors")
	}
}

func TestAssignColors_KeepsExistingAssignments(t *testing.T) {
	tasks := []Task{
		{ID: "A-1", Phase: "Backend", SubPhase: "API"},
		{ID: "U-1", Phase: "Frontend", SubPhase: "UI"},
	}
	prevPhase := map[string]string{"Backend": "#0000ff"}

	phases, _ := AssignColors(tasks, prevPhase, nil, colorTheme())

	if phases["Backend"] != "#0000ff" {
		t.Errorf("expected Backend to keep #0000ff, got %q", phases["Backend"])
	}
	if phases["Frontend"] == "" {
		t.Error("expected Frontend to receive a new color")
	}
}

func TestAssignColors_DistinctHuesForNewLabels(t *testing.T) {
	tasks := []Task{
		{ID: "1", Phase: "One"},
		{ID: "2", Phase: "Two"},
		{ID: "3", Phase: "Three"},
	}

	phases, _ := AssignColors(tasks, nil, nil, colorTheme())

	seen := make(map[string]string)
	for label, c := range phases {
		if other, dup := seen[c]; dup {
			t.Errorf("labels %q and %q share color %q", label, other, c)
		}
		seen[c] = label
	}
}

func TestAssignColors_SkipsEmptyLabels(t *testing.T) {
	tasks := []Task{
		{ID: "1", Phase: "General", SubPhase: ""},
	}

	phases, subPhases := AssignColors(tasks, nil, nil, colorTheme())

	if _, ok := subPhases[""]; ok {
		t.Error("empty sub-phase label must not be assigned a color")
	}
	if len(phases) != 1 {
		t.Errorf("expected 1 phase color, got %d", len(phases))
	}
}

func TestHSLToHex(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    string
	}{
		{0, 1, 0.5, "#ff0000"},
		{120, 1, 0.5, "#00ff00"},
		{240, 1, 0.5, "#0000ff"},
		{0, 0, 1, "#ffffff"},
		{0, 0, 0, "#000000"},
	}

	for _, tt := range tests {
		if got := hslToHex(tt.h, tt.s, tt.l); got != tt.want {
			t.Errorf("hslToHex(%v, %v, %v) = %q, want %q", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}
