package board

import (
	"fmt"
	"math"
)

// Theme holds the HSL parameters used when deriving colors for new labels.
// Phases and sub-phases get separate saturation/lightness so the two label
// classes remain visually distinct under the same hue wheel.
type Theme struct {
	Name               string  `yaml:"name"`
	HueOffset          float64 `yaml:"hueOffset"`
	PhaseSaturation    float64 `yaml:"phaseSaturation"`
	PhaseLightness     float64 `yaml:"phaseLightness"`
	SubPhaseSaturation float64 `yaml:"subPhaseSaturation"`
	SubPhaseLightness  float64 `yaml:"subPhaseLightness"`
}

// AssignColors returns color maps for the phase and sub-phase labels in
// tasks. Labels already present in the previous maps keep their color;
// new labels are assigned a hue from their insertion index spread across
// the total label count. The function is pure and deterministic.
func AssignColors(tasks []Task, prevPhase, prevSubPhase map[string]string, theme Theme) (map[string]string, map[string]string) {
	phases := collectLabels(tasks, func(t Task) string { return t.Phase })
	subPhases := collectLabels(tasks, func(t Task) string { return t.SubPhase })

	phaseColors := assign(phases, prevPhase, theme, theme.PhaseSaturation, theme.PhaseLightness)
	subPhaseColors := assign(subPhases, prevSubPhase, theme, theme.SubPhaseSaturation, theme.SubPhaseLightness)
	return phaseColors, subPhaseColors
}

// collectLabels returns the distinct non-empty labels of tasks in
// first-appearance order.
func collectLabels(tasks []Task, label func(Task) string) []string {
	var labels []string
	seen := make(map[string]bool)
	for _, t := range tasks {
		l := label(t)
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		labels = append(labels, l)
	}
	return labels
}

func assign(labels []string, prev map[string]string, theme Theme, saturation, lightness float64) map[string]string {
	colors := make(map[string]string, len(labels))
	for i, l := range labels {
		if c, ok := prev[l]; ok {
			colors[l] = c
			continue
		}
		hue := math.Mod(theme.HueOffset+float64(i)*360.0/float64(len(labels)), 360)
		colors[l] = hslToHex(hue, saturation, lightness)
	}
	return colors
}

// hslToHex converts hue [0,360), saturation and lightness [0,1] to a
// "#rrggbb" string.
func hslToHex(h, s, l float64) string {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round((r+m)*255)),
		int(math.Round((g+m)*255)),
		int(math.Round((b+m)*255)))
}
