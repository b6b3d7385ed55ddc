package board

import "strings"

// Line prefixes recognized by the parser. Anything else is structurally
// insignificant and skipped.
const (
	statusPrefix = "# "
	phasePrefix  = "## "
	taskPrefix   = "- "
)

// missingDescription is emitted for task lines that have no description yet.
const missingDescription = "..."

// Parse converts raw plan text into an ordered list of tasks.
//
// The scan is a single stateful pass: "# " headings set the current status
// and reset the current phase to DefaultPhase, "## " headings set the
// current phase, and "- " lines each yield one task under whatever status
// and phase are in effect. Malformed lines degrade to defaults rather than
// failing, so the parser is safe to run on every keystroke of a live edit.
func Parse(text string) []Task {
	var tasks []Task

	status := StatusBacklog
	phase := DefaultPhase

	for lineNo, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, phasePrefix):
			phase = strings.TrimSpace(line[len(phasePrefix):])

		case strings.HasPrefix(line, statusPrefix):
			status = ParseStatus(strings.TrimSpace(line[len(statusPrefix):]))
			// A status heading always starts a fresh phase scope, even
			// when it is immediately followed by another status heading.
			phase = DefaultPhase

		case strings.HasPrefix(line, taskPrefix):
			tasks = append(tasks, parseTaskLine(line[len(taskPrefix):], lineNo, status, phase))
		}
	}

	return tasks
}

// parseTaskLine splits the remainder of a "- " line into sub-phase, id,
// description and priority. Fields are comma-delimited with no escaping:
// a literal comma inside a description will shift the later fields, which
// is an accepted limitation of the format. Extra fields beyond the fourth
// are dropped.
func parseTaskLine(rest string, lineNo int, status Status, phase string) Task {
	fields := strings.Split(rest, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	t := Task{
		SubPhase:    field(0),
		ID:          field(1),
		Description: field(2),
		Priority:    ParsePriority(field(3)),
		Status:      status,
		Phase:       phase,
	}

	if t.ID == "" {
		// The line number keeps half-typed lines stably identifiable
		// without colliding with real IDs.
		t.ID = PlaceholderID(lineNo)
	}
	if t.Description == "" {
		t.Description = missingDescription
	}

	return t
}
