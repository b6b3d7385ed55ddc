package board

import (
	"fmt"
	"strings"
)

// phaseBucket accumulates the tasks of one phase in the order they were
// scanned. A slice of buckets (rather than a map) preserves first-seen
// phase order, which Generate guarantees.
type phaseBucket struct {
	phase string
	tasks []Task
}

// Generate serializes tasks into canonical plan text.
//
// Output is deterministic regardless of input order: statuses appear in
// StatusOrder, phases within a status appear in the order they are first
// encountered among that status's tasks, and tasks keep their relative
// order within a phase. Placeholder-id tasks are excluded — they exist only
// for live-edit feedback and must never reach the document. Empty status
// buckets emit nothing. The result is trimmed and ends with exactly one
// trailing newline.
func Generate(tasks []Task) string {
	byStatus := make(map[Status][]Task)
	for _, t := range tasks {
		if IsPlaceholderID(t.ID) {
			continue
		}
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}

	var b strings.Builder
	for _, status := range StatusOrder {
		bucket := byStatus[status]
		if len(bucket) == 0 {
			continue
		}

		fmt.Fprintf(&b, "%s%s\n", statusPrefix, status)
		for _, pb := range groupByPhase(bucket) {
			fmt.Fprintf(&b, "%s%s\n", phasePrefix, pb.phase)
			for _, t := range pb.tasks {
				fmt.Fprintf(&b, "%s%s, %s, %s, %s\n", taskPrefix, t.SubPhase, t.ID, t.Description, t.Priority)
			}
			b.WriteString("\n")
		}
	}

	return strings.TrimSpace(b.String()) + "\n"
}

// groupByPhase buckets tasks by phase, preserving first-seen phase order.
func groupByPhase(tasks []Task) []phaseBucket {
	var buckets []phaseBucket
	index := make(map[string]int)

	for _, t := range tasks {
		i, ok := index[t.Phase]
		if !ok {
			i = len(buckets)
			index[t.Phase] = i
			buckets = append(buckets, phaseBucket{phase: t.Phase})
		}
		buckets[i].tasks = append(buckets[i].tasks, t)
	}

	return buckets
}
