package board

// Merge reconciles freshly parsed tasks against the previously held list.
//
// The text format cannot express every task field: a naive reparse would
// wipe a task's sub-project link. Merge returns the fresh list with those
// out-of-band fields copied forward from the previous task with the same
// ID. Tasks whose IDs no longer appear in the fresh parse are dropped —
// removing a line from the document deletes the task.
func Merge(fresh, previous []Task) []Task {
	if len(previous) == 0 {
		return fresh
	}

	prevByID := make(map[string]Task, len(previous))
	for _, t := range previous {
		prevByID[t.ID] = t
	}

	merged := make([]Task, len(fresh))
	for i, t := range fresh {
		if prev, ok := prevByID[t.ID]; ok {
			t.SubProjectID = prev.SubProjectID
		}
		merged[i] = t
	}
	return merged
}

// TasksEqual reports whether two task lists are identical field for field,
// in order. Callers use it to skip redundant commits after a reparse that
// changed nothing.
func TasksEqual(a, b []Task) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ColorsEqual reports whether two label color maps hold the same
// assignments.
func ColorsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
