package engine

import "finadvisor/internal/model"

// IsComplete reports whether a path covers every step of the goal's tree
// with well-formed selections. An incomplete path is still usable for
// best-effort synthesis; callers surface a completeness warning only.
func IsComplete(goal model.GoalID, path model.DecisionPath) bool {
	if len(path) != StepCount(goal) {
		return false
	}
	for _, d := range path {
		if d.Selection == "" || d.Selection == "error" {
			return false
		}
	}
	return true
}

// EffectiveStep clamps a requested step to the path length so a
// desynchronized caller gets the next unanswered step instead of an error
func EffectiveStep(step int, path model.DecisionPath) int {
	if step > len(path) || step < 0 {
		return len(path)
	}
	return step
}
