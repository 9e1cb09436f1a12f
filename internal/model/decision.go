package model

import "time"

// DecisionOption is a single selectable answer at a step of a goal's tree
type DecisionOption struct {
	ID           string `json:"id" bson:"id"`
	Label        string `json:"label" bson:"label"`
	Value        string `json:"value" bson:"value"`
	QuestionText string `json:"questionText" bson:"questionText"`
}

// Decision is one recorded answer; append-only once created
type Decision struct {
	Step      int    `json:"step" bson:"step"`
	Selection string `json:"selection" bson:"selection"` // option id
	Value     string `json:"value" bson:"value"`
}

// DecisionPath is the ordered sequence of answers for one advisory session.
// Invariant: path[i].Step == i, length never exceeds the goal's step count.
type DecisionPath []Decision

// Append returns a new path with d appended. The receiver is not modified,
// so a late caller holding the old slice never sees the new decision.
func (p DecisionPath) Append(d Decision) DecisionPath {
	next := make(DecisionPath, len(p), len(p)+1)
	copy(next, p)
	return append(next, d)
}

// Selections returns the selection ids in path order
func (p DecisionPath) Selections() []string {
	out := make([]string, len(p))
	for i, d := range p {
		out[i] = d.Selection
	}
	return out
}

// StepContext carries lightweight per-request context used when resolving
// step options (e.g. low income inserts a longer timeframe option at step 0)
type StepContext struct {
	IncomeBracket string `json:"incomeBracket,omitempty"`
}

// ProgressRecord is the persisted in-progress path for one advisor session.
// UserID marks the session owner; a record written by one user is invisible
// to another.
type ProgressRecord struct {
	AdvisorID string       `json:"advisorId"`
	UserID    string       `json:"userId,omitempty"`
	Path      DecisionPath `json:"path"`
	Timestamp time.Time    `json:"timestamp"`
}
