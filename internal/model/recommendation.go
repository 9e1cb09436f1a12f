package model

import "time"

// TimeEstimate is a coarse implementation-time estimate for a recommendation
type TimeEstimate struct {
	Value      int    `json:"value" bson:"value"`
	Unit       string `json:"unit" bson:"unit"`             // "months"
	Confidence string `json:"confidence" bson:"confidence"` // "medium" or "low"
}

// Recommendation is the synthesized advisory report for one completed (or
// best-effort) decision path. Immutable after creation; a new path produces
// a new Recommendation.
type Recommendation struct {
	ID              string       `json:"id" bson:"_id,omitempty"`
	UserID          string       `json:"userId" bson:"userId"`
	AdvisorID       string       `json:"advisorId" bson:"advisorId"`
	Goal            GoalID       `json:"goal" bson:"goal"`
	Summary         string       `json:"summary" bson:"summary"`
	Steps           []string     `json:"steps" bson:"steps"`
	Timeline        string       `json:"timeline" bson:"timeline"`
	ExpectedOutcome string       `json:"expectedOutcome" bson:"expectedOutcome"`
	NextActions     []string     `json:"nextActions" bson:"nextActions"`
	ConfidenceScore float64      `json:"confidenceScore" bson:"confidenceScore"` // [0,1]
	RiskLevel       RiskLevel    `json:"riskLevel" bson:"riskLevel"`
	TimeEstimate    TimeEstimate `json:"timeEstimate" bson:"timeEstimate"`
	Source          string       `json:"source" bson:"source"` // "remote" or "local"
	Complete        bool         `json:"complete" bson:"complete"`
	GeneratedAt     time.Time    `json:"generatedAt" bson:"generatedAt"`
}
