package domain

import (
	"time"

	"github.com/google/uuid"
)

// Method labels that are not rule chains.
const (
	MethodNoCandidates = "no_candidates"
	MethodSuggest      = "suggest"
	MethodSingle       = "single_candidate"
	MethodOutsideHours = "outside_working_hours"
	MethodTiebreak     = "tiebreak"
)

// RankedCandidate is one candidate in engine order.
type RankedCandidate struct {
	DriverCandidate
	Rank       int      `json:"rank"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// AssignmentResult is the engine output.
type AssignmentResult struct {
	Candidates          []RankedCandidate `json:"candidates"`
	RecommendedDriverID *uuid.UUID        `json:"recommended_driver_id"`
	SuggestedDriverID   *uuid.UUID        `json:"suggested_driver_id,omitempty"`
	Confidence          int               `json:"confidence"`
	Method              string            `json:"method"`
	DecidedAt           time.Time         `json:"decided_at"`
}

// Snapshot returns the audit record stored on the delivery.
func (r AssignmentResult) Snapshot() AssignmentSnapshot {
	return AssignmentSnapshot{
		RecommendedDriverID: r.RecommendedDriverID,
		SuggestedDriverID:   r.SuggestedDriverID,
		Confidence:          r.Confidence,
		Method:              r.Method,
		CandidateCount:      len(r.Candidates),
		DecidedAt:           r.DecidedAt,
	}
}

// AssignmentSnapshot is persisted as delivery.ai_assignment. Never used as current state.
type AssignmentSnapshot struct {
	RecommendedDriverID *uuid.UUID `json:"recommended_driver_id"`
	SuggestedDriverID   *uuid.UUID `json:"suggested_driver_id,omitempty"`
	Confidence          int        `json:"confidence"`
	Method              string     `json:"method"`
	CandidateCount      int        `json:"candidate_count"`
	DecidedAt           time.Time  `json:"decided_at"`
}

// AssignTarget is what the engine knows about the delivery being placed.
type AssignTarget struct {
	DeliveryID      uuid.UUID
	Location        *Point
	RequiredVehicle *VehicleType
}
