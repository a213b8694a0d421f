package models

import "time"

// AIResult is a row of the ai_results table joined with the observation it
// scores. The species guess, confidence and rank may be sealed in Payload.
type AIResult struct {
	ID              int64
	ObservationID   int64
	SpeciesID       *int64
	ConfidenceScore *float64
	Rank            *int64
	Payload         *string
	CreatedAt       time.Time

	ObserverID *int64
	ObservedAt *time.Time
}

// TableName returns the name of the database table
// associated with the AIResult model.
func (a AIResult) TableName() string {
	return "ai_results"
}

// AIResultView is the API representation of an identification result.
type AIResultView struct {
	ID              int64                `json:"id"`
	ObservationID   int64                `json:"observation_id"`
	SpeciesID       *int64               `json:"species_id"`
	ConfidenceScore *float64             `json:"confidence_score"`
	Rank            *int64               `json:"rank"`
	CreatedAt       time.Time            `json:"created_at"`
	Observation     *AIResultObservation `json:"observation"`
}

// AIResultObservation summarizes the scored observation.
type AIResultObservation struct {
	ID         int64     `json:"id"`
	ObserverID int64     `json:"observer_id"`
	ObservedAt time.Time `json:"observed_at"`
}
