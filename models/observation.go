package models

import "time"

// Observation is a row of the plant_observations table.
//
// Coordinates and notes are sealed together in LocationPayload as
// {"lat":..,"lng":..,"notes":..}. Latitude, Longitude and Notes are the
// plaintext columns of rows written before encryption.
type Observation struct {
	ID              int64
	SpeciesID       int64
	ObserverID      int64
	ObservedAt      time.Time
	Latitude        *float64
	Longitude       *float64
	Notes           *string
	LocationPayload *string
	CreatedAt       time.Time
}

// TableName returns the name of the database table
// associated with the Observation model.
func (o Observation) TableName() string {
	return "plant_observations"
}

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ObservationView is the API representation of an observation. Location
// and Notes are omitted from the public view.
type ObservationView struct {
	ID         int64     `json:"id"`
	SpeciesID  int64     `json:"species_id"`
	ObserverID int64     `json:"observer_id,omitempty"`
	ObservedAt time.Time `json:"observed_at"`
	Location   *Location `json:"location,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
}

// RecordObservationRequest is the body of POST /api/plant-observations.
type RecordObservationRequest struct {
	SpeciesID  int64      `json:"species_id"`
	ObservedAt *time.Time `json:"observed_at"`
	Location   *Location  `json:"location"`
	Notes      *string    `json:"notes"`
}
