package models

import "time"

// Species is a row of the species table. For endangered species the
// description and image live in the encrypted Payload and the plaintext
// columns are NULL; older rows may still use the plaintext columns.
type Species struct {
	ID             int64
	CommonName     string
	ScientificName string
	IsEndangered   bool
	Description    *string
	ImageURL       *string
	Payload        *string
	CreatedAt      time.Time
}

// TableName returns the name of the database table
// associated with the Species model.
func (s Species) TableName() string {
	return "species"
}

// SpeciesView is the API representation of a species.
type SpeciesView struct {
	ID                  int64     `json:"id"`
	CommonName          string    `json:"common_name"`
	ScientificName      string    `json:"scientific_name"`
	IsEndangered        bool      `json:"is_endangered"`
	Description         *string   `json:"description"`
	ImageURL            *string   `json:"image_url"`
	HasEncryptedPayload bool      `json:"has_encrypted_payload,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// CreateSpeciesRequest is the body of POST /api/species.
type CreateSpeciesRequest struct {
	CommonName     string  `json:"common_name"`
	ScientificName string  `json:"scientific_name"`
	IsEndangered   bool    `json:"is_endangered"`
	Description    *string `json:"description"`
	ImageURL       *string `json:"image_url"`
}
