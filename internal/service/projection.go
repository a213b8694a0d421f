package service

import (
	"math"
	"time"

	"github.com/MKhiriev/smart-plant-guard/internal/payload"
	"github.com/MKhiriev/smart-plant-guard/internal/rbac"
	"github.com/MKhiriev/smart-plant-guard/models"
)

const (
	fieldEmail    = "email"
	fieldUsername = "username"

	fieldDescription = "description"
	fieldImageURL    = "image_url"

	fieldLat   = "lat"
	fieldLng   = "lng"
	fieldNotes = "notes"

	fieldNodeID         = "node_id"
	fieldDeviceName     = "device_name"
	fieldSpeciesID      = "species_id"
	fieldLatitude       = "location_latitude"
	fieldLongitude      = "location_longitude"
	fieldIsActive       = "is_active"
	fieldTemperature    = "temperature"
	fieldHumidity       = "humidity"
	fieldSoilMoisture   = "soil_moisture"
	fieldMotionDetected = "motion_detected"
	fieldReadingStatus  = "reading_status"
	fieldAlertGenerated = "alert_generated"
	fieldRecordedAt     = "reading_timestamp"

	fieldConfidence = "confidence_score"
	fieldRank       = "rank"
)

var (
	userFields        = []string{fieldEmail, fieldUsername}
	speciesFields     = []string{fieldDescription, fieldImageURL}
	observationFields = []string{fieldLat, fieldLng, fieldNotes}
	deviceFields      = []string{fieldNodeID, fieldDeviceName, fieldSpeciesID, fieldLatitude, fieldLongitude, fieldIsActive}
	readingFields     = []string{
		fieldTemperature, fieldHumidity, fieldSoilMoisture, fieldMotionDetected, fieldReadingStatus,
		fieldAlertGenerated, fieldLatitude, fieldLongitude, fieldRecordedAt,
	}
	aiResultFields = []string{fieldSpeciesID, fieldConfidence, fieldRank}
)

// profileOf decrypts the email and username bundles of u. A bundle that
// does not open falls back to the legacy plaintext column.
func profileOf(u models.User, o payload.Opener) models.UserProfile {
	decrypted := make(map[string]any, len(userFields))
	openField(decrypted, fieldEmail, u.EmailBundle, o)
	openField(decrypted, fieldUsername, u.UsernameBundle, o)

	legacy := make(map[string]any, len(userFields))
	setNonEmpty(legacy, fieldEmail, u.LegacyEmail)
	setNonEmpty(legacy, fieldUsername, u.LegacyUsername)

	fields := payload.Project(decrypted, legacy, userFields)

	return models.UserProfile{
		ID:        u.ID,
		Email:     stringField(fields, fieldEmail),
		Username:  stringField(fields, fieldUsername),
		Role:      rbac.NormalizeRole(u.Role).String(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func openField(dst map[string]any, field, bundle string, o payload.Opener) {
	if bundle == "" {
		return
	}
	if plaintext, err := o.Open(bundle); err == nil {
		dst[field] = plaintext
	}
}

func setNonEmpty(dst map[string]any, field, value string) {
	if value != "" {
		dst[field] = value
	}
}

func setPtr[T any](dst map[string]any, field string, value *T) {
	if value != nil {
		dst[field] = *value
	}
}

func stringField(fields map[string]any, name string) *string {
	s, ok := fields[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func floatField(fields map[string]any, name string) (float64, bool) {
	f, ok := fields[name].(float64)
	return f, ok
}

func floatPtr(fields map[string]any, name string) *float64 {
	f, ok := floatField(fields, name)
	if !ok {
		return nil
	}
	return &f
}

func boolPtr(fields map[string]any, name string) *bool {
	b, ok := fields[name].(bool)
	if !ok {
		return nil
	}
	return &b
}

// intPtr accepts int64 column values and whole JSON numbers.
func intPtr(fields map[string]any, name string) *int64 {
	switch v := fields[name].(type) {
	case int64:
		return &v
	case float64:
		if v != math.Trunc(v) {
			return nil
		}
		n := int64(v)
		return &n
	}
	return nil
}

// timeField accepts time.Time column values and RFC 3339 strings.
func timeField(fields map[string]any, name string) (time.Time, bool) {
	switch v := fields[name].(type) {
	case time.Time:
		return v, true
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		return t, err == nil
	}
	return time.Time{}, false
}

// locationOf pairs two coordinate fields; both must be present.
func locationOf(fields map[string]any, latField, lngField string) *models.Location {
	lat, okLat := floatField(fields, latField)
	lng, okLng := floatField(fields, lngField)
	if !okLat || !okLng {
		return nil
	}
	return &models.Location{Lat: lat, Lng: lng}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
