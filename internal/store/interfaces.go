package store

import (
	"context"

	"github.com/MKhiriev/smart-plant-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for the users table. Lookups
// go through the email lookup index; the repository never sees plaintext
// emails or usernames of new rows.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt filled.
	// A duplicate email index yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUserByID returns [ErrNoUserWasFound] when id is unknown.
	GetUserByID(ctx context.Context, id int64) (models.User, error)

	// GetUserByEmailIndex returns [ErrNoUserWasFound] when no row carries index.
	GetUserByEmailIndex(ctx context.Context, index string) (models.User, error)

	// ListUsers returns users passing filter, newest first.
	ListUsers(ctx context.Context, filter models.UserFilter, offset, limit int) ([]models.User, error)

	// CountUsers counts users passing filter.
	CountUsers(ctx context.Context, filter models.UserFilter) (int64, error)

	// UpdateUserActive and UpdateUserRole return [ErrNoUserWasFound] when
	// no row matches id.
	UpdateUserActive(ctx context.Context, id int64, active bool) error
	UpdateUserRole(ctx context.Context, id int64, role string) error
}

// SpeciesRepository is the persistence contract for the species table.
type SpeciesRepository interface {
	CreateSpecies(ctx context.Context, species models.Species) (models.Species, error)

	// GetSpecies returns [ErrNotFound] when id is unknown.
	GetSpecies(ctx context.Context, id int64) (models.Species, error)

	// ListSpecies returns species ordered by id. With nonEndangeredOnly set,
	// endangered rows are filtered out by the query itself.
	ListSpecies(ctx context.Context, nonEndangeredOnly bool) ([]models.Species, error)
}

// ObservationRepository is the persistence contract for the
// plant_observations table.
type ObservationRepository interface {
	// CreateObservation returns [ErrReferenceNotFound] when the species or
	// observer does not exist.
	CreateObservation(ctx context.Context, observation models.Observation) (models.Observation, error)

	// GetObservation returns [ErrNotFound] when id is unknown.
	GetObservation(ctx context.Context, id int64) (models.Observation, error)

	// ListObservations returns observations, newest first.
	ListObservations(ctx context.Context) ([]models.Observation, error)
}

// SensorRepository reads the sensor_devices and sensor_readings tables.
type SensorRepository interface {
	// ListDevices returns devices ordered by id.
	ListDevices(ctx context.Context) ([]models.SensorDevice, error)

	// GetDevice returns [ErrNotFound] when id is unknown.
	GetDevice(ctx context.Context, id int64) (models.SensorDevice, error)

	// ListReadings returns the readings of deviceIDs ordered by device, newest
	// first within each device.
	ListReadings(ctx context.Context, deviceIDs []int64) ([]models.SensorReading, error)
}

// AIResultRepository reads the ai_results table. Every result carries the
// observer and time of the observation it scores.
type AIResultRepository interface {
	// ListAIResults returns results, newest first and by rank within a batch.
	ListAIResults(ctx context.Context) ([]models.AIResult, error)

	// ListAIResultsByObservation returns the results of one observation by
	// rank. An unknown observation yields an empty list.
	ListAIResultsByObservation(ctx context.Context, observationID int64) ([]models.AIResult, error)

	// GetAIResult returns [ErrNotFound] when id is unknown.
	GetAIResult(ctx context.Context, id int64) (models.AIResult, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried. Each driver provides its own implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification

	// IsUniqueViolation and IsForeignKeyViolation report constraint errors
	// in a driver-independent way.
	IsUniqueViolation(err error) bool
	IsForeignKeyViolation(err error) bool
}
