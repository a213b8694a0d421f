package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/smart-plant-guard/internal/rbac"
	"github.com/MKhiriev/smart-plant-guard/models"
)

const (
	usersTable        = "users"
	speciesTable      = "species"
	observationsTable = "plant_observations"
	devicesTable      = "sensor_devices"
	readingsTable     = "sensor_readings"
	aiResultsTable    = "ai_results"
)

// Nullable text columns are coalesced so they scan into plain strings.
var userColumns = []string{
	"id",
	"role",
	"COALESCE(email_index, '')",
	"COALESCE(email_bundle, '')",
	"COALESCE(username_index, '')",
	"COALESCE(username_bundle, '')",
	"COALESCE(email, '')",
	"COALESCE(username, '')",
	"password_hash",
	"is_active",
	"created_at",
}

var speciesColumns = []string{
	"id",
	"common_name",
	"scientific_name",
	"is_endangered",
	"description",
	"image_url",
	"species_payload",
	"created_at",
}

var observationColumns = []string{
	"id",
	"species_id",
	"observer_id",
	"observed_at",
	"latitude",
	"longitude",
	"notes",
	"location_payload",
	"created_at",
}

var deviceColumns = []string{
	"id",
	"node_id",
	"device_name",
	"species_id",
	"latitude",
	"longitude",
	"is_active",
	"device_payload",
	"created_at",
}

var readingColumns = []string{
	"id",
	"device_id",
	"temperature",
	"humidity",
	"soil_moisture",
	"motion_detected",
	"reading_status",
	"alert_generated",
	"latitude",
	"longitude",
	"reading_timestamp",
	"reading_payload",
}

// AI results are read together with the observation they score.
var aiResultColumns = []string{
	"ar.id",
	"ar.observation_id",
	"ar.species_id",
	"ar.confidence_score",
	"ar.rank",
	"ar.ai_payload",
	"ar.created_at",
	"po.observer_id",
	"po.observed_at",
}

// createdNow is the creation timestamp set by repositories on insert.
// Setting it in Go keeps RETURNING to the id column, which every driver
// scans without type hints.
func createdNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("role", "email_index", "email_bundle", "username_index", "username_bundle", "password_hash", "is_active", "created_at").
		Values(
			user.Role,
			nullIfEmpty(user.EmailIndex),
			nullIfEmpty(user.EmailBundle),
			nullIfEmpty(user.UsernameIndex),
			nullIfEmpty(user.UsernameBundle),
			user.PasswordHash,
			user.IsActive,
			user.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildGetUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType, filter models.UserFilter, offset, limit int) (string, []any, error) {
	q := b.Select(userColumns...).From(usersTable)
	return whereUserFilter(q, filter).
		OrderBy("id DESC").
		Limit(uint64(max(limit, 0))).
		Offset(uint64(max(offset, 0))).
		ToSql()
}

func buildCountUsersQuery(b sq.StatementBuilderType, filter models.UserFilter) (string, []any, error) {
	return whereUserFilter(b.Select("COUNT(*)").From(usersTable), filter).ToSql()
}

// whereUserFilter matches roles the way rbac.NormalizeRole does: case and
// surrounding spaces are ignored, and every name that is neither admin nor
// researcher counts as public.
func whereUserFilter(q sq.SelectBuilder, filter models.UserFilter) sq.SelectBuilder {
	switch filter.Role {
	case "":
	case rbac.RoleAdmin, rbac.RoleResearcher:
		q = q.Where(sq.Expr("LOWER(TRIM(role)) = ?", filter.Role.String()))
	default:
		q = q.Where(sq.Expr("LOWER(TRIM(role)) NOT IN (?, ?)", rbac.RoleAdmin.String(), rbac.RoleResearcher.String()))
	}
	if filter.Active != nil {
		q = q.Where(sq.Eq{"is_active": *filter.Active})
	}
	return q
}

func buildUpdateUserQuery(b sq.StatementBuilderType, id int64, column string, value any) (string, []any, error) {
	return b.Update(usersTable).
		Set(column, value).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Role,
		&u.EmailIndex,
		&u.EmailBundle,
		&u.UsernameIndex,
		&u.UsernameBundle,
		&u.LegacyEmail,
		&u.LegacyUsername,
		&u.PasswordHash,
		&u.IsActive,
		&u.CreatedAt,
	)
	return u, err
}

func buildCreateSpeciesQuery(b sq.StatementBuilderType, s models.Species) (string, []any, error) {
	return b.Insert(speciesTable).
		Columns("common_name", "scientific_name", "is_endangered", "description", "image_url", "species_payload", "created_at").
		Values(s.CommonName, s.ScientificName, s.IsEndangered, s.Description, s.ImageURL, s.Payload, s.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildGetSpeciesQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(speciesColumns...).
		From(speciesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListSpeciesQuery(b sq.StatementBuilderType, nonEndangeredOnly bool) (string, []any, error) {
	q := b.Select(speciesColumns...).From(speciesTable)
	if nonEndangeredOnly {
		q = q.Where(sq.Eq{"is_endangered": false})
	}
	return q.OrderBy("id").ToSql()
}

func scanSpecies(row rowScanner) (models.Species, error) {
	var s models.Species
	err := row.Scan(
		&s.ID,
		&s.CommonName,
		&s.ScientificName,
		&s.IsEndangered,
		&s.Description,
		&s.ImageURL,
		&s.Payload,
		&s.CreatedAt,
	)
	return s, err
}

func buildCreateObservationQuery(b sq.StatementBuilderType, o models.Observation) (string, []any, error) {
	return b.Insert(observationsTable).
		Columns("species_id", "observer_id", "observed_at", "latitude", "longitude", "notes", "location_payload", "created_at").
		Values(o.SpeciesID, o.ObserverID, o.ObservedAt, o.Latitude, o.Longitude, o.Notes, o.LocationPayload, o.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildGetObservationQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(observationColumns...).
		From(observationsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListObservationsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(observationColumns...).
		From(observationsTable).
		OrderBy("observed_at DESC", "id DESC").
		ToSql()
}

func scanObservation(row rowScanner) (models.Observation, error) {
	var o models.Observation
	err := row.Scan(
		&o.ID,
		&o.SpeciesID,
		&o.ObserverID,
		&o.ObservedAt,
		&o.Latitude,
		&o.Longitude,
		&o.Notes,
		&o.LocationPayload,
		&o.CreatedAt,
	)
	return o, err
}

func buildListDevicesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(deviceColumns...).
		From(devicesTable).
		OrderBy("id").
		ToSql()
}

func buildGetDeviceQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(deviceColumns...).
		From(devicesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func scanDevice(row rowScanner) (models.SensorDevice, error) {
	var d models.SensorDevice
	err := row.Scan(
		&d.ID,
		&d.NodeID,
		&d.DeviceName,
		&d.SpeciesID,
		&d.Latitude,
		&d.Longitude,
		&d.IsActive,
		&d.Payload,
		&d.CreatedAt,
	)
	return d, err
}

// buildListReadingsQuery selects the readings of deviceIDs grouped by device,
// newest first within each device.
func buildListReadingsQuery(b sq.StatementBuilderType, deviceIDs []int64) (string, []any, error) {
	return b.Select(readingColumns...).
		From(readingsTable).
		Where(sq.Eq{"device_id": deviceIDs}).
		OrderBy("device_id", "reading_timestamp DESC", "id DESC").
		ToSql()
}

func scanReading(row rowScanner) (models.SensorReading, error) {
	var r models.SensorReading
	err := row.Scan(
		&r.ID,
		&r.DeviceID,
		&r.Temperature,
		&r.Humidity,
		&r.SoilMoisture,
		&r.MotionDetected,
		&r.Status,
		&r.AlertGenerated,
		&r.Latitude,
		&r.Longitude,
		&r.RecordedAt,
		&r.Payload,
	)
	return r, err
}

func selectAIResults(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(aiResultColumns...).
		From(aiResultsTable + " ar").
		LeftJoin(observationsTable + " po ON po.id = ar.observation_id")
}

func buildListAIResultsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return selectAIResults(b).
		OrderBy("ar.created_at DESC", "ar.rank", "ar.id").
		ToSql()
}

func buildListAIResultsByObservationQuery(b sq.StatementBuilderType, observationID int64) (string, []any, error) {
	return selectAIResults(b).
		Where(sq.Eq{"ar.observation_id": observationID}).
		OrderBy("ar.rank", "ar.id").
		ToSql()
}

func buildGetAIResultQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return selectAIResults(b).
		Where(sq.Eq{"ar.id": id}).
		Limit(1).
		ToSql()
}

func scanAIResult(row rowScanner) (models.AIResult, error) {
	var a models.AIResult
	err := row.Scan(
		&a.ID,
		&a.ObservationID,
		&a.SpeciesID,
		&a.ConfidenceScore,
		&a.Rank,
		&a.Payload,
		&a.CreatedAt,
		&a.ObserverID,
		&a.ObservedAt,
	)
	return a, err
}

// nullIfEmpty maps "" to SQL NULL so unique indexes ignore absent values.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
